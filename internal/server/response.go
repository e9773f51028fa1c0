package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/codeninja55/go-radx/dicom"
	"github.com/codeninja55/go-radx/dicom/dicomjson"
	"github.com/codeninja55/go-radx/dicom/dicomxml"
	"github.com/codeninja55/go-radx/dicom/element"
	"github.com/codeninja55/go-radx/dicom/tag"
	"github.com/codeninja55/go-radx/dicom/value"
)

// datasetFromIndexedColumns builds a minimal DataSet out of the keyword ->
// string-value columns an index row already carries, without touching the
// source file.
func datasetFromIndexedColumns(row map[string]string) (*dicom.DataSet, error) {
	ds := dicom.NewDataSet()
	for keyword, val := range row {
		if keyword == "FilePath" || keyword == "IndexedAt" || val == "" {
			continue
		}
		info, err := tag.FindByKeyword(keyword)
		if err != nil {
			continue
		}
		if len(info.VRs) == 0 {
			continue
		}
		v, err := value.NewStringValue(info.VRs[0], []string{val})
		if err != nil {
			continue
		}
		elem, err := element.NewElement(info.Tag, info.VRs[0], v)
		if err != nil {
			continue
		}
		if err := ds.Add(elem); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

// negotiateContentType picks the response media type from the Accept
// header, defaulting to application/dicom+json per §4.5.
func negotiateContentType(r *http.Request) string {
	accept := r.Header.Get("Accept")
	switch {
	case strings.Contains(accept, "application/dicom+xml"):
		return "application/dicom+xml"
	case strings.Contains(accept, "application/json"):
		return "application/json"
	default:
		return "application/dicom+json"
	}
}

// writeDataSets renders a slice of DataSets in the negotiated format and
// writes the response with the given status code.
func writeDataSets(w http.ResponseWriter, r *http.Request, status int, results []*dicom.DataSet) {
	contentType := negotiateContentType(r)
	w.Header().Set("Content-Type", contentType)

	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}

	switch contentType {
	case "application/dicom+xml":
		writeXML(w, status, results)
	default:
		writeJSON(w, status, results)
	}
}

func writeJSON(w http.ResponseWriter, status int, results []*dicom.DataSet) {
	models := make([]dicomjson.Model, 0, len(results))
	for _, ds := range results {
		m, err := dicomjson.ToModel(ds, nil)
		if err != nil {
			continue
		}
		models = append(models, m)
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models)
}

func writeXML(w http.ResponseWriter, status int, results []*dicom.DataSet) {
	w.WriteHeader(status)
	for _, ds := range results {
		b, err := dicomxml.Marshal(ds, nil)
		if err != nil {
			continue
		}
		_, _ = w.Write(b)
	}
}

// writeDataSet renders a single DataSet (used by the WADO-RS metadata
// handlers, which return one document rather than a search result array).
func writeDataSet(w http.ResponseWriter, r *http.Request, ds *dicom.DataSet) {
	contentType := negotiateContentType(r)
	w.Header().Set("Content-Type", contentType)

	var b []byte
	var err error
	if contentType == "application/dicom+xml" {
		b, err = dicomxml.Marshal(ds, nil)
	} else {
		b, err = dicomjson.Marshal(ds, nil)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	_, _ = w.Write(b)
}

func writeError(w http.ResponseWriter, status int, err error) {
	http.Error(w, err.Error(), status)
}
