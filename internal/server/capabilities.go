package server

import (
	"encoding/json"
	"net/http"

	"github.com/codeninja55/go-radx/dicom"
	"github.com/codeninja55/go-radx/dicom/uid"
	"github.com/codeninja55/go-radx/internal/indexstore"
)

type transferSyntaxDoc struct {
	UID  string `json:"uid"`
	Name string `json:"name"`
}

type capabilitiesDoc struct {
	Endpoints                 []string            `json:"endpoints"`
	SupportedAccept           []string            `json:"supportedAccept"`
	IndexedIncludeFields      map[string][]string `json:"indexedIncludeFields"`
	SupportedTransferSyntaxes []transferSyntaxDoc `json:"supportedTransferSyntaxes"`
}

// handleCapabilities serves a static conformance document describing the
// routes this server answers, the fields it can resolve without re-opening
// a file, and the response media types it negotiates.
func (s *Server) handleCapabilities(w http.ResponseWriter, r *http.Request) {
	transferSyntaxes := make([]transferSyntaxDoc, 0, len(dicom.SupportedTransferSyntaxes))
	for _, ts := range dicom.SupportedTransferSyntaxes {
		transferSyntaxes = append(transferSyntaxes, transferSyntaxDoc{
			UID:  ts.String(),
			Name: uid.Name(ts.String()),
		})
	}

	doc := capabilitiesDoc{
		Endpoints: []string{
			"GET /capabilities",
			"GET /studies",
			"GET /studies/{study}/series",
			"GET /studies/{study}/series/{series}/instances",
			"GET /studies/{study}/metadata",
			"GET /studies/{study}/series/{series}/metadata",
			"GET /studies/{study}/series/{series}/instances/{instance}/metadata",
			"POST /studies",
			"POST /studies/{study}",
			"DELETE /studies",
		},
		SupportedAccept: []string{
			"application/dicom+json",
			"application/json",
			"application/dicom+xml",
		},
		IndexedIncludeFields: map[string][]string{
			indexstore.TableStudies:   s.fieldsForTable(indexstore.TableStudies),
			indexstore.TableSeries:    s.fieldsForTable(indexstore.TableSeries),
			indexstore.TableInstances: s.fieldsForTable(indexstore.TableInstances),
		},
		SupportedTransferSyntaxes: transferSyntaxes,
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(doc)
}
