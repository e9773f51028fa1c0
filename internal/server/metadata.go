package server

import (
	"net/http"

	"github.com/codeninja55/go-radx/dicom"
	"github.com/codeninja55/go-radx/internal/indexstore"
)

// handleMetadata serves WADO-RS metadata for a study, series, or instance by
// re-opening the file directly (bypassing the index), per §4.5. The deepest
// scoped identifier (instance, else series, else study) selects which row's
// file is fetched; since the index stores one row per information entity,
// the lookup walks from the most specific table to the least specific.
func (s *Server) handleMetadata(w http.ResponseWriter, r *http.Request) {
	instance := r.PathValue("instance")
	series := r.PathValue("series")
	study := r.PathValue("study")

	var table, key string
	switch {
	case instance != "":
		table, key = indexstore.TableInstances, instance
	case series != "":
		table, key = indexstore.TableSeries, series
	default:
		table, key = indexstore.TableStudies, study
	}

	path, err := s.lookupFilePath(r, table, key)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	ds, err := dicom.ParseFile(path)
	if err != nil {
		s.logger.Error("failed to re-open file for metadata", "file", path, "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeDataSet(w, r, ds)
}

func (s *Server) lookupFilePath(r *http.Request, table, key string) (string, error) {
	keyColumns := map[string]string{
		indexstore.TableStudies:   "StudyInstanceUID",
		indexstore.TableSeries:    "SeriesInstanceUID",
		indexstore.TableInstances: "SOPInstanceUID",
	}

	var path string
	stmt := `SELECT "FilePath" FROM "` + table + `" WHERE "` + keyColumns[table] + `" = ?`
	err := s.store.DB().QueryRowContext(r.Context(), stmt, key).Scan(&path)
	return path, err
}
