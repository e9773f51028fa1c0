// Package server exposes the index store and file store over a QIDO-RS/
// WADO-RS-shaped HTTP API. It is routed entirely on stdlib
// net/http.ServeMux (Go 1.22+ method+wildcard patterns) -- the HTTP
// framework is an explicit external collaborator, so no third-party router
// is pulled in here even though the rest of the stack leans heavily on the
// example pack.
package server

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/codeninja55/go-radx/internal/config"
	"github.com/codeninja55/go-radx/internal/indexstore"
)

// Server holds the dependencies every handler needs: the index store, the
// field configuration that shaped its schema, and a logger.
type Server struct {
	store  *indexstore.Store
	fields config.FieldConfig
	logger *log.Logger
}

// New builds an http.Handler serving the QIDO-RS/WADO-RS surface described
// in the routing table below. Each request runs under a 30-second limit; a
// request that exceeds it gets 503 Service Unavailable and no partial body.
func New(store *indexstore.Store, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{store: store, fields: store.Fields(), logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /capabilities", s.handleCapabilities)

	mux.HandleFunc("GET /studies", s.handleSearch(indexstore.TableStudies))
	mux.HandleFunc("GET /studies/{study}/series", s.handleSearch(indexstore.TableSeries))
	mux.HandleFunc("GET /studies/{study}/series/{series}/instances", s.handleSearch(indexstore.TableInstances))

	mux.HandleFunc("GET /studies/{study}/metadata", s.handleMetadata)
	mux.HandleFunc("GET /studies/{study}/series/{series}/metadata", s.handleMetadata)
	mux.HandleFunc("GET /studies/{study}/series/{series}/instances/{instance}/metadata", s.handleMetadata)

	mux.HandleFunc("POST /studies", notImplemented)
	mux.HandleFunc("POST /studies/{study}", notImplemented)
	mux.HandleFunc("DELETE /studies", notImplemented)

	return http.TimeoutHandler(withLogging(logger, mux), 30*time.Second, "request timed out")
}

func notImplemented(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "STOW-RS/DELETE is not implemented", http.StatusNotImplemented)
}

func withLogging(logger *log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

// fieldsForTable returns every indexed column available for table: its
// configured fields plus the implicit ancestry columns (StudyInstanceUID /
// SeriesInstanceUID) indexstore adds to series/instances rows.
func (s *Server) fieldsForTable(table string) []string {
	switch table {
	case indexstore.TableStudies:
		return s.fields.Study
	case indexstore.TableSeries:
		return append([]string{"StudyInstanceUID"}, s.fields.Series...)
	case indexstore.TableInstances:
		return append([]string{"StudyInstanceUID", "SeriesInstanceUID"}, s.fields.Instance...)
	default:
		return nil
	}
}

// scanRows adapts sql.Rows column scanning to a map, independent of which
// table's column set is in play.
func scanRows(rows *sql.Rows) ([]map[string]string, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []map[string]string
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(map[string]string, len(cols))
		for i, c := range cols {
			if vals[i] == nil {
				row[c] = ""
				continue
			}
			switch v := vals[i].(type) {
			case string:
				row[c] = v
			case []byte:
				row[c] = string(v)
			default:
				row[c] = ""
			}
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
