package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/codeninja55/go-radx/dicom"
	"github.com/codeninja55/go-radx/internal/indexstore"
	"github.com/codeninja55/go-radx/internal/query"
)

// handleSearch returns a QIDO-RS search handler scoped to one index table.
func (s *Server) handleSearch(table string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := query.ParseRequest(r.URL.Query())
		fields := s.fieldsForTable(table)

		plan, err := query.BuildPlan(req, fields)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		scopeClauses, scopeArgs := scopeFilters(table, r)
		whereParts := scopeClauses
		if plan.WhereSQL != "" {
			whereParts = append(whereParts, plan.WhereSQL)
		}

		sqlStr := fmt.Sprintf(`SELECT * FROM %q`, table)
		if len(whereParts) > 0 {
			sqlStr += " WHERE " + strings.Join(whereParts, " AND ")
		}
		switch table {
		case indexstore.TableStudies:
			sqlStr += ` ORDER BY "StudyInstanceUID"`
		case indexstore.TableSeries:
			sqlStr += ` ORDER BY "StudyInstanceUID", "SeriesInstanceUID"`
		default:
			sqlStr += ` ORDER BY "StudyInstanceUID", "SeriesInstanceUID", "SOPInstanceUID"`
		}

		args := append(scopeArgs, plan.Args...)

		limit := req.Limit
		probeLimit := 0
		if limit > 0 {
			probeLimit = limit + 1
			sqlStr += " LIMIT ?"
			args = append(args, probeLimit)
		}
		if req.Offset > 0 {
			sqlStr += " OFFSET ?"
			args = append(args, req.Offset)
		}

		rows, err := s.store.DB().QueryContext(r.Context(), sqlStr, args...)
		if err != nil {
			s.logger.Error("search query failed", "table", table, "error", err)
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		candidates, err := scanRows(rows)
		rows.Close()
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}

		truncated := false
		if probeLimit > 0 && len(candidates) > limit {
			truncated = true
			candidates = candidates[:limit]
		}

		results := make([]*dicom.DataSet, 0, len(candidates))
		for _, c := range candidates {
			if !matchesPostFilters(c, plan.PostFilters, s.logger) {
				continue
			}
			ds, err := datasetForRow(c, plan.UnresolvedIncludeFields, req.IncludeAll)
			if err != nil {
				s.logger.Warn("failed to build response row", "file", c["FilePath"], "error", err)
				continue
			}
			results = append(results, ds)
		}

		status := http.StatusOK
		if truncated {
			status = http.StatusPartialContent
		}
		if len(results) == 0 {
			status = http.StatusNoContent
		}

		writeDataSets(w, r, status, results)
	}
}

// scopeFilters translates path wildcards ({study}, {series}) into indexed
// equality filters, since /studies/{study}/series is a series search scoped
// to one StudyInstanceUID.
func scopeFilters(table string, r *http.Request) ([]string, []any) {
	var clauses []string
	var args []any

	if study := r.PathValue("study"); study != "" {
		clauses = append(clauses, `"StudyInstanceUID" = ?`)
		args = append(args, study)
	}
	if series := r.PathValue("series"); series != "" && table == indexstore.TableInstances {
		clauses = append(clauses, `"SeriesInstanceUID" = ?`)
		args = append(args, series)
	}

	return clauses, args
}

// matchesPostFilters re-opens the candidate's file only when at least one
// non-indexed filter remains; candidates that already satisfy every indexed
// filter but carry no post-filters skip the re-open entirely.
func matchesPostFilters(row map[string]string, filters map[string]query.Matcher, logger *log.Logger) bool {
	if len(filters) == 0 {
		return true
	}

	ds, err := dicom.ParseFile(row["FilePath"])
	if err != nil {
		logger.Warn("failed to re-open file for post-filter", "file", row["FilePath"], "error", err)
		return false
	}

	for keyword, matcher := range filters {
		elem, err := ds.GetByKeyword(keyword)
		if err != nil {
			return false
		}
		if !matcher(elem.Value().String()) {
			return false
		}
	}
	return true
}

// datasetForRow builds the response DataSet for one index row: the indexed
// columns it already carries, plus any unresolved includefield keywords (or
// every attribute the file holds, under IncludeAll) resolved from the source
// file and merged in. It never returns the raw on-disk dataset outright --
// the response is always the union of indexed columns and resolved
// includefields, per QIDO-RS's field-selection semantics.
func datasetForRow(row map[string]string, unresolved []string, includeAll bool) (*dicom.DataSet, error) {
	base, err := datasetFromIndexedColumns(row)
	if err != nil {
		return nil, err
	}
	if len(unresolved) == 0 && !includeAll {
		return base, nil
	}

	full, err := dicom.ParseFile(row["FilePath"])
	if err != nil {
		return nil, fmt.Errorf("failed to re-open %s for includefield resolution: %w", row["FilePath"], err)
	}

	if includeAll {
		if err := base.Merge(full); err != nil {
			return nil, fmt.Errorf("failed to merge includefield=ALL attributes for %s: %w", row["FilePath"], err)
		}
		return base, nil
	}

	for _, kw := range unresolved {
		elem, err := full.GetByKeyword(kw)
		if err != nil {
			continue
		}
		if err := base.Add(elem); err != nil {
			return nil, fmt.Errorf("failed to merge includefield %q for %s: %w", kw, row["FilePath"], err)
		}
	}
	return base, nil
}
