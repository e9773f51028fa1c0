package query

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// Matcher reports whether a decoded attribute value satisfies a filter.
type Matcher func(value string) bool

// Plan is a Request translated against a concrete table's indexed columns:
// a SQL WHERE fragment for filters the index can answer directly, and
// per-keyword Matchers for filters that require re-opening the source file.
type Plan struct {
	// WhereSQL is empty when no indexed filters apply; otherwise it is a
	// series of "col" = ? / "col" LIKE ? ... AND-joined clauses.
	WhereSQL string
	Args     []any

	// PostFilters maps a non-indexed keyword to the matcher its filter value
	// compiled to. The caller re-opens each candidate file, resolves the
	// keyword's value from the decoded dataset, and keeps the row only if
	// every matcher returns true.
	PostFilters map[string]Matcher

	// UnresolvedIncludeFields are includefield keywords that are not columns
	// of the target table; the caller resolves these the same way as
	// PostFilters, by re-opening the file.
	UnresolvedIncludeFields []string
}

// BuildPlan translates req against a table's indexed columns (the keywords
// configured for that table in internal/config.FieldConfig, as already
// materialized into indexstore's schema).
func BuildPlan(req *Request, indexedFields []string) (*Plan, error) {
	indexed := make(map[string]bool, len(indexedFields))
	for _, f := range indexedFields {
		indexed[f] = true
	}

	plan := &Plan{PostFilters: make(map[string]Matcher)}

	var clauses []string
	for keyword, val := range req.Filters {
		if !indexed[keyword] {
			m, err := newMatcher(val, req.Fuzzy)
			if err != nil {
				return nil, fmt.Errorf("filter %s: %w", keyword, err)
			}
			plan.PostFilters[keyword] = m
			continue
		}

		if containsWildcard(val) {
			clause, arg := likeClause(keyword, val, req.Fuzzy)
			clauses = append(clauses, clause)
			plan.Args = append(plan.Args, arg)
			continue
		}

		if req.Fuzzy {
			clauses = append(clauses, fmt.Sprintf("%q = ? COLLATE NOCASE", keyword))
		} else {
			clauses = append(clauses, fmt.Sprintf("%q = ?", keyword))
		}
		plan.Args = append(plan.Args, val)
	}

	if len(clauses) > 0 {
		plan.WhereSQL = strings.Join(clauses, " AND ")
	}

	if req.IncludeAll {
		plan.UnresolvedIncludeFields = nil
	} else {
		for kw := range req.IncludeFields {
			if !indexed[kw] {
				plan.UnresolvedIncludeFields = append(plan.UnresolvedIncludeFields, kw)
			}
		}
	}

	return plan, nil
}

func containsWildcard(s string) bool {
	return strings.ContainsAny(s, "*?")
}

// likeClause builds a LIKE clause for an indexed column, translating the
// QIDO-RS wildcard characters ('*' any run, '?' single char) into SQL LIKE
// wildcards ('%', '_'). LIKE is used for any wildcard value; COLLATE NOCASE
// is added only when fuzzymatching is requested. The caller is expected to
// have already confirmed the value contains a wildcard.
func likeClause(keyword, pattern string, fuzzy bool) (string, string) {
	like := toSQLLike(pattern)
	if fuzzy {
		return fmt.Sprintf("%q LIKE ? ESCAPE '\\' COLLATE NOCASE", keyword), like
	}
	return fmt.Sprintf("%q LIKE ? ESCAPE '\\'", keyword), like
}

func toSQLLike(pattern string) string {
	var sb strings.Builder
	for _, r := range pattern {
		switch r {
		case '*':
			sb.WriteByte('%')
		case '?':
			sb.WriteByte('_')
		case '%', '_':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// newMatcher compiles a post-filter value into a Matcher. Wildcards are
// honored whether or not fuzzy matching is requested, consistent with
// likeClause's SQL-side behavior; fuzzy matching makes the comparison
// case-insensitive.
func newMatcher(pattern string, fuzzy bool) (Matcher, error) {
	if containsWildcard(pattern) {
		norm := func(s string) string { return s }
		if fuzzy {
			norm = strings.ToUpper
		}
		g, err := glob.Compile(norm(pattern))
		if err != nil {
			return nil, fmt.Errorf("invalid wildcard pattern %q: %w", pattern, err)
		}
		return func(v string) bool { return g.Match(norm(v)) }, nil
	}
	if fuzzy {
		return func(v string) bool { return strings.EqualFold(v, pattern) }, nil
	}
	return func(v string) bool { return v == pattern }, nil
}
