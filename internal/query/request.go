// Package query translates QIDO-RS HTTP query parameters into SQL WHERE
// clauses against the index store (internal/indexstore), falling back to a
// post-filter over re-opened files for attributes the index does not carry.
package query

import (
	"net/url"
	"strconv"
	"strings"
)

// Request is a parsed QIDO-RS query: attribute filters plus the
// includefield/fuzzymatching/limit/offset modifiers common to every
// /studies, /series, /instances search endpoint.
type Request struct {
	Filters       map[string]string
	IncludeFields map[string]bool
	IncludeAll    bool
	Fuzzy         bool
	Limit         int
	Offset        int
}

// ParseRequest builds a Request from an http.Request's query string.
//
// includefield supports both comma-separated and repeated-parameter forms
// (`includefield=A,B` and `includefield=A&includefield=B`), per the
// "Includefield parsing" design note; `includefield=ALL` sets IncludeAll and
// is otherwise equivalent to listing every configured field.
func ParseRequest(values url.Values) *Request {
	req := &Request{
		Filters:       make(map[string]string),
		IncludeFields: make(map[string]bool),
	}

	for key, vals := range values {
		switch key {
		case "includefield":
			for _, v := range vals {
				for _, part := range strings.Split(v, ",") {
					part = strings.TrimSpace(part)
					if part == "" {
						continue
					}
					if part == "ALL" {
						req.IncludeAll = true
						continue
					}
					req.IncludeFields[part] = true
				}
			}
		case "fuzzymatching":
			if len(vals) > 0 {
				if b, err := strconv.ParseBool(vals[0]); err == nil {
					req.Fuzzy = b
				}
			}
		case "limit":
			if len(vals) > 0 {
				if n, err := strconv.Atoi(vals[0]); err == nil && n >= 0 {
					req.Limit = n
				}
			}
		case "offset":
			if len(vals) > 0 {
				if n, err := strconv.Atoi(vals[0]); err == nil && n >= 0 {
					req.Offset = n
				}
			}
		default:
			if len(vals) > 0 {
				req.Filters[key] = vals[0]
			}
		}
	}

	return req
}
