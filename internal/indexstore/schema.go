package indexstore

import (
	"fmt"
	"regexp"
	"strings"
)

// Table names for the three index tables, one per DICOM information entity.
const (
	TableStudies   = "studies"
	TableSeries    = "series"
	TableInstances = "instances"
)

// keyColumn names the column each table is upserted on.
var keyColumn = map[string]string{
	TableStudies:   "StudyInstanceUID",
	TableSeries:    "SeriesInstanceUID",
	TableInstances: "SOPInstanceUID",
}

// parentColumns names the implicit parent-linkage columns each table carries
// in addition to its own key and configured fields, so that QIDO-RS's scoped
// searches (/studies/{study}/series, .../series/{series}/instances) can
// filter by ancestry without re-opening every candidate file. These are not
// configured in internal/config -- they are a fixed part of the schema.
var parentColumns = map[string][]string{
	TableStudies:   nil,
	TableSeries:    {"StudyInstanceUID"},
	TableInstances: {"StudyInstanceUID", "SeriesInstanceUID"},
}

// columnNameRE guards against a misconfigured field list ever reaching raw
// SQL: every column name is a tag dictionary keyword (validated by
// internal/config's dicomkeyword rule), which is always a bare identifier --
// this is a second, defense-in-depth check at the point columns are
// interpolated into DDL/DML text.
var columnNameRE = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

func validColumnName(name string) bool {
	return columnNameRE.MatchString(name)
}

// createTableSQL builds a CREATE TABLE IF NOT EXISTS statement for table with
// one TEXT column per field (in addition to the fixed FilePath/IndexedAt
// columns), keyed on keyColumn[table].
func createTableSQL(table string, fields []string) (string, error) {
	key, ok := keyColumn[table]
	if !ok {
		return "", fmt.Errorf("unknown index table %q", table)
	}

	cols := make([]string, 0, len(fields)+5)
	seen := map[string]bool{key: true}
	cols = append(cols, fmt.Sprintf("%q TEXT NOT NULL", key))

	for _, p := range parentColumns[table] {
		if seen[p] {
			continue
		}
		seen[p] = true
		cols = append(cols, fmt.Sprintf("%q TEXT", p))
	}

	for _, f := range fields {
		if !validColumnName(f) {
			return "", fmt.Errorf("invalid column name %q for table %s", f, table)
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		cols = append(cols, fmt.Sprintf("%q TEXT", f))
	}

	cols = append(cols, `"FilePath" TEXT NOT NULL`, `"IndexedAt" TEXT NOT NULL`)

	stmt := fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %q (\n  %s,\n  PRIMARY KEY (%q)\n)",
		table, strings.Join(cols, ",\n  "), key,
	)
	return stmt, nil
}

// upsertSQL builds an INSERT ... ON CONFLICT DO UPDATE statement that makes
// the second index of the same key column last-write-wins, per SPEC_FULL.md
// Testable Property 10.
func upsertSQL(table string, columns []string) (string, error) {
	key, ok := keyColumn[table]
	if !ok {
		return "", fmt.Errorf("unknown index table %q", table)
	}

	seen := map[string]bool{key: true}
	allCols := []string{key}
	for _, p := range parentColumns[table] {
		if seen[p] {
			continue
		}
		seen[p] = true
		allCols = append(allCols, p)
	}
	for _, c := range columns {
		if seen[c] {
			continue
		}
		seen[c] = true
		allCols = append(allCols, c)
	}
	allCols = append(allCols, "FilePath", "IndexedAt")

	quoted := make([]string, len(allCols))
	placeholders := make([]string, len(allCols))
	for i, c := range allCols {
		quoted[i] = fmt.Sprintf("%q", c)
		placeholders[i] = "?"
	}

	updates := make([]string, 0, len(allCols)-1)
	for _, c := range allCols {
		if c == key {
			continue
		}
		updates = append(updates, fmt.Sprintf("%q = excluded.%q", c, c))
	}

	stmt := fmt.Sprintf(
		"INSERT INTO %q (%s) VALUES (%s) ON CONFLICT(%q) DO UPDATE SET %s",
		table, strings.Join(quoted, ", "), strings.Join(placeholders, ", "), key, strings.Join(updates, ", "),
	)
	return stmt, nil
}
