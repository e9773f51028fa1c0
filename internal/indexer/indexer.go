// Package indexer walks a filesystem tree of DICOM files, decodes each one
// (dicom.ParseFile), and extracts the attributes named in
// internal/config.FieldConfig into rows for internal/indexstore.
//
// The walk is parallelized across a fixed pool of Options.Workers decode
// goroutines; all
// writes funnel through a single goroutine that owns the *indexstore.Store,
// per SPEC_FULL.md's single-writer concurrency model (§5). This mirrors the
// teacher's dicom.ParseDirectoryWithOptions worker-pool shape in
// dicom/directory_reader.go, adapted to index rows instead of an in-memory
// DataSetCollection.
package indexer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/codeninja55/go-radx/dicom"
	"github.com/codeninja55/go-radx/dicom/tag"
	"github.com/codeninja55/go-radx/internal/config"
	"github.com/codeninja55/go-radx/internal/indexstore"
)

// Options configures a Run.
type Options struct {
	// Workers is the number of concurrent file-decode goroutines. Default:
	// runtime.GOMAXPROCS(0).
	Workers int

	// FilePattern, if non-empty, is a glob pattern (matched against the base
	// name, case-insensitively) restricting which regular files are walked.
	// DICOM files need no particular extension per the standard, so the
	// default (empty) walks every regular file under root; set this only
	// when the caller knows the tree is mixed with unrelated files.
	FilePattern string

	// Logger receives per-file failures and a summary on completion. A nil
	// Logger uses log.Default().
	Logger *log.Logger
}

// Result summarizes one Run.
type Result struct {
	Scanned  int
	Indexed  int
	Failed   int
	Errors   map[string]error
	Duration time.Duration
}

func applyDefaults(opts Options) Options {
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return opts
}

// Run walks root for files matching opts.FilePattern, decodes each with
// dicom.ParseFile, and indexes the fields named in store.Fields() into
// store.
func Run(ctx context.Context, store *indexstore.Store, root string, opts Options) (*Result, error) {
	start := time.Now()
	opts = applyDefaults(opts)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	files, err := discoverFiles(root, opts.FilePattern)
	if err != nil {
		return nil, fmt.Errorf("failed to discover DICOM files under %s: %w", root, err)
	}

	rows := make(chan indexstore.Row, opts.Workers*2)
	jobs := make(chan string, len(files))

	var failedMu sync.Mutex
	errs := make(map[string]error)
	var indexed int
	var indexedMu sync.Mutex

	var workersWg sync.WaitGroup
	for i := 0; i < opts.Workers; i++ {
		workersWg.Add(1)
		go func() {
			defer workersWg.Done()
			for path := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}

				fileRows, err := extractRows(path, store.Fields())
				if err != nil {
					opts.Logger.Warn("failed to index file", "file", path, "error", err)
					failedMu.Lock()
					errs[path] = err
					failedMu.Unlock()
					continue
				}
				for _, r := range fileRows {
					rows <- r
				}
				indexedMu.Lock()
				indexed++
				indexedMu.Unlock()
			}
		}()
	}

	for _, f := range files {
		jobs <- f
	}
	close(jobs)

	var writerErr error
	var writerWg sync.WaitGroup
	writerWg.Add(1)
	go func() {
		defer writerWg.Done()
		writerErr = store.RunWriter(ctx, rows, 100)
		if writerErr != nil {
			cancel()
			for range rows {
			}
		}
	}()

	workersWg.Wait()
	close(rows)
	writerWg.Wait()

	if writerErr != nil {
		return nil, fmt.Errorf("index store writer failed: %w", writerErr)
	}

	result := &Result{
		Scanned:  len(files),
		Indexed:  indexed,
		Failed:   len(errs),
		Errors:   errs,
		Duration: time.Since(start),
	}

	opts.Logger.Info("scan complete",
		"scanned", result.Scanned, "indexed", result.Indexed, "failed", result.Failed, "duration", result.Duration)

	return result, nil
}

func discoverFiles(root, pattern string) ([]string, error) {
	var files []string
	pattern = strings.ToLower(pattern)

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if pattern == "" {
			files = append(files, path)
			return nil
		}
		matched, matchErr := filepath.Match(pattern, strings.ToLower(filepath.Base(path)))
		if matchErr != nil {
			return fmt.Errorf("invalid file pattern %q: %w", pattern, matchErr)
		}
		if matched {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}

// extractRows decodes one DICOM file and builds up to three index rows
// (study, series, instance) from the fields configured for each table. A
// file missing the corresponding unique-identifier tag is skipped for that
// table without failing the whole file.
func extractRows(path string, fields config.FieldConfig) ([]indexstore.Row, error) {
	ds, err := dicom.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	var rows []indexstore.Row

	studyUID := valueOrEmpty(ds, tag.StudyInstanceUID)
	seriesUID := valueOrEmpty(ds, tag.SeriesInstanceUID)

	if row, ok := buildRow(ds, indexstore.TableStudies, tag.StudyInstanceUID, fields.Study, path, nil); ok {
		rows = append(rows, row)
	}
	if row, ok := buildRow(ds, indexstore.TableSeries, tag.SeriesInstanceUID, fields.Series, path,
		map[string]string{"StudyInstanceUID": studyUID}); ok {
		rows = append(rows, row)
	}
	if row, ok := buildRow(ds, indexstore.TableInstances, tag.SOPInstanceUID, fields.Instance, path,
		map[string]string{"StudyInstanceUID": studyUID, "SeriesInstanceUID": seriesUID}); ok {
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: no recognizable study/series/instance identifier", path)
	}

	return rows, nil
}

func valueOrEmpty(ds *dicom.DataSet, t tag.Tag) string {
	elem, err := ds.Get(t)
	if err != nil {
		return ""
	}
	return elem.Value().String()
}

func buildRow(ds *dicom.DataSet, table string, keyTag tag.Tag, fieldNames []string, path string, parentValues map[string]string) (indexstore.Row, bool) {
	keyElem, err := ds.Get(keyTag)
	if err != nil {
		return indexstore.Row{}, false
	}

	values := make(map[string]*string, len(fieldNames))
	for _, kw := range fieldNames {
		elem, err := ds.GetByKeyword(kw)
		if err != nil {
			values[kw] = nil
			continue
		}
		v := elem.Value().String()
		values[kw] = &v
	}

	return indexstore.Row{
		Table:        table,
		Key:          keyElem.Value().String(),
		ParentValues: parentValues,
		Values:       values,
		FilePath:     path,
	}, true
}
