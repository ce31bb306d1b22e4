package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"veritext/internal/detect"
	"veritext/internal/ingest"
)

// DocumentResult pairs a parsed document with its analysis record.
type DocumentResult struct {
	Path     string
	Document *ingest.Document
	Report   detect.Report
}

// AnalyzeDocuments fans the given paths out across a worker pool,
// parsing and scoring each document. Per-document failures are
// collected rather than aborting the batch; results come back sorted
// by path.
func AnalyzeDocuments(ctx context.Context, paths []string, workers int, p detect.Params, src detect.Source) ([]DocumentResult, []error) {
	if len(paths) == 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers < 1 {
			workers = 1
		}
	}

	jobs := make(chan string)
	results := make(chan DocumentResult, len(paths))
	errs := make(chan error, len(paths))
	var wg sync.WaitGroup

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				if err := ctx.Err(); err != nil {
					errs <- fmt.Errorf("%s: %w", path, err)
					continue
				}
				doc, err := ingest.ParseFile(path)
				if err != nil {
					errs <- err
					continue
				}
				report, err := detect.Analyze(ctx, doc.Text, p, src)
				if err != nil {
					errs <- fmt.Errorf("%s: %w", path, err)
					continue
				}
				results <- DocumentResult{Path: path, Document: doc, Report: report}
			}
		}()
	}

	for _, path := range paths {
		jobs <- path
	}
	close(jobs)
	wg.Wait()
	close(results)
	close(errs)

	out := make([]DocumentResult, 0, len(results))
	for res := range results {
		out = append(out, res)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })

	failures := make([]error, 0, len(errs))
	for err := range errs {
		failures = append(failures, err)
	}
	return out, failures
}
