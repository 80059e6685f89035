package preflight

import (
	"context"

	"mbidify/internal/musicbrainz"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every check: output directory access, then registry
// reachability when a searcher is supplied.
func RunAll(ctx context.Context, searcher musicbrainz.Searcher, outputDir string) []Result {
	var results []Result

	if outputDir != "" {
		results = append(results, CheckDirectoryAccess("Output directory", outputDir))
	}
	if searcher != nil {
		results = append(results, CheckRegistry(ctx, searcher))
	}

	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
