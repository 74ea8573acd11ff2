package check

import (
	"context"

	"github.com/ziadkadry99/cheatcompare/internal/loader"
	"github.com/ziadkadry99/cheatcompare/internal/progress"
	"github.com/ziadkadry99/cheatcompare/internal/source"
)

// Result is the outcome of fetching one document.
type Result struct {
	Name    string
	Address string
	Bytes   int
	Err     error
}

// OK reports whether the document could be retrieved.
func (r Result) OK() bool { return r.Err == nil }

// Documents fetches every named document once, in order, and reports
// progress to rep (which may be nil).
func Documents(ctx context.Context, f loader.Fetcher, base string, names []string, rep progress.Reporter) []Result {
	if rep != nil {
		rep.Start(len(names))
		defer rep.Finish()
	}

	results := make([]Result, 0, len(names))
	for i, name := range names {
		address := source.Resolve(base, name)
		text, err := f.Fetch(ctx, address)
		results = append(results, Result{Name: name, Address: address, Bytes: len(text), Err: err})
		if rep != nil {
			rep.Update(i+1, source.FileName(name))
		}
		if ctx.Err() != nil {
			break
		}
	}
	return results
}

// Failed returns the results that could not be retrieved.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.OK() {
			out = append(out, r)
		}
	}
	return out
}
