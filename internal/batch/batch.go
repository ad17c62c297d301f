package batch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"serptally/internal/serp"

	"github.com/google/uuid"
)

const (
	MinWorkers     = 10
	MaxWorkers     = 100
	DefaultWorkers = 50
)

// ClampWorkers keeps the pool size inside the supported bounds.
func ClampWorkers(n int) int {
	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}

// Sink receives the rows produced by successful terms.
type Sink interface {
	Append(term string, tally serp.Tally) error
}

// TermResult is the outcome of one term in a batch run. Err is nil only
// when the API call succeeded and yielded at least one hostname.
type TermResult struct {
	Term  string
	Tally serp.Tally
	Err   error
}

// Runner fans search terms out over a fixed-size worker pool, appends
// each non-empty tally to the sink as it completes, and reports per-term
// failures without aborting the batch.
type Runner struct {
	searcher serp.Searcher
	sink     Sink
	log      *slog.Logger
	workers  int
}

// NewRunner creates a batch runner. The worker count is clamped to the
// supported range.
func NewRunner(searcher serp.Searcher, sink Sink, log *slog.Logger, workers int) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{
		searcher: searcher,
		sink:     sink,
		log:      log,
		workers:  ClampWorkers(workers),
	}
}

// Run processes every term and returns only after all of them have
// completed. Results arrive in completion order, so neither the returned
// slice nor the sink rows follow submission order.
func (r *Runner) Run(ctx context.Context, terms []string) []TermResult {
	log := r.log.With("run_id", uuid.New())
	log.InfoContext(ctx, "starting batch", "terms", len(terms), "workers", r.workers)

	jobs := make(chan string, len(terms))
	results := make(chan TermResult, len(terms))

	var wg sync.WaitGroup
	for i := 1; i <= r.workers; i++ {
		wg.Add(1)
		go r.worker(ctx, i, log, &wg, jobs, results)
	}

	for _, term := range terms {
		jobs <- term
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	collected := make([]TermResult, 0, len(terms))
	failed := 0
	for res := range results {
		if res.Err == nil {
			if err := r.sink.Append(res.Term, res.Tally); err != nil {
				res.Err = fmt.Errorf("batch: append rows for %q: %w", res.Term, err)
			}
		}
		if res.Err != nil {
			failed++
		}
		collected = append(collected, res)
	}

	log.InfoContext(ctx, "batch finished", "processed", len(collected), "failed", failed)
	return collected
}

func (r *Runner) worker(
	ctx context.Context,
	idx int,
	log *slog.Logger,
	wg *sync.WaitGroup,
	jobs <-chan string,
	results chan<- TermResult,
) {
	defer wg.Done()
	for term := range jobs {
		log.DebugContext(ctx, "processing term", "worker", idx, "term", term)

		tally, err := r.searcher.Live(ctx, term)
		if err == nil && len(tally) == 0 {
			err = serp.ErrNoResults
		}
		if err != nil {
			log.ErrorContext(ctx, "term failed", "worker", idx, "term", term, "error", err)
		}

		results <- TermResult{Term: term, Tally: tally, Err: err}
	}
}
