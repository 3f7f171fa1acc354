package batch

import (
	"context"

	"github.com/japaniel/tentoku/pkg/model"
)

// Tokenizer is the minimal capability batch.Tokenize needs — satisfied by
// *tokenizer.Tokenizer.
type Tokenizer interface {
	Tokenize(text string) []model.Token
}

// TokenizerFactory builds a Tokenizer for one worker goroutine. Per spec.md
// §5's "(i) one store per worker thread" guidance, Driver calls this once
// per worker rather than sharing a single Tokenizer (and its underlying
// dictdb.Store) across goroutines.
type TokenizerFactory func() Tokenizer

type indexedResult struct {
	index  int
	tokens []model.Token
	err    error
}

// Driver runs many independent Tokenize calls concurrently across a fixed
// worker pool, returning results in the same order as the input texts
// regardless of completion order — the same ordered reorder-buffer pattern
// as the teacher's pkg/ingest.Ingest.
type Driver struct {
	newTokenizer TokenizerFactory
	workers      int
}

// NewDriver returns a Driver with the given worker count, each worker
// backed by its own Tokenizer from newTokenizer.
func NewDriver(workers int, newTokenizer TokenizerFactory) *Driver {
	if workers <= 0 {
		workers = 1
	}
	return &Driver{newTokenizer: newTokenizer, workers: workers}
}

// TokenizeAll tokenizes every string in texts concurrently and returns their
// token streams in input order. A per-item error (there is none today,
// since Tokenizer.Tokenize has no error return — but workers are plumbed
// through Job, which does) would abort processing of later items; none is
// currently possible from Tokenize itself.
func (d *Driver) TokenizeAll(ctx context.Context, texts []string) [][]model.Token {
	if len(texts) == 0 {
		return nil
	}

	wp := NewWorkerPool(d.workers, d.workers*2)
	resultCh := make(chan indexedResult, d.workers*2)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	wp.Start(ctx)
	defer wp.Close()

	workerTokenizers := make(chan Tokenizer, d.workers)
	for i := 0; i < d.workers; i++ {
		workerTokenizers <- d.newTokenizer()
	}

	out := make([][]model.Token, len(texts))

	// The consumer runs concurrently with the producer below: both jobs
	// and resultCh are bounded, so once workers fill resultCh they block
	// on the send and stop draining jobs. Draining resultCh only after
	// every job is submitted would deadlock for len(texts) past a few
	// multiples of the worker count (same reorder-buffer shape as the
	// teacher's ingest.go, but with the consumer started before the
	// producer loop instead of after it).
	done := make(chan struct{})
	go func() {
		defer close(done)
		buffer := make(map[int]indexedResult)
		nextIdx := 0
		for received := 0; received < len(texts); received++ {
			res := <-resultCh
			buffer[res.index] = res
			for {
				item, ok := buffer[nextIdx]
				if !ok {
					break
				}
				delete(buffer, nextIdx)
				out[nextIdx] = item.tokens
				nextIdx++
			}
		}
	}()

	for i, text := range texts {
		idx, t := i, text
		_ = wp.Submit(func(ctx context.Context) error {
			tok := <-workerTokenizers
			tokens := tok.Tokenize(t)
			workerTokenizers <- tok

			select {
			case resultCh <- indexedResult{index: idx, tokens: tokens}:
			case <-ctx.Done():
			}
			return nil
		})
	}

	<-done
	return out
}
