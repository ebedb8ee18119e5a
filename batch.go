// SPDX-License-Identifier: MIT
package exprlex

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"gitlab.com/fisherprime/exprlex/lexer"
)

type (
	// Result holds the outcome of tokenizing one source of a batch.
	Result struct {
		Err    error
		Source string
		Tokens TokenList
	}

	// BatchOption defines the TokenizeAll functional option type.
	BatchOption func(*batchConfig)

	batchConfig struct {
		lexerOpts []lexer.Option
		poolSize  int
	}
)

// Batch tokenization errors.
var (
	ErrEmptyBatch = errors.New("empty batch")
	ErrPanicked   = lexer.ErrPanicked
)

// WithPoolSize configures the number of goroutines tokenizing a batch.
func WithPoolSize(size int) BatchOption {
	return func(c *batchConfig) {
		if size > 0 {
			c.poolSize = size
		}
	}
}

// WithLexerOptions configures the options passed to every source's Lexer.
func WithLexerOptions(opts ...lexer.Option) BatchOption {
	return func(c *batchConfig) { c.lexerOpts = append(c.lexerOpts, opts...) }
}

// TokenizeAll tokenizes independent sources concurrently.
//
// Each source gets its own Lexer; results are in input order. The returned error reports failures
// of the batch itself (cancellation included), per source failures are held in the Result.
func TokenizeAll(ctx context.Context, sources []string, opts ...BatchOption) (results []Result, err error) {
	if len(sources) < 1 {
		err = ErrEmptyBatch
		return
	}

	c := batchConfig{poolSize: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&c)
	}

	pool, err := ants.NewPool(c.poolSize)
	if err != nil {
		err = fmt.Errorf("batch pool: %w", err)
		return
	}
	defer pool.Release()

	results = make([]Result, len(sources))

	var wg sync.WaitGroup
	for index := range sources {
		select {
		case <-ctx.Done():
			// Sources not yet submitted report the cancellation.
			for ; index < len(sources); index++ {
				results[index] = Result{Source: sources[index], Err: ctx.Err()}
			}
			wg.Wait()

			err = ctx.Err()
			return
		default:
		}

		index := index
		wg.Add(1)

		task := func() {
			defer wg.Done()
			results[index] = tokenizeOne(ctx, sources[index], c.lexerOpts)
		}
		if err = pool.Submit(task); err != nil {
			wg.Done()
			wg.Wait()

			err = fmt.Errorf("batch submit: %w", err)
			return
		}
	}
	wg.Wait()

	return
}

// tokenizeOne tokenizes a source, converting a panic into an error.
//
// Panics while scanning are recovered by the Lexer & surface from Tokenize; this recovers the rest,
// e.g. a panicking lexer.Option.
func tokenizeOne(ctx context.Context, source string, opts []lexer.Option) (result Result) {
	result.Source = source

	defer func() {
		if r := recover(); r != nil {
			result.Err = fmt.Errorf("%w: %v", ErrPanicked, r)
			fLogger.Debugf("source: %q \npanic: %v", source, r)
		}
	}()

	result.Tokens, result.Err = Tokenize(ctx, source, opts...)

	return
}
