package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// MaxBatchSize caps the number of queries accepted by FindPaths.
const MaxBatchSize = 1000

// FindPaths answers many path queries on a pool of workers. Results keep the
// order of queries. A failing query leaves its slot zero-valued; every failure
// is reported in the returned error, which wraps the individual errors.
// Cancellation stops the batch and returns the context error alone.
func (s *NetworkService) FindPaths(ctx context.Context, queries []PathQuery) ([]PathResult, error) {
	if len(queries) > MaxBatchSize {
		return nil, fmt.Errorf("%w: batch of %d exceeds limit %d", ErrInvalidInput, len(queries), MaxBatchSize)
	}
	results := make([]PathResult, len(queries))
	err := s.run(ctx, len(queries), func(idx int) error {
		res, err := s.FindPath(ctx, queries[idx])
		if err != nil {
			return fmt.Errorf("query #%d (%s -> %s): %w", idx, queries[idx].From, queries[idx].To, err)
		}
		results[idx] = res
		return nil
	})
	return results, err
}

func (s *NetworkService) run(ctx context.Context, total int, workerFn func(idx int) error) error {
	if total == 0 {
		return nil
	}
	indexCh := make(chan int)
	errCh := make(chan error, total)
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for idx := range indexCh {
			if err := workerFn(idx); err != nil {
				errCh <- err
			}
		}
	}

	workers := s.workers
	if workers > total {
		workers = total
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go worker()
	}

Loop:
	for i := 0; i < total; i++ {
		select {
		case indexCh <- i:
		case <-ctx.Done():
			break Loop
		}
	}
	close(indexCh)
	wg.Wait()
	close(errCh)

	if err := ctx.Err(); err != nil {
		return err
	}
	var result *multierror.Error
	for err := range errCh {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}
