package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/vanshika/trafficroute/internal/domain"
)

// NetworkWriter is the storage contract required to ingest a road network.
type NetworkWriter interface {
	UpsertLocation(ctx context.Context, name string) error
	UpsertRoad(ctx context.Context, road domain.Road) error
}

// TaskError accumulates multiple errors produced during bulk ingestion.
type TaskError struct {
	Errors []error
}

func (e *TaskError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "no errors"
	case 1:
		return e.Errors[0].Error()
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return "multiple errors: " + strings.Join(msgs, "; ")
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (e *TaskError) Unwrap() []error {
	return e.Errors
}

func (e *TaskError) append(err error) {
	if err == nil {
		return
	}
	e.Errors = append(e.Errors, err)
}

func (e *TaskError) asError() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

// BulkIngestor writes road networks to the graph database using a worker pool.
type BulkIngestor struct {
	repo    NetworkWriter
	workers int
}

// NewBulkIngestor creates a new BulkIngestor instance with the provided concurrency.
func NewBulkIngestor(repo NetworkWriter, workers int) *BulkIngestor {
	if workers <= 0 {
		workers = 4
	}
	return &BulkIngestor{
		repo:    repo,
		workers: workers,
	}
}

// IngestNetwork upserts every location, then every road. Roads are only
// written once all locations succeeded, since they match on endpoints.
func (bi *BulkIngestor) IngestNetwork(ctx context.Context, net domain.Network) error {
	if err := bi.IngestLocations(ctx, net.LocationSet()); err != nil {
		return err
	}
	return bi.IngestRoads(ctx, net.Roads)
}

// IngestLocations upserts the named locations concurrently.
func (bi *BulkIngestor) IngestLocations(ctx context.Context, names []string) error {
	return bi.run(ctx, len(names), func(idx int) error {
		return bi.repo.UpsertLocation(ctx, names[idx])
	})
}

// IngestRoads upserts roads concurrently.
func (bi *BulkIngestor) IngestRoads(ctx context.Context, roads []domain.Road) error {
	return bi.run(ctx, len(roads), func(idx int) error {
		return bi.repo.UpsertRoad(ctx, roads[idx])
	})
}

func (bi *BulkIngestor) run(ctx context.Context, total int, workerFn func(idx int) error) error {
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

	for i := 0; i < bi.workers; i++ {
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

	var taskErr TaskError
	for err := range errCh {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		taskErr.append(err)
	}
	return taskErr.asError()
}
