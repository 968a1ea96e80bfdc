package services

import (
	"context"
	"errors"
	"sync"

	"github.com/gkxornjs/Uokjeryeok/internal/models"
)

// ErrSuperseded reports that a newer load started while this one was in
// flight. The stale result must be discarded, never rendered.
var ErrSuperseded = errors.New("load superseded by a newer request")

type RecordFetcher interface {
	FindByUserAndDateKey(userID uint, dateKey string) (models.Record, bool, error)
}

// RecordLoader serializes view loads for a single session. Each Load bumps a
// generation counter and cancels the context of the previous in-flight fetch;
// a response that returns after a newer load began is dropped. This closes
// the race where a slow fetch for one date overwrites the state of a date the
// user has already navigated to.
type RecordLoader struct {
	store RecordFetcher

	mu         sync.Mutex
	generation uint64
	cancelPrev context.CancelFunc
}

func NewRecordLoader(store RecordFetcher) *RecordLoader {
	return &RecordLoader{store: store}
}

// Load fetches the record for a date key. The returned record is valid only
// when err is nil; ErrSuperseded means a newer navigation won the race.
func (loader *RecordLoader) Load(ctx context.Context, userID uint, dateKey string) (models.Record, bool, error) {
	loader.mu.Lock()
	loader.generation++
	myGeneration := loader.generation
	if loader.cancelPrev != nil {
		loader.cancelPrev()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	loader.cancelPrev = cancel
	loader.mu.Unlock()

	type result struct {
		record models.Record
		found  bool
		err    error
	}
	done := make(chan result, 1)
	go func() {
		record, found, err := loader.store.FindByUserAndDateKey(userID, dateKey)
		done <- result{record: record, found: found, err: err}
	}()

	var fetched result
	select {
	case <-fetchCtx.Done():
		if ctx.Err() != nil {
			return models.Record{}, false, ctx.Err()
		}
		return models.Record{}, false, ErrSuperseded
	case fetched = <-done:
	}

	loader.mu.Lock()
	current := loader.generation
	loader.mu.Unlock()
	if myGeneration != current {
		return models.Record{}, false, ErrSuperseded
	}

	if fetched.err != nil {
		return models.Record{}, false, fetched.err
	}
	return fetched.record, fetched.found, nil
}
