// Package console holds the query/table core behind the admin screens: one
// Session per table, tracking the current query state, the fetched page, the
// row selection, and the bookkeeping that keeps superseded responses and
// racing status transitions from corrupting what the operator sees.
package console

import (
	"context"
	"sync"

	"furnimarket/internal/domain/query"
	"furnimarket/pkg/errors"
)

// ErrSuperseded reports that a fetch resolved after a newer one was issued.
// Its result has been discarded; the caller should simply drop it.
var ErrSuperseded = errors.New("SUPERSEDED", "query result superseded by a newer request", 409, nil)

// Fetch executes one query state against the store and returns the page plus
// the total count.
type Fetch[T any] func(ctx context.Context, state query.State) (query.Result[T], error)

// Session is the in-memory table state. Rows are mutated only by Apply
// (refresh) and by TransitionRow/Coordinator reconciliation; nothing else
// writes them.
type Session[T any] struct {
	mu         sync.Mutex
	state      query.State
	rows       []T
	total      int64
	generation uint64

	selection    map[string]struct{}
	bulkInFlight bool

	idOf  func(T) string
	fetch Fetch[T]
	locks keyedLocks
}

func NewSession[T any](idOf func(T) string, fetch Fetch[T]) *Session[T] {
	return &Session[T]{
		state:     query.NewState(),
		selection: make(map[string]struct{}),
		idOf:      idOf,
		fetch:     fetch,
		locks:     keyedLocks{locks: make(map[string]*sync.Mutex)},
	}
}

func (s *Session[T]) State() query.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Apply replaces the query state wholesale, executes the fetch, and installs
// the result. If a newer Apply was issued while this one was in flight, the
// stale result is discarded and ErrSuperseded returned. On fetch failure the
// previous state is restored, so State() and Rows() keep describing the same
// page.
func (s *Session[T]) Apply(ctx context.Context, next query.State) error {
	s.mu.Lock()
	prev := s.state
	s.state = next
	s.generation++
	gen := s.generation
	fetch := s.fetch
	s.mu.Unlock()

	result, err := fetch(ctx, next)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return ErrSuperseded
	}
	if err != nil {
		s.state = prev
		return err
	}

	s.rows = result.Rows
	s.total = result.Total
	return nil
}

// Refresh re-executes the current query state.
func (s *Session[T]) Refresh(ctx context.Context) error {
	return s.Apply(ctx, s.State())
}

func (s *Session[T]) Rows() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([]T, len(s.rows))
	copy(rows, s.rows)
	return rows
}

func (s *Session[T]) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

func (s *Session[T]) TotalPages() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return query.Result[T]{Total: s.total}.TotalPages(s.state.PageSize)
}

// ToggleSelect flips a row in or out of the selection. Selection is frozen
// while a bulk dispatch is in flight.
func (s *Session[T]) ToggleSelect(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bulkInFlight {
		return errors.New("SELECTION_LOCKED", "selection is locked during a bulk update", 409, nil)
	}
	if _, ok := s.selection[id]; ok {
		delete(s.selection, id)
	} else {
		s.selection[id] = struct{}{}
	}
	return nil
}

func (s *Session[T]) ClearSelection() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bulkInFlight {
		return errors.New("SELECTION_LOCKED", "selection is locked during a bulk update", 409, nil)
	}
	s.selection = make(map[string]struct{})
	return nil
}

func (s *Session[T]) Selected() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.selection))
	for id := range s.selection {
		ids = append(ids, id)
	}
	return ids
}

// TransitionRow performs one optimistic status transition on the row with the
// given id: validate and apply locally, then persist, rolling the local copy
// back if the store rejects the write. Transitions on the same id are
// serialized; a second request waits for the first to resolve.
func (s *Session[T]) TransitionRow(ctx context.Context, id string, apply func(T) (T, error), persist func(context.Context) error) error {
	lock := s.locks.acquire(id)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	idx := -1
	for i, row := range s.rows {
		if s.idOf(row) == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return errors.NotFound("row", nil)
	}

	snapshot := s.rows[idx]
	updated, err := apply(snapshot)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	s.rows[idx] = updated
	s.mu.Unlock()

	if err := persist(ctx); err != nil {
		// Roll the optimistic copy back. The row is looked up again because a
		// refresh may have reordered the slice meanwhile.
		s.mu.Lock()
		for i, row := range s.rows {
			if s.idOf(row) == id {
				s.rows[i] = snapshot
				break
			}
		}
		s.mu.Unlock()
		return errors.PersistenceFailed("status change was not confirmed by the store", err)
	}

	return nil
}

// keyedLocks hands out one mutex per row id so same-row transitions queue up
// while different rows proceed independently.
type keyedLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedLocks) acquire(id string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()
	lock, ok := k.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		k.locks[id] = lock
	}
	return lock
}
