package console

import (
	"context"
	"fmt"

	"furnimarket/pkg/errors"
)

// Coordinator applies one status transition to every selected row of a
// session in a single store round trip. It is confirmation-agnostic: it
// exposes the confirmation summary and trusts the UI to have asked.
type Coordinator[T any] struct {
	session *Session[T]
	// validate checks that target is a legal transition for the row, before
	// anything is dispatched.
	validate func(row T, target string) error
	// persist writes the whole id set atomically.
	persist func(ctx context.Context, ids []string, target string) error
}

func NewCoordinator[T any](session *Session[T], validate func(T, string) error, persist func(context.Context, []string, string) error) *Coordinator[T] {
	return &Coordinator[T]{
		session:  session,
		validate: validate,
		persist:  persist,
	}
}

// ConfirmationRequired is always true: bulk transitions never dispatch
// without an explicit operator confirmation.
func (c *Coordinator[T]) ConfirmationRequired() bool {
	return true
}

// Summary is the human-readable confirmation prompt for the current
// selection.
func (c *Coordinator[T]) Summary(target string) (string, error) {
	ids := c.session.Selected()
	if len(ids) == 0 {
		return "", errors.Validation("no rows selected", nil)
	}
	return fmt.Sprintf("Update status to %s for %d item(s)?", target, len(ids)), nil
}

// Apply validates every selected row, dispatches one multi-row update, then
// clears the selection and re-fetches the current page. Rows may have moved
// out of the active filter, so local patching would show ghosts.
//
// On store failure no row is considered updated and the selection is kept so
// the operator can retry.
func (c *Coordinator[T]) Apply(ctx context.Context, target string) error {
	ids, rows, err := c.begin()
	if err != nil {
		return err
	}

	for _, row := range rows {
		if err := c.validate(row, target); err != nil {
			c.end(false)
			return err
		}
	}

	if err := c.persist(ctx, ids, target); err != nil {
		c.end(false)
		return errors.PersistenceFailed(fmt.Sprintf("bulk update of %d item(s) failed", len(ids)), err)
	}

	c.end(true)
	return c.session.Refresh(ctx)
}

// begin snapshots the selection and freezes it for the duration of the
// dispatch.
func (c *Coordinator[T]) begin() ([]string, []T, error) {
	s := c.session
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.bulkInFlight {
		return nil, nil, errors.New("BULK_IN_FLIGHT", "a bulk update is already in progress", 409, nil)
	}
	if len(s.selection) == 0 {
		return nil, nil, errors.Validation("no rows selected", nil)
	}

	ids := make([]string, 0, len(s.selection))
	rows := make([]T, 0, len(s.selection))
	for _, row := range s.rows {
		if _, ok := s.selection[s.idOf(row)]; ok {
			ids = append(ids, s.idOf(row))
			rows = append(rows, row)
		}
	}
	if len(ids) != len(s.selection) {
		return nil, nil, errors.Validation("selection refers to rows outside the current page", nil)
	}

	s.bulkInFlight = true
	return ids, rows, nil
}

func (c *Coordinator[T]) end(clearSelection bool) {
	s := c.session
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bulkInFlight = false
	if clearSelection {
		s.selection = make(map[string]struct{})
	}
}
