package console

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"furnimarket/internal/domain/entity"
	"furnimarket/internal/domain/status"
	"furnimarket/pkg/errors"
)

func validateProductTarget(p *entity.Product, target string) error {
	_, err := status.ForProduct().Transition(string(p.Status), target)
	return err
}

func selectAll(t *testing.T, s *Session[*entity.Product], ids ...string) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, s.ToggleSelect(id))
	}
}

func TestBulkApplyUpdatesClearsSelectionAndRefetches(t *testing.T) {
	seed := seedProducts()
	s := newProductSession(seed)
	require.NoError(t, s.Refresh(context.Background()))

	var gotIDs []string
	var gotTarget string
	persist := func(ctx context.Context, ids []string, target string) error {
		gotIDs = ids
		gotTarget = target
		// Mimic the store taking effect so the re-fetch observes it.
		for _, p := range seed {
			for _, id := range ids {
				if p.ID == id {
					p.Status = entity.ProductStatus(target)
				}
			}
		}
		return nil
	}

	c := NewCoordinator(s, validateProductTarget, persist)
	assert.True(t, c.ConfirmationRequired())

	selectAll(t, s, "p1", "p2")
	summary, err := c.Summary("blocked")
	require.NoError(t, err)
	assert.Equal(t, "Update status to blocked for 2 item(s)?", summary)

	require.NoError(t, c.Apply(context.Background(), "blocked"))

	assert.ElementsMatch(t, []string{"p1", "p2"}, gotIDs)
	assert.Equal(t, "blocked", gotTarget)
	assert.Empty(t, s.Selected(), "selection must be cleared after a successful bulk update")

	blocked := 0
	for _, row := range s.Rows() {
		if row.Status == entity.ProductBlocked {
			blocked++
		}
	}
	assert.Equal(t, 4, blocked, "re-fetch must observe the bulk change (p3 and p5 were already blocked)")
}

func TestBulkApplyFailureKeepsSelectionAndRows(t *testing.T) {
	seed := seedProducts()
	s := newProductSession(seed)
	require.NoError(t, s.Refresh(context.Background()))

	persist := func(ctx context.Context, ids []string, target string) error {
		return fmt.Errorf("batch rejected")
	}
	c := NewCoordinator(s, validateProductTarget, persist)

	selectAll(t, s, "p1", "p2", "p4")
	err := c.Apply(context.Background(), "blocked")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "PERSISTENCE_FAILED"))

	assert.ElementsMatch(t, []string{"p1", "p2", "p4"}, s.Selected(), "selection preserved for retry")
	for _, row := range s.Rows() {
		if row.ID == "p1" || row.ID == "p2" || row.ID == "p4" {
			assert.Equal(t, entity.ProductActive, row.Status, "no row may be considered updated")
		}
	}
}

func TestBulkApplyRejectsIllegalRowBeforeDispatch(t *testing.T) {
	s := newProductSession(seedProducts())
	require.NoError(t, s.Refresh(context.Background()))

	dispatched := false
	persist := func(ctx context.Context, ids []string, target string) error {
		dispatched = true
		return nil
	}
	c := NewCoordinator(s, validateProductTarget, persist)

	selectAll(t, s, "p1", "p9") // p9 is sold, sold -> blocked is illegal
	err := c.Apply(context.Background(), "blocked")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "INVALID_TRANSITION"))
	assert.False(t, dispatched, "nothing dispatches when any selected row fails validation")
	assert.ElementsMatch(t, []string{"p1", "p9"}, s.Selected())
}

func TestBulkApplyRequiresSelection(t *testing.T) {
	s := newProductSession(seedProducts())
	require.NoError(t, s.Refresh(context.Background()))

	c := NewCoordinator(s, validateProductTarget, func(context.Context, []string, string) error { return nil })

	_, err := c.Summary("blocked")
	assert.Error(t, err)

	err = c.Apply(context.Background(), "blocked")
	assert.Error(t, err)
}

func TestSelectionLockedDuringBulkDispatch(t *testing.T) {
	s := newProductSession(seedProducts())
	require.NoError(t, s.Refresh(context.Background()))

	dispatching := make(chan struct{})
	release := make(chan struct{})
	persist := func(ctx context.Context, ids []string, target string) error {
		close(dispatching)
		<-release
		return nil
	}
	c := NewCoordinator(s, validateProductTarget, persist)

	selectAll(t, s, "p1")
	done := make(chan error, 1)
	go func() { done <- c.Apply(context.Background(), "blocked") }()

	<-dispatching
	assert.Error(t, s.ToggleSelect("p2"), "selection must not be mutable while a bulk dispatch is in flight")
	close(release)
	require.NoError(t, <-done)
}
