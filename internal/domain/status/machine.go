// Package status is the single gatekeeper for entity status changes. Every
// status write in the system routes through a Machine; nothing overwrites a
// status field directly.
package status

import (
	"furnimarket/internal/domain/entity"
	"furnimarket/pkg/errors"
)

// Machine holds the legal-successor sets for one entity kind.
type Machine struct {
	name        string
	transitions map[string][]string
}

// Can reports whether to is reachable from from. A state can always "reach"
// itself: requesting the current state is an idempotent no-op.
func (m *Machine) Can(from, to string) bool {
	if from == to {
		return true
	}
	for _, next := range m.transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition validates the requested change and returns the resulting state.
// The state is unchanged on error.
func (m *Machine) Transition(from, to string) (string, error) {
	if !m.Can(from, to) {
		return from, errors.InvalidTransition(from, to, m.Successors(from))
	}
	return to, nil
}

// Successors returns the states legally reachable from from, excluding from
// itself.
func (m *Machine) Successors(from string) []string {
	return m.transitions[from]
}

var productMachine = &Machine{
	name: "product",
	transitions: map[string][]string{
		string(entity.ProductActive):  {string(entity.ProductPending), string(entity.ProductSold), string(entity.ProductBlocked)},
		string(entity.ProductPending): {string(entity.ProductActive), string(entity.ProductSold)},
		string(entity.ProductBlocked): {string(entity.ProductActive)},
		string(entity.ProductSold):    {},
	},
}

// Orders only move forward, or sideways to cancelled. Delivered and cancelled
// are terminal.
var orderMachine = &Machine{
	name: "order",
	transitions: map[string][]string{
		string(entity.OrderPending):   {string(entity.OrderPaid), string(entity.OrderCancelled)},
		string(entity.OrderPaid):      {string(entity.OrderShipped), string(entity.OrderCancelled)},
		string(entity.OrderShipped):   {string(entity.OrderDelivered), string(entity.OrderCancelled)},
		string(entity.OrderDelivered): {},
		string(entity.OrderCancelled): {},
	},
}

var userMachine = &Machine{
	name: "user",
	transitions: map[string][]string{
		string(entity.UserActive):    {string(entity.UserSuspended)},
		string(entity.UserSuspended): {string(entity.UserActive)},
	},
}

func ForProduct() *Machine { return productMachine }
func ForOrder() *Machine   { return orderMachine }
func ForUser() *Machine    { return userMachine }

// TransitionProduct applies the machine to a product in place.
func TransitionProduct(p *entity.Product, to entity.ProductStatus) error {
	next, err := productMachine.Transition(string(p.Status), string(to))
	if err != nil {
		return err
	}
	p.Status = entity.ProductStatus(next)
	return nil
}

// TransitionOrder applies the machine to an order in place.
func TransitionOrder(o *entity.Order, to entity.OrderStatus) error {
	next, err := orderMachine.Transition(string(o.Status), string(to))
	if err != nil {
		return err
	}
	o.Status = entity.OrderStatus(next)
	return nil
}

// TransitionUser applies the machine to a user in place.
func TransitionUser(u *entity.User, to entity.UserStatus) error {
	next, err := userMachine.Transition(string(u.Status), string(to))
	if err != nil {
		return err
	}
	u.Status = entity.UserStatus(next)
	return nil
}
