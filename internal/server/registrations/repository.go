// Package registrations stores the durable identity → commitment mapping.
package registrations

import "context"

// Repository is the registration store. Every method is atomic with respect
// to the others; callers never observe a partially written record.
type Repository interface {
	// Put inserts or replaces the registration and reports whether an
	// existing one was replaced.
	Put(ctx context.Context, reg *Registration) (replaced bool, err error)
	// Create inserts the registration only if the identity is free and
	// returns common.ErrorAlreadyExists otherwise.
	Create(ctx context.Context, reg *Registration) error
	// Get returns common.ErrorNotFound for an unknown identity.
	Get(ctx context.Context, identity string) (*Registration, error)
}
