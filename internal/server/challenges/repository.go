// Package challenges stores in-flight authentication attempts until they are
// consumed by a verification.
package challenges

import (
	"context"
	"time"
)

type Repository interface {
	// Put stores a new session and returns common.ErrDuplicateChallengeID
	// if the id is already taken.
	Put(ctx context.Context, s *Session) error
	// TakeAndRemove atomically reads and deletes a session. Of any number of
	// concurrent calls with the same id at most one succeeds; the others get
	// common.ErrorNotFound.
	TakeAndRemove(ctx context.Context, id string) (*Session, error)
	// PurgeOlderThan deletes sessions created before t and returns how many
	// were removed.
	PurgeOlderThan(ctx context.Context, t time.Time) (int, error)
	// Len returns the number of pending sessions.
	Len(ctx context.Context) (int, error)
}
