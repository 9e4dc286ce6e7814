package registrations

import (
	"time"

	"github.com/cronokirby/saferith"
)

// Registration binds an identity to the public commitment (y1, y2) of its
// password-derived secret.
type Registration struct {
	Identity     string
	Y1           *saferith.Nat
	Y2           *saferith.Nat
	RegisteredAt time.Time
}
