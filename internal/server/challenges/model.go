package challenges

import (
	"time"

	"github.com/cronokirby/saferith"
)

// Session is one in-flight authentication attempt: the prover's ephemeral
// commitment (R1, R2) and the challenge issued for it. Sessions are keyed by
// ID only, so one identity may have any number of concurrent attempts.
type Session struct {
	ID        string
	Identity  string
	R1        *saferith.Nat
	R2        *saferith.Nat
	Challenge *saferith.Nat
	CreatedAt time.Time
}
