// Time-boxed claim tracking: the first caller to claim a key wins, and the
// claim holds until its TTL passes. The escalation pipeline claims message
// ids here before punishing, so a message re-evaluated concurrently (or again
// after an edit) can trigger at most one punishment while the claim is live.
//
// Includes an interface and implementations using redis and in-process memory.
package claimstore

import (
	"context"
)

type ClaimStore interface {
	// Claim attempts to take name/key for the store's TTL. Returns true if
	// this call took the claim, false if a live claim already exists.
	Claim(ctx context.Context, name, key string) (bool, error)
}
