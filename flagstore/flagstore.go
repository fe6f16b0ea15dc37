// Per-member moderation flags (exemptions and preferences), such as
// "protected", "friend", or "bypass-moderation". The engine only reads flags;
// writes happen through out-of-band admin tooling.
//
// Includes an interface and implementations using redis and in-process memory.
package flagstore

import (
	"context"
)

type FlagStore interface {
	Get(ctx context.Context, key string) ([]string, error)
	Add(ctx context.Context, key string, flags []string) error
	Remove(ctx context.Context, key string, flags []string) error
}
