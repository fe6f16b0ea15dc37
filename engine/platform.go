package engine

import (
	"context"
	"time"
)

// Read-only lookup of per-channel exclusion lists, owned by the platform
// adapter's configuration layer.
type ChannelPolicy interface {
	IsExcluded(ctx context.Context, channelID, policy string) (bool, error)
}

// Message-level operations the engine needs from the platform: deleting a
// flagged message, and reading recent channel history for the protected-ping
// recency check.
type MessageOps interface {
	Delete(ctx context.Context, channelID, messageID string) error
	RecentHistory(ctx context.Context, channelID string, limit int, since time.Time) ([]*ChatMessage, error)
}

// The sole outward side-effecting call of the escalation pipeline. Applies a
// temporary communication restriction to the target; the implementation owns
// notifying the punished member. Failures are logged by the caller, never
// propagated.
type Punisher interface {
	ApplyTemporaryRestriction(ctx context.Context, actorID, targetID string, duration time.Duration, reason, detail string) error
}

// Interactive confirmation prompts for the protected-ping detector. The
// implementation posts a prompt addressed to the target member and reports
// that member's explicit accept/reject. AwaitResponse must honor context
// cancellation; the engine bounds the wait with a deadline.
type Prompter interface {
	PostConfirmation(ctx context.Context, channelID, targetID string) (promptID string, err error)
	AwaitResponse(ctx context.Context, promptID, targetID string) (accepted bool, err error)
	RemovePrompt(ctx context.Context, channelID, promptID string) error
}
