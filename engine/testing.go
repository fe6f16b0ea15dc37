package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/orbchat/reishi/cachestore"
	"github.com/orbchat/reishi/claimstore"
	"github.com/orbchat/reishi/countstore"
	"github.com/orbchat/reishi/flagstore"
	"github.com/orbchat/reishi/setstore"
)

// In-memory ChannelPolicy for tests: policy name to excluded channel ids.
type MockChannelPolicy struct {
	Excluded map[string][]string
}

func (p *MockChannelPolicy) IsExcluded(ctx context.Context, channelID, policy string) (bool, error) {
	for _, id := range p.Excluded[policy] {
		if id == channelID {
			return true, nil
		}
	}
	return false, nil
}

// In-memory MessageOps for tests. History is served most-recent-first, the
// way platform history endpoints return it.
type MockMessageOps struct {
	mu      sync.Mutex
	History []*ChatMessage
	Deleted []string
}

func (m *MockMessageOps) Delete(ctx context.Context, channelID, messageID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Deleted = append(m.Deleted, messageID)
	return nil
}

func (m *MockMessageOps) RecentHistory(ctx context.Context, channelID string, limit int, since time.Time) ([]*ChatMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*ChatMessage
	for i := len(m.History) - 1; i >= 0 && len(out) < limit; i-- {
		msg := m.History[i]
		if msg.ChannelID == channelID && msg.CreatedAt.After(since) {
			out = append(out, msg)
		}
	}
	return out, nil
}

func (m *MockMessageOps) DeletedIDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Deleted))
	copy(out, m.Deleted)
	return out
}

type AppliedRestriction struct {
	ActorID  string
	TargetID string
	Duration time.Duration
	Reason   string
	Detail   string
}

type MockPunisher struct {
	mu      sync.Mutex
	Applied []AppliedRestriction
	Err     error
}

func (p *MockPunisher) ApplyTemporaryRestriction(ctx context.Context, actorID, targetID string, duration time.Duration, reason, detail string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.Applied = append(p.Applied, AppliedRestriction{
		ActorID:  actorID,
		TargetID: targetID,
		Duration: duration,
		Reason:   reason,
		Detail:   detail,
	})
	return nil
}

func (p *MockPunisher) Restrictions() []AppliedRestriction {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]AppliedRestriction, len(p.Applied))
	copy(out, p.Applied)
	return out
}

// Scripted Prompter for tests. Answer nil means the target never responds
// (the await blocks until the engine's timeout fires); otherwise the answer
// is returned after Delay.
type MockPrompter struct {
	mu      sync.Mutex
	Answer  *bool
	Delay   time.Duration
	Posted  []string
	Removed []string
}

func (p *MockPrompter) PostConfirmation(ctx context.Context, channelID, targetID string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	promptID := fmt.Sprintf("prompt-%s-%d", targetID, len(p.Posted))
	p.Posted = append(p.Posted, promptID)
	return promptID, nil
}

func (p *MockPrompter) AwaitResponse(ctx context.Context, promptID, targetID string) (bool, error) {
	p.mu.Lock()
	answer := p.Answer
	delay := p.Delay
	p.mu.Unlock()
	if answer == nil {
		<-ctx.Done()
		return false, ctx.Err()
	}
	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
	return *answer, nil
}

func (p *MockPrompter) RemovePrompt(ctx context.Context, channelID, promptID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Removed = append(p.Removed, promptID)
	return nil
}

func (p *MockPrompter) PostedPrompts() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.Posted))
	copy(out, p.Posted)
	return out
}

// Engine wired entirely to in-memory stores and mock collaborators, with a
// small blocklist preloaded. No rules are configured; tests assign the rule
// set they exercise.
func EngineTestFixture() Engine {
	blocklist := setstore.NewMemSetStore()
	blocklist.Sets[setstore.BlockedWordsSet] = map[string]bool{
		"mofo":   true,
		"pussy":  true,
		"faggot": true,
		"dick":   true,
		"nazi":   true,
	}
	cfg := DefaultConfig()
	cfg.ConfirmTimeout = 100 * time.Millisecond
	return Engine{
		Logger:    slog.Default(),
		Config:    cfg,
		Blocklist: blocklist,
		Cache:     cachestore.NewMemCacheStore(1024, cachestore.DefaultTTL),
		Claims:    claimstore.NewMemClaimStore(10 * time.Minute),
		Counters:  countstore.NewMemCountStore(),
		Flags:     flagstore.NewMemFlagStore(),
		Channels:  &MockChannelPolicy{Excluded: make(map[string][]string)},
		Messages:  &MockMessageOps{},
		Punisher:  &MockPunisher{},
		Prompter:  &MockPrompter{},
	}
}

// Helper to access the private effects from a context. Intended for use in
// test code, not from rules.
func ExtractEffects(c *MessageContext) []Verdict {
	return c.effects.Violations()
}
