package engine

import (
	"context"
	"errors"
	"log/slog"

	"github.com/orbchat/reishi/setstore"
)

// The primary interface exposed to rules: one message under evaluation plus
// helpers for store lookups, collaborator calls, and recording verdicts.
type MessageContext struct {
	// Actual golang "context.Context", for timeouts on collaborator calls
	Ctx context.Context
	// Any errors encountered by helper methods get rolled up in this
	// nullable field; rules keep running on their defined default branches
	Err error
	// slog logger handle, with message-specific structured fields pre-populated
	Logger *slog.Logger

	Message *ChatMessage

	engine  *Engine
	effects *Effects
}

func NewMessageContext(ctx context.Context, eng *Engine, msg *ChatMessage) *MessageContext {
	return &MessageContext{
		Ctx: ctx,
		Logger: eng.Logger.With("msg", msg.ID, "author", msg.Author.ID,
			"channel", msg.ChannelID),
		Message: msg,
		engine:  eng,
		effects: &Effects{},
	}
}

func (c *MessageContext) rollupErr(err error) {
	if c.Err == nil {
		c.Err = err
	}
}

// checks the token against the forbidden-word blocklist
func (c *MessageContext) InBlocklist(tok string) bool {
	out, err := c.engine.Blocklist.InSet(c.Ctx, setstore.BlockedWordsSet, tok)
	if err != nil {
		c.rollupErr(err)
		return false
	}
	return out
}

func (c *MessageContext) HasFlag(memberID, flag string) bool {
	flags, err := c.engine.Flags.Get(c.Ctx, memberID)
	if err != nil {
		c.rollupErr(err)
		return false
	}
	for _, f := range flags {
		if f == flag {
			return true
		}
	}
	return false
}

func (c *MessageContext) ChannelExcluded(policy string) bool {
	out, err := c.engine.Channels.IsExcluded(c.Ctx, c.Message.ChannelID, policy)
	if err != nil {
		c.rollupErr(err)
		return false
	}
	return out
}

// Recent messages in this message's channel, bounded by the engine's
// configured recency window and limit. Returns nil on lookup failure.
func (c *MessageContext) RecentHistory() []*ChatMessage {
	cfg := c.engine.Config
	since := c.engine.now().Add(-cfg.RecencyWindow)
	out, err := c.engine.Messages.RecentHistory(c.Ctx, c.Message.ChannelID, cfg.RecencyLimit, since)
	if err != nil {
		c.rollupErr(err)
		return nil
	}
	return out
}

// Cached protected-ping decision for the target, or "" if none is live.
func (c *MessageContext) PingDecision(targetID string) string {
	out, err := c.engine.Cache.Get(c.Ctx, PingDecisionCache, targetID)
	if err != nil {
		c.rollupErr(err)
		return ""
	}
	return out
}

func (c *MessageContext) CachePingDecision(targetID, decision string) {
	if err := c.engine.Cache.Set(c.Ctx, PingDecisionCache, targetID, decision); err != nil {
		c.rollupErr(err)
	}
}

// Posts an interactive confirmation prompt for the target member and waits
// for an explicit answer, up to the configured timeout.
//
// Returns (accepted, answered). Timeout, prompt failure, or any other lack of
// an explicit answer comes back as (true, false): the caller fails toward
// punishment but must not cache the decision. The prompt is removed on every
// exit path.
func (c *MessageContext) ConfirmPing(targetID string) (bool, bool) {
	eng := c.engine
	promptID, err := eng.Prompter.PostConfirmation(c.Ctx, c.Message.ChannelID, targetID)
	if err != nil {
		c.Logger.Error("posting ping confirmation prompt failed", "err", err, "target", targetID)
		return true, false
	}
	defer func() {
		if err := eng.Prompter.RemovePrompt(c.Ctx, c.Message.ChannelID, promptID); err != nil {
			c.Logger.Warn("removing ping confirmation prompt failed", "err", err, "target", targetID)
		}
	}()

	waitCtx, cancel := context.WithTimeout(c.Ctx, eng.Config.ConfirmTimeout)
	defer cancel()
	accepted, err := eng.Prompter.AwaitResponse(waitCtx, promptID, targetID)
	if err != nil {
		// timeout is a defined branch, not an error condition
		if !errors.Is(err, context.DeadlineExceeded) {
			c.Logger.Error("awaiting ping confirmation failed", "err", err, "target", targetID)
		}
		return true, false
	}
	return accepted, true
}

// record verdicts ======

func (c *MessageContext) AddViolation(kind Kind, detail string) {
	c.effects.AddViolation(Verdict{Kind: kind, Detail: detail})
}

func (c *MessageContext) AddViolationDelete(kind Kind, detail string, forceDelete bool) {
	c.effects.AddViolation(Verdict{Kind: kind, Detail: detail, ForceDelete: &forceDelete})
}

// Records a verdict that deletes the message without punishing the author.
func (c *MessageContext) AddSilentDelete(kind Kind) {
	c.effects.AddViolation(Verdict{Kind: kind, Detail: DetailDeleteOnly})
}
