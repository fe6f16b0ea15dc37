package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/orbchat/reishi/cachestore"
	"github.com/orbchat/reishi/claimstore"
	"github.com/orbchat/reishi/countstore"
	"github.com/orbchat/reishi/flagstore"
	"github.com/orbchat/reishi/setstore"
)

// Behavior knobs for the engine. All durations and limits have defaults from
// DefaultConfig; deployments tune them before constructing the engine.
type Config struct {
	// Identity punishments are attributed to when calling the executor.
	ActorID string
	// When set, members with bypass-moderation are evaluated like everyone
	// else. Diagnostic use only.
	TestMode bool
	// How long the protected-ping detector waits for an explicit answer.
	ConfirmTimeout time.Duration
	// Window and message limit for the protected-ping recency check.
	RecencyWindow time.Duration
	RecencyLimit  int
	// Daily cap on punishments across all kinds (circuit breaker).
	QuotaPunishmentDay int
}

func DefaultConfig() Config {
	return Config{
		ActorID:            "reishi",
		ConfirmTimeout:     30 * time.Second,
		RecencyWindow:      10 * time.Minute,
		RecencyLimit:       50,
		QuotaPunishmentDay: 200,
	}
}

// Runtime for evaluating messages, managing moderation state, and escalating
// violations to punishment actions.
//
// All fields must be non-nil; use the constructor-style literal in the
// platform adapter and the fixture in tests.
type Engine struct {
	Logger    *slog.Logger
	Config    Config
	Rules     RuleSet
	Blocklist setstore.SetStore
	Cache     cachestore.CacheStore
	Claims    claimstore.ClaimStore
	Counters  countstore.CountStore
	Flags     flagstore.FlagStore
	Channels  ChannelPolicy
	Messages  MessageOps
	Punisher  Punisher
	Prompter  Prompter

	// Now is the clock used for recency calculations. Nil means time.Now;
	// tests override it to pin the recency window.
	Now func() time.Time
}

func (eng *Engine) now() time.Time {
	if eng.Now != nil {
		return eng.Now()
	}
	return time.Now()
}

// The single entry point: evaluates one message against every detector and
// escalates any violations. Called from both message-created and
// message-updated hooks; edited messages are re-evaluated from scratch.
//
// Returns true only if every detector came back clean. Callers treat false as
// "already handled" — the message may already be deleted and the author
// punished — and must not re-process side effects themselves.
func (eng *Engine) CheckMessage(ctx context.Context, msg *ChatMessage) (clean bool) {
	// similar to an HTTP server, we want to recover any panics from the
	// evaluation machinery itself; detectors fail open
	defer func() {
		if r := recover(); r != nil {
			eng.Logger.Error("message evaluation exception", "err", r, "msg", msg.ID)
			clean = true
		}
	}()
	start := time.Now()
	defer func() {
		checkDuration.Observe(time.Since(start).Seconds())
	}()

	if reason, exempt := eng.fastExit(ctx, msg); exempt {
		fastExitCount.WithLabelValues(reason).Inc()
		eng.Logger.Debug("message exempt from evaluation", "msg", msg.ID, "reason", reason)
		return true
	}

	c := NewMessageContext(ctx, eng, msg)
	eng.Rules.CallMessageRules(c)
	if c.Err != nil {
		c.Logger.Warn("helper errors during rule execution", "err", c.Err)
	}

	violations := c.effects.Violations()
	eng.canonicalLogLine(c, violations)
	for _, v := range violations {
		violationCount.WithLabelValues(string(v.Kind)).Inc()
		eng.PunishMessage(ctx, msg, v)
	}

	clean = len(violations) == 0
	if clean {
		checkCount.WithLabelValues("true").Inc()
	} else {
		checkCount.WithLabelValues("false").Inc()
	}
	return clean
}

// Exemption short-circuits, evaluated before any detector runs.
func (eng *Engine) fastExit(ctx context.Context, msg *ChatMessage) (string, bool) {
	if msg.Author.Bot {
		return "bot-author", true
	}
	if eng.channelExcluded(ctx, msg.ChannelID, PolicyAbsoluteExempt) {
		return "exempt-channel", true
	}
	if eng.channelExcluded(ctx, msg.ChannelID, PolicyTicket) {
		return "ticket-channel", true
	}
	if !eng.Config.TestMode && eng.memberHasFlag(ctx, msg.Author.ID, FlagBypassModeration) {
		return "bypass-author", true
	}
	return "", false
}

// policy lookup failures count as not-excluded: the message still gets checked
func (eng *Engine) channelExcluded(ctx context.Context, channelID, policy string) bool {
	out, err := eng.Channels.IsExcluded(ctx, channelID, policy)
	if err != nil {
		eng.Logger.Error("channel policy lookup failed", "err", err, "channel", channelID, "policy", policy)
		return false
	}
	return out
}

func (eng *Engine) memberHasFlag(ctx context.Context, memberID, flag string) bool {
	flags, err := eng.Flags.Get(ctx, memberID)
	if err != nil {
		eng.Logger.Error("member flag lookup failed", "err", err, "member", memberID)
		return false
	}
	for _, f := range flags {
		if f == flag {
			return true
		}
	}
	return false
}

func (eng *Engine) canonicalLogLine(c *MessageContext, violations []Verdict) {
	kinds := make([]string, len(violations))
	for i, v := range violations {
		kinds[i] = string(v.Kind)
	}
	c.Logger.Info("message evaluated",
		"clean", len(violations) == 0,
		"violations", kinds,
	)
}
