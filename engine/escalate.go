package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/orbchat/reishi/countstore"
)

// Per-kind punishment resolution. The mass-mention duration is effectively
// permanent; moderators lift it manually after review.
type punishment struct {
	Duration time.Duration
	Reason   string
}

var punishmentTable = map[Kind]punishment{
	KindBlacklistedWord: {Duration: 30 * time.Minute, Reason: "use of a forbidden word"},
	KindRepeatedText:    {Duration: 20 * time.Minute, Reason: "text flooding"},
	KindMassMention:     {Duration: 2 * 8760 * time.Hour, Reason: "mass mention"},
	KindLink:            {Duration: 10 * time.Minute, Reason: "posting a forbidden link"},
	KindProtectedPing:   {Duration: 30 * time.Minute, Reason: "pinging a protected member"},
}

// Escalates one violation to a concrete moderation action: claims the message
// in the dedup lock, resolves the deletion policy, and invokes the external
// punishment executor.
//
// The dedup claim guarantees at most one punishment per message id while the
// claim is live, no matter how many detectors flagged it or how often the
// message is re-evaluated on edits. Executor failure is logged, never
// propagated; the deletion and the claim are not rolled back.
func (eng *Engine) PunishMessage(ctx context.Context, msg *ChatMessage, v Verdict) {
	logger := eng.Logger.With("msg", msg.ID, "author", msg.Author.ID, "kind", string(v.Kind))

	claimed, err := eng.Claims.Claim(ctx, "punish", msg.ID)
	if err != nil {
		// without the claim store we cannot rule out a duplicate punishment
		logger.Error("dedup claim failed, skipping punishment", "err", err)
		return
	}
	if !claimed {
		punishDedupeCount.Inc()
		logger.Debug("message already claimed for punishment")
		return
	}

	if v.Detail == DetailDeleteOnly {
		eng.deleteMessage(ctx, logger, msg)
		return
	}

	del := true
	if v.ForceDelete != nil {
		del = *v.ForceDelete
	} else if v.Kind == KindRepeatedText && len(msg.Mentions) > 0 {
		// flood messages that mention someone stay visible for moderation context
		del = false
	}
	if del {
		eng.deleteMessage(ctx, logger, msg)
	}

	p, ok := punishmentTable[v.Kind]
	if !ok {
		logger.Warn("no punishment configured for violation kind")
		return
	}

	quota, err := eng.Counters.GetCount(ctx, "punish-quota", "global", countstore.PeriodDay)
	if err != nil {
		logger.Error("punishment quota read failed", "err", err)
	} else if quota >= eng.Config.QuotaPunishmentDay {
		logger.Warn("CIRCUIT BREAKER: daily punishment quota reached", "quota", quota)
		return
	}
	if err := eng.Counters.Increment(ctx, "punish-quota", "global"); err != nil {
		logger.Error("punishment quota increment failed", "err", err)
	}
	if err := eng.Counters.Increment(ctx, "punishments", string(v.Kind)); err != nil {
		logger.Error("punishment audit increment failed", "err", err)
	}

	err = eng.Punisher.ApplyTemporaryRestriction(ctx, eng.Config.ActorID, msg.Author.ID, p.Duration, p.Reason, v.Detail)
	if err != nil {
		punishErrorCount.Inc()
		logger.Error("punishment executor failed", "err", err)
		return
	}
	punishCount.WithLabelValues(string(v.Kind)).Inc()
	logger.Info("punishment applied", "duration", p.Duration, "reason", p.Reason, "detail", v.Detail)
}

func (eng *Engine) deleteMessage(ctx context.Context, logger *slog.Logger, msg *ChatMessage) {
	if err := eng.Messages.Delete(ctx, msg.ChannelID, msg.ID); err != nil {
		logger.Error("message deletion failed", "err", err)
		return
	}
	deleteCount.Inc()
}
