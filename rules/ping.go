package rules

import (
	"strings"

	"github.com/orbchat/reishi/engine"
)

var _ engine.MessageRuleFunc = ProtectedPingRule

// ProtectedPingRule decides whether pinging an exemption-flagged member
// should be punished. The states are sequential early-exits, nothing is
// persisted between invocations beyond the decision cache:
//
//  1. friend authors are exempt
//  2. no protected targets mentioned: clean
//  3. two or more distinct protected targets: immediate violation
//  4. target not active in recent channel history: immediate violation,
//     deletion per the target's own preference
//  5. live cached decision for the target: reuse it, never re-prompt
//  6. otherwise ask the target, waiting up to the configured timeout;
//     no answer fails toward punishment without caching
func ProtectedPingRule(c *engine.MessageContext) error {
	msg := c.Message
	if c.HasFlag(msg.Author.ID, engine.FlagFriend) {
		return nil
	}

	targets := distinctProtectedTargets(msg.Mentions)
	if len(targets) == 0 {
		return nil
	}
	if len(targets) >= 2 {
		ids := make([]string, len(targets))
		for i, t := range targets {
			ids[i] = t.ID
		}
		c.AddViolation(engine.KindProtectedPing, "mass protected ping: "+strings.Join(ids, ", "))
		return nil
	}
	target := targets[0]

	if !targetRecentlyActive(c, target.ID) {
		c.AddViolationDelete(engine.KindProtectedPing, "cold ping: "+target.ID,
			target.HasFlag(engine.FlagPingDelete))
		return nil
	}

	switch c.PingDecision(target.ID) {
	case engine.DecisionPunish:
		c.AddViolation(engine.KindProtectedPing, "unwanted ping: "+target.ID)
		return nil
	case engine.DecisionSkip:
		return nil
	}

	accepted, answered := c.ConfirmPing(target.ID)
	if answered {
		if accepted {
			c.CachePingDecision(target.ID, engine.DecisionPunish)
		} else {
			c.CachePingDecision(target.ID, engine.DecisionSkip)
			return nil
		}
	}
	c.AddViolation(engine.KindProtectedPing, "unwanted ping: "+target.ID)
	return nil
}

func distinctProtectedTargets(mentions []engine.Mention) []engine.Mention {
	var out []engine.Mention
	seen := make(map[string]bool)
	for _, m := range mentions {
		if m.HasFlag(engine.FlagProtected) && !seen[m.ID] {
			out = append(out, m)
			seen[m.ID] = true
		}
	}
	return out
}

// a ping is "warm" only if the target posted in the channel recently
func targetRecentlyActive(c *engine.MessageContext, targetID string) bool {
	for _, m := range c.RecentHistory() {
		if m.Author.ID == targetID {
			return true
		}
	}
	return false
}
