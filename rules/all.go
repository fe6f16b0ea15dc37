package rules

import (
	"github.com/orbchat/reishi/engine"
)

// DefaultRules returns the full detector set in its production configuration.
func DefaultRules() engine.RuleSet {
	return engine.RuleSet{
		MessageRules: []engine.MessageRuleFunc{
			MassMentionRule,
			FillerGibberishRule,
			BlockedWordRule,
			FloodRule,
			LinkRule,
			ProtectedPingRule,
		},
	}
}
