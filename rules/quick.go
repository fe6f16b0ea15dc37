package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/orbchat/reishi/engine"
	"github.com/orbchat/reishi/keyword"
)

var _ engine.MessageRuleFunc = MassMentionRule
var _ engine.MessageRuleFunc = FillerGibberishRule

var massMentionThreshold = 5

// MassMentionRule flags messages explicitly mentioning an unreasonable number
// of members in one go.
func MassMentionRule(c *engine.MessageContext) error {
	if n := len(c.Message.Mentions); n >= massMentionThreshold {
		c.AddViolation(engine.KindMassMention, fmt.Sprintf("%d members mentioned", n))
	}
	return nil
}

var fillerPattern = regexp.MustCompile(`^[hm]+$`)

// minimum canonical length before filler is worth suppressing; "hm" is a
// legitimate reply
var fillerMinLen = 4

// FillerGibberishRule silently deletes messages whose content is nothing but
// "hmm"/"hhh" style filler. No punishment, just clutter removal.
func FillerGibberishRule(c *engine.MessageContext) error {
	joined := strings.Join(keyword.Tokenize(c.Message.Text), "")
	if len(joined) >= fillerMinLen && fillerPattern.MatchString(joined) {
		c.AddSilentDelete(engine.KindRepeatedText)
	}
	return nil
}
