package rules

import (
	"regexp"

	"github.com/orbchat/reishi/engine"
)

var _ engine.MessageRuleFunc = LinkRule

// Ordered, first-match-wins link patterns, compiled once at startup. The
// precedence (CDN before invite before generic URL) is load-bearing: a CDN
// attachment link would otherwise match the generic URL pattern and punish.
var (
	cdnLinkPattern    = regexp.MustCompile(`(?i)https?://(?:cdn|media)\.orbchat\.com/\S+`)
	inviteLinkPattern = regexp.MustCompile(`(?i)(?:orbchat\.gg|orbchat\.com/invite)/[a-z0-9-]+`)
	// based on: https://stackoverflow.com/a/48769624, with no trailing period allowed
	urlPattern = regexp.MustCompile(`(?:(?:https?|ftp)://)?[\w/\-?=%.]+\.[\w/\-&?=%.]*[\w/\-&?=%]+`)
)

// LinkRule matches URLs and invite patterns. Performs no network access:
// links are never followed or resolved.
func LinkRule(c *engine.MessageContext) error {
	text := c.Message.Text

	// attachment re-posts are near-certainly not malicious, just clutter
	if cdnLinkPattern.MatchString(text) {
		c.AddSilentDelete(engine.KindLink)
		return nil
	}
	if m := inviteLinkPattern.FindString(text); m != "" {
		c.AddViolation(engine.KindLink, m)
		return nil
	}
	if c.ChannelExcluded(engine.PolicyLinksExcluded) {
		return nil
	}
	if m := urlPattern.FindString(text); m != "" {
		c.AddViolation(engine.KindLink, m)
	}
	return nil
}
