package rules

import (
	"strings"

	"github.com/orbchat/reishi/engine"
	"github.com/orbchat/reishi/keyword"
)

var _ engine.MessageRuleFunc = BlockedWordRule

// Only tokens this short can plausibly be pieces of a deliberately split word,
// and the split pieces of any realistic word fit in a window of five.
var (
	fragMaxTokenLen = 4
	fragWindowSize  = 5
)

// BlockedWordRule matches canonical tokens against the forbidden-word
// blocklist, defeating case, leetspeak, and letter-splitting evasions in a
// single left-to-right pass.
func BlockedWordRule(c *engine.MessageContext) error {
	if word := matchBlockedWord(c, keyword.Tokenize(c.Message.Text)); word != "" {
		c.AddViolation(engine.KindBlacklistedWord, word)
	}
	return nil
}

// Returns the first blocklist word found in token order, or "".
//
// The back-check buffer holds up to the last five short (leetspeak-reversed)
// tokens; every suffix of the buffer, longest first, is concatenated with the
// current token and matched, which catches words split across tokens like
// "d i ck".
func matchBlockedWord(c *engine.MessageContext, tokens []string) string {
	var buf []string
	for _, tok := range tokens {
		if c.InBlocklist(tok) {
			return tok
		}
		rev := keyword.ReverseLeetspeak(tok)
		if c.InBlocklist(rev) {
			return rev
		}
		for i := 0; i < len(buf); i++ {
			joined := strings.Join(buf[i:], "") + rev
			if c.InBlocklist(joined) {
				return joined
			}
		}
		if len(rev) <= fragMaxTokenLen {
			buf = append(buf, rev)
			if len(buf) > fragWindowSize {
				buf = buf[1:]
			}
		}
	}
	return ""
}
