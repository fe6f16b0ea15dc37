package rules

import (
	"fmt"
	"strings"

	"github.com/orbchat/reishi/engine"
	"github.com/orbchat/reishi/keyword"
)

var _ engine.MessageRuleFunc = FloodRule

var (
	newlineVolumeThreshold = 10
	newlineBurstThreshold  = 4
	letterRunThreshold     = 7
	// a word only counts toward the repetition tally at this length or above
	repeatedWordMinLen = 3
	repeatedWordRatio  = 0.75
	// ratio alone would flag short messages like "hi hi"; the tally must
	// also be deep enough for the ratio to mean anything
	repeatedWordMinTally = 5
	// long messages need an absolute ceiling independent of ratio
	repeatedWordLongLen   = 6
	repeatedWordLongCount = 15
)

// FloodRule detects excessive newlines, repeated-letter runs, and repeated
// words. Checks run in a fixed order and the first match wins.
func FloodRule(c *engine.MessageContext) error {
	if desc := floodDescription(c.Message.Text); desc != "" {
		c.AddViolation(engine.KindRepeatedText, desc)
	}
	return nil
}

func floodDescription(raw string) string {
	if strings.Count(raw, "\n") >= newlineVolumeThreshold {
		return "too many newlines"
	}
	if strings.Contains(raw, strings.Repeat("\n", newlineBurstThreshold)) {
		return "too many newlines in a row"
	}

	tokens := keyword.Tokenize(raw)
	for _, tok := range tokens {
		if ch, ok := letterRun(keyword.ReverseLeetspeak(tok)); ok {
			return fmt.Sprintf("repeated letter %c", ch)
		}
	}

	if word := repeatedWord(tokens); word != "" {
		return "repeated word " + word
	}
	return ""
}

// reports a character repeated letterRunThreshold or more times in a row
func letterRun(tok string) (rune, bool) {
	var prev rune
	run := 0
	for _, r := range tok {
		if r == prev {
			run++
			if run >= letterRunThreshold {
				return r, true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return 0, false
}

func repeatedWord(tokens []string) string {
	counts := make(map[string]int)
	var order []string
	for _, tok := range tokens {
		if len(tok) < repeatedWordMinLen {
			continue
		}
		rev := keyword.ReverseLeetspeak(tok)
		if _, seen := counts[rev]; !seen {
			order = append(order, rev)
		}
		counts[rev]++
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	// a lone counted token repeated nowhere is never flood
	if total <= 1 {
		return ""
	}
	for _, tok := range order {
		n := counts[tok]
		ratioHit := float64(n)/float64(total) >= repeatedWordRatio && total > repeatedWordMinTally
		absoluteHit := len(tok) >= repeatedWordLongLen && n >= repeatedWordLongCount
		if ratioHit || absoluteHit {
			return tok
		}
	}
	return ""
}
