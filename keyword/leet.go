package keyword

// Substitutions for common digit/symbol stand-ins, mapped back to the letters
// they visually resemble. Applied greedily per-rune, independent of position.
var leetRunes = map[rune]rune{
	'1': 'i',
	'4': 'a',
	'3': 'e',
	'$': 's',
	'5': 's',
	'0': 'o',
	'+': 't',
	'7': 't',
	'#': 'h',
}

// Replaces every leetspeak stand-in rune in the token with the letter it
// resembles. Tokens without stand-ins are returned unchanged.
func ReverseLeetspeak(tok string) string {
	out := []rune(tok)
	changed := false
	for i, r := range out {
		if sub, ok := leetRunes[r]; ok {
			out[i] = sub
			changed = true
		}
	}
	if !changed {
		return tok
	}
	return string(out)
}
