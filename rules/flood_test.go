package rules

import (
	"strings"
	"testing"

	"github.com/orbchat/reishi/engine"

	"github.com/stretchr/testify/assert"
)

func TestFloodNewlines(t *testing.T) {
	assert := assert.New(t)

	// 3 consecutive newlines pass, 4 trip the burst check
	assert.Equal("", floodDescription("a\n\n\nb"))
	assert.Equal("too many newlines in a row", floodDescription("a\n\n\n\nb"))

	// total volume trips first, regardless of runs
	spread := strings.Repeat("line\n", 10)
	assert.Equal("too many newlines", floodDescription(spread))
}

func TestFloodRepeatedLetters(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("", floodDescription("okaaaaaay"))
	assert.Equal("repeated letter a", floodDescription("okaaaaaaay"))

	// leetspeak stand-ins collapse in to the same run
	assert.Equal("repeated letter o", floodDescription("l0o0o0ooooool"))
}

func TestFloodRepeatedWords(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("repeated word hello",
		floodDescription("hello hello hello hello hello hello"))

	// a word occurring twice among many distinct words is fine
	assert.Equal("", floodDescription("hey there hey you one two three four"))

	// ratio needs more than five counted tokens
	assert.Equal("", floodDescription("hi hi"))
	assert.Equal("", floodDescription("spam spam spam"))

	// long words have an absolute ceiling independent of ratio
	long := strings.Repeat("giveaway ", 15) + strings.Repeat("word ", 40)
	assert.Equal("repeated word giveaway", floodDescription(long))

	// a single counted token is never flood
	assert.Equal("", floodDescription("alone"))
}

func TestFloodRule(t *testing.T) {
	assert := assert.New(t)
	eng := engine.EngineTestFixture()

	c := testContext(t, &eng, textMessage("spam spam spam spam spam spam"))
	assert.NoError(FloodRule(c))
	effects := engine.ExtractEffects(c)
	if assert.Len(effects, 1) {
		assert.Equal(engine.KindRepeatedText, effects[0].Kind)
		assert.Equal("repeated word spam", effects[0].Detail)
	}

	c = testContext(t, &eng, textMessage("an ordinary message"))
	assert.NoError(FloodRule(c))
	assert.Empty(engine.ExtractEffects(c))
}
