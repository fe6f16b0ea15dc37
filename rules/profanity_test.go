package rules

import (
	"context"
	"testing"

	"github.com/orbchat/reishi/engine"
	"github.com/orbchat/reishi/keyword"

	"github.com/stretchr/testify/assert"
)

func testContext(t *testing.T, eng *engine.Engine, msg *engine.ChatMessage) *engine.MessageContext {
	t.Helper()
	return engine.NewMessageContext(context.Background(), eng, msg)
}

func textMessage(text string) *engine.ChatMessage {
	return &engine.ChatMessage{
		ID:        "msg-1",
		ChannelID: "chan-1",
		Author:    engine.Actor{ID: "user-1"},
		Text:      text,
	}
}

func TestBlockedWordDirectMatches(t *testing.T) {
	assert := assert.New(t)
	eng := engine.EngineTestFixture()

	// every blocklisted word matches itself
	for _, word := range []string{"mofo", "pussy", "faggot", "dick", "nazi"} {
		c := testContext(t, &eng, textMessage(word))
		assert.Equal(word, matchBlockedWord(c, keyword.Tokenize(word)), word)
	}

	c := testContext(t, &eng, textMessage("a perfectly fine message"))
	assert.NoError(BlockedWordRule(c))
	assert.Empty(engine.ExtractEffects(c))
}

func TestBlockedWordCaseInsensitive(t *testing.T) {
	assert := assert.New(t)
	eng := engine.EngineTestFixture()

	c := testContext(t, &eng, textMessage("MOFO"))
	assert.NoError(BlockedWordRule(c))
	effects := engine.ExtractEffects(c)
	if assert.Len(effects, 1) {
		assert.Equal(engine.KindBlacklistedWord, effects[0].Kind)
		assert.Equal("mofo", effects[0].Detail)
	}
}

func TestBlockedWordLeetspeak(t *testing.T) {
	assert := assert.New(t)
	eng := engine.EngineTestFixture()

	fixtures := []struct {
		text string
		word string
	}{
		{text: "pu$$y", word: "pussy"},
		{text: "f4ggot", word: "faggot"},
		{text: "m0f0", word: "mofo"},
	}
	for _, fix := range fixtures {
		c := testContext(t, &eng, textMessage(fix.text))
		assert.NoError(BlockedWordRule(c))
		effects := engine.ExtractEffects(c)
		if assert.Len(effects, 1, fix.text) {
			assert.Equal(fix.word, effects[0].Detail)
		}
	}
}

func TestBlockedWordFragmentation(t *testing.T) {
	assert := assert.New(t)
	eng := engine.EngineTestFixture()

	fixtures := []struct {
		text string
		word string
	}{
		{text: "di ck", word: "dick"},
		{text: "n4 zi", word: "nazi"},
		{text: "d i c k", word: "dick"},
		{text: "what a d i ck move", word: "dick"},
	}
	for _, fix := range fixtures {
		c := testContext(t, &eng, textMessage(fix.text))
		assert.NoError(BlockedWordRule(c))
		effects := engine.ExtractEffects(c)
		if assert.Len(effects, 1, fix.text) {
			assert.Equal(fix.word, effects[0].Detail)
		}
	}

	// long tokens never enter the fragment buffer
	c := testContext(t, &eng, textMessage("dictionary ck"))
	assert.NoError(BlockedWordRule(c))
	assert.Empty(engine.ExtractEffects(c))
}
