package rules

import (
	"testing"

	"github.com/orbchat/reishi/engine"

	"github.com/stretchr/testify/assert"
)

func TestLinkCDNSilentDelete(t *testing.T) {
	assert := assert.New(t)
	eng := engine.EngineTestFixture()

	c := testContext(t, &eng, textMessage("look https://cdn.orbchat.com/attachments/123/cat.png"))
	assert.NoError(LinkRule(c))
	effects := engine.ExtractEffects(c)
	if assert.Len(effects, 1) {
		assert.Equal(engine.KindLink, effects[0].Kind)
		assert.Equal(engine.DetailDeleteOnly, effects[0].Detail)
	}
}

func TestLinkInvite(t *testing.T) {
	assert := assert.New(t)
	eng := engine.EngineTestFixture()

	c := testContext(t, &eng, textMessage("join us! orbchat.gg/abc123"))
	assert.NoError(LinkRule(c))
	effects := engine.ExtractEffects(c)
	if assert.Len(effects, 1) {
		assert.Equal(engine.KindLink, effects[0].Kind)
		assert.Equal("orbchat.gg/abc123", effects[0].Detail)
	}
}

func TestLinkGenericURL(t *testing.T) {
	assert := assert.New(t)
	eng := engine.EngineTestFixture()

	c := testContext(t, &eng, textMessage("check https://example.com/page"))
	assert.NoError(LinkRule(c))
	effects := engine.ExtractEffects(c)
	if assert.Len(effects, 1) {
		assert.Equal(engine.KindLink, effects[0].Kind)
		assert.Contains(effects[0].Detail, "example.com")
	}

	c = testContext(t, &eng, textMessage("no links here"))
	assert.NoError(LinkRule(c))
	assert.Empty(engine.ExtractEffects(c))
}

func TestLinkExcludedChannel(t *testing.T) {
	assert := assert.New(t)
	eng := engine.EngineTestFixture()
	eng.Channels = &engine.MockChannelPolicy{Excluded: map[string][]string{
		engine.PolicyLinksExcluded: {"chan-1"},
	}}

	// generic URLs pass in excluded channels
	c := testContext(t, &eng, textMessage("check https://example.com/page"))
	assert.NoError(LinkRule(c))
	assert.Empty(engine.ExtractEffects(c))

	// invites are still violations there
	c = testContext(t, &eng, textMessage("orbchat.com/invite/abc123"))
	assert.NoError(LinkRule(c))
	assert.Len(engine.ExtractEffects(c), 1)
}
