package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPunishMessageDedupe(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	eng := EngineTestFixture()
	msg := fixtureMessage()

	v := Verdict{Kind: KindBlacklistedWord, Detail: "mofo"}
	eng.PunishMessage(ctx, msg, v)
	eng.PunishMessage(ctx, msg, v)

	punisher := eng.Punisher.(*MockPunisher)
	if assert.Len(punisher.Restrictions(), 1) {
		r := punisher.Restrictions()[0]
		assert.Equal("user-1", r.TargetID)
		assert.Equal(30*time.Minute, r.Duration)
		assert.Equal("mofo", r.Detail)
	}
	// the message was only deleted once as well
	assert.Equal([]string{"msg-1"}, eng.Messages.(*MockMessageOps).DeletedIDs())
}

func TestPunishMessageDeleteOnly(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	eng := EngineTestFixture()
	msg := fixtureMessage()

	eng.PunishMessage(ctx, msg, Verdict{Kind: KindLink, Detail: DetailDeleteOnly})

	assert.Empty(eng.Punisher.(*MockPunisher).Restrictions())
	assert.Equal([]string{"msg-1"}, eng.Messages.(*MockMessageOps).DeletedIDs())
}

func TestPunishMessageDeletePolicy(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	// flood messages that mention someone stay visible
	eng := EngineTestFixture()
	msg := fixtureMessage()
	msg.Mentions = []Mention{{ID: "user-2"}}
	eng.PunishMessage(ctx, msg, Verdict{Kind: KindRepeatedText, Detail: "repeated word x"})
	assert.Empty(eng.Messages.(*MockMessageOps).DeletedIDs())
	assert.Len(eng.Punisher.(*MockPunisher).Restrictions(), 1)

	// unless deletion was forced
	eng = EngineTestFixture()
	force := true
	eng.PunishMessage(ctx, msg, Verdict{Kind: KindRepeatedText, Detail: "repeated word x", ForceDelete: &force})
	assert.Equal([]string{"msg-1"}, eng.Messages.(*MockMessageOps).DeletedIDs())

	// without mentions, flood messages are deleted like everything else
	eng = EngineTestFixture()
	eng.PunishMessage(ctx, fixtureMessage(), Verdict{Kind: KindRepeatedText, Detail: "repeated word x"})
	assert.Equal([]string{"msg-1"}, eng.Messages.(*MockMessageOps).DeletedIDs())
}

func TestPunishMessageDurations(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	eng := EngineTestFixture()

	fixtures := []struct {
		kind Kind
		dur  time.Duration
	}{
		{kind: KindBlacklistedWord, dur: 30 * time.Minute},
		{kind: KindRepeatedText, dur: 20 * time.Minute},
		{kind: KindMassMention, dur: 2 * 8760 * time.Hour},
		{kind: KindLink, dur: 10 * time.Minute},
		{kind: KindProtectedPing, dur: 30 * time.Minute},
	}
	for i, fix := range fixtures {
		msg := fixtureMessage()
		msg.ID = string(fix.kind)
		eng.PunishMessage(ctx, msg, Verdict{Kind: fix.kind, Detail: "detail"})
		restrictions := eng.Punisher.(*MockPunisher).Restrictions()
		if assert.Len(restrictions, i+1) {
			assert.Equal(fix.dur, restrictions[i].Duration, string(fix.kind))
		}
	}
}

func TestPunishMessageQuotaBreaker(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	eng := EngineTestFixture()
	eng.Config.QuotaPunishmentDay = 1

	first := fixtureMessage()
	second := fixtureMessage()
	second.ID = "msg-2"

	eng.PunishMessage(ctx, first, Verdict{Kind: KindLink, Detail: "a.example.com"})
	eng.PunishMessage(ctx, second, Verdict{Kind: KindLink, Detail: "b.example.com"})

	// the breaker stops the second punishment, the deletion still happened
	assert.Len(eng.Punisher.(*MockPunisher).Restrictions(), 1)
	assert.Equal([]string{"msg-1", "msg-2"}, eng.Messages.(*MockMessageOps).DeletedIDs())
}

func TestPunishMessageExecutorFailure(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	eng := EngineTestFixture()
	eng.Punisher.(*MockPunisher).Err = errors.New("executor unreachable")

	// failure is logged and swallowed; the deletion is not rolled back
	eng.PunishMessage(ctx, fixtureMessage(), Verdict{Kind: KindLink, Detail: "a.example.com"})
	assert.Equal([]string{"msg-1"}, eng.Messages.(*MockMessageOps).DeletedIDs())
}
