package engine

import (
	"time"
)

// Member flags the engine reads from the flag store (author side) or from
// mention annotations (target side).
const (
	// Members who should not be pinged without their consent.
	FlagProtected = "protected"
	// Trusted members whose pings of protected members are never punished.
	FlagFriend = "friend"
	// Members whose messages bypass all moderation checks.
	FlagBypassModeration = "bypass-moderation"
	// Protected-member preference: delete messages that ping them while they
	// are not active in the channel.
	FlagPingDelete = "ping-delete"
)

// Channel policy names the engine queries through ChannelPolicy.
const (
	// Channels fully exempt from moderation.
	PolicyAbsoluteExempt = "absolute-exempt"
	// Private support-ticket channels, also exempt.
	PolicyTicket = "ticket"
	// Channels where generic URL posting is allowed.
	PolicyLinksExcluded = "links"
)

// The member who sent a message.
type Actor struct {
	ID string
	// Bot is true for non-human actors (other bots, webhooks, system
	// messages); their messages are never evaluated.
	Bot bool
}

// A member mention inside a message, annotated by the platform adapter with
// that member's exemption flags so detectors don't need a lookup per target.
type Mention struct {
	ID    string
	Flags []string
}

func (m Mention) HasFlag(flag string) bool {
	for _, f := range m.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// One chat message as delivered by the platform adapter. Immutable for the
// duration of a single evaluation; the engine only borrows it.
type ChatMessage struct {
	ID        string
	GuildID   string
	ChannelID string
	Author    Actor
	Text      string
	CreatedAt time.Time
	Mentions  []Mention
}
