package engine

// Violation categories a detector can report.
type Kind string

const (
	KindBlacklistedWord Kind = "blacklisted-word"
	KindRepeatedText    Kind = "repeated-text"
	KindMassMention     Kind = "mass-mention"
	KindLink            Kind = "link"
	KindProtectedPing   Kind = "protected-ping"
)

// Sentinel Verdict.Detail value: delete the message silently, apply no
// punishment. Used for trivial suppressions like CDN-link clutter or
// nonsense filler messages.
const DetailDeleteOnly = "delete-only"

// The outcome of one detector flagging one message. Verdicts are values,
// produced fresh per evaluation and never mutated after construction; a
// detector that finds nothing simply reports no verdict.
type Verdict struct {
	Kind Kind
	// Short human-readable explanation, surfaced in the moderation audit
	// trail. The DetailDeleteOnly sentinel suppresses punishment entirely.
	Detail string
	// Deletion override: nil leaves the decision to the per-kind default,
	// non-nil forces the message to be kept or removed.
	ForceDelete *bool
}

// Ping decision values cached per protected member.
const (
	DecisionPunish = "punish"
	DecisionSkip   = "skip"
)

// Cache namespace for protected-ping decisions.
const PingDecisionCache = "ping-decision"
