// The reishi moderation core: a set of concurrent detectors evaluated against
// every chat message, with deterministic escalation to punishment actions.
//
// The platform adapter delivers messages to Engine.CheckMessage from its
// message-created and message-updated hooks. The engine short-circuits for
// exempt actors and channels, fans out to every configured detector rule
// concurrently, reduces the verdicts, and escalates each violation through
// the dedup-locked punishment pipeline.
//
// All detector state (dedup claims, ping decisions) is in-memory and
// TTL-bounded; nothing is persisted across restarts.
package engine
