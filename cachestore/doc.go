// Time-boxed storage for small moderation decisions, keyed by namespace and
// subject. The protected-ping detector keeps its per-member punish/skip
// answers here so a target is not re-prompted within the decision window.
//
// Entries age out on their own after the store TTL; nothing invalidates them
// explicitly except Purge. Ships an in-process implementation and a redis one
// for deployments where several processes share decisions.
package cachestore
