package engine

import (
	"sync"
)

type MessageRuleFunc = func(c *MessageContext) error

// Holds configuration of which detector rules should be run, and dispatches a
// message to all of them.
type RuleSet struct {
	MessageRules []MessageRuleFunc
}

// Runs every rule against the message concurrently and waits for all of them
// (join-all: evaluation latency is the slowest rule, not the sum). Rules keep
// running even after a sibling has recorded a violation.
//
// A rule that panics or returns an error contributes no verdict (fail-open):
// failing closed would punish members on unrelated bugs. Faults are logged
// and counted.
func (r *RuleSet) CallMessageRules(c *MessageContext) {
	var wg sync.WaitGroup
	for _, f := range r.MessageRules {
		wg.Add(1)
		go func(rf MessageRuleFunc) {
			defer wg.Done()
			defer func() {
				if rec := recover(); rec != nil {
					c.Logger.Error("detector panic, failing open", "err", rec)
					ruleFaultCount.Inc()
				}
			}()
			if err := rf(c); err != nil {
				c.Logger.Error("detector error, failing open", "err", err)
				ruleFaultCount.Inc()
			}
		}(f)
	}
	wg.Wait()
}
