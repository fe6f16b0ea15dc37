package engine

import (
	"sync"
)

// Mutable container for the verdicts accumulated during one evaluation.
//
// Unlike most engine state this is written from multiple goroutines: rules
// run concurrently, so every append goes through the mutex.
type Effects struct {
	mu         sync.Mutex
	violations []Verdict
}

func (e *Effects) AddViolation(v Verdict) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.violations = append(e.violations, v)
}

// Snapshot of the verdicts recorded so far. Safe to call after rule fan-out
// has joined.
func (e *Effects) Violations() []Verdict {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Verdict, len(e.violations))
	copy(out, e.violations)
	return out
}
