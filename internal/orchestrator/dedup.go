package orchestrator

import "sync"

// RepeatGuard remembers the last message content seen per scope so an
// immediately repeated message is answered without an upstream call.
// The scope key is the caller's conversation id; requests without one
// share a single process-wide scope, keeping the original global
// loop-guard behavior for callers that never send an id.
type RepeatGuard struct {
	mu   sync.Mutex
	last map[string]string
}

// NewRepeatGuard creates an empty guard.
func NewRepeatGuard() *RepeatGuard {
	return &RepeatGuard{last: make(map[string]string)}
}

// Repeated records content as the latest message for key and reports
// whether it matches the previously recorded one. The remembered value
// is updated regardless of the outcome.
func (g *RepeatGuard) Repeated(key, content string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	prev, seen := g.last[key]
	g.last[key] = content
	return seen && prev == content
}
