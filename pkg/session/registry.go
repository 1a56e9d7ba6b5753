// Package session maps client sessions to their diagram documents.
//
// Each connected client works on its own document; the registry owns the
// mapping and serializes access per session, so tool handlers never see a
// document mid-mutation. Idle sessions expire after a TTL and are reaped
// by Cleanup, typically driven by StartReaper.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/drawdeck/drawdeck/pkg/diagram"
)

// DefaultTTL is how long an idle session survives before cleanup.
const DefaultTTL = 24 * time.Hour

type entry struct {
	mu       sync.Mutex
	doc      *diagram.Document
	lastUsed time.Time
}

// Registry is a concurrency-safe session-to-document map.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
	ttl     time.Duration
	now     func() time.Time // swapped in tests
}

// NewRegistry creates a registry. A non-positive ttl falls back to
// DefaultTTL.
func NewRegistry(ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Registry{
		entries: make(map[string]*entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// NewID generates a fresh session identifier for clients that do not
// bring their own.
func NewID() string {
	return uuid.NewString()
}

func (r *Registry) get(id string) *entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		e = &entry{doc: diagram.New(), lastUsed: r.now()}
		r.entries[id] = e
	}
	return e
}

// With runs fn against the session's document, creating the session on
// first use. Access is exclusive for the duration of fn; the document must
// not escape it.
func (r *Registry) With(id string, fn func(doc *diagram.Document) error) error {
	e := r.get(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastUsed = r.now()
	return fn(e.doc)
}

// Delete drops a session and its document. Unknown ids are a no-op.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Cleanup removes sessions idle longer than the TTL and reports how many
// were dropped.
func (r *Registry) Cleanup() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := r.now().Add(-r.ttl)
	dropped := 0
	for id, e := range r.entries {
		if e.lastUsed.Before(cutoff) {
			delete(r.entries, id)
			dropped++
		}
	}
	return dropped
}

// StartReaper runs Cleanup on the given interval until ctx is done.
func (r *Registry) StartReaper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.Cleanup()
			}
		}
	}()
}
