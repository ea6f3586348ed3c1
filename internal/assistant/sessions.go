package assistant

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Sessions tracks open chat sessions and closes those left idle.
type Sessions struct {
	assistant *Assistant
	cache     *cache.Cache
}

// NewSessions builds a registry whose sessions expire after idle without use.
func NewSessions(a *Assistant, idle time.Duration) *Sessions {
	if idle <= 0 {
		idle = 30 * time.Minute
	}
	cleanup := idle / 2
	if cleanup < time.Second {
		cleanup = time.Second
	}
	c := cache.New(idle, cleanup)
	c.OnEvicted(func(_ string, v interface{}) {
		if session, ok := v.(*Session); ok {
			session.Close()
		}
	})
	return &Sessions{assistant: a, cache: c}
}

// Open starts and registers a new session.
func (r *Sessions) Open() *Session {
	session := r.assistant.NewSession(uuid.NewString())
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
	return session
}

// Get returns the session with the given id and extends its lifetime.
func (r *Sessions) Get(id string) (*Session, bool) {
	v, found := r.cache.Get(id)
	if !found {
		return nil, false
	}
	session := v.(*Session)
	r.cache.Set(id, session, cache.DefaultExpiration)
	return session, true
}

// Close tears down the session, cancelling any pending reply.
func (r *Sessions) Close(id string) bool {
	if _, found := r.cache.Get(id); !found {
		return false
	}
	r.cache.Delete(id)
	return true
}

// CloseAll tears down every session.
func (r *Sessions) CloseAll() {
	for id := range r.cache.Items() {
		r.cache.Delete(id)
	}
}

// Count returns the number of open sessions.
func (r *Sessions) Count() int {
	return r.cache.ItemCount()
}
