// Package session keeps independent calculator engines, one per input stream,
// and serializes access to each.
package session

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/zephyrtronium/calctree"
)

// ErrNoSession is returned for an ID that does not name an open session.
var ErrNoSession = errors.New("no such session")

type session struct {
	mu  sync.Mutex
	eng *calctree.Engine
}

// Registry holds open sessions. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*session
	opts     []calctree.Option
}

// New creates an empty registry. Engines for new sessions are created with
// opts.
func New(opts ...calctree.Option) *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]*session),
		opts:     opts,
	}
}

// Create opens a session with a fresh engine and returns its ID.
func (r *Registry) Create() uuid.UUID {
	id := uuid.New()
	s := &session{eng: calctree.New(r.opts...)}
	r.mu.Lock()
	r.sessions[id] = s
	r.mu.Unlock()
	return id
}

func (r *Registry) get(id uuid.UUID) (*session, error) {
	r.mu.RLock()
	s := r.sessions[id]
	r.mu.RUnlock()
	if s == nil {
		return nil, fmt.Errorf("%w: %v", ErrNoSession, id)
	}
	return s, nil
}

// Do calls f with the session's engine while holding the session's lock and
// returns its error. f must not retain the engine.
func (r *Registry) Do(id uuid.UUID, f func(*calctree.Engine) error) error {
	s, err := r.get(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return f(s.eng)
}

// Close discards a session. It reports whether the session was open.
func (r *Registry) Close(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return false
	}
	delete(r.sessions, id)
	return true
}

// IDs returns the IDs of open sessions in sorted order.
func (r *Registry) IDs() []uuid.UUID {
	r.mu.RLock()
	ids := make([]uuid.UUID, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	r.mu.RUnlock()
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

// Len returns the number of open sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Find returns the open session whose ID begins with prefix. The prefix must
// identify exactly one session.
func (r *Registry) Find(prefix string) (uuid.UUID, error) {
	var found []uuid.UUID
	for _, id := range r.IDs() {
		if strings.HasPrefix(id.String(), prefix) {
			found = append(found, id)
		}
	}
	switch len(found) {
	case 0:
		return uuid.Nil, fmt.Errorf("%w: %q", ErrNoSession, prefix)
	case 1:
		return found[0], nil
	default:
		return uuid.Nil, fmt.Errorf("session prefix %q is ambiguous (%d matches)", prefix, len(found))
	}
}
