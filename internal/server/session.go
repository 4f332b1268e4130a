package server

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/ironsheep/backdrop-mcp/internal/background"
	"github.com/ironsheep/backdrop-mcp/internal/logging"
)

// session is one open background and the diagnostics it has produced since
// the last tool call.
type session struct {
	id       string
	bg       *background.Background
	recorder *logging.Recorder
}

// Sessions maps handles to open backgrounds. It is safe for concurrent use.
type Sessions struct {
	mu    sync.Mutex
	items map[string]*session
}

// NewSessions creates an empty handle table.
func NewSessions() *Sessions {
	return &Sessions{items: make(map[string]*session)}
}

// Add registers bg and returns its new handle.
func (s *Sessions) Add(bg *background.Background, rec *logging.Recorder) string {
	id := uuid.NewString()

	s.mu.Lock()
	s.items[id] = &session{id: id, bg: bg, recorder: rec}
	s.mu.Unlock()
	return id
}

// get returns the session for handle.
func (s *Sessions) get(handle string) (*session, error) {
	if _, err := uuid.Parse(handle); err != nil {
		return nil, fmt.Errorf("invalid handle %q: %w", handle, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.items[handle]
	if !ok {
		return nil, fmt.Errorf("unknown handle: %s", handle)
	}
	return sess, nil
}

// remove unregisters handle and returns its session.
func (s *Sessions) remove(handle string) (*session, error) {
	sess, err := s.get(handle)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	delete(s.items, handle)
	s.mu.Unlock()
	return sess, nil
}

// Len returns the number of open backgrounds.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Handles returns the open handles in sorted order.
func (s *Sessions) Handles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.items))
	for id := range s.items {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// CloseAll closes and forgets every open background.
func (s *Sessions) CloseAll() {
	s.mu.Lock()
	items := s.items
	s.items = make(map[string]*session)
	s.mu.Unlock()

	for _, sess := range items {
		sess.bg.Close()
	}
}
