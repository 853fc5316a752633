package identity

import (
	"sync"

	"github.com/Galyna-kud/flowers-of-happiness/internal/domain"
)

// Session holds the current user and fans out transitions to subscribers.
// Adapters embed it to get CurrentUser and OnSessionChange for free.
type Session struct {
	mu     sync.Mutex
	user   *domain.User
	subs   map[int]func(*domain.User)
	nextID int
}

// Set replaces the current user (nil means signed out) and notifies every
// subscriber. Callbacks run synchronously on the calling goroutine.
func (s *Session) Set(u *domain.User) {
	s.mu.Lock()
	s.user = u
	fns := make([]func(*domain.User), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(u)
	}
}

func (s *Session) CurrentUser() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

func (s *Session) OnSessionChange(fn func(*domain.User)) func() {
	s.mu.Lock()
	if s.subs == nil {
		s.subs = make(map[int]func(*domain.User))
	}
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	current := s.user
	s.mu.Unlock()

	fn(current)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}
