package auctionclient

import (
	"context"
	"sync"
	"time"
)

type SessionState int

const (
	Anonymous SessionState = iota
	Authenticated
)

func (s SessionState) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// SessionEvent is delivered to subscribers on every state transition. Login is
// nil when the new state is Anonymous.
type SessionEvent struct {
	State SessionState
	Login *LoginResponse
}

// Session holds the signed-in user for a Client. Creating a Session makes the
// client send its access token on every request.
type Session struct {
	client *Client
	now    func() time.Time

	mu      sync.RWMutex
	current *LoginResponse
	expires time.Time
	subs    map[int]func(SessionEvent)
	nextSub int
}

func NewSession(client *Client) *Session {
	s := &Session{
		client: client,
		now:    time.Now,
		subs:   make(map[int]func(SessionEvent)),
	}
	client.tokens = s
	return s
}

// Login authenticates and moves the session to Authenticated. A failed login
// leaves the current state untouched.
func (s *Session) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = resp
	s.expires = expiry(resp, s.now())
	s.mu.Unlock()

	s.notify(SessionEvent{State: Authenticated, Login: resp})
	return resp, nil
}

// Logout is local; the API has no server-side session to revoke.
func (s *Session) Logout() {
	s.mu.Lock()
	wasAuthenticated := s.current != nil
	s.current = nil
	s.expires = time.Time{}
	s.mu.Unlock()

	if wasAuthenticated {
		s.notify(SessionEvent{State: Anonymous})
	}
}

// Current returns the active login. An expired token moves the session back to
// Anonymous.
func (s *Session) Current() (*LoginResponse, bool) {
	s.mu.RLock()
	current, expires := s.current, s.expires
	s.mu.RUnlock()

	if current == nil {
		return nil, false
	}
	if !expires.IsZero() && !s.now().Before(expires) {
		s.expire(current)
		return nil, false
	}
	return current, true
}

func (s *Session) State() SessionState {
	if _, ok := s.Current(); ok {
		return Authenticated
	}
	return Anonymous
}

// Token implements the client's bearer source.
func (s *Session) Token() string {
	if current, ok := s.Current(); ok {
		return current.Session.AccessToken
	}
	return ""
}

// Subscribe registers fn for state transitions and returns its unsubscribe func.
func (s *Session) Subscribe(fn func(SessionEvent)) func() {
	s.mu.Lock()
	key := s.nextSub
	s.nextSub++
	s.subs[key] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, key)
		s.mu.Unlock()
	}
}

func (s *Session) expire(seen *LoginResponse) {
	s.mu.Lock()
	// a concurrent Login may already have replaced the expired session
	if s.current != seen {
		s.mu.Unlock()
		return
	}
	s.current = nil
	s.expires = time.Time{}
	s.mu.Unlock()

	s.notify(SessionEvent{State: Anonymous})
}

func (s *Session) notify(ev SessionEvent) {
	s.mu.RLock()
	subs := make([]func(SessionEvent), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.RUnlock()

	for _, fn := range subs {
		fn(ev)
	}
}

func expiry(resp *LoginResponse, now time.Time) time.Time {
	switch {
	case resp.Session.ExpiresAt > 0:
		return time.Unix(resp.Session.ExpiresAt, 0)
	case resp.Session.ExpiresIn > 0:
		return now.Add(time.Duration(resp.Session.ExpiresIn) * time.Second)
	default:
		return time.Time{}
	}
}
