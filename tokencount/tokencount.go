// Package tokencount maintains per-document token-count sessions.  A
// session owns at most one in-flight count: scheduling new text first
// cancels any pending request (last-write-wins debounce), waits out a
// short quiet window, then runs the counter and delivers the result to
// the session callback.  Superseded requests deliver nothing.
package tokencount

import (
	"context"
	"sync"
	"time"
	"unicode"
)

// Counter produces a token count for document text.  Implementations
// backed by an external subprocess should honor ctx cancellation.
type Counter func(ctx context.Context, text string) (int, error)

// Estimate is the built-in Counter: a cheap token estimate counting
// word and punctuation runs.  It stands in when no external counter is
// configured.
func Estimate(_ context.Context, text string) (int, error) {
	count := 0
	inWord := false
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			if !inWord {
				count++
				inWord = true
			}
		case unicode.IsSpace(r):
			inWord = false
		default:
			count++
			inWord = false
		}
	}
	return count, nil
}

const DefaultQuiet = 150 * time.Millisecond

// Session debounces token counting for one document.
type Session struct {
	mu      sync.Mutex
	count   Counter
	quiet   time.Duration
	deliver func(int)
	cancel  context.CancelFunc
	gen     int
	closed  bool
}

// NewSession creates a session delivering counts to the given
// callback.  A nil counter uses Estimate.
func NewSession(count Counter, quiet time.Duration, deliver func(int)) *Session {
	if count == nil {
		count = Estimate
	}
	if quiet <= 0 {
		quiet = DefaultQuiet
	}
	return &Session{
		count:   count,
		quiet:   quiet,
		deliver: deliver,
	}
}

// Schedule requests a count of text.  Any pending request is canceled
// and replaced; the callback only fires for the most recent text.
func (s *Session) Schedule(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	gen := s.gen
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go s.run(ctx, gen, text)
}

func (s *Session) run(ctx context.Context, gen int, text string) {
	select {
	case <-time.After(s.quiet):
	case <-ctx.Done():
		return
	}
	n, err := s.count(ctx, text)
	if err != nil || ctx.Err() != nil {
		return
	}
	s.mu.Lock()
	superseded := s.closed || gen != s.gen
	s.mu.Unlock()
	if superseded || s.deliver == nil {
		return
	}
	s.deliver(n)
}

// Close cancels any pending request and makes further scheduling a
// no-op.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Store keys sessions by document identity with explicit lifecycle:
// create on first use, destroy on close.
type Store struct {
	mu       sync.Mutex
	count    Counter
	quiet    time.Duration
	sessions map[string]*Session
}

func NewStore(count Counter, quiet time.Duration) *Store {
	return &Store{
		count:    count,
		quiet:    quiet,
		sessions: map[string]*Session{},
	}
}

// Get returns the session for uri, creating it with the given delivery
// callback when absent.
func (st *Store) Get(uri string, deliver func(int)) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[uri]; ok {
		return s
	}
	s := NewSession(st.count, st.quiet, deliver)
	st.sessions[uri] = s
	return s
}

// Close closes every session in the store.
func (st *Store) Close() {
	st.mu.Lock()
	defer st.mu.Unlock()
	for uri, s := range st.sessions {
		s.Close()
		delete(st.sessions, uri)
	}
}

// Remove closes and forgets the session for uri.
func (st *Store) Remove(uri string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[uri]; ok {
		s.Close()
		delete(st.sessions, uri)
	}
}
