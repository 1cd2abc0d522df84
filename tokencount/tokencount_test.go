package tokencount

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"one two three", 3},
		{"a: 1", 3},
		{"users[2]{a,b}:", 10},
	}
	for _, tc := range tests {
		got, err := Estimate(context.Background(), tc.in)
		if err != nil {
			t.Fatalf("Estimate(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("Estimate(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestSessionDelivers(t *testing.T) {
	done := make(chan int, 1)
	s := NewSession(nil, time.Millisecond, func(n int) { done <- n })
	defer s.Close()
	s.Schedule("alpha beta")
	select {
	case n := <-done:
		if n != 2 {
			t.Errorf("delivered %d, want 2", n)
		}
	case <-time.After(time.Second):
		t.Fatal("no delivery")
	}
}

func TestSessionSupersedes(t *testing.T) {
	var (
		mu   sync.Mutex
		got  []int
		done = make(chan struct{}, 8)
	)
	s := NewSession(nil, 20*time.Millisecond, func(n int) {
		mu.Lock()
		got = append(got, n)
		mu.Unlock()
		done <- struct{}{}
	})
	defer s.Close()
	// quick rescheduling inside the quiet window: only the last wins
	s.Schedule("one")
	s.Schedule("one two")
	s.Schedule("one two three")
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("no delivery")
	}
	// allow any stray deliveries to land
	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	if len(got) != 1 || got[0] != 3 {
		t.Errorf("deliveries %v, want [3]", got)
	}
}

func TestSessionCloseCancels(t *testing.T) {
	delivered := make(chan int, 1)
	s := NewSession(nil, 10*time.Millisecond, func(n int) { delivered <- n })
	s.Schedule("text")
	s.Close()
	select {
	case n := <-delivered:
		t.Errorf("delivery %d after close", n)
	case <-time.After(60 * time.Millisecond):
	}
	// scheduling after close is a no-op
	s.Schedule("more")
	select {
	case n := <-delivered:
		t.Errorf("delivery %d after close", n)
	case <-time.After(60 * time.Millisecond):
	}
}

func TestStoreLifecycle(t *testing.T) {
	st := NewStore(nil, time.Millisecond)
	a := st.Get("file:///a.toon", nil)
	if st.Get("file:///a.toon", nil) != a {
		t.Error("Get should return the existing session")
	}
	st.Remove("file:///a.toon")
	if st.Get("file:///a.toon", nil) == a {
		t.Error("Remove should discard the session")
	}
}

func TestCounterError(t *testing.T) {
	failing := func(context.Context, string) (int, error) {
		return 0, context.Canceled
	}
	delivered := make(chan int, 1)
	s := NewSession(failing, time.Millisecond, func(n int) { delivered <- n })
	defer s.Close()
	s.Schedule("text")
	select {
	case n := <-delivered:
		t.Errorf("delivery %d despite counter error", n)
	case <-time.After(60 * time.Millisecond):
	}
}
