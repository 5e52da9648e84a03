package cart

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func TestSessionsGetReturnsSameStore(t *testing.T) {
	s := NewSessions(time.Hour, zaptest.NewLogger(t))

	a := s.Get("a")
	a.AddItem(royalRed, 1)

	assert.Same(t, a, s.Get("a"))
	assert.NotSame(t, a, s.Get("b"))
	assert.Equal(t, 2, s.Len())
	assert.Empty(t, s.Get("b").Lines())
}

func TestSessionsSweepDropsIdleCarts(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewSessions(30*time.Minute, zaptest.NewLogger(t))
	s.now = func() time.Time { return now }

	s.Get("old").AddItem(royalRed, 1)
	now = now.Add(20 * time.Minute)
	s.Get("fresh")

	now = now.Add(15 * time.Minute)
	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 1, s.Len())

	// a swept session starts over with an empty cart
	assert.Empty(t, s.Get("old").Lines())
}

func TestSessionsConcurrentUse(t *testing.T) {
	s := NewSessions(time.Hour, zaptest.NewLogger(t))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("sid-%d", i%4)
			s.Get(id).AddItem(royalRed, 1)
			s.Sweep()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 5, s.Get("sid-0").TotalItems())
}
