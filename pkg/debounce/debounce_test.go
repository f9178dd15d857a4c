package debounce

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncerCoalescesRapidCalls(t *testing.T) {
	d := New(50 * time.Millisecond)

	var mu sync.Mutex
	var calls []string

	for i := 0; i < 10; i++ {
		text := fmt.Sprintf("query-%d", i)
		d.Schedule(func() {
			mu.Lock()
			calls = append(calls, text)
			mu.Unlock()
		})
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, calls, 1)
	assert.Equal(t, "query-9", calls[0])
}

func TestDebouncerRunsAfterQuiescence(t *testing.T) {
	d := New(20 * time.Millisecond)

	done := make(chan struct{})
	d.Schedule(func() { close(done) })

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("debounced function never ran")
	}
}

func TestDebouncerCancel(t *testing.T) {
	d := New(20 * time.Millisecond)

	var mu sync.Mutex
	ran := false
	d.Schedule(func() {
		mu.Lock()
		ran = true
		mu.Unlock()
	})
	d.Cancel()

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.False(t, ran)
}
