// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int32
}

func (m *mockWorker) Run(ctx context.Context) {
	m.runCount.Add(1)
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ctx, cancel := context.WithCancel(context.Background())
	ws := NewWorkers(w1, w2, w3)

	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	// all workers must be running concurrently before cancel
	deadline := time.After(time.Second)
	for w1.runCount.Load()+w2.runCount.Load()+w3.runCount.Load() < 3 {
		select {
		case <-deadline:
			t.Fatal("workers did not start")
		default:
			time.Sleep(time.Millisecond)
		}
	}
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	for i, w := range []*mockWorker{w1, w2, w3} {
		if got := w.runCount.Load(); got != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, got)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should return immediately on empty workers list
	ws.Run(context.Background())
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
}

// onceWorker returns as soon as it has recorded its id.
type onceWorker struct {
	id   int
	mu   *sync.Mutex
	seen map[int]bool
}

func (o *onceWorker) Run(context.Context) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seen[o.id] = true
}

func TestWorkers_Run_WaitsForAll(t *testing.T) {
	var mu sync.Mutex
	seen := map[int]bool{}

	ws := NewWorkers(
		&onceWorker{id: 1, mu: &mu, seen: seen},
		&onceWorker{id: 2, mu: &mu, seen: seen},
		&onceWorker{id: 3, mu: &mu, seen: seen},
	)
	ws.Run(context.Background())

	for _, id := range []int{1, 2, 3} {
		if !seen[id] {
			t.Errorf("worker %d did not run", id)
		}
	}
}
