package uiloop

import (
	"context"
	"sync"
	"testing"
	"time"
)

// startLoop runs a loop on its own goroutine and returns a stop func.
func startLoop(t *testing.T) (*Loop, context.CancelFunc) {
	t.Helper()

	l := New()
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		l.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		wg.Wait()
	})
	return l, cancel
}

func TestInvokeRunsOnLoopGoroutine(t *testing.T) {
	l, _ := startLoop(t)

	ran := false
	if err := l.Invoke(context.Background(), func() { ran = true }); err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	// Invoke is synchronous, so the write is visible here.
	if !ran {
		t.Error("expected fn to have run before Invoke returned")
	}
}

func TestInvokePreservesOrder(t *testing.T) {
	l, _ := startLoop(t)
	ctx := context.Background()

	var got []int
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		i := i
		wg.Add(1)
		done, err := l.InvokeAsync(ctx, func() { got = append(got, i) })
		if err != nil {
			t.Fatalf("InvokeAsync failed: %v", err)
		}
		go func() {
			defer wg.Done()
			<-done
		}()
	}
	wg.Wait()

	for i, v := range got {
		if v != i {
			t.Fatalf("tasks ran out of order: %v", got)
		}
	}
}

func TestIdleRunsAfterPendingWork(t *testing.T) {
	l := New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var order []string
	// Queue regular work and an idle task before starting the loop, so
	// both are pending when draining begins.
	gate := make(chan struct{})
	go func() {
		_, _ = l.InvokeAsync(ctx, func() { order = append(order, "regular-1") })
		_, _ = l.InvokeAsync(ctx, func() { order = append(order, "regular-2") })
		close(gate)
	}()
	<-gate

	idleDone := make(chan error, 1)
	go func() { idleDone <- l.InvokeIdle(ctx, func() { order = append(order, "idle") }) }()

	// Give the idle post time to land in the queue.
	time.Sleep(50 * time.Millisecond)

	go l.Run(ctx)

	if err := <-idleDone; err != nil {
		t.Fatalf("InvokeIdle failed: %v", err)
	}

	if len(order) != 3 || order[2] != "idle" {
		t.Errorf("expected idle task last, got %v", order)
	}
}

func TestStoppedLoopRejectsWork(t *testing.T) {
	l, cancel := startLoop(t)
	cancel()

	// Wait for Run to exit.
	select {
	case <-l.quit:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}

	if err := l.Invoke(context.Background(), func() {}); err != ErrStopped {
		t.Errorf("expected ErrStopped, got %v", err)
	}
}

func TestInvokeHonorsCallerContext(t *testing.T) {
	l := New() // never run

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// Queue has capacity, so the post succeeds and wait must give up
	// on ctx expiry.
	if err := l.Invoke(ctx, func() {}); err != context.DeadlineExceeded {
		t.Errorf("expected DeadlineExceeded, got %v", err)
	}
}
