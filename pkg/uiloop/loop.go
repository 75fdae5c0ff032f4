// Package uiloop provides the task queue that stands in for a UI
// thread. One goroutine calls Run and becomes the owner of all window
// work; every other goroutine posts closures to it. Low-priority tasks
// are drained only when the regular queue is empty.
package uiloop

import (
	"context"
	"errors"

	"github.com/aretw0/stickies/pkg/core"
)

// ErrStopped is returned when posting to a loop whose Run has exited.
var ErrStopped = errors.New("ui loop stopped")

type task struct {
	fn   func()
	done chan struct{}
}

// Loop is a dispatch queue owned by a single goroutine.
type Loop struct {
	tasks chan task
	idle  chan task
	quit  chan struct{}
}

// New creates a Loop. Run must be called exactly once on the goroutine
// that is to own the UI.
func New() *Loop {
	return &Loop{
		tasks: make(chan task, 64),
		idle:  make(chan task, 16),
		quit:  make(chan struct{}),
	}
}

// Run drains the queue until ctx is cancelled. Regular tasks always win
// over idle tasks; an idle task only runs when no regular task is
// pending.
func (l *Loop) Run(ctx context.Context) {
	defer close(l.quit)

	for {
		select {
		case <-ctx.Done():
			return
		case t := <-l.tasks:
			t.run()
			continue
		default:
		}

		select {
		case <-ctx.Done():
			return
		case t := <-l.tasks:
			t.run()
		case t := <-l.idle:
			t.run()
		}
	}
}

func (t task) run() {
	defer close(t.done)
	t.fn()
}

// Invoke runs fn on the loop goroutine and blocks until it completed.
func (l *Loop) Invoke(ctx context.Context, fn func()) error {
	done, err := l.post(ctx, l.tasks, fn)
	if err != nil {
		return err
	}
	return l.wait(ctx, done)
}

// InvokeAsync schedules fn on the loop goroutine and returns a channel
// closed once fn completed.
func (l *Loop) InvokeAsync(ctx context.Context, fn func()) (<-chan struct{}, error) {
	return l.post(ctx, l.tasks, fn)
}

// InvokeIdle runs fn at low priority, after pending regular work has
// drained, and blocks until it completed.
func (l *Loop) InvokeIdle(ctx context.Context, fn func()) error {
	done, err := l.post(ctx, l.idle, fn)
	if err != nil {
		return err
	}
	return l.wait(ctx, done)
}

func (l *Loop) post(ctx context.Context, q chan task, fn func()) (<-chan struct{}, error) {
	t := task{fn: fn, done: make(chan struct{})}
	select {
	case q <- t:
		return t.done, nil
	case <-l.quit:
		return nil, ErrStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (l *Loop) wait(ctx context.Context, done <-chan struct{}) error {
	select {
	case <-done:
		return nil
	case <-l.quit:
		// The loop may have run the task just before exiting.
		select {
		case <-done:
			return nil
		default:
			return ErrStopped
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

var _ core.Dispatcher = (*Loop)(nil)
