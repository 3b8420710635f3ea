// Package livequery implements the live/reactive query contract: a producer
// that emits a new full snapshot of matching rows after each committed write,
// with consumers subscribing and unsubscribing tied to their own lifetime.
package livequery

import (
	"context"
	"sync"
)

// Feed fans out snapshots to any number of subscribers. Each subscriber owns
// a buffered channel of size one; a slow consumer is skipped ahead to the
// newest snapshot rather than blocking the writer. Delivery order across
// concurrent writers is whatever order Publish is called in.
type Feed[T any] struct {
	mu      sync.Mutex
	subs    map[int]chan T
	nextID  int
	hasLast bool
	last    T
}

func NewFeed[T any]() *Feed[T] {
	return &Feed[T]{subs: make(map[int]chan T)}
}

// Subscribe registers a consumer for the lifetime of ctx. The current
// snapshot, if any write has happened, is delivered immediately. The channel
// is closed when ctx is done.
func (f *Feed[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.subs[id] = ch
	if f.hasLast {
		ch <- f.last
	}
	f.mu.Unlock()

	go func() {
		<-ctx.Done()
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
		close(ch)
	}()

	return ch
}

// Publish delivers a snapshot to every live subscriber and retains it for
// future subscribers. Called by repositories after a committed write.
func (f *Feed[T]) Publish(snapshot T) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.last = snapshot
	f.hasLast = true

	for _, ch := range f.subs {
		select {
		case ch <- snapshot:
		default:
			// Drop the stale buffered snapshot, then push the fresh one.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snapshot:
			default:
			}
		}
	}
}
