package bus

import "context"

// Queue is a single ordered event queue backed by a Go channel. Command
// events and refresh ticks are published from any goroutine and consumed
// by one worker, so every handler runs to completion before the next
// queued event is processed.
type Queue struct {
	events chan Event
}

// NewQueue creates a Queue with the given buffer size.
// If bufSize is <= 0, defaults to 100.
func NewQueue(bufSize int) *Queue {
	if bufSize <= 0 {
		bufSize = 100
	}
	return &Queue{events: make(chan Event, bufSize)}
}

// Publish places an event onto the queue.
func (q *Queue) Publish(ev Event) {
	q.events <- ev
}

// Consume blocks until an event is available or ctx is cancelled.
func (q *Queue) Consume(ctx context.Context) (Event, error) {
	select {
	case ev, ok := <-q.events:
		if !ok {
			return nil, context.Canceled
		}
		return ev, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close closes the underlying channel.
func (q *Queue) Close() {
	close(q.events)
}
