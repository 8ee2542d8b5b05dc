package percolation

import (
	"context"
	"fmt"
	"sync"
)

// EventKind distinguishes cell progress from the terminal markers.
type EventKind uint8

const (
	EventWet EventKind = iota
	EventCompleted
	EventCancelled
)

func (k EventKind) String() string {
	switch k {
	case EventWet:
		return "wet"
	case EventCompleted:
		return "completed"
	case EventCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event is one entry of a run's progress stream.
type Event struct {
	Kind EventKind
	// Point and ReachedBottom are set for EventWet.
	Point         Point
	ReachedBottom bool
	// Step is the 1-based index of the processed cell, or the total number
	// of processed cells on a terminal marker.
	Step int
}

// Terminal reports whether e ends the stream.
func (e Event) Terminal() bool { return e.Kind != EventWet }

// Stream is a FIFO of run events. The producer never blocks; each event is
// handed out once, so a stream cannot be replayed.
type Stream struct {
	mu     sync.Mutex
	buf    []Event
	head   int
	closed bool
	notify chan struct{}
}

func newStream() *Stream {
	return &Stream{notify: make(chan struct{}, 1)}
}

func (s *Stream) push(ev Event) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.buf = append(s.buf, ev)
	if ev.Terminal() {
		s.closed = true
	}
	s.mu.Unlock()
	s.signal()
}

func (s *Stream) signal() {
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

func (s *Stream) popLocked() (Event, bool) {
	if s.head >= len(s.buf) {
		return Event{}, false
	}
	ev := s.buf[s.head]
	s.buf[s.head] = Event{}
	s.head++
	if s.head == len(s.buf) {
		s.buf = s.buf[:0]
		s.head = 0
	}
	return ev, true
}

// Next blocks until an event is available. It returns false once the
// terminal marker has been consumed or ctx is done.
func (s *Stream) Next(ctx context.Context) (Event, bool) {
	for {
		s.mu.Lock()
		ev, ok := s.popLocked()
		closed := s.closed
		s.mu.Unlock()
		if ok {
			if closed {
				s.signal()
			}
			return ev, true
		}
		if closed {
			return Event{}, false
		}
		select {
		case <-ctx.Done():
			return Event{}, false
		case <-s.notify:
		}
	}
}

// Drain returns every buffered event without blocking.
func (s *Stream) Drain() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.head >= len(s.buf) {
		return nil
	}
	out := append([]Event(nil), s.buf[s.head:]...)
	s.buf = s.buf[:0]
	s.head = 0
	return out
}

// Collect reads the stream until the terminal marker or ctx is done.
func (s *Stream) Collect(ctx context.Context) []Event {
	var out []Event
	for {
		ev, ok := s.Next(ctx)
		if !ok {
			return out
		}
		out = append(out, ev)
	}
}
