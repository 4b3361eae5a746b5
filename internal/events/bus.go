// Package events is a small in-process topic bus connecting the local store,
// the sync debouncer and the CLI.
package events

import (
	"sync"
	"sync/atomic"
)

// Topic names a class of events.
type Topic string

const (
	// TopicKeyChanged fires after this process wrote a local key.
	TopicKeyChanged Topic = "key_changed"
	// TopicExternalChange fires when another process changed the local store.
	TopicExternalChange Topic = "external_change"
)

// Event is delivered to subscribers of its Topic.
type Event struct {
	Topic Topic
	Key   string
}

// KeyChanged builds a TopicKeyChanged event.
func KeyChanged(key string) Event { return Event{Topic: TopicKeyChanged, Key: key} }

// ExternalChange builds a TopicExternalChange event.
func ExternalChange() Event { return Event{Topic: TopicExternalChange} }

// DefaultBuffer is the per-subscriber channel capacity.
const DefaultBuffer = 16

type subscriber struct {
	ch     chan Event
	topics map[Topic]bool
}

// Bus fans events out to subscribers without ever blocking the publisher.
// A subscriber whose buffer is full misses the event; misses are counted.
type Bus struct {
	mu      sync.RWMutex
	subs    map[*subscriber]struct{}
	buffer  int
	closed  bool
	dropped atomic.Int64
}

// NewBus returns a bus with buffer slots per subscriber; buffer <= 0 uses DefaultBuffer.
func NewBus(buffer int) *Bus {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Bus{subs: make(map[*subscriber]struct{}), buffer: buffer}
}

// Publish delivers e to every subscriber of e.Topic. It is a no-op after Close.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for s := range b.subs {
		if !s.topics[e.Topic] {
			continue
		}
		select {
		case s.ch <- e:
		default:
			b.dropped.Add(1)
		}
	}
}

// Subscribe returns a channel receiving events of the given topics and a
// cancel func that closes it. Cancel is idempotent.
func (b *Bus) Subscribe(topics ...Topic) (<-chan Event, func()) {
	s := &subscriber{ch: make(chan Event, b.buffer), topics: make(map[Topic]bool, len(topics))}
	for _, t := range topics {
		s.topics[t] = true
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(s.ch)
		return s.ch, func() {}
	}
	b.subs[s] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if _, ok := b.subs[s]; ok {
				delete(b.subs, s)
				close(s.ch)
			}
		})
	}
	return s.ch, cancel
}

// Dropped reports how many deliveries were skipped because a subscriber was full.
func (b *Bus) Dropped() int64 { return b.dropped.Load() }

// Close closes every subscriber channel; later publishes are ignored.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for s := range b.subs {
		close(s.ch)
		delete(b.subs, s)
	}
}
