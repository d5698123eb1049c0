// Package events provides the in-process change-notification channel that
// persistence publishes on after every write. Subscribers are keyed by topic
// and receive events synchronously, which gives callers read-after-write
// consistency: by the time Publish returns, the write is committed.
package events

import "sync"

// Topics published by the repositories.
const (
	TopicTrackers   = "trackers"
	TopicCategories = "categories"
	TopicRecords    = "records"
	TopicPins       = "pins"
)

// Event describes a single persistence change. EntityID carries the stable
// id of the affected entity (tracker id, category title) so subscribers can
// react to a specific row rather than refetching everything.
type Event struct {
	Topic    string
	EntityID string
}

// Bus is a minimal synchronous publish/subscribe hub. A single mutex is
// adequate for the expected data volumes; no reader/writer distinction is
// needed.
type Bus struct {
	mu   sync.Mutex
	next int
	subs map[string]map[int]func(Event)
}

func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[int]func(Event))}
}

// Subscribe registers fn for a topic and returns an unsubscribe function.
func (b *Bus) Subscribe(topic string, fn func(Event)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]func(Event))
	}
	id := b.next
	b.next++
	b.subs[topic][id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[topic], id)
	}
}

// Publish delivers the event to every subscriber of its topic, in-line.
func (b *Bus) Publish(e Event) {
	b.mu.Lock()
	fns := make([]func(Event), 0, len(b.subs[e.Topic]))
	for _, fn := range b.subs[e.Topic] {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(e)
	}
}
