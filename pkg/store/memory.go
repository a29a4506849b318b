package store

import (
	"context"
	"sync"

	"tableflip.dev/moodiary/pkg/record"
)

// Memory is an in-process Persistence. It stores the encoded document so it
// behaves like the disk store: callers never share slices with it.
type Memory struct {
	mu       sync.Mutex
	doc      []byte
	saves    int
	watchers []chan Event
}

// NewMemory returns a Memory seeded with the given collection.
func NewMemory(seed record.Collection) *Memory {
	m := &Memory{}
	if seed != nil {
		m.doc, _ = record.Encode(seed)
	}
	return m
}

func (m *Memory) Load(_ context.Context) record.Collection {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.doc) == 0 {
		return record.Collection{}
	}
	c, _, err := record.Decode(m.doc)
	if err != nil {
		return record.Collection{}
	}
	return c
}

func (m *Memory) Save(_ context.Context, c record.Collection) error {
	data, err := record.Encode(c)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doc = data
	m.saves++
	for _, ch := range m.watchers {
		select {
		case ch <- Event{Type: EventDocumentChanged}:
		default:
		}
	}
	return nil
}

func (m *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 16)
	m.mu.Lock()
	m.watchers = append(m.watchers, ch)
	m.mu.Unlock()
	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, w := range m.watchers {
			if w == ch {
				m.watchers = append(m.watchers[:i], m.watchers[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch, nil
}

// Raw returns the stored document bytes.
func (m *Memory) Raw() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.doc...)
}

// SetRaw replaces the stored document, valid or not.
func (m *Memory) SetRaw(doc []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doc = append([]byte(nil), doc...)
}

// Saves counts successful Save calls.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
