package status

import "sync"

// mailbox holds at most one pending update per widget. A newer update for
// a widget replaces an older one that has not been taken yet, so a slow
// consumer only ever sees the latest elements.
type mailbox struct {
	mu      sync.Mutex
	pending map[int][]Element
	ready   chan struct{}
}

func newMailbox() *mailbox {
	return &mailbox{
		pending: make(map[int][]Element),
		ready:   make(chan struct{}, 1),
	}
}

// Put stores e as the pending update for index and signals Ready.
func (m *mailbox) Put(index int, e []Element) {
	m.mu.Lock()
	m.pending[index] = e
	m.mu.Unlock()

	select {
	case m.ready <- struct{}{}:
	default:
	}
}

// Ready receives a value whenever updates may be pending.
func (m *mailbox) Ready() <-chan struct{} {
	return m.ready
}

// Take removes and returns all pending updates.
func (m *mailbox) Take() map[int][]Element {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := m.pending
	m.pending = make(map[int][]Element)
	return p
}
