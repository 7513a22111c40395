package local

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/heartmarshall/fairway-backend/internal/store"
)

type subscription struct {
	fn     store.Listener
	active atomic.Bool
}

// emitter is the subscriber registry of one collection.
type emitter struct {
	mu   sync.Mutex
	subs map[uint64]*subscription
	next uint64
}

func newEmitter() *emitter {
	return &emitter{subs: make(map[uint64]*subscription)}
}

func (e *emitter) add(fn store.Listener) (uint64, *subscription) {
	sub := &subscription{fn: fn}
	sub.active.Store(true)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.next++
	e.subs[e.next] = sub
	return e.next, sub
}

func (e *emitter) remove(id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if sub, ok := e.subs[id]; ok {
		sub.active.Store(false)
		delete(e.subs, id)
	}
}

func (e *emitter) len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.subs)
}

// emit delivers records to a snapshot of the current subscribers, in
// registration order. Each subscriber gets its own copy. Subscriptions
// removed during the fan-out are skipped.
func (e *emitter) emit(records []store.Record) {
	e.mu.Lock()
	ids := make([]uint64, 0, len(e.subs))
	for id := range e.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	subs := make([]*subscription, len(ids))
	for i, id := range ids {
		subs[i] = e.subs[id]
	}
	e.mu.Unlock()

	for _, s := range subs {
		if s.active.Load() {
			s.fn(store.CloneAll(records))
		}
	}
}
