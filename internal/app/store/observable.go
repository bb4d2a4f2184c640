// Package store holds the in-memory project records and notifies subscribed
// views whenever they change.
//
// Observable is the generic publish-subscribe half; ProjectStore adds the
// domain operations on top of it. A single ProjectStore is built by the
// composition root and shared by every view of the running application.
package store

import (
	"slices"
	"sync"
)

// Listener receives a snapshot of the full record sequence after every
// mutation. The snapshot is owned by the listener and may be modified freely.
type Listener[T any] = func(snapshot []T)

type subscription[T any] struct {
	id uint64
	fn Listener[T]
}

// Observable keeps an ordered list of listeners. The same function may be
// subscribed more than once; each registration is called.
type Observable[T any] struct {
	mu        sync.Mutex
	listeners []subscription[T]
	nextID    uint64
}

// Subscribe registers fn and returns a func that removes this registration.
// Calling the returned func more than once is a no-op.
func (o *Observable[T]) Subscribe(fn Listener[T]) (unsubscribe func()) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.nextID++
	id := o.nextID
	o.listeners = append(o.listeners, subscription[T]{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { o.remove(id) })
	}
}

// Len returns the number of registered listeners.
func (o *Observable[T]) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.listeners)
}

func (o *Observable[T]) remove(id uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.listeners = slices.DeleteFunc(o.listeners, func(s subscription[T]) bool {
		return s.id == id
	})
}

// notify calls every listener in subscription order, each with its own copy
// of items. A panicking listener is not recovered: the panic reaches the
// caller and listeners after it are skipped.
func (o *Observable[T]) notify(items []T) {
	o.mu.Lock()
	listeners := slices.Clone(o.listeners)
	o.mu.Unlock()

	for _, s := range listeners {
		s.fn(slices.Clone(items))
	}
}
