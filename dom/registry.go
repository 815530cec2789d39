package dom

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownHandle is returned for handles which have not been reserved or
// have already been released.
var ErrUnknownHandle = errors.New("unknown handle")

// ErrBound is returned when binding a handle a second time.
var ErrBound = errors.New("handle already bound")

// Handle identifies a value in a Registry. The zero Handle is never valid.
type Handle uint64

// Registry hands out handles before the values they stand for exist. This
// lets a component refer to itself while it is being built, e.g. from an
// event listener, and bind its handle once construction has finished:
//
//	h := reg.Reserve()
//	n := buildElement(onClick(h))
//	reg.Bind(h, n)
//
// A Registry is safe for concurrent use. The zero value is ready to use.
type Registry[T any] struct {
	mx    sync.Mutex
	last  Handle
	slots map[Handle]*slot[T]
}

type slot[T any] struct {
	value T
	bound bool
}

// Reserve returns a new handle. It is unbound until Bind is called.
func (reg *Registry[T]) Reserve() Handle {
	reg.mx.Lock()
	defer reg.mx.Unlock()
	if reg.slots == nil {
		reg.slots = make(map[Handle]*slot[T])
	}
	reg.last++
	reg.slots[reg.last] = &slot[T]{}
	return reg.last
}

// Bind binds value v to handle h. Every handle may be bound once.
func (reg *Registry[T]) Bind(h Handle, v T) error {
	reg.mx.Lock()
	defer reg.mx.Unlock()
	s, ok := reg.slots[h]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	if s.bound {
		return fmt.Errorf("%w: %d", ErrBound, h)
	}
	s.value, s.bound = v, true
	return nil
}

// Get returns the value bound to h. It returns false for unbound, released
// and unknown handles.
func (reg *Registry[T]) Get(h Handle) (T, bool) {
	reg.mx.Lock()
	defer reg.mx.Unlock()
	if s, ok := reg.slots[h]; ok && s.bound {
		return s.value, true
	}
	var zero T
	return zero, false
}

// Release forgets handle h. Handles are never re-used.
func (reg *Registry[T]) Release(h Handle) {
	reg.mx.Lock()
	defer reg.mx.Unlock()
	delete(reg.slots, h)
}

// Len returns the number of reserved handles which have not been released.
func (reg *Registry[T]) Len() int {
	reg.mx.Lock()
	defer reg.mx.Unlock()
	return len(reg.slots)
}
