package mvvm

import "sync"

// Property is an observable value.
type Property[T comparable] struct {
	mu        sync.RWMutex
	value     T
	listeners []func(old, new T)
}

// NewProperty returns a Property holding initial.
func NewProperty[T comparable](initial T) *Property[T] {
	return &Property[T]{value: initial}
}

// Get returns the current value.
func (p *Property[T]) Get() T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.value
}

// Set stores v and notifies listeners if it differs from the current value.
// It reports whether the value changed.
func (p *Property[T]) Set(v T) bool {
	p.mu.Lock()
	old := p.value
	if old == v {
		p.mu.Unlock()
		return false
	}
	p.value = v
	listeners := append([]func(old, new T){}, p.listeners...)
	p.mu.Unlock()

	for _, fn := range listeners {
		fn(old, v)
	}
	return true
}

// OnChanged registers fn to run after every change.
func (p *Property[T]) OnChanged(fn func(old, new T)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, fn)
}
