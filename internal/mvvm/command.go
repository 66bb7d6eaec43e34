package mvvm

import "sync"

// Command binds an action to a predicate over the same argument.
type Command[T any] struct {
	action     func(T)
	canExecute func(T) bool

	mu        sync.Mutex
	listeners []func()
}

// NewCommandOf returns a Command invoking action when canExecute holds.
// A nil canExecute always allows execution.
func NewCommandOf[T any](action func(T), canExecute func(T) bool) *Command[T] {
	return &Command[T]{action: action, canExecute: canExecute}
}

// NewCommand returns a zero-argument Command. Call it with struct{}{}.
func NewCommand(action func(), canExecute func() bool) *Command[struct{}] {
	var pred func(struct{}) bool
	if canExecute != nil {
		pred = func(struct{}) bool { return canExecute() }
	}
	return NewCommandOf(func(struct{}) {
		if action != nil {
			action()
		}
	}, pred)
}

// CanExecute reports whether Execute(arg) would run the action.
func (c *Command[T]) CanExecute(arg T) bool {
	if c.canExecute == nil {
		return true
	}
	return c.canExecute(arg)
}

// Execute runs the action if CanExecute(arg) holds.
func (c *Command[T]) Execute(arg T) {
	if !c.CanExecute(arg) || c.action == nil {
		return
	}
	c.action(arg)
}

// OnCanExecuteChanged registers fn to run when RaiseCanExecuteChanged is called.
func (c *Command[T]) OnCanExecuteChanged(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// RaiseCanExecuteChanged tells bound controls to re-query CanExecute.
func (c *Command[T]) RaiseCanExecuteChanged() {
	c.mu.Lock()
	listeners := append([]func(){}, c.listeners...)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}
