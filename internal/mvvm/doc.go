// Package mvvm provides the command and property primitives a presentation
// layer binds to.
//
// A [Command] pairs an action with an enablement predicate. The predicate is
// evaluated on every CanExecute and Execute call and never cached, because
// it usually reads mutable state such as the current text input. Executing
// a disabled command does nothing and reports no error.
package mvvm
