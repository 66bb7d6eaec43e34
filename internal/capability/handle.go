package capability

// Handle holds an optional capability. The zero value is absent.
type Handle[T any] struct {
	v  T
	ok bool
}

// Present returns a Handle holding v.
func Present[T any](v T) Handle[T] {
	return Handle[T]{v: v, ok: true}
}

// Absent returns an empty Handle.
func Absent[T any]() Handle[T] {
	return Handle[T]{}
}

// Get returns the capability and whether it is present.
func (h Handle[T]) Get() (T, bool) {
	return h.v, h.ok
}

// IsPresent reports whether the capability is present.
func (h Handle[T]) IsPresent() bool {
	return h.ok
}
