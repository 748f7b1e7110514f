package merge

// Entry is a keyed manifest record.
type Entry[T any] interface {
	// Key identifies the record across snapshots. Keys are compared
	// case-sensitively.
	Key() string

	// IsResolveOption reports whether this value may be chosen as the
	// resolution of a conflict. A reference to a dependency that is not
	// installed returns false.
	IsResolveOption() bool

	// Equal reports value equality with another record of the same type.
	Equal(other T) bool
}

// Optional holds a value that may be absent. The zero value is absent.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsPresent reports whether a value is held.
func (o Optional[T]) IsPresent() bool {
	return o.ok
}

// Value returns the held value, or the zero T when absent.
func (o Optional[T]) Value() T {
	return o.value
}

// lookup returns m[key] as an Optional.
func lookup[T any](m map[string]T, key string) Optional[T] {
	if v, ok := m[key]; ok {
		return Some(v)
	}
	return None[T]()
}

// first returns the first element of s as an Optional.
func first[T any](s []T) Optional[T] {
	if len(s) == 0 {
		return None[T]()
	}
	return Some(s[0])
}
