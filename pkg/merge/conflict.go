package merge

import "github.com/agentstation/depmerge/pkg/errors"

// Conflict is one key's state across the three snapshots.
type Conflict[T Entry[T]] struct {
	Key      string
	Base     Optional[T]
	Local    Optional[T]
	Incoming Optional[T]
}

// NewConflict builds a conflict and checks that at least one side holds a
// value.
func NewConflict[T Entry[T]](key string, base, local, incoming Optional[T]) (Conflict[T], error) {
	c := Conflict[T]{Key: key, Base: base, Local: local, Incoming: incoming}
	if !base.IsPresent() && !local.IsPresent() && !incoming.IsPresent() {
		return c, &errors.ConflictError{Key: key, Message: "base, local and incoming are all absent"}
	}
	return c, nil
}

// Pattern classifies the conflict.
func (c Conflict[T]) Pattern() ChangePattern {
	return Classify(c.Base, c.Local, c.Incoming)
}

// Classify maps the presence and equality of the three sides to a change
// pattern. It is total and has no side effects.
func Classify[T Entry[T]](base, local, incoming Optional[T]) ChangePattern {
	b, hasBase := base.Get()
	if !hasBase {
		var p ChangePattern
		if local.IsPresent() {
			p |= LocalAdded
		}
		if incoming.IsPresent() {
			p |= IncomingAdded
		}
		return p
	}

	return sideChange(b, local, LocalDeleted, LocalModified) |
		sideChange(b, incoming, IncomingDeleted, IncomingModified)
}

func sideChange[T Entry[T]](base T, side Optional[T], deleted, modified ChangePattern) ChangePattern {
	v, ok := side.Get()
	switch {
	case !ok:
		return deleted
	case base.Equal(v):
		return NoChanges
	default:
		return modified
	}
}

// DuplicateConflict is a key recorded more than once in at least one
// snapshot. Each side holds its distinct values in first-seen order.
type DuplicateConflict[T Entry[T]] struct {
	Key      string
	Base     []T
	Local    []T
	Incoming []T
}

// Candidates returns the distinct values of local followed by those of
// incoming that local does not already hold.
func (d DuplicateConflict[T]) Candidates() []T {
	return distinct(append(append([]T(nil), d.Local...), d.Incoming...))
}

// Pattern classifies the duplicate conflict by comparing the distinct
// collections of each side with the base as sets.
func (d DuplicateConflict[T]) Pattern() ChangePattern {
	if len(d.Base) == 0 {
		var p ChangePattern
		if len(d.Local) > 0 {
			p |= LocalAdded
		}
		if len(d.Incoming) > 0 {
			p |= IncomingAdded
		}
		return p
	}
	return setChange(d.Base, d.Local, LocalDeleted, LocalModified) |
		setChange(d.Base, d.Incoming, IncomingDeleted, IncomingModified)
}

func setChange[T Entry[T]](base, side []T, deleted, modified ChangePattern) ChangePattern {
	switch {
	case len(side) == 0:
		return deleted
	case sameSet(base, side):
		return NoChanges
	default:
		return modified
	}
}

// sameSet compares two distinct collections ignoring order.
func sameSet[T Entry[T]](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for _, x := range a {
		if !contains(b, x) {
			return false
		}
	}
	return true
}

func contains[T Entry[T]](s []T, v T) bool {
	for _, x := range s {
		if x.Equal(v) {
			return true
		}
	}
	return false
}
