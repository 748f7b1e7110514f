package resolvers

import (
	"github.com/agentstation/depmerge/pkg/merge"
	"github.com/agentstation/depmerge/pkg/version"
)

// Versioned is an entry with a replaceable version field.
type Versioned[T any] interface {
	merge.Entry[T]
	GetVersion() string
	WithVersion(version string) T
}

// VersionComparer orders two raw version strings. ok is false when the order
// cannot be decided.
type VersionComparer func(a, b string) (cmp int, ok bool)

// StrictVersions compares fully parsed versions. Unparseable input is
// undecidable.
func StrictVersions(a, b string) (int, bool) {
	va, err := version.Parse(a)
	if err != nil {
		return 0, false
	}
	vb, err := version.Parse(b)
	if err != nil {
		return 0, false
	}
	return version.Compare(va, vb), true
}

// WildcardVersions compares versions that may end in a "*" component.
func WildcardVersions(a, b string) (int, bool) {
	return version.CompareWildcard(a, b)
}
