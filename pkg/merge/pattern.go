package merge

import "strings"

// ChangePattern describes what each side did to a key relative to the base.
// It is a set of flags; the zero value means no side changed anything.
type ChangePattern uint8

// Change flags. Combine them with |.
const (
	LocalAdded ChangePattern = 1 << iota
	IncomingAdded
	LocalModified
	IncomingModified
	LocalDeleted
	IncomingDeleted

	// NoChanges is the empty pattern.
	NoChanges ChangePattern = 0

	BothAdded    = LocalAdded | IncomingAdded
	BothModified = LocalModified | IncomingModified
	BothDeleted  = LocalDeleted | IncomingDeleted
)

var patternNames = []struct {
	flag ChangePattern
	name string
}{
	{LocalAdded, "LocalAdded"},
	{IncomingAdded, "IncomingAdded"},
	{LocalModified, "LocalModified"},
	{IncomingModified, "IncomingModified"},
	{LocalDeleted, "LocalDeleted"},
	{IncomingDeleted, "IncomingDeleted"},
}

// Has reports whether every flag in f is set in p.
func (p ChangePattern) Has(f ChangePattern) bool {
	return p&f == f
}

// HasLocalAdded reports whether local added the key.
func (p ChangePattern) HasLocalAdded() bool { return p.Has(LocalAdded) }

// HasIncomingAdded reports whether incoming added the key.
func (p ChangePattern) HasIncomingAdded() bool { return p.Has(IncomingAdded) }

// HasLocalModified reports whether local changed the value.
func (p ChangePattern) HasLocalModified() bool { return p.Has(LocalModified) }

// HasIncomingModified reports whether incoming changed the value.
func (p ChangePattern) HasIncomingModified() bool { return p.Has(IncomingModified) }

// HasLocalDeleted reports whether local removed the key.
func (p ChangePattern) HasLocalDeleted() bool { return p.Has(LocalDeleted) }

// HasIncomingDeleted reports whether incoming removed the key.
func (p ChangePattern) HasIncomingDeleted() bool { return p.Has(IncomingDeleted) }

// IsNoChanges reports whether neither side changed the key.
func (p ChangePattern) IsNoChanges() bool { return p == NoChanges }

// String renders the pattern, e.g. "BothAdded" or "IncomingModified|LocalDeleted".
func (p ChangePattern) String() string {
	switch p {
	case NoChanges:
		return "NoChanges"
	case BothAdded:
		return "BothAdded"
	case BothModified:
		return "BothModified"
	case BothDeleted:
		return "BothDeleted"
	}

	var names []string
	for _, pn := range patternNames {
		if p.Has(pn.flag) {
			names = append(names, pn.name)
		}
	}
	return strings.Join(names, "|")
}

// MarshalText implements encoding.TextMarshaler for reports.
func (p ChangePattern) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ResolutionSource records which snapshot a resolved value came from. A
// value taken from two agreeing sides carries both flags.
type ResolutionSource uint8

// Resolution sources.
const (
	SourceBase ResolutionSource = 1 << iota
	SourceLocal
	SourceIncoming
	SourceCustom
)

// Has reports whether every flag in s is set.
func (r ResolutionSource) Has(s ResolutionSource) bool {
	return s != 0 && r&s == s
}

// String renders the source, e.g. "Local|Incoming".
func (r ResolutionSource) String() string {
	var names []string
	for _, sn := range []struct {
		flag ResolutionSource
		name string
	}{
		{SourceBase, "Base"},
		{SourceLocal, "Local"},
		{SourceIncoming, "Incoming"},
		{SourceCustom, "Custom"},
	} {
		if r.Has(sn.flag) {
			names = append(names, sn.name)
		}
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, "|")
}

// MarshalText implements encoding.TextMarshaler for reports.
func (r ResolutionSource) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
