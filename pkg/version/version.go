// Package version parses and orders the version strings found in package and
// reference manifests.
//
// A version is a run of dot-separated unsigned integers with an optional
// "-prerelease" label and an optional "+build" label. Any number of numeric
// components is accepted ("1", "1.2", "4.0.30319.1"), and trailing zero
// components do not change precedence, so "1.0" and "1.0.0" order the same.
//
//	a := version.MustParse("1.2.0-beta.2")
//	b := version.MustParse("1.2")
//	version.Compare(a, b) // -1
//
// CompareWildcard handles floating versions such as "1.2.*", where the
// comparison may be unresolvable instead of guessed.
package version

import (
	"strconv"
	"strings"

	"github.com/agentstation/depmerge/pkg/errors"
)

// Version is a parsed version. The zero value is not a valid version; use
// Parse or MustParse.
type Version struct {
	components []uint64
	prerelease string
	build      string
}

// Parse parses s. Surrounding whitespace is ignored; anything else that does
// not match the grammar is an error.
func Parse(s string) (Version, error) {
	input := s
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, errors.NewVersionError(input, "empty version")
	}

	var v Version

	if i := strings.IndexByte(s, '+'); i >= 0 {
		v.build = s[i+1:]
		s = s[:i]
		if err := validateLabel(v.build); err != nil {
			return Version{}, errors.NewVersionError(input, "build label: "+err.Error())
		}
	}

	if i := strings.IndexByte(s, '-'); i >= 0 {
		v.prerelease = s[i+1:]
		s = s[:i]
		if err := validateLabel(v.prerelease); err != nil {
			return Version{}, errors.NewVersionError(input, "prerelease label: "+err.Error())
		}
	}

	if s == "" {
		return Version{}, errors.NewVersionError(input, "missing numeric components")
	}

	parts := strings.Split(s, ".")
	v.components = make([]uint64, len(parts))
	for i, part := range parts {
		if part == "" {
			return Version{}, errors.NewVersionError(input, "empty numeric component")
		}
		if !isNumeric(part) {
			return Version{}, errors.NewVersionError(input, "non-numeric component "+strconv.Quote(part))
		}
		n, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return Version{}, errors.NewVersionError(input, "component "+part+" out of range")
		}
		v.components[i] = n
	}

	return v, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// constants.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// validateLabel checks a prerelease or build label: dot-separated, non-empty
// identifiers of ASCII letters, digits and hyphens.
func validateLabel(label string) error {
	if label == "" {
		return errors.New("empty label")
	}
	for _, ident := range strings.Split(label, ".") {
		if ident == "" {
			return errors.New("empty identifier")
		}
		for i := 0; i < len(ident); i++ {
			c := ident[i]
			if !isAlnum(c) && c != '-' {
				return errors.New("invalid character " + strconv.QuoteRune(rune(c)))
			}
		}
	}
	return nil
}

// Components returns a copy of the numeric components.
func (v Version) Components() []uint64 {
	out := make([]uint64, len(v.components))
	copy(out, v.components)
	return out
}

// Prerelease returns the prerelease label without the leading "-".
func (v Version) Prerelease() string {
	return v.prerelease
}

// Build returns the build label without the leading "+".
func (v Version) Build() string {
	return v.build
}

// IsPrerelease reports whether v carries a prerelease label.
func (v Version) IsPrerelease() bool {
	return v.prerelease != ""
}

// IsZero reports whether v is the zero value rather than a parsed version.
func (v Version) IsZero() bool {
	return len(v.components) == 0
}

// Equal reports whether v and o have identical components, prerelease text
// and build text. "1.0" and "1.0.0" compare equal but are not Equal.
func (v Version) Equal(o Version) bool {
	if len(v.components) != len(o.components) {
		return false
	}
	for i := range v.components {
		if v.components[i] != o.components[i] {
			return false
		}
	}
	return v.prerelease == o.prerelease && v.build == o.build
}

// String renders v in the form it was parsed from, minus surrounding
// whitespace and leading zeros in numeric components.
func (v Version) String() string {
	var sb strings.Builder
	for i, c := range v.components {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.FormatUint(c, 10))
	}
	if v.prerelease != "" {
		sb.WriteByte('-')
		sb.WriteString(v.prerelease)
	}
	if v.build != "" {
		sb.WriteByte('+')
		sb.WriteString(v.build)
	}
	return sb.String()
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isAlnum(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
