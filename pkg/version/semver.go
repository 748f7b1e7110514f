package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/agentstation/depmerge/pkg/errors"
)

// Semver converts v to a Masterminds semantic version so it can be checked
// against constraints. Versions with more than three numeric components have
// no semver equivalent.
func (v Version) Semver() (*semver.Version, error) {
	if v.IsZero() {
		return nil, errors.NewVersionError("", "zero version")
	}
	if len(v.components) > 3 {
		return nil, errors.NewVersionError(v.String(), "more than three components")
	}

	var parts [3]uint64
	copy(parts[:], v.components)

	s := fmt.Sprintf("%d.%d.%d", parts[0], parts[1], parts[2])
	if v.prerelease != "" {
		s += "-" + v.prerelease
	}
	if v.build != "" {
		s += "+" + v.build
	}

	sv, err := semver.StrictNewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("version: convert %q: %w", v.String(), err)
	}
	return sv, nil
}

// Satisfies reports whether v matches a semver constraint such as "^1.2.0" or
// ">=2.0, <3".
func Satisfies(v Version, constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("version: parse constraint %q: %w", constraint, err)
	}
	sv, err := v.Semver()
	if err != nil {
		return false, err
	}
	return c.Check(sv), nil
}
