package manifest

import "strings"

// Package is an entry of a package-version manifest.
type Package struct {
	ID                    string `json:"id" yaml:"id"`
	Version               string `json:"version" yaml:"version"`
	TargetFramework       string `json:"targetFramework,omitempty" yaml:"targetFramework,omitempty"`
	DevelopmentDependency bool   `json:"developmentDependency,omitempty" yaml:"developmentDependency,omitempty"`

	// Missing marks a package that is not installed in the working tree. It
	// cannot be chosen as a resolution.
	Missing bool `json:"missing,omitempty" yaml:"missing,omitempty"`
}

// Key returns the package id.
func (p Package) Key() string { return p.ID }

// IsResolveOption reports whether the package is installed.
func (p Package) IsResolveOption() bool { return !p.Missing }

// Equal compares every field.
func (p Package) Equal(other Package) bool { return p == other }

// GetVersion returns the package version.
func (p Package) GetVersion() string { return p.Version }

// WithVersion returns a copy of p carrying version.
func (p Package) WithVersion(version string) Package {
	p.Version = version
	return p
}

// String renders the package as "id version [framework] [dev]".
func (p Package) String() string {
	parts := []string{p.ID, p.Version}
	if p.TargetFramework != "" {
		parts = append(parts, p.TargetFramework)
	}
	if p.DevelopmentDependency {
		parts = append(parts, "dev")
	}
	return strings.Join(parts, " ")
}
