package manifest

// Reference is an assembly or project reference of a project file.
type Reference struct {
	Include  string `json:"include" yaml:"include"`
	Version  string `json:"version,omitempty" yaml:"version,omitempty"`
	HintPath string `json:"hintPath,omitempty" yaml:"hintPath,omitempty"`
	Private  bool   `json:"private,omitempty" yaml:"private,omitempty"`

	// Missing marks a reference whose hint path does not resolve to a file.
	Missing bool `json:"missing,omitempty" yaml:"missing,omitempty"`
}

// Key returns the referenced name.
func (r Reference) Key() string { return r.Include }

// IsResolveOption reports whether the referenced file exists.
func (r Reference) IsResolveOption() bool { return !r.Missing }

// Equal compares every field.
func (r Reference) Equal(other Reference) bool { return r == other }

// GetVersion returns the referenced version, which may end in a "*"
// wildcard component.
func (r Reference) GetVersion() string { return r.Version }

// WithVersion returns a copy of r carrying version.
func (r Reference) WithVersion(version string) Reference {
	r.Version = version
	return r
}

// String renders the reference as "include version (hint path)".
func (r Reference) String() string {
	s := r.Include
	if r.Version != "" {
		s += " " + r.Version
	}
	if r.HintPath != "" {
		s += " (" + r.HintPath + ")"
	}
	return s
}
