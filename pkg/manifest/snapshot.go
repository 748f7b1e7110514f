package manifest

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/cases"

	"github.com/agentstation/depmerge/pkg/constants"
	"github.com/agentstation/depmerge/pkg/errors"
)

// Snapshot is one revision of a manifest.
type Snapshot struct {
	Packages   []Package   `json:"packages,omitempty" yaml:"packages,omitempty"`
	References []Reference `json:"references,omitempty" yaml:"references,omitempty"`
}

// Load reads a snapshot from path. A file that does not exist yields an
// empty snapshot, which is how a side that deleted the manifest is
// represented.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Snapshot{}, nil
		}
		return nil, errors.WrapIO("read", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		var pe *errors.ParseError
		if errors.As(err, &pe) {
			pe.File = path
			return nil, pe
		}
		return nil, err
	}
	return s, nil
}

// Parse decodes a YAML snapshot and validates it.
func Parse(data []byte) (*Snapshot, error) {
	var s Snapshot
	if len(strings.TrimSpace(string(data))) == 0 {
		return &s, nil
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.WrapParse("yaml", "", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every entry carries a key.
func (s *Snapshot) Validate() error {
	for i, p := range s.Packages {
		if strings.TrimSpace(p.ID) == "" {
			return errors.NewValidationError("packages", i, "package id is required")
		}
	}
	for i, r := range s.References {
		if strings.TrimSpace(r.Include) == "" {
			return errors.NewValidationError("references", i, "reference include is required")
		}
	}
	return nil
}

// Save writes s to path, entries sorted by key. Parent directories are
// created as needed.
func Save(path string, s *Snapshot) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}
	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// Marshal encodes s as YAML with entries sorted by key.
func (s *Snapshot) Marshal() ([]byte, error) {
	out := Snapshot{
		Packages:   slices.Clone(s.Packages),
		References: slices.Clone(s.References),
	}
	SortPackages(out.Packages)
	SortReferences(out.References)

	data, err := yaml.MarshalWithOptions(out,
		yaml.Indent(2),
		yaml.IndentSequence(true),
	)
	if err != nil {
		return nil, errors.WrapParse("yaml", "", err)
	}
	return data, nil
}

// IsEmpty reports whether the snapshot holds no entries.
func (s *Snapshot) IsEmpty() bool {
	return len(s.Packages) == 0 && len(s.References) == 0
}

// PackageMap indexes packages by id. When an id is recorded more than once
// the first record wins; use HasDuplicatePackages to detect that case.
func (s *Snapshot) PackageMap() map[string]Package {
	return IndexByKey(s.Packages)
}

// PackageGroups groups packages by id, keeping every record.
func (s *Snapshot) PackageGroups() map[string][]Package {
	return GroupByKey(s.Packages)
}

// HasDuplicatePackages reports whether some package id is recorded twice.
func (s *Snapshot) HasDuplicatePackages() bool {
	return HasDuplicateKeys(s.Packages)
}

// ReferenceMap indexes references by include name, first record winning.
func (s *Snapshot) ReferenceMap() map[string]Reference {
	return IndexByKey(s.References)
}

// ReferenceGroups groups references by include name.
func (s *Snapshot) ReferenceGroups() map[string][]Reference {
	return GroupByKey(s.References)
}

// HasDuplicateReferences reports whether some reference is recorded twice.
func (s *Snapshot) HasDuplicateReferences() bool {
	return HasDuplicateKeys(s.References)
}

// SortPackages sorts packages by id, case-insensitively.
func SortPackages(ps []Package) {
	SortByKey(ps)
}

// SortReferences sorts references by include name, case-insensitively.
func SortReferences(rs []Reference) {
	SortByKey(rs)
}

// Keyed is anything with a merge key.
type Keyed interface {
	Key() string
}

// IndexByKey indexes items by key, the first record of a key winning.
func IndexByKey[T Keyed](items []T) map[string]T {
	m := make(map[string]T, len(items))
	for _, it := range items {
		if _, ok := m[it.Key()]; !ok {
			m[it.Key()] = it
		}
	}
	return m
}

// GroupByKey groups items by key, keeping every record in order.
func GroupByKey[T Keyed](items []T) map[string][]T {
	m := make(map[string][]T, len(items))
	for _, it := range items {
		m[it.Key()] = append(m[it.Key()], it)
	}
	return m
}

// HasDuplicateKeys reports whether two items share a key.
func HasDuplicateKeys[T Keyed](items []T) bool {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if _, ok := seen[it.Key()]; ok {
			return true
		}
		seen[it.Key()] = struct{}{}
	}
	return false
}

// SortByKey sorts items by key, case-insensitively with an ordinal
// tie-break. The sort is stable.
func SortByKey[T Keyed](items []T) {
	fold := cases.Fold()
	slices.SortStableFunc(items, func(a, b T) int {
		if c := strings.Compare(fold.String(a.Key()), fold.String(b.Key())); c != 0 {
			return c
		}
		return strings.Compare(a.Key(), b.Key())
	})
}
