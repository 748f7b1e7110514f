// Package manifest defines the two kinds of dependency records the merge
// tool understands, package entries and project references, and a YAML
// snapshot format holding both.
//
// A snapshot is one revision of a manifest. Three snapshots (base, local and
// incoming) are turned into engine inputs with PackageMap / PackageGroups and
// ReferenceMap / ReferenceGroups, and the merged entries are written back
// with Save.
package manifest
