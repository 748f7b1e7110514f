// Package constants provides shared constants used throughout the depmerge codebase.
// This includes file permissions, default file names, resolver names and
// other values that should be consistent across the library and the CLI.
package constants

import "time"

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for written manifests (rw-r--r--)
	FilePermissions = 0644
)

// Snapshot labels used in logs, prompts and reports
const (
	// LabelBase names the common ancestor snapshot
	LabelBase = "base"

	// LabelLocal names the current side
	LabelLocal = "local"

	// LabelIncoming names the side being merged in
	LabelIncoming = "incoming"
)

// Manifest kinds
const (
	// KindPackages selects package-version entries
	KindPackages = "packages"

	// KindReferences selects project reference entries
	KindReferences = "references"

	// KindAll selects both entry kinds
	KindAll = "all"
)

// Resolution strategies accepted by the terminal resolvers
const (
	StrategyPrompt   = "prompt"
	StrategyLocal    = "local"
	StrategyIncoming = "incoming"
	StrategyBase     = "base"
	StrategyFail     = "fail"
)

// Default values
const (
	// DefaultStrategy is used when neither flag nor config selects one
	DefaultStrategy = StrategyPrompt

	// DefaultKind is the manifest kind merged when none is given
	DefaultKind = KindAll

	// ConfigFileName is the config file searched in $HOME and the working directory
	ConfigFileName = ".depmerge"

	// WildcardComponent marks a floating version component ("1.2.*")
	WildcardComponent = "*"
)

// Format constants
const (
	// TimeFormatReport is the timestamp format used in merge reports
	TimeFormatReport = time.RFC3339
)
