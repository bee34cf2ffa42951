// Package types defines every cross‑package data structure used by the foldertree CLI.
package types

const (
	// TreeBranchConnector prefixes an entry that has later siblings.
	TreeBranchConnector = "├── "
	// TreeLastConnector prefixes the last entry at its level.
	TreeLastConnector = "└── "
	// TreeIndentStep is the number of spaces added per nesting level.
	TreeIndentStep = 2
)

// Folder is the in-memory representation of one directory and everything beneath it.
// Subfolders and Files keep directory enumeration order.
type Folder struct {
	Name       string
	Subfolders []Folder
	Files      []string
}

// defaultIgnoredFolderNames lists directories that are never descended into.
var defaultIgnoredFolderNames = []string{
	"node_modules",
	"target",
	".next",
	".ssh",
	"coverage",
	".git",
}

// IgnoredNames is an immutable set of directory base names excluded from traversal.
type IgnoredNames struct {
	names map[string]struct{}
}

// NewIgnoredNames builds a set from the provided names. Matching is exact and case-sensitive.
func NewIgnoredNames(names ...string) IgnoredNames {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return IgnoredNames{names: set}
}

// DefaultIgnoredNames returns the fixed set of noise directories.
func DefaultIgnoredNames() IgnoredNames {
	return NewIgnoredNames(defaultIgnoredFolderNames...)
}

// Contains reports whether folderName is in the set.
func (ignoredNames IgnoredNames) Contains(folderName string) bool {
	_, exists := ignoredNames.names[folderName]
	return exists
}

// Len returns the number of names in the set.
func (ignoredNames IgnoredNames) Len() int {
	return len(ignoredNames.names)
}
