package fileops

import (
	"path/filepath"
	"strings"
)

// SplitName separates the final element of name into base and extension.
// Directory components are dropped. The extension starts at the last dot,
// so ".env" has an empty base and "archive.tar.gz" has base "archive.tar".
func SplitName(name string) (base, ext string) {
	name = filepath.Base(name)
	ext = filepath.Ext(name)
	return strings.TrimSuffix(name, ext), ext
}

// usableName reports whether name still names a file after dropping directories.
func usableName(name string) bool {
	if name == "" {
		return false
	}
	base := filepath.Base(name)
	return base != "." && base != ".." && base != string(filepath.Separator)
}
