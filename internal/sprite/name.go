package sprite

import "strings"

// Extension is the suffix of icon source files.
const Extension = ".svg"

// IconName derives the icon identifier from a source path relative to the
// input directory: a trailing ".svg" is dropped (exact, case-sensitive match)
// and backslashes become forward slashes, so names are identical on every OS.
func IconName(source string) string {
	return strings.ReplaceAll(strings.TrimSuffix(source, Extension), `\`, "/")
}
