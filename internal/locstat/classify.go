package locstat

import (
	"path/filepath"
	"strings"
)

// KeyNoExt is the bucket for files whose name carries no extension.
const KeyNoExt = ""

// TypeKey classifies a file path by the lowercase extension following the
// final dot of its base name, or KeyNoExt when the name has no dot or
// nothing follows it. A leading-dot name such as ".gitignore" classifies as
// "gitignore".
func TypeKey(path string) string {
	ext := filepath.Ext(path)
	if ext == "" || ext == "." {
		return KeyNoExt
	}

	return strings.ToLower(ext[1:])
}
