package locstat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeKey(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"simple_extension", "main.go", "go"},
		{"uppercase_is_folded", "LIB.RS", "rs"},
		{"no_extension", "Makefile", KeyNoExt},
		{"trailing_dot", "weird.", KeyNoExt},
		{"leading_dot_name_counts_as_extension", ".gitignore", "gitignore"},
		{"only_the_final_extension_counts", "archive.tar.gz", "gz"},
		{"nested_path", "a/b/c.txt", "txt"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TypeKey(tc.path))
		})
	}
}
