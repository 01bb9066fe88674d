package inference

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferLicense(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"mit", "MIT License\n\nCopyright (c) 2024\n", "MIT"},
		{"apache", "Apache License\nVersion 2.0, January 2004\n", "Apache-2.0"},
		{"gpl3", "GNU GENERAL PUBLIC LICENSE\nVersion 3, 29 June 2007\n", "GPL-3.0"},
		{"gpl2", "GNU GENERAL PUBLIC LICENSE\nVersion 2, June 1991\n", "GPL-2.0"},
		{"bsd", "BSD 3-Clause License\n", "BSD-3-Clause"},
		{"unrecognized", "Do whatever you want.\n", "MIT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeFile(t, root, "LICENSE", tt.content)

			e := engineFor(t, root)
			assert.Equal(t, tt.want, e.inferLicense())
		})
	}
}

func TestInferLicense_NoFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.py", "pass\n")

	e := engineFor(t, root)
	assert.Equal(t, "MIT", e.inferLicense())
}

func TestInferLicense_LowercaseFilename(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "license.txt", "mit license\n")

	e := engineFor(t, root)
	assert.Equal(t, "MIT", e.inferLicense())
}
