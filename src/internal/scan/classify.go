package scan

import (
	"path/filepath"
	"strings"

	"readme-gen/src/internal/registry"
)

// FileTags is the classification of a single file. Zero value means the
// file matched nothing.
type FileTags struct {
	Language  string // human-readable language name, empty if unknown extension
	Test      bool
	Doc       bool
	Config    bool
	Ecosystem string // manifest ecosystem, empty if not a dependency manifest
}

// testDirNames are parent directory names that mark their files as tests
var testDirNames = map[string]bool{
	"tests":     true,
	"test":      true,
	"__tests__": true,
}

// Classify tags a single file by its path, name and extension. Absence of
// a match yields the zero FileTags; classification never fails.
func Classify(path string) FileTags {
	name := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(name))
	parent := strings.ToLower(filepath.Base(filepath.Dir(path)))

	var tags FileTags

	if lang, ok := registry.LanguageByExtension(ext); ok {
		tags.Language = lang
	}

	if strings.Contains(strings.ToLower(name), "test") || testDirNames[parent] {
		tags.Test = true
	}

	if registry.IsDocExtension(ext) && !registry.IsReservedDocName(strings.ToUpper(name)) {
		tags.Doc = true
	}

	if eco, ok := registry.ManifestEcosystem(name); ok {
		tags.Ecosystem = eco
	}

	if registry.IsConfigFile(name) {
		tags.Config = true
	}

	return tags
}
