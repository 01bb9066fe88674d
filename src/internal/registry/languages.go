// Package registry holds the static tables that drive file classification:
// extension-to-language mapping, manifest ecosystems, known config files and
// the noise directories excluded from every scan.
package registry

import "strings"

// Extension to human-readable language name mapping
var extensionToLanguage = map[string]string{
	".py":     "Python",
	".js":     "JavaScript",
	".ts":     "TypeScript",
	".jsx":    "React (JSX)",
	".tsx":    "React (TypeScript)",
	".java":   "Java",
	".cpp":    "C++",
	".c":      "C",
	".h":      "C/C++ Header",
	".cs":     "C#",
	".php":    "PHP",
	".rb":     "Ruby",
	".go":     "Go",
	".rs":     "Rust",
	".swift":  "Swift",
	".kt":     "Kotlin",
	".scala":  "Scala",
	".r":      "R",
	".m":      "MATLAB/Objective-C",
	".lua":    "Lua",
	".pl":     "Perl",
	".sh":     "Shell Script",
	".bash":   "Bash",
	".html":   "HTML",
	".css":    "CSS",
	".scss":   "SCSS",
	".sass":   "Sass",
	".less":   "Less",
	".sql":    "SQL",
	".vue":    "Vue.js",
	".svelte": "Svelte",
	".dart":   "Dart",
	".xml":    "XML",
	".json":   "JSON",
	".yaml":   "YAML",
	".yml":    "YAML",
	".md":     "Markdown",
	".tex":    "LaTeX",
}

// Manifest filename to ecosystem name mapping. A filename maps to at most
// one ecosystem.
var manifestEcosystems = map[string]string{
	"requirements.txt":  "Python",
	"setup.py":          "Python",
	"pyproject.toml":    "Python",
	"Pipfile":           "Python",
	"environment.yml":   "Conda",
	"package.json":      "Node.js",
	"package-lock.json": "Node.js",
	"yarn.lock":         "Yarn",
	"pnpm-lock.yaml":    "pnpm",
	"Gemfile":           "Ruby",
	"Gemfile.lock":      "Ruby",
	"pom.xml":           "Maven (Java)",
	"build.gradle":      "Gradle (Java)",
	"Cargo.toml":        "Rust",
	"go.mod":            "Go",
	"go.sum":            "Go",
	"composer.json":     "PHP",
	"Podfile":           "iOS/CocoaPods",
	"pubspec.yaml":      "Dart/Flutter",
}

// Known tooling configuration filenames
var configFiles = map[string]bool{
	".gitignore":         true,
	".dockerignore":      true,
	"Dockerfile":         true,
	"docker-compose.yml": true,
	".env.example":       true,
	".eslintrc":          true,
	".prettierrc":        true,
	"tsconfig.json":      true,
	"webpack.config.js":  true,
	"vite.config.js":     true,
	".babelrc":           true,
	"jest.config.js":     true,
	"pytest.ini":         true,
	"tox.ini":            true,
	".flake8":            true,
	"mypy.ini":           true,
	"setup.cfg":          true,
}

// Directories excluded from every count, set and listing. Version-control
// metadata, dependency caches, build output, editor state and coverage dirs.
var noiseDirectories = map[string]bool{
	".git":         true,
	"node_modules": true,
	"__pycache__":  true,
	"venv":         true,
	".venv":        true,
	"dist":         true,
	"build":        true,
	"target":       true,
	".idea":        true,
	".vscode":      true,
	"coverage":     true,
}

// Extensions that qualify a file as documentation
var docExtensions = map[string]bool{
	".md":  true,
	".rst": true,
	".txt": true,
}

// Uppercased filenames never counted as generic documentation
var reservedDocNames = map[string]bool{
	"LICENSE":   true,
	"README.MD": true,
}

// LanguageByExtension returns the display name for a lowercased extension
func LanguageByExtension(ext string) (string, bool) {
	name, ok := extensionToLanguage[ext]
	return name, ok
}

// ManifestEcosystem returns the ecosystem a manifest filename belongs to
func ManifestEcosystem(filename string) (string, bool) {
	eco, ok := manifestEcosystems[filename]
	return eco, ok
}

// IsManifestFile checks if a filename is a known dependency manifest
func IsManifestFile(filename string) bool {
	_, ok := manifestEcosystems[filename]
	return ok
}

// IsConfigFile checks if a filename is a known tooling config file.
// Any name with the ".env" prefix also qualifies.
func IsConfigFile(filename string) bool {
	return configFiles[filename] || strings.HasPrefix(filename, ".env")
}

// IsNoiseDirectory checks if a directory name is excluded from analysis
func IsNoiseDirectory(name string) bool {
	return noiseDirectories[name]
}

// IsDocExtension checks if a lowercased extension marks documentation
func IsDocExtension(ext string) bool {
	return docExtensions[ext]
}

// IsReservedDocName checks if an uppercased filename is excluded from the
// documentation listing (the license file and the primary README itself)
func IsReservedDocName(upperName string) bool {
	return reservedDocNames[upperName]
}

// NoiseDirectories returns a copy of the excluded directory names
func NoiseDirectories() []string {
	names := make([]string, 0, len(noiseDirectories))
	for name := range noiseDirectories {
		names = append(names, name)
	}
	return names
}

// SupportedExtensions returns all extensions with a language mapping
func SupportedExtensions() []string {
	exts := make([]string, 0, len(extensionToLanguage))
	for ext := range extensionToLanguage {
		exts = append(exts, ext)
	}
	return exts
}
