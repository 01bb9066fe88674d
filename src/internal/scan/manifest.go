package scan

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// MaxDependencies caps the number of dependency names kept per manifest
const MaxDependencies = 15

var (
	cargoDepRe     = regexp.MustCompile(`(?m)^(\w+)\s*=`)
	pyprojectDepRe = regexp.MustCompile(`([a-zA-Z0-9_-]+)\s*[=~>]`)
	gemDepRe       = regexp.MustCompile(`(?m)^\s*gem\s+["']([^"']+)`)
	goModDepRe     = regexp.MustCompile(`(?m)^\s*(?:require\s+)?([a-zA-Z0-9][a-zA-Z0-9.\-_]*(?:/[a-zA-Z0-9.\-_~]+)+)\s+v\d`)
)

// ExtractDependencies extracts a best-effort, capped list of dependency
// names from a manifest file. Unknown manifest kinds and malformed content
// yield an empty list; extraction never fails past this boundary.
func ExtractDependencies(filename string, content []byte) []string {
	switch filename {
	case "requirements.txt":
		return extractRequirements(content)
	case "package.json":
		return extractPackageJSON(content)
	case "Cargo.toml":
		return matchDeps(cargoDepRe, content)
	case "pyproject.toml":
		return matchDeps(pyprojectDepRe, content)
	case "Gemfile":
		return matchDeps(gemDepRe, content)
	case "go.mod":
		return matchDeps(goModDepRe, content)
	default:
		return nil
	}
}

// extractRequirements parses a line-oriented requirement list, stripping
// version constraints introduced by ==, >= or ~=.
func extractRequirements(content []byte) []string {
	var deps []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, op := range []string{"==", ">=", "~="} {
			if i := strings.Index(line, op); i >= 0 {
				line = line[:i]
			}
		}
		line = strings.TrimSpace(line)
		if line != "" {
			deps = append(deps, line)
		}
		if len(deps) == MaxDependencies {
			break
		}
	}
	return deps
}

type packageJSON struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Scripts         map[string]string `json:"scripts"`
}

// extractPackageJSON merges runtime and development dependency names,
// key-sorted so repeated scans are byte-identical.
func extractPackageJSON(content []byte) []string {
	var pkg packageJSON
	if err := json.Unmarshal(content, &pkg); err != nil {
		logrus.Warnf("could not parse package.json: %v", err)
		return nil
	}

	merged := make(map[string]bool, len(pkg.Dependencies)+len(pkg.DevDependencies))
	for name := range pkg.Dependencies {
		merged[name] = true
	}
	for name := range pkg.DevDependencies {
		merged[name] = true
	}

	deps := make([]string, 0, len(merged))
	for name := range merged {
		deps = append(deps, name)
	}
	sort.Strings(deps)

	if len(deps) > MaxDependencies {
		deps = deps[:MaxDependencies]
	}
	return deps
}

// ExtractNpmScripts returns the scripts map of a package.json, or nil if
// the file does not parse.
func ExtractNpmScripts(content []byte) map[string]string {
	var pkg packageJSON
	if err := json.Unmarshal(content, &pkg); err != nil {
		return nil
	}
	return pkg.Scripts
}

func matchDeps(re *regexp.Regexp, content []byte) []string {
	matches := re.FindAllSubmatch(content, -1)
	var deps []string
	for _, m := range matches {
		deps = append(deps, string(m[1]))
		if len(deps) == MaxDependencies {
			break
		}
	}
	return deps
}
