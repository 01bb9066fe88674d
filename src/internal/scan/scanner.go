// Package scan walks a project tree once, classifies every file and
// aggregates the statistics a README needs: counts, languages, manifests,
// dependencies, configuration and documentation files.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"readme-gen/src/internal/common"
	"readme-gen/src/internal/registry"
)

// Analysis is the aggregate produced by one scan. It is built up during a
// single traversal and never mutated afterwards.
type Analysis struct {
	ProjectName   string              `json:"project_name"`
	FileCount     int                 `json:"total_files"`
	LineCount     int                 `json:"total_lines"`
	FileTypes     map[string]int      `json:"file_types"` // extension -> count
	Languages     []string            `json:"languages"`  // sorted, no duplicates
	Directories   []string            `json:"directories"` // top-level directory names
	ManifestFiles []string            `json:"manifest_files"` // manifest filenames in discovery order
	Dependencies  map[string][]string `json:"dependencies"` // ecosystem -> dependency names, capped
	NpmScripts    map[string]string   `json:"npm_scripts,omitempty"`
	ConfigFiles   []string            `json:"config_files"` // known config filenames, deduplicated
	TestFileCount int                 `json:"test_files"`
	DocFiles      []string            `json:"doc_files"`
	Structure     []string            `json:"structure"` // annotated top-level structure preview
}

// generatedOutputRe matches timestamp-suffixed output files (scan reports,
// prior README backups) that are skipped in the structure preview.
var generatedOutputRe = regexp.MustCompile(`.*_\d{8}_\d{6}\.(csv|json|txt|md)$`)

// Scanner performs project tree analysis. ExtraExcludeDirs extends the
// registry's noise directory set.
type Scanner struct {
	ExtraExcludeDirs []string
}

func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan analyzes the project tree rooted at root. It fails fast when root
// does not exist or is not a directory; after that, no single unreadable
// file or malformed manifest aborts the scan.
func (s *Scanner) Scan(root string) (*Analysis, error) {
	root, err := common.ValidateAndGetWorkingDir(root)
	if err != nil {
		return nil, fmt.Errorf("invalid project root: %w", err)
	}

	analysis := &Analysis{
		ProjectName:  filepath.Base(root),
		FileTypes:    make(map[string]int),
		Dependencies: make(map[string][]string),
	}

	languages := make(map[string]bool)
	configSeen := make(map[string]bool)

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries, keep walking
		}
		if d.IsDir() {
			if path != root && s.isExcludedDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		// Noise components at any depth exclude the file outright
		if rel, relErr := filepath.Rel(root, path); relErr == nil && s.hasExcludedComponent(rel) {
			return nil
		}

		analysis.FileCount++
		analysis.LineCount += common.CountLines(path)

		name := d.Name()
		// filepath.Ext(".gitignore") is ".gitignore"; a dotfile whose only
		// dot is the leading one has no extension
		if ext := strings.ToLower(filepath.Ext(name)); ext != "" && ext != strings.ToLower(name) {
			analysis.FileTypes[ext]++
		}

		tags := Classify(path)
		if tags.Language != "" {
			languages[tags.Language] = true
		}
		if tags.Test {
			analysis.TestFileCount++
		}
		if tags.Doc {
			analysis.DocFiles = append(analysis.DocFiles, name)
		}
		if tags.Config && !configSeen[name] {
			configSeen[name] = true
			analysis.ConfigFiles = append(analysis.ConfigFiles, name)
		}
		if tags.Ecosystem != "" {
			analysis.ManifestFiles = append(analysis.ManifestFiles, name)
			s.mergeManifest(analysis, path, name, tags.Ecosystem)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk project tree: %w", err)
	}

	for lang := range languages {
		analysis.Languages = append(analysis.Languages, lang)
	}
	sort.Strings(analysis.Languages)

	s.buildTopLevel(root, analysis)

	return analysis, nil
}

// mergeManifest extracts dependencies from one manifest file and merges
// them under the ecosystem key. The first populated manifest per ecosystem
// wins; later files never overwrite it.
func (s *Scanner) mergeManifest(analysis *Analysis, path, name, ecosystem string) {
	content, err := common.SafeReadFile(path)
	if err != nil {
		logrus.Debugf("skipping unreadable manifest %s: %v", name, err)
		return
	}

	if name == "package.json" && analysis.NpmScripts == nil {
		analysis.NpmScripts = ExtractNpmScripts(content)
	}

	if existing, ok := analysis.Dependencies[ecosystem]; ok && len(existing) > 0 {
		return
	}
	analysis.Dependencies[ecosystem] = ExtractDependencies(name, content)
}

// buildTopLevel fills Directories and the annotated Structure preview from
// a single sorted, non-recursive listing of root.
func (s *Scanner) buildTopLevel(root string, analysis *Analysis) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || s.isExcludedDir(name) {
			continue
		}
		if entry.IsDir() {
			analysis.Directories = append(analysis.Directories, name)
			count := s.countFiles(filepath.Join(root, name))
			analysis.Structure = append(analysis.Structure, fmt.Sprintf("%s/ (%d files)", name, count))
			continue
		}
		if generatedOutputRe.MatchString(name) {
			continue
		}
		analysis.Structure = append(analysis.Structure, name)
	}
}

// countFiles counts regular files under dir, excluding noise subtrees
func (s *Scanner) countFiles(dir string) int {
	count := 0
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != dir && s.isExcludedDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		count++
		return nil
	})
	return count
}

func (s *Scanner) isExcludedDir(name string) bool {
	if registry.IsNoiseDirectory(name) {
		return true
	}
	for _, extra := range s.ExtraExcludeDirs {
		if name == extra {
			return true
		}
	}
	return false
}

func (s *Scanner) hasExcludedComponent(relPath string) bool {
	for _, part := range strings.Split(filepath.ToSlash(relPath), "/") {
		if s.isExcludedDir(part) {
			return true
		}
	}
	return false
}

// Scan analyzes root with a default Scanner.
func Scan(root string) (*Analysis, error) {
	return NewScanner().Scan(root)
}
