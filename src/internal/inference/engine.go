// Package inference derives descriptive project metadata from weak,
// heuristic signals: docstrings, manifests, git configuration, filenames.
// Every field is resolved through an ordered fallback chain; exhausting a
// chain yields a defined placeholder, never an error.
package inference

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"readme-gen/src/internal/common"
	"readme-gen/src/internal/registry"
	"readme-gen/src/internal/scan"
)

// Metadata holds the inferred README fields. JSON tags match the sidecar
// file format, so a stored readme_info.json round-trips unchanged.
type Metadata struct {
	Description     string   `json:"description"`
	Features        []string `json:"features"`
	RunCommand      string   `json:"run_command"`
	AdditionalUsage string   `json:"additional_usage"`
	InstallNotes    string   `json:"install_notes"`
	AuthorName      string   `json:"author_name"`
	GithubUsername  string   `json:"github_username"`
	Email           string   `json:"email"`
	RepoName        string   `json:"repo_name"`
	License         string   `json:"license"`
	HasScreenshots  bool     `json:"has_screenshots"`
	ScreenshotNote  string   `json:"screenshot_note"`
	Acknowledgments string   `json:"acknowledgments"`
	ProjectType     string   `json:"project_type,omitempty"`
}

// Engine runs the inference battery against one project root and the
// aggregate its scan produced. All methods are pure reads of the tree.
type Engine struct {
	root     string
	analysis *scan.Analysis

	mainFiles     []string
	mainFilesOnce bool
}

func NewEngine(root string, analysis *scan.Analysis) *Engine {
	return &Engine{root: root, analysis: analysis}
}

// Infer fills every metadata field through its fallback chain.
func (e *Engine) Infer() *Metadata {
	return &Metadata{
		Description:     e.inferDescription(),
		Features:        e.inferFeatures(),
		RunCommand:      e.inferRunCommand(),
		AdditionalUsage: e.inferUsageNotes(),
		InstallNotes:    e.inferInstallNotes(),
		AuthorName:      e.inferAuthorName(),
		GithubUsername:  e.inferGithubUsername(),
		Email:           e.inferEmail(),
		RepoName:        e.inferRepoName(),
		License:         e.inferLicense(),
		HasScreenshots:  e.detectScreenshots(),
		Acknowledgments: e.inferAcknowledgments(),
		ProjectType:     e.inferProjectType(),
	}
}

// Infer runs a fresh engine against root and its scan result.
func Infer(root string, analysis *scan.Analysis) *Metadata {
	return NewEngine(root, analysis).Infer()
}

// mainFilePriority lists conventional entry-point filenames, most likely
// first.
var mainFilePriority = []string{
	"main.py", "app.py", "run.py", "server.py",
	"index.py", "__main__.py", "manage.py",
}

// findMainFiles returns the project's prioritized entry-point candidates:
// conventional names at the root, else up to five other root source files.
// Test-like and underscore-prefixed files never qualify.
func (e *Engine) findMainFiles() []string {
	if e.mainFilesOnce {
		return e.mainFiles
	}
	e.mainFilesOnce = true

	for _, name := range mainFilePriority {
		path := filepath.Join(e.root, name)
		if common.FileExists(path) {
			e.mainFiles = append(e.mainFiles, path)
		}
	}
	if len(e.mainFiles) > 0 {
		return e.mainFiles
	}

	entries, err := os.ReadDir(e.root)
	if err != nil {
		return nil
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".py") {
			continue
		}
		if strings.HasPrefix(name, "_") || name == "setup.py" {
			continue
		}
		if strings.Contains(strings.ToLower(name), "test") {
			continue
		}
		e.mainFiles = append(e.mainFiles, filepath.Join(e.root, name))
		if len(e.mainFiles) == 5 {
			break
		}
	}
	return e.mainFiles
}

// sourceFileNames returns the lowercased names of all non-noise source
// files under root, for keyword-based structure inference.
func (e *Engine) sourceFileNames() []string {
	var names []string
	filepath.WalkDir(e.root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != e.root && registry.IsNoiseDirectory(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), ".py") {
			names = append(names, strings.ToLower(d.Name()))
		}
		return nil
	})
	sort.Strings(names)
	return names
}
