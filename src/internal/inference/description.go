package inference

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"readme-gen/src/internal/common"
)

var (
	docstringRe      = regexp.MustCompile(`(?s)(?:"""|''')(.*?)(?:"""|''')`)
	setupDescRe      = regexp.MustCompile(`description\s*=\s*["']([^"']+)["']`)
	readmeCandidates = []string{"README.md", "README.txt", "readme.md"}
)

// inferDescription tries each description source in priority order and
// returns the first non-empty result, unmerged.
func (e *Engine) inferDescription() string {
	candidates := []func() string{
		e.descriptionFromReadme,
		e.descriptionFromDocstring,
		e.descriptionFromPackageJSON,
		e.descriptionFromSetupPy,
		e.descriptionFromStructure,
	}
	for _, candidate := range candidates {
		if desc := candidate(); desc != "" {
			return desc
		}
	}
	return fmt.Sprintf("A %s project", e.analysis.ProjectName)
}

// descriptionFromReadme extracts the first non-heading, non-empty line of
// an existing README, capped at 200 characters.
func (e *Engine) descriptionFromReadme() string {
	for _, name := range readmeCandidates {
		content := common.ReadFileSample(filepath.Join(e.root, name), 20)
		for _, line := range strings.Split(content, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			if len(line) > 200 {
				line = line[:200]
			}
			return line
		}
	}
	return ""
}

// descriptionFromDocstring extracts the first sentence or two of a
// module-level documentation string in a prioritized main file.
func (e *Engine) descriptionFromDocstring() string {
	for _, path := range e.findMainFiles() {
		content := common.ReadFileSample(path, 50)
		match := docstringRe.FindStringSubmatch(content)
		if match == nil {
			continue
		}
		doc := strings.TrimSpace(match[1])
		if doc == "" {
			continue
		}

		var sentences []string
		for _, s := range strings.SplitN(doc, ".", 3) {
			s = strings.TrimSpace(s)
			if s != "" {
				sentences = append(sentences, s)
			}
			if len(sentences) == 2 {
				break
			}
		}
		if len(sentences) > 0 {
			return strings.Join(sentences, ". ") + "."
		}
	}
	return ""
}

func (e *Engine) descriptionFromPackageJSON() string {
	content, err := common.SafeReadFile(filepath.Join(e.root, "package.json"))
	if err != nil {
		return ""
	}
	var pkg struct {
		Description string `json:"description"`
	}
	if err := json.Unmarshal(content, &pkg); err != nil {
		return ""
	}
	return pkg.Description
}

func (e *Engine) descriptionFromSetupPy() string {
	path := filepath.Join(e.root, "setup.py")
	if !common.FileExists(path) {
		return ""
	}
	content := common.ReadFileSample(path, 0)
	if match := setupDescRe.FindStringSubmatch(content); match != nil {
		return match[1]
	}
	return ""
}

// categoryKeywords maps project categories to filename keywords, checked
// in this order.
var categoryKeywords = []struct {
	category string
	terms    []string
}{
	{"web", []string{"flask", "django", "fastapi", "app", "server", "api", "route"}},
	{"data", []string{"data", "analysis", "pandas", "numpy", "visualization", "plot"}},
	{"ml", []string{"model", "train", "predict", "neural", "learning", "ai"}},
	{"automation", []string{"script", "automate", "bot", "scrape", "crawler"}},
	{"network", []string{"network", "scan", "socket", "connection", "ping"}},
	{"gui", []string{"gui", "tkinter", "qt", "window", "interface"}},
	{"cli", []string{"cli", "command", "terminal", "argparse"}},
	{"game", []string{"game", "player", "score", "pygame"}},
	{"security", []string{"security", "encrypt", "decrypt", "hash", "auth"}},
}

var categorySentences = map[string]string{
	"web":        "A web application built with modern frameworks",
	"data":       "A data analysis and visualization tool",
	"ml":         "A machine learning application",
	"automation": "An automation script for streamlining tasks",
}

// descriptionFromStructure infers the project's purpose from its source
// filenames alone. The network+scan combination is checked before the
// generic category order.
func (e *Engine) descriptionFromStructure() string {
	joined := strings.Join(e.sourceFileNames(), " ")

	var detected []string
	for _, ck := range categoryKeywords {
		for _, term := range ck.terms {
			if strings.Contains(joined, term) {
				detected = append(detected, ck.category)
				break
			}
		}
	}

	has := func(category string) bool {
		for _, d := range detected {
			if d == category {
				return true
			}
		}
		return false
	}

	switch {
	case has("network") && strings.Contains(joined, "scan"):
		return "A network scanning and analysis tool"
	case has("web"):
		return categorySentences["web"]
	case has("data"):
		return categorySentences["data"]
	case has("ml"):
		return categorySentences["ml"]
	case has("automation"):
		return categorySentences["automation"]
	case len(detected) > 0:
		return fmt.Sprintf("A %s application", detected[0])
	default:
		return fmt.Sprintf("A Python-based %s application", e.analysis.ProjectName)
	}
}
