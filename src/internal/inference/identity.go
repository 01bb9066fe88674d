package inference

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"readme-gen/src/internal/common"
)

var (
	setupAuthorRe = regexp.MustCompile(`author\s*=\s*["']([^"']+)["']`)
	setupEmailRe  = regexp.MustCompile(`author_email\s*=\s*["']([^"']+)["']`)

	// Remote URL shapes: generic host[:/]org, https form, scp-like form
	githubUserPatterns = []*regexp.Regexp{
		regexp.MustCompile(`github\.com[:/]([^/\s]+)/`),
		regexp.MustCompile(`url\s*=\s*https://github\.com/([^/\s]+)`),
		regexp.MustCompile(`url\s*=\s*git@github\.com:([^/\s]+)`),
	}
	githubRepoRe = regexp.MustCompile(`github\.com[:/][^/\s]+/([^/\s]+?)(?:\.git)?(?:\s|$)`)
)

// gitConfigValue reads one key from a section of the repository's local
// git configuration, e.g. gitConfigValue("user", "name").
func (e *Engine) gitConfigValue(section, key string) string {
	f, err := os.Open(filepath.Join(e.root, ".git", "config"))
	if err != nil {
		return ""
	}
	defer f.Close()

	inSection := false
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "[") {
			inSection = strings.Trim(line, "[]") == section
			continue
		}
		if !inSection {
			continue
		}
		if k, v, ok := strings.Cut(line, "="); ok && strings.TrimSpace(k) == key {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func (e *Engine) gitConfigContent() string {
	return common.ReadFileSample(filepath.Join(e.root, ".git", "config"), 0)
}

// packageAuthor reads package.json's author field in either its string or
// its {name, email} object form.
func (e *Engine) packageAuthor() (name, email string) {
	content, err := common.SafeReadFile(filepath.Join(e.root, "package.json"))
	if err != nil {
		return "", ""
	}
	var pkg struct {
		Author interface{} `json:"author"`
	}
	if err := json.Unmarshal(content, &pkg); err != nil {
		return "", ""
	}
	switch author := pkg.Author.(type) {
	case string:
		return author, ""
	case map[string]interface{}:
		name, _ = author["name"].(string)
		email, _ = author["email"].(string)
		return name, email
	}
	return "", ""
}

// inferAuthorName resolves the author: git config, then setup.py, then
// package.json, then the local user identity.
func (e *Engine) inferAuthorName() string {
	if name := e.gitConfigValue("user", "name"); name != "" {
		return name
	}

	if setupPath := filepath.Join(e.root, "setup.py"); common.FileExists(setupPath) {
		content := common.ReadFileSample(setupPath, 0)
		if match := setupAuthorRe.FindStringSubmatch(content); match != nil {
			return match[1]
		}
	}

	if name, _ := e.packageAuthor(); name != "" {
		return name
	}

	if user := os.Getenv("USER"); user != "" {
		return user
	}
	if user := os.Getenv("USERNAME"); user != "" {
		return user
	}
	return "Your Name"
}

func (e *Engine) inferEmail() string {
	if email := e.gitConfigValue("user", "email"); email != "" {
		return email
	}

	if setupPath := filepath.Join(e.root, "setup.py"); common.FileExists(setupPath) {
		content := common.ReadFileSample(setupPath, 0)
		if match := setupEmailRe.FindStringSubmatch(content); match != nil {
			return match[1]
		}
	}

	_, email := e.packageAuthor()
	return email
}

func (e *Engine) inferGithubUsername() string {
	content := e.gitConfigContent()
	if content != "" {
		for _, pattern := range githubUserPatterns {
			if match := pattern.FindStringSubmatch(content); match != nil {
				return match[1]
			}
		}
	}
	return "yourusername"
}

func (e *Engine) inferRepoName() string {
	content := e.gitConfigContent()
	if content != "" {
		if match := githubRepoRe.FindStringSubmatch(content); match != nil {
			return match[1]
		}
	}
	return e.analysis.ProjectName
}
