package inference

import (
	"os"
	"path/filepath"
	"strings"

	"readme-gen/src/internal/common"
	"readme-gen/src/internal/scan"
)

// runCommandPatterns are entry-point filenames mapped to their invocation,
// checked in order.
var runCommandPatterns = []string{"main.py", "app.py", "run.py", "__main__.py", "manage.py"}

// inferRunCommand detects how the project is started: declared npm
// scripts, conventional entry files, an executed-as-script marker, or an
// installable package.
func (e *Engine) inferRunCommand() string {
	if cmd := e.runCommandFromNpmScripts(); cmd != "" {
		return cmd
	}

	for _, name := range runCommandPatterns {
		if !common.FileExists(filepath.Join(e.root, name)) {
			continue
		}
		if name == "manage.py" {
			return "python manage.py runserver"
		}
		return "python " + name
	}

	if name := e.findScriptEntryPoint(); name != "" {
		return "python " + name
	}

	if common.FileExists(filepath.Join(e.root, "setup.py")) {
		return "python setup.py install && " + strings.ToLower(e.analysis.ProjectName)
	}

	return "python main.py  # Adjust as needed"
}

func (e *Engine) runCommandFromNpmScripts() string {
	scripts := e.analysis.NpmScripts
	if scripts == nil {
		content, err := common.SafeReadFile(filepath.Join(e.root, "package.json"))
		if err != nil {
			return ""
		}
		scripts = scan.ExtractNpmScripts(content)
	}
	if _, ok := scripts["start"]; ok {
		return "npm start"
	}
	if _, ok := scripts["dev"]; ok {
		return "npm run dev"
	}
	return ""
}

// findScriptEntryPoint returns the first top-level source file carrying an
// explicit executed-as-script marker.
func (e *Engine) findScriptEntryPoint() string {
	entries, err := os.ReadDir(e.root)
	if err != nil {
		return ""
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".py") {
			continue
		}
		content := common.ReadFileSample(filepath.Join(e.root, name), 100)
		if strings.Contains(content, "if __name__") {
			return name
		}
	}
	return ""
}

// inferUsageNotes collects usage hints from CLI-framework markers in the
// main files.
func (e *Engine) inferUsageNotes() string {
	var notes []string
	seen := make(map[string]bool)
	add := func(note string) {
		if !seen[note] {
			seen[note] = true
			notes = append(notes, note)
		}
	}

	for _, path := range e.findMainFiles() {
		content := common.ReadFileSample(path, 0)
		if strings.Contains(content, "argparse") || strings.Contains(content, "ArgumentParser") {
			add("Run with --help to see all available options")
		}
		if strings.Contains(content, "click") {
			add("Use --help flag for command documentation")
		}
		if strings.Contains(strings.ToLower(content), "config") {
			add("Configure settings in the config file before running")
		}
	}
	return strings.Join(notes, " | ")
}

// installNoteTriggers map requirements.txt content to system-level
// installation caveats.
var installNoteTriggers = []struct {
	keyword string
	note    string
}{
	{"opencv", "OpenCV system libraries required"},
	{"psycopg2", "PostgreSQL development headers needed"},
	{"mysqlclient", "MySQL development libraries required"},
	{"scapy", "May require root/admin privileges for network scanning"},
}

// inferInstallNotes detects special installation requirements from the
// requirements manifest, Dockerfile and environment files.
func (e *Engine) inferInstallNotes() string {
	var notes []string

	if reqPath := filepath.Join(e.root, "requirements.txt"); common.FileExists(reqPath) {
		content := strings.ToLower(common.ReadFileSample(reqPath, 0))
		for _, trigger := range installNoteTriggers {
			if strings.Contains(content, trigger.keyword) {
				notes = append(notes, trigger.note)
			}
		}
	}

	if common.FileExists(filepath.Join(e.root, "Dockerfile")) {
		notes = append(notes, "Docker available for containerized deployment")
	}

	if common.FileExists(filepath.Join(e.root, ".env.example")) || common.FileExists(filepath.Join(e.root, ".env")) {
		notes = append(notes, "Copy .env.example to .env and configure environment variables")
	}

	return strings.Join(notes, " | ")
}
