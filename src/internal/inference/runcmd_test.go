package inference

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferRunCommand_NpmStart(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", `{"scripts": {"start": "node index.js"}}`)

	e := engineFor(t, root)
	assert.Equal(t, "npm start", e.inferRunCommand())
}

func TestInferRunCommand_NpmDev(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", `{"scripts": {"dev": "vite"}}`)

	e := engineFor(t, root)
	assert.Equal(t, "npm run dev", e.inferRunCommand())
}

func TestInferRunCommand_EntryFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "app.py", "print('hi')\n")

	e := engineFor(t, root)
	assert.Equal(t, "python app.py", e.inferRunCommand())
}

func TestInferRunCommand_Manage(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "manage.py", "import django\n")

	e := engineFor(t, root)
	assert.Equal(t, "python manage.py runserver", e.inferRunCommand())
}

func TestInferRunCommand_ScriptMarker(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "tool.py", "if __name__ == '__main__':\n    pass\n")

	e := engineFor(t, root)
	assert.Equal(t, "python tool.py", e.inferRunCommand())
}

func TestInferRunCommand_SetupPy(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "setup.py", "from setuptools import setup\nsetup(name='pkg')\n")

	e := engineFor(t, root)
	assert.Equal(t, "python setup.py install && "+strings.ToLower(e.analysis.ProjectName), e.inferRunCommand())
}

func TestInferRunCommand_Fallback(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "notes.md", "# notes\n")

	e := engineFor(t, root)
	assert.Equal(t, "python main.py  # Adjust as needed", e.inferRunCommand())
}

func TestInferUsageNotes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.py", `import argparse

parser = argparse.ArgumentParser()
config = load_config()
`)

	e := engineFor(t, root)
	notes := e.inferUsageNotes()
	assert.Contains(t, notes, "Run with --help to see all available options")
	assert.Contains(t, notes, "Configure settings in the config file before running")
}

func TestInferInstallNotes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "requirements.txt", "opencv-python==4.8\nscapy>=2.5\n")
	writeFile(t, root, "Dockerfile", "FROM python:3.11\n")
	writeFile(t, root, ".env.example", "API_KEY=\n")

	e := engineFor(t, root)
	notes := e.inferInstallNotes()
	assert.Contains(t, notes, "OpenCV system libraries required")
	assert.Contains(t, notes, "May require root/admin privileges for network scanning")
	assert.Contains(t, notes, "Docker available for containerized deployment")
	assert.Contains(t, notes, "Copy .env.example to .env and configure environment variables")
}
