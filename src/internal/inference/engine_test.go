package inference

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readme-gen/src/internal/scan"
)

func TestFindMainFiles_PriorityNames(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.py", "pass\n")
	writeFile(t, root, "app.py", "pass\n")
	writeFile(t, root, "other.py", "pass\n")

	e := engineFor(t, root)
	assert.Equal(t, []string{
		filepath.Join(root, "main.py"),
		filepath.Join(root, "app.py"),
	}, e.findMainFiles())
}

func TestFindMainFiles_FallbackExcludesTestsAndSetup(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "processor.py", "pass\n")
	writeFile(t, root, "foo_test.py", "pass\n")
	writeFile(t, root, "setup.py", "pass\n")
	writeFile(t, root, "_internal.py", "pass\n")

	e := engineFor(t, root)
	assert.Equal(t, []string{filepath.Join(root, "processor.py")}, e.findMainFiles())
}

func TestInfer_FillsEveryField(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.py", `"""Fetches weather data. Renders simple charts."""

import csv

def fetch_weather(city):
    pass
`)
	writeFile(t, root, "requirements.txt", "requests==2.31\n")
	writeFile(t, root, "LICENSE", "MIT License\n")

	analysis, err := scan.Scan(root)
	require.NoError(t, err)
	meta := Infer(root, analysis)

	assert.Equal(t, "Fetches weather data. Renders simple charts.", meta.Description)
	assert.Contains(t, meta.Features, "Fetch Weather")
	assert.Equal(t, "python main.py", meta.RunCommand)
	assert.Equal(t, "MIT", meta.License)
	assert.Equal(t, "Python Project", meta.ProjectType)
	assert.NotEmpty(t, meta.AuthorName)
	assert.NotEmpty(t, meta.GithubUsername)
	assert.NotEmpty(t, meta.RepoName)
}
