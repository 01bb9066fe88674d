package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file with any needed parent directories.
func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestScan_InvalidRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "afile")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	_, err = Scan(file)
	assert.Error(t, err)
}

func TestScan_CountsAndLanguages(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.py", "print('hi')\n")
	writeFile(t, root, "web/app.js", "console.log('hi');\n")
	writeFile(t, root, "web/style.css", "body {}\n")
	writeFile(t, root, "main.py.bak~", "old\n") // no language, still counted

	analysis, err := Scan(root)
	require.NoError(t, err)

	assert.Equal(t, filepath.Base(root), analysis.ProjectName)
	assert.Equal(t, 4, analysis.FileCount)
	assert.Equal(t, 4, analysis.LineCount)
	assert.Equal(t, []string{"CSS", "JavaScript", "Python"}, analysis.Languages)
	assert.Equal(t, 1, analysis.FileTypes[".py"])
	assert.Equal(t, 1, analysis.FileTypes[".js"])
}

func TestScan_DotfilesHaveNoExtension(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".gitignore", "venv/\n")
	writeFile(t, root, ".env", "API_KEY=x\n")
	writeFile(t, root, ".env.example", "API_KEY=\n")
	writeFile(t, root, "main.py", "print('hi')\n")

	analysis, err := Scan(root)
	require.NoError(t, err)

	assert.NotContains(t, analysis.FileTypes, ".gitignore")
	assert.NotContains(t, analysis.FileTypes, ".env")
	// a dotfile with a second dot does carry a suffix
	assert.Equal(t, 1, analysis.FileTypes[".example"])
	assert.Equal(t, 1, analysis.FileTypes[".py"])
	assert.Equal(t, 4, analysis.FileCount)
}

func TestScan_NoiseExcludedAtAnyDepth(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.py", "print('hi')\n")
	writeFile(t, root, "node_modules/lib/index.js", "x\n")
	writeFile(t, root, "src/__pycache__/main.cpython-39.pyc", "x\n")
	writeFile(t, root, "src/util.py", "x = 1\n")

	analysis, err := Scan(root)
	require.NoError(t, err)

	assert.Equal(t, 2, analysis.FileCount)
	assert.Equal(t, []string{"Python"}, analysis.Languages)
	assert.NotContains(t, analysis.Directories, "node_modules")
}

func TestScan_ExtraExcludeDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.py", "print('hi')\n")
	writeFile(t, root, "fixtures/huge.sql", "select 1;\n")

	scanner := NewScanner()
	scanner.ExtraExcludeDirs = []string{"fixtures"}
	analysis, err := scanner.Scan(root)
	require.NoError(t, err)

	assert.Equal(t, 1, analysis.FileCount)
	assert.NotContains(t, analysis.Languages, "SQL")
}

func TestScan_TestAndDocAndConfig(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.py", "print('hi')\n")
	writeFile(t, root, "foo_test.py", "def test_foo(): pass\n")
	writeFile(t, root, "tests/helpers.py", "pass\n")
	writeFile(t, root, "CHANGELOG.md", "# changes\n")
	writeFile(t, root, "README.md", "# project\n")
	writeFile(t, root, "Dockerfile", "FROM python\n")
	writeFile(t, root, "sub/Dockerfile", "FROM node\n")

	analysis, err := Scan(root)
	require.NoError(t, err)

	assert.Equal(t, 2, analysis.TestFileCount)
	assert.Contains(t, analysis.DocFiles, "CHANGELOG.md")
	assert.NotContains(t, analysis.DocFiles, "README.md")
	// config filenames are deduplicated across directories
	assert.Equal(t, []string{"Dockerfile"}, analysis.ConfigFiles)
}

func TestScan_FirstPopulatedManifestWins(t *testing.T) {
	root := t.TempDir()
	// Walk order is lexical: a/requirements.txt before b/requirements.txt
	writeFile(t, root, "a/requirements.txt", "flask==2.0.1\n")
	writeFile(t, root, "b/requirements.txt", "django==4.0\n")

	analysis, err := Scan(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"flask"}, analysis.Dependencies["Python"])
}

func TestScan_EmptyManifestDoesNotBlockLater(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a/requirements.txt", "# nothing pinned yet\n")
	writeFile(t, root, "b/requirements.txt", "requests\n")

	analysis, err := Scan(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"requests"}, analysis.Dependencies["Python"])
}

func TestScan_NpmScriptsCaptured(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", `{
		"dependencies": {"express": "^4.18.0"},
		"scripts": {"start": "node index.js"}
	}`)

	analysis, err := Scan(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"express"}, analysis.Dependencies["Node.js"])
	assert.Equal(t, "node index.js", analysis.NpmScripts["start"])
}

func TestScan_StructurePreview(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.py", "print('hi')\n")
	writeFile(t, root, "src/a.py", "pass\n")
	writeFile(t, root, "src/b.py", "pass\n")
	writeFile(t, root, ".hidden", "x\n")
	writeFile(t, root, "scan_20240101_120000.csv", "a,b\n")
	writeFile(t, root, "README.backup_20240101_120000.md", "old\n")

	analysis, err := Scan(root)
	require.NoError(t, err)

	assert.Contains(t, analysis.Structure, "main.py")
	assert.Contains(t, analysis.Structure, "src/ (2 files)")
	assert.NotContains(t, analysis.Structure, ".hidden")
	assert.NotContains(t, analysis.Structure, "scan_20240101_120000.csv")
	assert.NotContains(t, analysis.Structure, "README.backup_20240101_120000.md")
	// generated outputs are still counted as files
	assert.Equal(t, 6, analysis.FileCount)
}

func TestScan_Idempotent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.py", "print('hi')\n")
	writeFile(t, root, "lib/util.js", "x\n")
	writeFile(t, root, "requirements.txt", "flask==2.0\nrequests\n")

	first, err := Scan(root)
	require.NoError(t, err)
	second, err := Scan(root)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
