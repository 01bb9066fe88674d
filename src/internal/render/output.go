package render

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// WriteReadme writes the rendered content into the project root. An existing
// output file is first renamed to a timestamped backup so nothing is lost.
// The backup name matches the generated-output pattern the scanner skips,
// so it never leaks into a later structure preview.
func WriteReadme(root, outputName, content string) (path string, backup string, err error) {
	path = filepath.Join(root, outputName)

	if _, statErr := os.Stat(path); statErr == nil {
		backupName := fmt.Sprintf("README.backup_%s.md", time.Now().Format("20060102_150405"))
		backup = filepath.Join(root, backupName)
		if err = os.Rename(path, backup); err != nil {
			return "", "", fmt.Errorf("failed to back up existing %s: %w", outputName, err)
		}
	}

	if err = os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", "", fmt.Errorf("failed to write %s: %w", outputName, err)
	}
	return path, backup, nil
}
