package common

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MaxSampleLines bounds how much of a file content-dependent analysis reads.
const MaxSampleLines = 500

var sampleLineLimit = MaxSampleLines

// SetSampleLineLimit overrides the default line cap used when ReadFileSample
// is called without an explicit limit. Non-positive values are ignored.
func SetSampleLineLimit(n int) {
	if n > 0 {
		sampleLineLimit = n
	}
}

// SafeReadFile wraps os.ReadFile with consistent error handling
func SafeReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return data, nil
}

// FileExists checks if a path exists using os.Stat, returns false if any error occurs
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// DirExists checks if a path exists and is a directory
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ReadFileSample reads at most maxLines lines from a file, tolerating
// unreadable or binary content by returning an empty string. A maxLines
// of zero or less falls back to the configured default limit.
func ReadFileSample(path string, maxLines int) string {
	if maxLines <= 0 {
		maxLines = sampleLineLimit
	}

	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	var sb strings.Builder
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for i := 0; i < maxLines && scanner.Scan(); i++ {
		sb.WriteString(scanner.Text())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// CountLines counts newline-terminated lines in a file. Unreadable files
// contribute zero lines.
func CountLines(path string) int {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		count++
	}
	return count
}

// ValidateAndGetWorkingDir validates and normalizes a project root path.
// If root is empty, it returns the current working directory.
func ValidateAndGetWorkingDir(root string) (string, error) {
	if root != "" {
		expandedPath, err := ExpandPath(root)
		if err != nil {
			return "", fmt.Errorf("failed to expand path '%s': %w", root, err)
		}

		absPath, err := filepath.Abs(expandedPath)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path for '%s': %w", expandedPath, err)
		}

		if info, err := os.Stat(absPath); err != nil {
			return "", fmt.Errorf("project directory '%s' does not exist: %w", absPath, err)
		} else if !info.IsDir() {
			return "", fmt.Errorf("'%s' is not a directory", absPath)
		}

		return absPath, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	return wd, nil
}

// ExpandPath expands ~ to the user's home directory in file paths.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path, fmt.Errorf("failed to get user home directory: %w", err)
	}

	if path == "~" {
		return homeDir, nil
	}

	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:]), nil
	}

	return path, nil
}
