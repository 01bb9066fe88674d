// Package sidecar persists inferred metadata as readme_info.json in the
// project root so a later run (or a manual edit) can override fresh
// inference.
package sidecar

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"readme-gen/src/internal/inference"
)

// FileName is the sidecar document stored in the project root
const FileName = "readme_info.json"

// MergePolicy selects how stored metadata combines with fresh inference.
type MergePolicy string

const (
	// MergeTrust takes every field the sidecar defines over the fresh value
	MergeTrust MergePolicy = "trust"
	// MergeIgnore discards the sidecar entirely
	MergeIgnore MergePolicy = "ignore"
	// MergeDefaults uses sidecar values only where inference came up empty
	MergeDefaults MergePolicy = "defaults"
)

// ParsePolicy validates a policy name from a flag value.
func ParsePolicy(name string) (MergePolicy, error) {
	switch MergePolicy(name) {
	case MergeTrust, MergeIgnore, MergeDefaults:
		return MergePolicy(name), nil
	default:
		return "", fmt.Errorf("unknown merge policy %q (want trust, ignore or defaults)", name)
	}
}

// Load reads the sidecar from the project root. A missing file returns
// (nil, nil); a malformed file returns an error.
func Load(root string) (*inference.Metadata, error) {
	data, err := os.ReadFile(filepath.Join(root, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var meta inference.Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &meta, nil
}

// Save writes metadata to the sidecar in the project root.
func Save(root string, meta *inference.Metadata) (string, error) {
	path := filepath.Join(root, FileName)

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", FileName, err)
	}
	return path, nil
}

// Merge combines stored sidecar metadata with freshly inferred metadata
// under the given policy. The result is always a new value; neither input
// is mutated.
func Merge(fresh, stored *inference.Metadata, policy MergePolicy) *inference.Metadata {
	if fresh == nil {
		fresh = &inference.Metadata{}
	}
	merged := *fresh
	if stored == nil || policy == MergeIgnore {
		return &merged
	}

	switch policy {
	case MergeTrust:
		takeString(&merged.Description, stored.Description)
		if len(stored.Features) > 0 {
			merged.Features = append([]string(nil), stored.Features...)
		}
		takeString(&merged.RunCommand, stored.RunCommand)
		takeString(&merged.AdditionalUsage, stored.AdditionalUsage)
		takeString(&merged.InstallNotes, stored.InstallNotes)
		takeString(&merged.AuthorName, stored.AuthorName)
		takeString(&merged.GithubUsername, stored.GithubUsername)
		takeString(&merged.Email, stored.Email)
		takeString(&merged.RepoName, stored.RepoName)
		takeString(&merged.License, stored.License)
		// Save always writes the field, so the stored value is taken as-is;
		// a stored false overrides a fresh true
		merged.HasScreenshots = stored.HasScreenshots
		takeString(&merged.ScreenshotNote, stored.ScreenshotNote)
		takeString(&merged.Acknowledgments, stored.Acknowledgments)
		takeString(&merged.ProjectType, stored.ProjectType)
	case MergeDefaults:
		fillString(&merged.Description, stored.Description)
		if len(merged.Features) == 0 && len(stored.Features) > 0 {
			merged.Features = append([]string(nil), stored.Features...)
		}
		fillString(&merged.RunCommand, stored.RunCommand)
		fillString(&merged.AdditionalUsage, stored.AdditionalUsage)
		fillString(&merged.InstallNotes, stored.InstallNotes)
		fillString(&merged.AuthorName, stored.AuthorName)
		fillString(&merged.GithubUsername, stored.GithubUsername)
		fillString(&merged.Email, stored.Email)
		fillString(&merged.RepoName, stored.RepoName)
		fillString(&merged.License, stored.License)
		if !merged.HasScreenshots {
			merged.HasScreenshots = stored.HasScreenshots
		}
		fillString(&merged.ScreenshotNote, stored.ScreenshotNote)
		fillString(&merged.Acknowledgments, stored.Acknowledgments)
		fillString(&merged.ProjectType, stored.ProjectType)
	}
	return &merged
}

// takeString overwrites dst when the stored value is defined
func takeString(dst *string, stored string) {
	if stored != "" {
		*dst = stored
	}
}

// fillString sets dst only when the fresh value is empty
func fillString(dst *string, stored string) {
	if *dst == "" && stored != "" {
		*dst = stored
	}
}
