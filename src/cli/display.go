package cli

import (
	"fmt"
	"sort"
	"strings"

	"readme-gen/src/internal/inference"
	"readme-gen/src/internal/scan"
)

// printAnalysis renders the analyze command's human-readable report.
func printAnalysis(analysis *scan.Analysis, meta *inference.Metadata) {
	fmt.Printf("Project: %s\n", analysis.ProjectName)
	fmt.Printf("  Files:        %d\n", analysis.FileCount)
	fmt.Printf("  Lines:        %d\n", analysis.LineCount)
	fmt.Printf("  Languages:    %s\n", joinOrNone(analysis.Languages))
	fmt.Printf("  Manifests:    %s\n", joinOrNone(analysis.ManifestFiles))
	fmt.Printf("  Config files: %d\n", len(analysis.ConfigFiles))
	fmt.Printf("  Test files:   %d\n", analysis.TestFileCount)

	if len(analysis.Dependencies) > 0 {
		fmt.Println("  Dependencies:")
		for _, eco := range sortedKeys(analysis.Dependencies) {
			fmt.Printf("    %-12s %d\n", eco, len(analysis.Dependencies[eco]))
		}
	}

	fmt.Println("\nInferred metadata:")
	fmt.Printf("  Type:        %s\n", meta.ProjectType)
	fmt.Printf("  Description: %s\n", meta.Description)
	fmt.Printf("  Run command: %s\n", meta.RunCommand)
	fmt.Printf("  License:     %s\n", meta.License)
	fmt.Printf("  Author:      %s\n", meta.AuthorName)
	if len(meta.Features) > 0 {
		fmt.Println("  Features:")
		for _, feature := range meta.Features {
			fmt.Printf("    - %s\n", feature)
		}
	}
}

// printSummary renders the post-generate recap.
func printSummary(analysis *scan.Analysis, meta *inference.Metadata, path string) {
	fmt.Println("\nSummary:")
	fmt.Printf("  Project:  %s\n", analysis.ProjectName)
	fmt.Printf("  Type:     %s\n", meta.ProjectType)
	fmt.Printf("  Files:    %d\n", analysis.FileCount)
	fmt.Printf("  Lines:    %d\n", analysis.LineCount)
	fmt.Printf("  Languages: %s\n", joinOrNone(analysis.Languages))
	fmt.Printf("  Output:   %s\n", path)
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none detected"
	}
	return strings.Join(items, ", ")
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
