package render

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"readme-gen/src/internal/registry"
)

// Sample is a code excerpt shown in the generated README.
type Sample struct {
	Filename string
	RelPath  string
	Language string // extension without the dot, used as the fence label
	Content  string
}

// sampleExtensions are searched in priority order
var sampleExtensions = []string{
	".py", ".js", ".jsx", ".ts", ".tsx", ".java", ".cpp",
	".c", ".go", ".rs", ".rb", ".php", ".vue", ".swift",
}

var prioritizedStems = map[string]bool{"main": true, "index": true, "app": true}

const (
	maxSamples       = 3
	minSampleBytes   = 100
	maxSampleBytes   = 10000
	sampleExcerptLen = 1500
)

// CollectSamples gathers up to three representative source files from the
// project: entry-point-like names preferred, noise directories excluded,
// bodies between 100 and 10000 bytes, excerpted to 1500 characters.
func CollectSamples(root string) []Sample {
	var samples []Sample

	for _, ext := range sampleExtensions {
		if len(samples) >= maxSamples {
			break
		}
		filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				if path != root && registry.IsNoiseDirectory(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if len(samples) >= maxSamples {
				return filepath.SkipAll
			}
			name := d.Name()
			if !strings.HasSuffix(name, ext) {
				return nil
			}

			stem := strings.TrimSuffix(name, filepath.Ext(name))
			if !prioritizedStems[stem] && len(samples) > 0 {
				return nil
			}

			content, err := os.ReadFile(path)
			if err != nil {
				return nil
			}
			if len(content) <= minSampleBytes || len(content) >= maxSampleBytes {
				return nil
			}

			excerpt := string(content)
			if len(excerpt) > sampleExcerptLen {
				excerpt = excerpt[:sampleExcerptLen]
			}

			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				rel = name
			}
			samples = append(samples, Sample{
				Filename: name,
				RelPath:  filepath.ToSlash(rel),
				Language: strings.TrimPrefix(ext, "."),
				Content:  excerpt,
			})
			return nil
		})
	}

	return samples
}
