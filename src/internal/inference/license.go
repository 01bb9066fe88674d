package inference

import (
	"path/filepath"
	"strings"

	"readme-gen/src/internal/common"
)

var licenseFileNames = []string{"LICENSE", "LICENSE.txt", "LICENSE.md", "license", "license.txt"}

// inferLicense matches fixed phrase signatures against the first 20 lines
// of a license file, in priority order. No file or no match defaults to MIT.
func (e *Engine) inferLicense() string {
	for _, name := range licenseFileNames {
		path := filepath.Join(e.root, name)
		if !common.FileExists(path) {
			continue
		}
		content := strings.ToLower(common.ReadFileSample(path, 20))

		switch {
		case strings.Contains(content, "mit license"):
			return "MIT"
		case strings.Contains(content, "apache") && strings.Contains(content, "2.0"):
			return "Apache-2.0"
		case strings.Contains(content, "gnu general public license"):
			if strings.Contains(content, "version 3") {
				return "GPL-3.0"
			}
			if strings.Contains(content, "version 2") {
				return "GPL-2.0"
			}
			// GPL without a recognizable version falls through to the default
		case strings.Contains(content, "bsd"):
			return "BSD-3-Clause"
		}
	}
	return "MIT"
}
