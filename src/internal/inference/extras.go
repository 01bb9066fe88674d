package inference

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"readme-gen/src/internal/common"
)

// screenshotDirs are conventional image-asset locations
var screenshotDirs = []string{"screenshots", "images", "docs/images", "assets/images"}

// detectScreenshots reports whether a conventional image directory exists
// and holds at least one .png or .jpg file.
func (e *Engine) detectScreenshots() bool {
	for _, dir := range screenshotDirs {
		path := filepath.Join(e.root, filepath.FromSlash(dir))
		if !common.DirExists(path) {
			continue
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			ext := strings.ToLower(filepath.Ext(entry.Name()))
			if !entry.IsDir() && (ext == ".png" || ext == ".jpg") {
				return true
			}
		}
	}
	return false
}

// ackFrameworks maps requirements.txt dependency names to acknowledgment
// phrases, checked in this order.
var ackFrameworks = []struct {
	dep    string
	phrase string
}{
	{"flask", "Built with Flask framework"},
	{"django", "Built with Django framework"},
	{"fastapi", "Built with FastAPI framework"},
	{"numpy", "Built with NumPy library"},
	{"pandas", "Built with Pandas library"},
	{"tensorflow", "Built with TensorFlow"},
	{"pytorch", "Built with PyTorch"},
	{"scikit-learn", "Built with Scikit-learn"},
}

// ackFrontend maps package.json dependency keys to acknowledgment phrases
var ackFrontend = []struct {
	dep    string
	phrase string
}{
	{"react", "Built with React"},
	{"vue", "Built with Vue.js"},
	{"express", "Powered by Express.js"},
}

// inferAcknowledgments appends a canned phrase for every known framework
// found in the dependency manifests, bullet-joined.
func (e *Engine) inferAcknowledgments() string {
	var acks []string

	if reqPath := filepath.Join(e.root, "requirements.txt"); common.FileExists(reqPath) {
		content := strings.ToLower(common.ReadFileSample(reqPath, 0))
		for _, fw := range ackFrameworks {
			if strings.Contains(content, fw.dep) {
				acks = append(acks, fw.phrase)
			}
		}
	}

	// Read the runtime dependency map directly; the analysis list is capped
	// and includes devDependencies, which must not trigger acknowledgments.
	if content, err := common.SafeReadFile(filepath.Join(e.root, "package.json")); err == nil {
		var pkg struct {
			Dependencies map[string]string `json:"dependencies"`
		}
		if json.Unmarshal(content, &pkg) == nil {
			for _, fw := range ackFrontend {
				if _, ok := pkg.Dependencies[fw.dep]; ok {
					acks = append(acks, fw.phrase)
				}
			}
		}
	}

	return strings.Join(acks, " • ")
}
