package inference

import (
	"regexp"
	"strings"

	"readme-gen/src/internal/common"
)

const maxFeatures = 8

var (
	funcDefRe  = regexp.MustCompile(`def\s+([a-z_][a-z0-9_]*)\s*\(`)
	classDefRe = regexp.MustCompile(`class\s+([A-Z][a-zA-Z0-9]*)`)
	camelRe    = regexp.MustCompile(`([A-Z])`)
)

// featureDenylist filters generic function names that say nothing about
// what the project does.
var featureDenylist = map[string]bool{
	"main":  true,
	"run":   true,
	"setup": true,
	"init":  true,
}

// featureIndicators maps content keywords to canned feature sentences,
// checked in this order.
var featureIndicators = []struct {
	keyword string
	feature string
}{
	{"export", "Data export to multiple formats"},
	{"import", "Data import from various sources"},
	{"csv", "CSV file processing"},
	{"json", "JSON data handling"},
	{"api", "RESTful API integration"},
	{"database", "Database connectivity"},
	{"threading", "Multi-threaded processing"},
	{"async", "Asynchronous operations"},
	{"logging", "Comprehensive logging system"},
	{"config", "Configurable settings"},
	{"cli", "Command-line interface"},
	{"gui", "Graphical user interface"},
	{"report", "Report generation"},
	{"scan", "Network/system scanning"},
	{"monitor", "Real-time monitoring"},
	{"visualization", "Data visualization"},
}

var placeholderFeatures = []string{
	"Core functionality implementation",
	"Easy-to-use interface",
	"Extensible architecture",
}

// inferFeatures builds the feature list from public function names, class
// names and content keywords of the main files, deduplicated in first-seen
// order and capped at eight.
func (e *Engine) inferFeatures() []string {
	var features []string
	seen := make(map[string]bool)
	add := func(feature string) {
		if !seen[feature] {
			seen[feature] = true
			features = append(features, feature)
		}
	}

	var contents []string
	for _, path := range e.findMainFiles() {
		contents = append(contents, common.ReadFileSample(path, 0))
	}

	// Public function names, humanized from snake_case
	for _, content := range contents {
		count := 0
		for _, match := range funcDefRe.FindAllStringSubmatch(content, -1) {
			name := match[1]
			if strings.HasPrefix(name, "_") || featureDenylist[name] {
				continue
			}
			add(titleWords(strings.ReplaceAll(name, "_", " ")))
			if count++; count == 5 {
				break
			}
		}
	}

	// Class names, humanized from CamelCase
	for _, content := range contents {
		count := 0
		for _, match := range classDefRe.FindAllStringSubmatch(content, -1) {
			readable := strings.TrimSpace(camelRe.ReplaceAllString(match[1], " $1"))
			add(readable + " implementation")
			if count++; count == 3 {
				break
			}
		}
	}

	// Keyword-triggered generic features over the combined content
	combined := strings.ToLower(strings.Join(contents, " "))
	for _, indicator := range featureIndicators {
		if strings.Contains(combined, indicator.keyword) {
			add(indicator.feature)
		}
	}

	if len(features) == 0 {
		return append([]string(nil), placeholderFeatures...)
	}
	if len(features) > maxFeatures {
		features = features[:maxFeatures]
	}
	return features
}

// titleWords uppercases the first letter of each space-separated word
func titleWords(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
