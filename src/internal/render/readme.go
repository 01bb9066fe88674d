// Package render turns a project analysis and its inferred metadata into
// a complete README document.
package render

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"readme-gen/src/internal/inference"
	"readme-gen/src/internal/scan"
)

const (
	maxShownScripts    = 5
	maxShownStructure  = 15
	maxShownSamples    = 2
	maxShownDeps       = 10
	sampleDisplayBytes = 600
)

// Render builds the README markdown from the analysis, the (possibly
// merged) metadata and the collected code samples.
func Render(analysis *scan.Analysis, meta *inference.Metadata, samples []Sample) string {
	if meta == nil {
		meta = &inference.Metadata{}
	}
	var b strings.Builder

	b.WriteString(fmt.Sprintf("# %s\n\n", analysis.ProjectName))

	if meta.Description != "" {
		b.WriteString(fmt.Sprintf("> %s\n\n", meta.Description))
	}

	writeBadges(&b, analysis, meta)
	writeTableOfContents(&b, analysis, samples)
	writeOverview(&b, analysis, meta)
	writeScreenshots(&b, meta)
	writeFeatures(&b, meta)
	writeTechnologies(&b, analysis)
	writeInstallation(&b, analysis, meta)
	writeUsage(&b, analysis, meta)
	writeStructure(&b, analysis)
	writeSamples(&b, samples)
	writeDependencies(&b, analysis)
	writeTesting(&b, analysis)
	writeContributing(&b)
	writeLicense(&b, meta)
	writeContact(&b, meta)
	writeAcknowledgments(&b, meta)
	writeSupport(&b)

	b.WriteString(fmt.Sprintf("\n---\n\n*📅 Generated on %s*\n", time.Now().Format("January 2, 2006")))
	return b.String()
}

func writeBadges(b *strings.Builder, analysis *scan.Analysis, meta *inference.Metadata) {
	license := meta.License
	if license == "" {
		license = "MIT"
	}
	// shields.io escapes a literal dash as a double dash
	badge := strings.ReplaceAll(license, "-", "--")
	b.WriteString(fmt.Sprintf("[![License](https://img.shields.io/badge/License-%s-blue.svg)](LICENSE)\n", badge))

	if meta.GithubUsername != "" && meta.RepoName != "" {
		b.WriteString(fmt.Sprintf(
			"[![GitHub Stars](https://img.shields.io/github/stars/%[1]s/%[2]s?style=social)](https://github.com/%[1]s/%[2]s)\n",
			meta.GithubUsername, meta.RepoName))
	}

	if hasLanguage(analysis, "Python") {
		b.WriteString("![Python](https://img.shields.io/badge/Python-3.x-blue.svg)\n")
	}
	if hasAnyLanguage(analysis, "JavaScript", "React (JSX)", "TypeScript") {
		b.WriteString("![JavaScript](https://img.shields.io/badge/JavaScript-ES6+-yellow.svg)\n")
	}
	b.WriteString("\n")
}

func writeTableOfContents(b *strings.Builder, analysis *scan.Analysis, samples []Sample) {
	b.WriteString("## 📑 Table of Contents\n\n")
	b.WriteString("- [Overview](#overview)\n")
	b.WriteString("- [Features](#features)\n")
	b.WriteString("- [Technologies Used](#technologies-used)\n")
	b.WriteString("- [Installation](#installation)\n")
	b.WriteString("- [Usage](#usage)\n")
	b.WriteString("- [Project Structure](#project-structure)\n")
	if len(samples) > 0 {
		b.WriteString("- [Code Examples](#code-examples)\n")
	}
	if len(analysis.Dependencies) > 0 {
		b.WriteString("- [Dependencies](#dependencies)\n")
	}
	b.WriteString("- [Contributing](#contributing)\n")
	b.WriteString("- [License](#license)\n")
	b.WriteString("- [Contact](#contact)\n\n")
}

func writeOverview(b *strings.Builder, analysis *scan.Analysis, meta *inference.Metadata) {
	b.WriteString("## 📊 Overview\n\n")
	if meta.Description != "" {
		b.WriteString(meta.Description + "\n\n")
	}
	projectType := meta.ProjectType
	if projectType == "" {
		projectType = "Software Project"
	}
	b.WriteString(fmt.Sprintf("This %s contains **%d files** with approximately **%s lines of code**.\n\n",
		strings.ToLower(projectType), analysis.FileCount, groupDigits(analysis.LineCount)))
}

func writeScreenshots(b *strings.Builder, meta *inference.Metadata) {
	if !meta.HasScreenshots {
		return
	}
	b.WriteString("### 📸 Screenshots\n\n")
	if meta.ScreenshotNote != "" {
		b.WriteString(fmt.Sprintf("![Screenshot](%s)\n\n", meta.ScreenshotNote))
	} else {
		b.WriteString("<!-- Add your screenshots here -->\n")
		b.WriteString("![Screenshot](path/to/screenshot.png)\n\n")
	}
}

func writeFeatures(b *strings.Builder, meta *inference.Metadata) {
	b.WriteString("## ✨ Features\n\n")
	if len(meta.Features) > 0 {
		for _, feature := range meta.Features {
			b.WriteString(fmt.Sprintf("- ✅ %s\n", feature))
		}
	} else {
		b.WriteString("- Feature 1: Describe your main feature\n")
		b.WriteString("- Feature 2: Another key feature\n")
		b.WriteString("- Feature 3: Additional functionality\n")
	}
	b.WriteString("\n")
}

func writeTechnologies(b *strings.Builder, analysis *scan.Analysis) {
	if len(analysis.Languages) == 0 {
		return
	}
	b.WriteString("## 🛠️ Technologies Used\n\n")
	for _, lang := range analysis.Languages {
		b.WriteString(fmt.Sprintf("- **%s**\n", lang))
	}
	b.WriteString("\n")
}

func writeInstallation(b *strings.Builder, analysis *scan.Analysis, meta *inference.Metadata) {
	b.WriteString("## 🚀 Installation\n\n")
	b.WriteString("### Prerequisites\n\n")

	if hasLanguage(analysis, "Python") {
		b.WriteString("- Python 3.8 or higher\n")
	}
	if hasAnyLanguage(analysis, "JavaScript", "TypeScript", "React (JSX)") {
		b.WriteString("- Node.js 14.x or higher\n")
	}
	if hasLanguage(analysis, "Rust") {
		b.WriteString("- Rust 1.60 or higher\n")
	}
	if hasLanguage(analysis, "Go") {
		b.WriteString("- Go 1.18 or higher\n")
	}
	if meta.InstallNotes != "" {
		b.WriteString(fmt.Sprintf("- %s\n", meta.InstallNotes))
	}

	b.WriteString("\n### Setup\n\n")

	repoURL := fmt.Sprintf("https://github.com/yourusername/%s.git", analysis.ProjectName)
	if meta.GithubUsername != "" && meta.RepoName != "" {
		repoURL = fmt.Sprintf("https://github.com/%s/%s.git", meta.GithubUsername, meta.RepoName)
	}
	b.WriteString(fmt.Sprintf("1. Clone the repository:\n```bash\ngit clone %s\ncd %s\n```\n\n",
		repoURL, analysis.ProjectName))

	if hasManifest(analysis, "requirements.txt") {
		b.WriteString("2. Create a virtual environment (recommended):\n```bash\n" +
			"python -m venv venv\nsource venv/bin/activate  # On Windows: venv\\Scripts\\activate\n```\n\n")
		b.WriteString("3. Install dependencies:\n```bash\npip install -r requirements.txt\n```\n\n")
	}
	if hasManifest(analysis, "package.json") {
		b.WriteString("2. Install dependencies:\n```bash\nnpm install\n# or\nyarn install\n```\n\n")
	}
}

func writeUsage(b *strings.Builder, analysis *scan.Analysis, meta *inference.Metadata) {
	b.WriteString("## 💻 Usage\n\n")

	if meta.RunCommand != "" {
		b.WriteString(fmt.Sprintf("Run the project:\n\n```bash\n%s\n```\n\n", meta.RunCommand))
	}
	if meta.AdditionalUsage != "" {
		b.WriteString(meta.AdditionalUsage + "\n\n")
	}

	if len(analysis.NpmScripts) > 0 {
		b.WriteString("### Available Scripts\n\n")
		names := make([]string, 0, len(analysis.NpmScripts))
		for name := range analysis.NpmScripts {
			names = append(names, name)
		}
		sort.Strings(names)
		if len(names) > maxShownScripts {
			names = names[:maxShownScripts]
		}
		for _, name := range names {
			b.WriteString(fmt.Sprintf("- `npm run %s` - %s\n", name, analysis.NpmScripts[name]))
		}
		b.WriteString("\n")
	}
}

func writeStructure(b *strings.Builder, analysis *scan.Analysis) {
	if len(analysis.Structure) == 0 {
		return
	}
	b.WriteString("## 📁 Project Structure\n\n```\n")
	b.WriteString(analysis.ProjectName + "/\n")
	shown := analysis.Structure
	if len(shown) > maxShownStructure {
		shown = shown[:maxShownStructure]
	}
	for _, item := range shown {
		b.WriteString(fmt.Sprintf("├── %s\n", item))
	}
	if rest := len(analysis.Structure) - maxShownStructure; rest > 0 {
		b.WriteString(fmt.Sprintf("└── ...and %d more\n", rest))
	}
	b.WriteString("```\n\n")
}

func writeSamples(b *strings.Builder, samples []Sample) {
	if len(samples) == 0 {
		return
	}
	b.WriteString("## 📝 Code Examples\n\n")
	if len(samples) > maxShownSamples {
		samples = samples[:maxShownSamples]
	}
	for _, sample := range samples {
		b.WriteString(fmt.Sprintf("### `%s`\n\n", sample.RelPath))
		shown := sample.Content
		truncated := false
		if len(shown) > sampleDisplayBytes {
			shown = shown[:sampleDisplayBytes]
			truncated = true
		}
		b.WriteString(fmt.Sprintf("```%s\n%s\n", sample.Language, shown))
		if truncated {
			b.WriteString("# ...\n")
		}
		b.WriteString("```\n\n")
	}
}

func writeDependencies(b *strings.Builder, analysis *scan.Analysis) {
	if len(analysis.Dependencies) == 0 {
		return
	}
	b.WriteString("## 📦 Dependencies\n\n")
	ecosystems := make([]string, 0, len(analysis.Dependencies))
	for eco := range analysis.Dependencies {
		ecosystems = append(ecosystems, eco)
	}
	sort.Strings(ecosystems)
	for _, eco := range ecosystems {
		deps := analysis.Dependencies[eco]
		b.WriteString(fmt.Sprintf("### %s\n\n", eco))
		shown := deps
		if len(shown) > maxShownDeps {
			shown = shown[:maxShownDeps]
		}
		for _, dep := range shown {
			b.WriteString(fmt.Sprintf("- `%s`\n", dep))
		}
		if rest := len(deps) - maxShownDeps; rest > 0 {
			b.WriteString(fmt.Sprintf("- *...and %d more*\n", rest))
		}
		b.WriteString("\n")
	}
}

func writeTesting(b *strings.Builder, analysis *scan.Analysis) {
	if analysis.TestFileCount == 0 {
		return
	}
	b.WriteString(fmt.Sprintf("## 🧪 Testing\n\nThis project includes **%d test file(s)**.\n\n", analysis.TestFileCount))
	b.WriteString("```bash\n# Run tests (adjust command as needed)\npytest  # For Python\n# or\nnpm test  # For Node.js\n```\n\n")
}

func writeContributing(b *strings.Builder) {
	b.WriteString("## 🤝 Contributing\n\n")
	b.WriteString("Contributions are welcome! Here's how you can help:\n\n")
	b.WriteString("1. Fork the repository\n")
	b.WriteString("2. Create a feature branch (`git checkout -b feature/AmazingFeature`)\n")
	b.WriteString("3. Commit your changes (`git commit -m 'Add some AmazingFeature'`)\n")
	b.WriteString("4. Push to the branch (`git push origin feature/AmazingFeature`)\n")
	b.WriteString("5. Open a Pull Request\n\n")
	b.WriteString("Please make sure to update tests as appropriate and follow the existing code style.\n\n")
}

func writeLicense(b *strings.Builder, meta *inference.Metadata) {
	license := meta.License
	if license == "" {
		license = "MIT"
	}
	b.WriteString(fmt.Sprintf("## 📄 License\n\nThis project is licensed under the %s License - see the [LICENSE](LICENSE) file for details.\n\n", license))
}

func writeContact(b *strings.Builder, meta *inference.Metadata) {
	author := meta.AuthorName
	if author == "" {
		author = "Your Name"
	}
	username := meta.GithubUsername
	if username == "" {
		username = "yourusername"
	}
	b.WriteString(fmt.Sprintf("## 👤 Contact\n\n**%s**\n\n", author))
	b.WriteString(fmt.Sprintf("- GitHub: [@%[1]s](https://github.com/%[1]s)\n", username))
	if meta.Email != "" {
		b.WriteString(fmt.Sprintf("- Email: %s\n", meta.Email))
	}
	b.WriteString("\n")
}

func writeAcknowledgments(b *strings.Builder, meta *inference.Metadata) {
	if meta.Acknowledgments == "" {
		return
	}
	b.WriteString(fmt.Sprintf("## 🙏 Acknowledgments\n\n%s\n\n", meta.Acknowledgments))
}

func writeSupport(b *strings.Builder) {
	b.WriteString("## ⭐ Show your support\n\nGive a ⭐️ if this project helped you!\n\n")
}

func hasLanguage(analysis *scan.Analysis, lang string) bool {
	for _, l := range analysis.Languages {
		if l == lang {
			return true
		}
	}
	return false
}

func hasAnyLanguage(analysis *scan.Analysis, langs ...string) bool {
	for _, lang := range langs {
		if hasLanguage(analysis, lang) {
			return true
		}
	}
	return false
}

func hasManifest(analysis *scan.Analysis, name string) bool {
	for _, m := range analysis.ManifestFiles {
		if m == name {
			return true
		}
	}
	return false
}

// groupDigits formats n with comma thousand separators.
func groupDigits(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
