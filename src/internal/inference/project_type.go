package inference

import "strings"

// inferProjectType classifies the project by manifest presence combined
// with dependency-name matches, in a fixed priority order.
func (e *Engine) inferProjectType() string {
	files := make(map[string]bool)
	for _, name := range e.analysis.ManifestFiles {
		files[name] = true
	}
	for _, name := range e.analysis.ConfigFiles {
		files[name] = true
	}

	hasDep := func(substr string) bool {
		for _, deps := range e.analysis.Dependencies {
			for _, dep := range deps {
				if strings.Contains(strings.ToLower(dep), substr) {
					return true
				}
			}
		}
		return false
	}

	if files["package.json"] {
		switch {
		case hasDep("react"):
			return "React Application"
		case hasDep("vue"):
			return "Vue.js Application"
		case hasDep("express"):
			return "Node.js/Express Backend"
		case hasDep("next"):
			return "Next.js Application"
		}
		return "Node.js Application"
	}

	if files["requirements.txt"] || files["setup.py"] || files["pyproject.toml"] {
		switch {
		case hasDep("django"):
			return "Django Application"
		case hasDep("flask"):
			return "Flask Application"
		case hasDep("fastapi"):
			return "FastAPI Application"
		}
		return "Python Project"
	}

	if files["Cargo.toml"] {
		return "Rust Project"
	}
	if files["go.mod"] {
		return "Go Project"
	}
	if files["pom.xml"] || files["build.gradle"] {
		return "Java Project"
	}

	return "Software Project"
}
