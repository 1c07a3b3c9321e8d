package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"text/template"

	"github.com/hashicorp/go-hclog"
)

//go:embed templates
var templates embed.FS

// Params customizes the generated project.
type Params struct {
	Name        string
	Description string
}

// projectFiles maps output names to their embedded templates, in creation
// order.
var projectFiles = []struct {
	Output   string
	Template string
}{
	{"server.py", "templates/server.py.tmpl"},
	{"pyproject.toml", "templates/pyproject.toml.tmpl"},
	{"README.md", "templates/README.md.tmpl"},
	{".env.example", "templates/env.example.tmpl"},
	{".gitignore", "templates/gitignore.tmpl"},
}

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidateName enforces the server-name charset.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("server name %q must contain only letters, numbers, hyphens, and underscores", name)
	}
	return nil
}

// CreateProject renders the embedded project templates into
// targetDir/<name> and returns the created directory. The target must not
// exist yet. The generated server file is expected to pass validation as-is.
func CreateProject(params Params, targetDir string, logger hclog.Logger) (string, error) {
	if err := ValidateName(params.Name); err != nil {
		return "", err
	}

	projectDir := filepath.Join(targetDir, params.Name)
	if _, err := os.Stat(projectDir); err == nil {
		return "", fmt.Errorf("directory %q already exists", projectDir)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to check target directory: %w", err)
	}
	if err := os.MkdirAll(projectDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create project directory: %w", err)
	}

	for _, pf := range projectFiles {
		if err := renderTemplate(pf.Template, filepath.Join(projectDir, pf.Output), params); err != nil {
			return "", err
		}
		logger.Debug("created project file", "file", pf.Output)
	}

	logger.Info("created FastMCP server project", "name", params.Name, "dir", projectDir)
	return projectDir, nil
}

func renderTemplate(src, dst string, params Params) error {
	t, err := template.ParseFS(templates, src)
	if err != nil {
		return fmt.Errorf("failed to parse template %q: %w", src, err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", dst, err)
	}
	defer f.Close()

	if err := t.Execute(f, params); err != nil {
		return fmt.Errorf("failed to render %q: %w", dst, err)
	}
	return nil
}
