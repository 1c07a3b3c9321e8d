package scaffold

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcpbuilder/mcpbuilder/internal/validator"
)

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("weather-server"))
	assert.NoError(t, ValidateName("my_server_2"))
	assert.Error(t, ValidateName("bad name"))
	assert.Error(t, ValidateName("no/slashes"))
	assert.Error(t, ValidateName(""))
}

func TestCreateProjectRendersAllFiles(t *testing.T) {
	dir := t.TempDir()

	projectDir, err := CreateProject(Params{
		Name:        "weather-server",
		Description: "Weather lookups for agents",
	}, dir, hclog.NewNullLogger())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "weather-server"), projectDir)

	for _, name := range []string{"server.py", "pyproject.toml", "README.md", ".env.example", ".gitignore"} {
		_, err := os.Stat(filepath.Join(projectDir, name))
		assert.NoError(t, err, name)
	}

	server, err := os.ReadFile(filepath.Join(projectDir, "server.py"))
	require.NoError(t, err)
	assert.Contains(t, string(server), `mcp = FastMCP("weather-server")`)

	pyproject, err := os.ReadFile(filepath.Join(projectDir, "pyproject.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(pyproject), `description = "Weather lookups for agents"`)
}

func TestCreateProjectRefusesExistingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "taken"), 0o755))

	_, err := CreateProject(Params{Name: "taken"}, dir, hclog.NewNullLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestCreateProjectRejectsBadName(t *testing.T) {
	_, err := CreateProject(Params{Name: "not a name"}, t.TempDir(), hclog.NewNullLogger())
	assert.Error(t, err)
}

// The scaffolded server must pass its own validation without findings.
func TestScaffoldedServerValidatesCleanly(t *testing.T) {
	projectDir, err := CreateProject(Params{
		Name:        "demo-server",
		Description: "A FastMCP server",
	}, t.TempDir(), hclog.NewNullLogger())
	require.NoError(t, err)

	run := validator.New(filepath.Join(projectDir, "server.py"), false, hclog.NewNullLogger())
	res := run.Execute(context.Background())

	assert.True(t, res.Passed)
	assert.Empty(t, res.Findings)
}
