package validator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcpbuilder/mcpbuilder/internal/findings"
)

const cleanServer = `from fastmcp import FastMCP

mcp = FastMCP("demo-server")


@mcp.tool()
async def greet(name: str) -> str:
    """Greet a user by name."""
    return f"Hello, {name}!"


if __name__ == "__main__":
    mcp.run()
`

const untidyServer = `from fastmcp import FastMCP

mcp = FastMCP("demo")


@mcp.tool()
def shout(text) -> str:
    return text.upper()
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server.py")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, content string, strict bool) *Result {
	t.Helper()
	run := New(writeTemp(t, content), strict, hclog.NewNullLogger())
	return run.Execute(context.Background())
}

func TestParserGateProducesSingleErrorFinding(t *testing.T) {
	res := execute(t, "def broken(:\n    pass\n", false)

	require.Len(t, res.Findings, 1)
	assert.Equal(t, findings.SeverityError, res.Findings[0].Severity)
	assert.Contains(t, res.Findings[0].Message, "syntax error")
	assert.False(t, res.Passed)
}

func TestMissingFileFailsWithSingleFinding(t *testing.T) {
	run := New(filepath.Join(t.TempDir(), "nope.py"), false, hclog.NewNullLogger())
	res := run.Execute(context.Background())

	require.Len(t, res.Findings, 1)
	assert.Equal(t, findings.SeverityError, res.Findings[0].Severity)
	assert.Contains(t, res.Findings[0].Message, "File not found")
	assert.False(t, res.Passed)
}

func TestCleanServerPasses(t *testing.T) {
	res := execute(t, cleanServer, false)

	assert.Empty(t, res.Findings)
	assert.True(t, res.Passed)
}

func TestMissingImportAndInitFails(t *testing.T) {
	res := execute(t, "print('hello')\n", false)

	assert.Equal(t, 2, res.Count(findings.SeverityError))
	assert.False(t, res.Passed)
}

func TestNoHandlersYieldsSingleWarning(t *testing.T) {
	source := `from fastmcp import FastMCP

mcp = FastMCP("demo")

if __name__ == "__main__":
    mcp.run()
`
	res := execute(t, source, false)

	assert.Equal(t, 0, res.Count(findings.SeverityError))
	require.Equal(t, 1, res.Count(findings.SeverityWarning))
	assert.Contains(t, res.Findings[0].Message, "No tools, resources, or prompts")
	assert.True(t, res.Passed)
}

func TestVerdictEqualsZeroErrorCount(t *testing.T) {
	for _, source := range []string{cleanServer, untidyServer, "print('x')\n", "def broken(:\n"} {
		res := execute(t, source, false)
		assert.Equal(t, res.Count(findings.SeverityError) == 0, res.Passed)
	}
}

func TestDeterministicFindingOrder(t *testing.T) {
	path := writeTemp(t, untidyServer)

	first := New(path, true, hclog.NewNullLogger()).Execute(context.Background())
	second := New(path, true, hclog.NewNullLogger()).Execute(context.Background())

	assert.Equal(t, first.Findings, second.Findings)
}

// Strict mode yields a superset of the non-strict findings; the extra
// elements are exactly the info-severity ones, in place.
func TestStrictModeIsSupersetOfNonStrict(t *testing.T) {
	path := writeTemp(t, untidyServer)

	loose := New(path, false, hclog.NewNullLogger()).Execute(context.Background())
	strict := New(path, true, hclog.NewNullLogger()).Execute(context.Background())

	for _, f := range loose.Findings {
		assert.NotEqual(t, findings.SeverityInfo, f.Severity)
	}

	var strictWithoutInfo []findings.Finding
	for _, f := range strict.Findings {
		if f.Severity != findings.SeverityInfo {
			strictWithoutInfo = append(strictWithoutInfo, f)
		}
	}
	assert.Equal(t, loose.Findings, strictWithoutInfo)
	assert.Greater(t, len(strict.Findings), len(loose.Findings))
}
