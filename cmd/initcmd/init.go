package initcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcpbuilder/mcpbuilder/internal/scaffold"
	"github.com/mcpbuilder/mcpbuilder/pkg/shared/config"
	"github.com/mcpbuilder/mcpbuilder/pkg/shared/files"
	"github.com/mcpbuilder/mcpbuilder/pkg/shared/logger"
)

// RunOptionsInit holds the arguments for the init command.
type RunOptionsInit struct {
	TargetDir   string
	Description string
}

var (
	AppConfig   *config.Config
	initOptions RunOptionsInit

	exampleInitUsage = `  # Creating a new FastMCP server project
  mcpbuilder init weather-server

  # Creating a project in a specific directory with a description
  mcpbuilder init github-mcp --dir ~/projects --description "GitHub API integration"`
)

// InitCmd represents the init command.
var InitCmd = &cobra.Command{
	Use:                   "init [--dir/-d DIR] [--description TEXT] SERVER_NAME",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleInitUsage,
	Short:                 "Create a new FastMCP server project from templates",
	RunE:                  runInitCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runInitCommand executes the init command.
func runInitCommand(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("a server name must be specified")
	}

	log := logger.NewLogger(AppConfig, "core-init")

	targetDir, err := files.ExpandPath(initOptions.TargetDir)
	if err != nil {
		return fmt.Errorf("failed to expand target directory: %w", err)
	}

	projectDir, err := scaffold.CreateProject(scaffold.Params{
		Name:        args[0],
		Description: initOptions.Description,
	}, targetDir, log)
	if err != nil {
		log.Error("failed to create project", "error", err)
		return err
	}

	fmt.Printf("Created FastMCP server project: %s\n\n", projectDir)
	fmt.Println("Next steps:")
	fmt.Printf("  cd %s\n", projectDir)
	fmt.Println("  pip install -e .")
	fmt.Println("  mcpbuilder validate server.py")
	return nil
}

// Initialize flags for the init command.
func init() {
	InitCmd.Flags().StringVarP(&initOptions.TargetDir, "dir", "d", ".", "Directory to create the server project in.")
	InitCmd.Flags().StringVar(&initOptions.Description, "description", "A FastMCP server", "Short project description used in pyproject.toml.")
	InitCmd.Flags().BoolP("help", "h", false, "Show help for the init command.")
}
