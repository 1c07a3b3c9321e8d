package cmd

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcpbuilder/mcpbuilder/cmd/initcmd"
	"github.com/mcpbuilder/mcpbuilder/cmd/validate"
	"github.com/mcpbuilder/mcpbuilder/cmd/version"
	"github.com/mcpbuilder/mcpbuilder/pkg/shared/config"
	"github.com/mcpbuilder/mcpbuilder/pkg/shared/errors"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "mcpbuilder [command]",
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		Short:                 "Mcpbuilder scaffolds and statically validates FastMCP server files.",
		Long: `Mcpbuilder helps with building FastMCP agent-tool servers: it scaffolds new
server projects from templates and validates server files for structural and
stylistic defects before they are run.`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.yml)")
	rootCmd.AddCommand(validate.ValidateCmd)
	rootCmd.AddCommand(initcmd.InitCmd)
	rootCmd.AddCommand(version.NewVersionCmd())
}

// Execute runs the root command and maps the outcome to a process exit code.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		var cmdErr *errors.CommandError
		if stderrors.As(err, &cmdErr) {
			// a failed verdict: the report was already printed
			return cmdErr.ExitCode
		}
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		return 1
	}
	return 0
}

func initConfig() {
	var err error

	if cfgFile == "" {
		cfgFile = "config.yml"
	}
	AppConfig, err = config.NewConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize config: %v\n", err)
		os.Exit(1)
	}
	if err := config.ValidateConfig(AppConfig); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	validate.Init(AppConfig)
	initcmd.Init(AppConfig)
}
