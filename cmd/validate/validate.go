package validate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mcpbuilder/mcpbuilder/internal/report"
	"github.com/mcpbuilder/mcpbuilder/internal/validator"
	"github.com/mcpbuilder/mcpbuilder/pkg/shared/config"
	"github.com/mcpbuilder/mcpbuilder/pkg/shared/errors"
	"github.com/mcpbuilder/mcpbuilder/pkg/shared/files"
	"github.com/mcpbuilder/mcpbuilder/pkg/shared/logger"
)

// RunOptionsValidate holds the arguments for the validate command.
type RunOptionsValidate struct {
	Strict       bool
	ReportFormat string
	OutputPath   string
}

// Global variables for configuration and command arguments
var (
	AppConfig       *config.Config
	validateOptions RunOptionsValidate

	exampleValidateUsage = `  # Validating a FastMCP server file
  mcpbuilder validate server.py

  # Validating with info-level findings included
  mcpbuilder validate server.py --strict

  # Writing a SARIF report next to the console verdict
  mcpbuilder validate server.py --format sarif --output server.sarif`
)

// ValidateCmd represents the validate command.
var ValidateCmd = &cobra.Command{
	Use:                   "validate [--strict] [--format/-f FORMAT] [--output/-o PATH] FILE",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleValidateUsage,
	Short:                 "Statically validate a FastMCP server file",
	Long: `Statically validate a FastMCP server file for structural and stylistic
defects: missing imports or server initialization, decorator problems, type
hint gaps, await/async mismatches, and context parameter misuse. The exit
code is 0 when no error-severity finding exists, 1 otherwise.`,
	RunE: runValidateCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runValidateCommand executes the validate command.
func runValidateCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !hasFlags(cmd.Flags()) {
		return cmd.Help()
	}

	log := logger.NewLogger(AppConfig, "core-validate")

	if err := validateValidateArgs(&validateOptions, AppConfig, args); err != nil {
		log.Error("invalid validate arguments", "error", err)
		return err
	}

	targetPath, err := files.ExpandPath(args[0])
	if err != nil {
		return fmt.Errorf("failed to expand target path: %w", err)
	}

	run := validator.New(targetPath, validateOptions.Strict, log)
	result := run.Execute(cmd.Context())

	report.WriteConsole(os.Stdout, result)

	if validateOptions.ReportFormat == report.FormatSarif {
		if err := report.WriteSarifFile(result, validateOptions.OutputPath); err != nil {
			log.Error("failed to write SARIF report", "error", err)
			return err
		}
		log.Info("SARIF report written", "path", validateOptions.OutputPath)
	}

	if !result.Passed {
		// the report already told the full story; only the code matters
		return errors.NewCommandError("validation failed", 1)
	}
	return nil
}

// hasFlags reports whether any flag was set on the command line.
func hasFlags(flags *pflag.FlagSet) bool {
	changed := false
	flags.Visit(func(*pflag.Flag) { changed = true })
	return changed
}

// Initialize flags for the validate command.
func init() {
	ValidateCmd.Flags().BoolVar(&validateOptions.Strict, "strict", false, "Enable strict mode (also report info-level findings).")
	ValidateCmd.Flags().StringVarP(&validateOptions.ReportFormat, "format", "f", "", "Report format to produce in addition to the verdict (console or sarif).")
	ValidateCmd.Flags().StringVarP(&validateOptions.OutputPath, "output", "o", "", "Path for the SARIF report when --format sarif is used.")
	ValidateCmd.Flags().BoolP("help", "h", false, "Show help for the validate command.")
}
