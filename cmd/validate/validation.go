package validate

import (
	"fmt"

	"github.com/mcpbuilder/mcpbuilder/internal/report"
	"github.com/mcpbuilder/mcpbuilder/pkg/shared/config"
)

// validateValidateArgs validates the arguments provided to the validate
// command and applies config-file defaults where flags were left unset.
// A missing or unreadable target file is deliberately not rejected here: the
// validator reports it as an error finding so the exit-code contract holds.
func validateValidateArgs(options *RunOptionsValidate, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("a target file path must be specified")
	}
	if len(args) > 1 {
		return fmt.Errorf("only one target file can be validated per run")
	}

	if cfg != nil {
		if !options.Strict && cfg.Validator.Strict {
			options.Strict = true
		}
		if options.ReportFormat == "" {
			options.ReportFormat = cfg.Validator.Format
		}
	}

	switch options.ReportFormat {
	case "", report.FormatConsole:
	case report.FormatSarif:
		if options.OutputPath == "" {
			return fmt.Errorf("the 'output' flag must be specified when the sarif format is requested")
		}
	default:
		return fmt.Errorf("unsupported report format %q", options.ReportFormat)
	}
	return nil
}
