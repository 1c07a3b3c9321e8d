package report

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/mcpbuilder/mcpbuilder/internal/findings"
	"github.com/mcpbuilder/mcpbuilder/internal/validator"
)

const informationURI = "https://github.com/mcpbuilder/mcpbuilder"

// BuildSarif converts a validation result into a SARIF 2.1.0 report with one
// result per finding and one reporting descriptor per validator rule.
func BuildSarif(res *validator.Result) (*sarif.Report, error) {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI("mcpbuilder", informationURI)
	run.Properties = sarif.Properties{"runId": uuid.New().String()}

	for _, f := range res.Findings {
		rule := run.AddRule(ruleID(f)).
			WithDefaultConfiguration(&sarif.ReportingConfiguration{
				Level: toSarifLevel(f.Severity),
			})

		physical := sarif.NewPhysicalLocation().
			WithArtifactLocation(sarif.NewArtifactLocation().WithUri(res.FilePath))
		if f.Line > 0 {
			physical = physical.WithRegion(sarif.NewRegion().WithStartLine(f.Line))
		}
		location := sarif.NewLocation().WithPhysicalLocation(physical)

		result := sarif.NewRuleResult(rule.ID).
			WithMessage(sarif.NewTextMessage(f.Message)).
			WithLevel(toSarifLevel(f.Severity)).
			WithLocations([]*sarif.Location{location})
		run.AddResult(result)
	}
	report.AddRun(run)

	return report, nil
}

// WriteSarifFile builds the SARIF report and writes it to outputPath.
func WriteSarifFile(res *validator.Result, outputPath string) error {
	report, err := BuildSarif(res)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("error writing SARIF report: %w", err)
	}
	defer func() { _ = file.Close() }()

	return report.PrettyWrite(file)
}

func ruleID(f findings.Finding) string {
	if f.Rule == "" {
		return "validator"
	}
	return f.Rule
}

func toSarifLevel(severity findings.Severity) string {
	switch severity {
	case findings.SeverityError:
		return "error"
	case findings.SeverityWarning:
		return "warning"
	default:
		return "note"
	}
}
