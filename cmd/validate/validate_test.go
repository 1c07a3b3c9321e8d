package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcpbuilder/mcpbuilder/pkg/shared/config"
)

func TestValidateValidateArgs(t *testing.T) {
	tests := []struct {
		name       string
		options    RunOptionsValidate
		cfg        *config.Config
		args       []string
		wantErr    string
		wantStrict bool
		wantFormat string
	}{
		{
			// valid: mcpbuilder validate server.py
			name:    "target path only",
			args:    []string{"server.py"},
			wantErr: "",
		},
		{
			name:    "no target path",
			args:    []string{},
			wantErr: "a target file path must be specified",
		},
		{
			name:    "multiple target paths",
			args:    []string{"a.py", "b.py"},
			wantErr: "only one target file can be validated per run",
		},
		{
			name:    "sarif format without output",
			options: RunOptionsValidate{ReportFormat: "sarif"},
			args:    []string{"server.py"},
			wantErr: "the 'output' flag must be specified",
		},
		{
			name:       "sarif format with output",
			options:    RunOptionsValidate{ReportFormat: "sarif", OutputPath: "out.sarif"},
			args:       []string{"server.py"},
			wantFormat: "sarif",
		},
		{
			name:    "unsupported format",
			options: RunOptionsValidate{ReportFormat: "xml"},
			args:    []string{"server.py"},
			wantErr: `unsupported report format "xml"`,
		},
		{
			name:       "config supplies strict default",
			cfg:        &config.Config{Validator: config.Validator{Strict: true}},
			args:       []string{"server.py"},
			wantStrict: true,
		},
		{
			name:       "flag format wins over config format",
			options:    RunOptionsValidate{ReportFormat: "console"},
			cfg:        &config.Config{Validator: config.Validator{Format: "sarif"}},
			args:       []string{"server.py"},
			wantFormat: "console",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options := tt.options
			err := validateValidateArgs(&options, tt.cfg, tt.args)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStrict, options.Strict)
			assert.Equal(t, tt.wantFormat, options.ReportFormat)
		})
	}
}
