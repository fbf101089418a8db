package fest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRunConfig_ValidYAML(t *testing.T) {
	yaml := `
input: data/jugglefest.txt
output: data/output.txt
log_level: debug
report:
  circuit: C1970
  summary: false
trace:
  level: decisions
`
	cfg, err := LoadRunConfig(writeTempYAML(t, yaml))
	require.NoError(t, err)

	assert.Equal(t, "data/jugglefest.txt", cfg.Input)
	assert.Equal(t, "data/output.txt", cfg.Output)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "C1970", cfg.Report.Circuit)
	require.NotNil(t, cfg.Report.Summary)
	assert.False(t, *cfg.Report.Summary)
	assert.Equal(t, "decisions", cfg.Trace.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoadRunConfig_UnsetFieldsStayEmpty(t *testing.T) {
	cfg, err := LoadRunConfig(writeTempYAML(t, "input: in.txt\n"))
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Output)
	assert.Nil(t, cfg.Report.Summary, "unset summary must be distinguishable from false")
	assert.NoError(t, cfg.Validate())
}

func TestLoadRunConfig_UnknownFieldRejected(t *testing.T) {
	_, err := LoadRunConfig(writeTempYAML(t, "inptu: typo.txt\n"))
	assert.Error(t, err)
}

func TestLoadRunConfig_NonexistentFile(t *testing.T) {
	_, err := LoadRunConfig("/nonexistent/run.yaml")
	assert.Error(t, err)
}

func TestLoadRunConfig_MalformedYAML(t *testing.T) {
	_, err := LoadRunConfig(writeTempYAML(t, "{{invalid yaml"))
	assert.Error(t, err)
}

func TestRunConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     RunConfig
		wantErr bool
	}{
		{"zero value", RunConfig{}, false},
		{"trace none", RunConfig{Trace: TraceConfig{Level: "none"}}, false},
		{"unknown trace level", RunConfig{Trace: TraceConfig{Level: "verbose"}}, true},
		{"valid log level", RunConfig{LogLevel: "warn"}, false},
		{"invalid log level", RunConfig{LogLevel: "loud"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
