package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/linesplit/internal/splitter"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "empty config gets defaults",
			config: Config{},
		},
		{
			name: "command backend without command",
			config: Config{
				Punctuation: PunctuationConfig{Backend: BackendCommand},
			},
			wantErr: true,
		},
		{
			name: "unknown backend",
			config: Config{
				Punctuation: PunctuationConfig{Backend: "lstm"},
			},
			wantErr: true,
		},
		{
			name: "unknown output format",
			config: Config{
				Output: OutputConfig{Formats: []string{"txt", "pdf"}},
			},
			wantErr: true,
		},
		{
			name: "degradation round out of range",
			config: Config{
				Splitter: SplitterConfig{MaxDegradationRound: 9},
			},
			wantErr: true,
		},
		{
			name: "negative depth",
			config: Config{
				Splitter: SplitterConfig{MaxDepth: -1},
			},
			wantErr: true,
		},
		{
			name: "negative workers",
			config: Config{
				Performance: PerformanceConfig{Workers: -2},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	var cfg Config
	require.NoError(t, cfg.Validate())

	assert.Equal(t, splitter.DefaultOptions(), cfg.SplitterOptions())
	assert.Equal(t, BackendNone, cfg.Punctuation.Backend)
	assert.Equal(t, []string{"txt"}, cfg.Output.Formats)
	assert.Equal(t, "data/archived", cfg.Paths.Archived)
	assert.Equal(t, "data/temp", cfg.Paths.Temp)
	assert.Equal(t, 2, cfg.Performance.MaxConcurrent)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestValidateInvalidSplitterWrapsSentinel(t *testing.T) {
	cfg := Config{Splitter: SplitterConfig{LengthThreshold: -5}}
	assert.ErrorIs(t, cfg.Validate(), splitter.ErrInvalidConfig)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
splitter:
  min_recursive_length: 60
  max_depth: 4
  length_threshold: 72
  conjunctions:
    high: ["otherwise"]

cleaning:
  steps: ["bom", "whitespace"]

punctuation:
  backend: "command"
  command: "./restore-punct"
  args: ["--lang", "en"]

output:
  formats: ["TXT", "srt"]
  chars_per_second: 12

paths:
  input: "data/input"
  output: "data/output"

logging:
  level: "debug"
  format: "text"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.Splitter.MinRecursiveLength)
	assert.Equal(t, 4, cfg.Splitter.MaxDepth)
	assert.Equal(t, splitter.DefaultMaxDegradationRound, cfg.Splitter.MaxDegradationRound)
	assert.True(t, cfg.Cleaning.Enabled)
	assert.Equal(t, []string{"bom", "whitespace"}, cfg.Cleaning.Steps)
	assert.Equal(t, []string{"--lang", "en"}, cfg.Punctuation.Args)
	assert.Equal(t, []string{"txt", "srt"}, cfg.Output.Formats)
	assert.Equal(t, 12.0, cfg.Output.CharsPerSecond)
	assert.Equal(t, "data/input", cfg.Paths.Input)
	assert.Contains(t, cfg.Vocabulary().High, "otherwise")
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Cleaning.Enabled)
	assert.Equal(t, "data/output", cfg.Paths.Output)
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	assert.Error(t, err)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("splitter: [1, 2"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestAPIKeys(t *testing.T) {
	t.Setenv("TEST_LINESPLIT_KEYS", " k1, ,k2 ")
	cfg := Config{Punctuation: PunctuationConfig{APIKeyEnv: "TEST_LINESPLIT_KEYS"}}

	assert.Equal(t, []string{"k1", "k2"}, cfg.APIKeys())
}
