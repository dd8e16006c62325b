package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/nguyentantai21042004/linesplit/internal/splitter"
)

type Config struct {
	Splitter    SplitterConfig    `yaml:"splitter"`
	Cleaning    CleaningConfig    `yaml:"cleaning"`
	Punctuation PunctuationConfig `yaml:"punctuation"`
	Output      OutputConfig      `yaml:"output"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type SplitterConfig struct {
	MinRecursiveLength  int `yaml:"min_recursive_length"`
	MaxDepth            int `yaml:"max_depth"`
	MaxDegradationRound int `yaml:"max_degradation_round"`
	LengthThreshold     int `yaml:"length_threshold"`

	// Extra words appended to the built-in lists.
	Conjunctions  ConjunctionsConfig `yaml:"conjunctions"`
	FixedPhrases  []string           `yaml:"fixed_phrases"`
	Abbreviations []string           `yaml:"abbreviations"`
}

type ConjunctionsConfig struct {
	High   []string `yaml:"high"`
	Medium []string `yaml:"medium"`
	Low    []string `yaml:"low"`
}

type CleaningConfig struct {
	Enabled bool `yaml:"enabled"`
	// Steps lists the cleaning steps to run; empty means all of them.
	Steps []string `yaml:"steps"`
}

type PunctuationConfig struct {
	Backend string   `yaml:"backend"`
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
	Model   string   `yaml:"model"`
	// APIKeyEnv names the environment variable holding comma-separated Gemini keys.
	APIKeyEnv string `yaml:"api_key_env"`
}

type OutputConfig struct {
	Formats        []string `yaml:"formats"`
	CharsPerSecond float64  `yaml:"chars_per_second"`
	MinCueSeconds  float64  `yaml:"min_cue_seconds"`
	CueGapMillis   int      `yaml:"cue_gap_millis"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
	MaxAge int    `yaml:"max_age"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
	Workers       int `yaml:"workers"`
}

const (
	BackendNone    = "none"
	BackendCommand = "command"
	BackendGemini  = "gemini"
)

var knownFormats = map[string]bool{"txt": true, "srt": true, "docx": true}

func (c *Config) Validate() error {
	c.fillSplitterDefaults()
	if err := c.SplitterOptions().Validate(); err != nil {
		return fmt.Errorf("splitter: %w", err)
	}

	switch c.Punctuation.Backend {
	case "":
		c.Punctuation.Backend = BackendNone
	case BackendNone, BackendGemini:
	case BackendCommand:
		if c.Punctuation.Command == "" {
			return fmt.Errorf("punctuation.command is required for the command backend")
		}
	default:
		return fmt.Errorf("punctuation.backend %q is not supported", c.Punctuation.Backend)
	}
	if c.Punctuation.Model == "" {
		c.Punctuation.Model = "gemini-2.5-flash"
	}
	if c.Punctuation.APIKeyEnv == "" {
		c.Punctuation.APIKeyEnv = "GEMINI_API_KEYS"
	}

	if len(c.Output.Formats) == 0 {
		c.Output.Formats = []string{"txt"}
	}
	for i, f := range c.Output.Formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if !knownFormats[f] {
			return fmt.Errorf("output.formats: unknown format %q", f)
		}
		c.Output.Formats[i] = f
	}
	if c.Output.CharsPerSecond < 0 || c.Output.MinCueSeconds < 0 || c.Output.CueGapMillis < 0 {
		return fmt.Errorf("output timing values must not be negative")
	}
	if c.Output.CharsPerSecond == 0 {
		c.Output.CharsPerSecond = 15
	}
	if c.Output.MinCueSeconds == 0 {
		c.Output.MinCueSeconds = 1
	}

	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Logging.MaxAge == 0 {
		c.Logging.MaxAge = 7
	}

	if c.Performance.MaxConcurrent < 0 || c.Performance.Workers < 0 {
		return fmt.Errorf("performance values must not be negative")
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Performance.Workers == 0 {
		c.Performance.Workers = 4
	}

	return nil
}

func (c *Config) fillSplitterDefaults() {
	d := splitter.DefaultOptions()
	if c.Splitter.MinRecursiveLength == 0 {
		c.Splitter.MinRecursiveLength = d.MinRecursiveLength
	}
	if c.Splitter.MaxDepth == 0 {
		c.Splitter.MaxDepth = d.MaxDepth
	}
	if c.Splitter.MaxDegradationRound == 0 {
		c.Splitter.MaxDegradationRound = d.MaxDegradationRound
	}
	if c.Splitter.LengthThreshold == 0 {
		c.Splitter.LengthThreshold = d.LengthThreshold
	}
}

// SplitterOptions converts the splitter section.
func (c *Config) SplitterOptions() splitter.Options {
	return splitter.Options{
		MinRecursiveLength:  c.Splitter.MinRecursiveLength,
		MaxDepth:            c.Splitter.MaxDepth,
		MaxDegradationRound: c.Splitter.MaxDegradationRound,
		LengthThreshold:     c.Splitter.LengthThreshold,
	}
}

// Vocabulary returns the built-in word lists extended with the configured ones.
func (c *Config) Vocabulary() splitter.Vocabulary {
	v := splitter.DefaultVocabulary()
	v.High = append(v.High, c.Splitter.Conjunctions.High...)
	v.Medium = append(v.Medium, c.Splitter.Conjunctions.Medium...)
	v.Low = append(v.Low, c.Splitter.Conjunctions.Low...)
	v.FixedPhrases = append(v.FixedPhrases, c.Splitter.FixedPhrases...)
	v.Abbreviations = append(v.Abbreviations, c.Splitter.Abbreviations...)
	return v
}

// APIKeys reads the Gemini keys from the configured environment variable.
func (c *Config) APIKeys() []string {
	var keys []string
	for _, k := range strings.Split(os.Getenv(c.Punctuation.APIKeyEnv), ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
