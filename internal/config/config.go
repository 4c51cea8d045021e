package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix namespaces environment overrides, e.g. TRANSCRIBE_RENDER_GAP_THRESHOLD.
const EnvPrefix = "transcribe"

const (
	FormatMarkdown = "markdown"
	FormatDocx     = "docx"

	ConflictFail      = "fail"
	ConflictOverwrite = "overwrite"
	ConflictRename    = "rename"
)

type Config struct {
	YtDlp       YtDlpConfig       `yaml:"ytdlp" envconfig:"ytdlp"`
	Transcriber TranscriberConfig `yaml:"transcriber" envconfig:"transcriber"`
	Render      RenderConfig      `yaml:"render" envconfig:"render"`
	Output      OutputConfig      `yaml:"output" envconfig:"output"`
	Paths       PathsConfig       `yaml:"paths" envconfig:"paths"`
	Logging     LoggingConfig     `yaml:"logging" envconfig:"logging"`
	Performance PerformanceConfig `yaml:"performance" envconfig:"performance"`
}

type YtDlpConfig struct {
	BinaryPath         string `yaml:"binary_path" split_words:"true"`
	AudioFormat        string `yaml:"audio_format" split_words:"true"`
	AudioQuality       string `yaml:"audio_quality" split_words:"true"`
	CookiesFromBrowser string `yaml:"cookies_from_browser" split_words:"true"`
}

type TranscriberConfig struct {
	BinaryPath   string   `yaml:"binary_path" split_words:"true"`
	OutputFormat string   `yaml:"output_format" split_words:"true"`
	ExtraArgs    []string `yaml:"extra_args" split_words:"true"`
}

type RenderConfig struct {
	Timestamps bool `yaml:"timestamps"`
	// GapThreshold is nil when unset; an explicit 0 splits on any silence.
	GapThreshold *float64 `yaml:"gap_threshold" split_words:"true"`
}

const defaultGapThreshold = 1.5

// Gap returns the paragraph gap threshold in seconds.
func (r RenderConfig) Gap() float64 {
	if r.GapThreshold == nil {
		return defaultGapThreshold
	}
	return *r.GapThreshold
}

type OutputConfig struct {
	Format          string `yaml:"format"`
	Kebab           bool   `yaml:"kebab"`
	OnConflict      string `yaml:"on_conflict" split_words:"true"`
	MaxNameLength   int    `yaml:"max_name_length" split_words:"true"`
	CopyToClipboard bool   `yaml:"copy_to_clipboard" split_words:"true"`
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
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent" split_words:"true"`
}

// Default returns a validated configuration without reading any file.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

// Load reads a YAML config file, applies TRANSCRIBE_* environment overrides
// and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return finish(cfg)
}

// LoadEnv builds a configuration from defaults and environment overrides only.
func LoadEnv() (*Config, error) {
	return finish(&Config{})
}

func finish(cfg *Config) (*Config, error) {
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("apply env overrides: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Render.Gap() < 0 {
		return fmt.Errorf("render.gap_threshold must not be negative, got %v", c.Render.Gap())
	}
	if c.Output.MaxNameLength < 0 {
		return fmt.Errorf("output.max_name_length must not be negative, got %d", c.Output.MaxNameLength)
	}
	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must not be negative, got %d", c.Performance.MaxConcurrent)
	}

	switch c.Output.Format {
	case "":
		c.Output.Format = FormatMarkdown
	case FormatMarkdown, FormatDocx:
	default:
		return fmt.Errorf("output.format must be %q or %q, got %q", FormatMarkdown, FormatDocx, c.Output.Format)
	}

	switch c.Output.OnConflict {
	case "":
		c.Output.OnConflict = ConflictFail
	case ConflictFail, ConflictOverwrite, ConflictRename:
	default:
		return fmt.Errorf("output.on_conflict must be one of fail, overwrite, rename, got %q", c.Output.OnConflict)
	}

	if c.YtDlp.BinaryPath == "" {
		c.YtDlp.BinaryPath = "yt-dlp"
	}
	if c.YtDlp.AudioFormat == "" {
		c.YtDlp.AudioFormat = "wav"
	}
	if c.YtDlp.AudioQuality == "" {
		c.YtDlp.AudioQuality = "0"
	}
	if c.Transcriber.BinaryPath == "" {
		c.Transcriber.BinaryPath = "parakeet-mlx"
	}
	if c.Transcriber.OutputFormat == "" {
		c.Transcriber.OutputFormat = "srt"
	}
	if c.Render.GapThreshold == nil {
		gap := defaultGapThreshold
		c.Render.GapThreshold = &gap
	}
	if c.Output.MaxNameLength == 0 {
		c.Output.MaxNameLength = 80
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
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	return nil
}
