package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	YouTube     YouTubeConfig     `yaml:"youtube"`
	Digest      DigestConfig      `yaml:"digest"`
	Output      OutputConfig      `yaml:"output"`
	Performance PerformanceConfig `yaml:"performance"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type YouTubeConfig struct {
	APIKey         string `yaml:"api_key"`
	Language       string `yaml:"language"`
	YtdlpPath      string `yaml:"ytdlp_path"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type DigestConfig struct {
	// MaxInputMB caps transcript size. 0 means the 4 MB default;
	// a negative value disables the cap.
	MaxInputMB     int      `yaml:"max_input_mb"`
	ExtraStopWords []string `yaml:"extra_stop_words"`
}

type OutputConfig struct {
	// Format selects the file output: markdown, docx or both.
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads and validates the yaml config at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Output.Format {
	case "", "markdown", "docx", "both":
	default:
		return fmt.Errorf("output.format must be markdown, docx or both, got %q", c.Output.Format)
	}

	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must not be negative")
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
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.YouTube.Language == "" {
		c.YouTube.Language = "en"
	}
	if c.YouTube.TimeoutSeconds == 0 {
		c.YouTube.TimeoutSeconds = 20
	}
	if c.Digest.MaxInputMB == 0 {
		c.Digest.MaxInputMB = 4
	}
	if c.Output.Format == "" {
		c.Output.Format = "markdown"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	if c.YouTube.APIKey == "" {
		c.YouTube.APIKey = os.Getenv("YOUTUBE_API_KEY")
	}

	return nil
}
