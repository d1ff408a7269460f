package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Convert ConvertConfig `yaml:"convert"`
	Paths   PathsConfig   `yaml:"paths"`
	Logging LoggingConfig `yaml:"logging"`
	Gemini  GeminiConfig  `yaml:"gemini"`
}

type ConvertConfig struct {
	// AnonymizeNames and UseParticipantIDs default on. NoAnonymization is
	// an independent override and wins when set.
	AnonymizeNames    bool   `yaml:"anonymize_names"`
	UseParticipantIDs bool   `yaml:"use_participant_ids"`
	NoAnonymization   bool   `yaml:"no_anonymization"`
	MeetingType       string `yaml:"meeting_type"`
	Filter            string `yaml:"filter"`
	Recursive         bool   `yaml:"recursive"`
	DocxOutput        bool   `yaml:"docx_output"`
}

type PathsConfig struct {
	Source string `yaml:"source"`
	Output string `yaml:"output"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
}

// Default returns a Config carrying the documented defaults. Load decodes
// the file over this value so that omitted keys keep their defaults.
func Default() Config {
	return Config{
		Convert: ConvertConfig{
			AnonymizeNames:    true,
			UseParticipantIDs: true,
			MeetingType:       "meeting",
			Filter:            "*.vtt",
		},
		Paths: PathsConfig{
			Output: ".",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Gemini: GeminiConfig{
			Model: "gemini-2.5-flash",
		},
	}
}

// Load reads and validates a YAML config file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Paths.Output == "" {
		c.Paths.Output = "."
	}
	if c.Convert.Filter == "" {
		c.Convert.Filter = "*.vtt"
	}
	if c.Convert.MeetingType == "" {
		c.Convert.MeetingType = "meeting"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	return nil
}

// Anonymize reports whether speaker names should be anonymized,
// resolving the override ordering between the two knobs.
func (c *ConvertConfig) Anonymize() bool {
	if c.NoAnonymization {
		return false
	}
	return c.AnonymizeNames
}
