package config

import (
	"os"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if !cfg.Convert.AnonymizeNames {
		t.Error("AnonymizeNames should default on")
	}
	if !cfg.Convert.UseParticipantIDs {
		t.Error("UseParticipantIDs should default on")
	}
	if cfg.Convert.NoAnonymization {
		t.Error("NoAnonymization should default off")
	}
	if cfg.Convert.Filter != "*.vtt" {
		t.Errorf("Filter = %v, want *.vtt", cfg.Convert.Filter)
	}
}

func TestAnonymize(t *testing.T) {
	tests := []struct {
		name   string
		config ConvertConfig
		want   bool
	}{
		{
			name:   "defaults anonymize",
			config: ConvertConfig{AnonymizeNames: true},
			want:   true,
		},
		{
			name:   "anonymization disabled",
			config: ConvertConfig{AnonymizeNames: false},
			want:   false,
		},
		{
			name:   "override wins over anonymize",
			config: ConvertConfig{AnonymizeNames: true, NoAnonymization: true},
			want:   false,
		},
		{
			name:   "override alone",
			config: ConvertConfig{NoAnonymization: true},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.Anonymize(); got != tt.want {
				t.Errorf("Anonymize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "vttmd-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
convert:
  no_anonymization: true
  meeting_type: "standup"
  recursive: true

paths:
  source: "transcripts"
  output: "docs"

logging:
  level: "debug"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.Convert.NoAnonymization {
		t.Error("NoAnonymization should be set")
	}
	if cfg.Convert.MeetingType != "standup" {
		t.Errorf("MeetingType = %v, want standup", cfg.Convert.MeetingType)
	}
	if cfg.Paths.Output != "docs" {
		t.Errorf("Output = %v, want docs", cfg.Paths.Output)
	}

	// Omitted keys keep their defaults.
	if !cfg.Convert.AnonymizeNames {
		t.Error("AnonymizeNames default should survive partial config")
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %v, want default", cfg.Gemini.Model)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
