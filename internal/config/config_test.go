package config

import (
	"errors"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Format != FormatANSI || cfg.EntryFunction != "main" || cfg.Debug || cfg.DumpScopes {
		t.Errorf("Default() = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("testdata/semant.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := Config{Debug: true, DumpScopes: true, Format: FormatPlain, EntryFunction: "start"}
	if *cfg != want {
		t.Errorf("Load() = %+v, want %+v", *cfg, want)
	}
}

func TestDecodeKeepsDefaults(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"only debug", "debug: true\n"},
		{"blank values", "format: \"\"\nentry_function: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Decode(strings.NewReader(tt.src))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if cfg.Format != FormatANSI || cfg.EntryFunction != "main" {
				t.Errorf("Decode() = %+v, want defaults", cfg)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"unknown key", "colour: red\n", "colour"},
		{"bad format", "format: json\n", `format "json"`},
		{"bad entry", "entry_function: 1main\n", `entry_function "1main"`},
		{"wrong type", "debug: [1]\n", "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("Decode() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Decode() error = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateCollectsIssues(t *testing.T) {
	cfg := &Config{Format: "xml", EntryFunction: ""}
	err := cfg.Validate()

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() error = %v, want *ValidationError", err)
	}
	if len(verr.Issues) != 2 {
		t.Errorf("Issues = %v, want 2", verr.Issues)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load("testdata/missing.yaml"); err == nil {
		t.Error("Load() of a missing file succeeded")
	}
	if _, err := Load(""); err == nil {
		t.Error("Load(\"\") succeeded")
	}
}
