package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/waveform/terminal"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  terminal.Color
	}{
		{"Named lowercase", "red", terminal.Red},
		{"Named mixed case", "LightBlue", terminal.LightBlue},
		{"Hex", "#406080", terminal.FromRGB(64, 96, 128)},
		{"Unknown name", "chartreuse-ish", terminal.White},
		{"Malformed hex", "#zzzzzz", terminal.White},
		{"Short hex", "#fff", terminal.White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseColor(tt.input); got != tt.want {
				t.Errorf("parseColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLoadThemePartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")
	if err := os.WriteFile(path, []byte(`{"top_color": "magenta"}`), 0644); err != nil {
		t.Fatal(err)
	}

	theme, err := loadTheme(path)
	if err != nil {
		t.Fatalf("loadTheme error: %v", err)
	}
	if theme.TopColor != "magenta" {
		t.Errorf("TopColor = %q, want magenta", theme.TopColor)
	}
	if theme.BottomColor != "blue" {
		t.Errorf("BottomColor = %q, want default blue", theme.BottomColor)
	}
	if theme.AlertLevel != 0.9 {
		t.Errorf("AlertLevel = %f, want default 0.9", theme.AlertLevel)
	}
}

func TestLoadThemeRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadTheme(path); err == nil {
		t.Error("expected error for malformed theme file")
	}
}
