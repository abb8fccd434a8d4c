package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg SimonConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultSimonConfig() {
		t.Errorf("embedded default %+v != hardcoded %+v", cfg, DefaultSimonConfig())
	}
}

func TestLoadSimonCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "simon.yaml")
	data := []byte("clock:\n  ticks_per_milli: 10\ndisplay:\n  segment_invert: true\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSimon(path)
	if err != nil {
		t.Fatalf("LoadSimon: %v", err)
	}
	if cfg.Clock.TicksPerMilli != 10 {
		t.Errorf("ticks_per_milli = %d, want 10", cfg.Clock.TicksPerMilli)
	}
	if !cfg.Display.SegmentInvert {
		t.Error("segment_invert not loaded")
	}
	// Fields absent from the file fall back to defaults.
	if cfg.Input.HoldMillis != 150 {
		t.Errorf("hold_millis = %d, want default 150", cfg.Input.HoldMillis)
	}
	if cfg.Audio.SampleRate != 48000 {
		t.Errorf("sample_rate = %d, want default 48000", cfg.Audio.SampleRate)
	}
}

func TestLoadSimonMissingCustomPath(t *testing.T) {
	_, err := LoadSimon(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoadSimonBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("clock: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSimon(path); err == nil {
		t.Fatal("expected parse error")
	}
}
