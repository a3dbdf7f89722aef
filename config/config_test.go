package config

import (
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.HistoryFile != DefaultHistoryFile {
		t.Errorf("HistoryFile = %q, want %q", cfg.HistoryFile, DefaultHistoryFile)
	}
	if cfg.HistoryLimit != 1000 {
		t.Errorf("HistoryLimit = %d, want 1000", cfg.HistoryLimit)
	}
	if cfg.Color != "auto" {
		t.Errorf("Color = %q, want %q", cfg.Color, "auto")
	}
	if cfg.Prompt != "> " {
		t.Errorf("Prompt = %q, want %q", cfg.Prompt, "> ")
	}
}

func TestMergeConfig(t *testing.T) {
	global := &Config{
		HistoryFile:  "/tmp/global_history",
		HistoryLimit: 500,
		Color:        "never",
		Prompt:       ">> ",
	}

	t.Run("local values win", func(t *testing.T) {
		local := &Config{HistoryLimit: 50, Color: "always"}
		got := mergeConfig(global, local)

		if got.HistoryLimit != 50 {
			t.Errorf("HistoryLimit = %d, want 50", got.HistoryLimit)
		}
		if got.Color != "always" {
			t.Errorf("Color = %q, want %q", got.Color, "always")
		}
		if got.HistoryFile != "/tmp/global_history" {
			t.Errorf("HistoryFile = %q, want global value", got.HistoryFile)
		}
		if got.Prompt != ">> " {
			t.Errorf("Prompt = %q, want global value", got.Prompt)
		}
	})

	t.Run("empty local preserves global", func(t *testing.T) {
		got := mergeConfig(global, &Config{})
		if *got != *global {
			t.Errorf("merge with empty local changed config: %+v", got)
		}
	})
}

func TestHistoryPath(t *testing.T) {
	t.Run("tilde expansion", func(t *testing.T) {
		cfg := &Config{HistoryFile: "~/.dtcalc_history"}
		got := cfg.HistoryPath()
		if strings.HasPrefix(got, "~") {
			t.Errorf("tilde not expanded: %q", got)
		}
		if filepath.Base(got) != ".dtcalc_history" {
			t.Errorf("unexpected basename in %q", got)
		}
	})

	t.Run("absolute path untouched", func(t *testing.T) {
		cfg := &Config{HistoryFile: "/var/tmp/history"}
		if got := cfg.HistoryPath(); got != "/var/tmp/history" {
			t.Errorf("HistoryPath = %q, want /var/tmp/history", got)
		}
	})

	t.Run("empty falls back to default", func(t *testing.T) {
		cfg := &Config{}
		if filepath.Base(cfg.HistoryPath()) != ".dtcalc_history" {
			t.Errorf("HistoryPath = %q", cfg.HistoryPath())
		}
	})
}

func TestColorEnabled(t *testing.T) {
	tests := []struct {
		mode       string
		isTerminal bool
		want       bool
	}{
		{"always", false, true},
		{"always", true, true},
		{"never", true, false},
		{"never", false, false},
		{"auto", true, true},
		{"auto", false, false},
		{"", true, true},
	}

	for _, tt := range tests {
		cfg := &Config{Color: tt.mode}
		if got := cfg.ColorEnabled(tt.isTerminal); got != tt.want {
			t.Errorf("ColorEnabled(%q, terminal=%v) = %v, want %v", tt.mode, tt.isTerminal, got, tt.want)
		}
	}
}

func TestToYAMLRoundTrip(t *testing.T) {
	cfg := &Config{
		HistoryFile:  "/tmp/h",
		HistoryLimit: 42,
		Color:        "never",
		Prompt:       "calc> ",
	}

	out, err := cfg.ToYAML()
	if err != nil {
		t.Fatal(err)
	}

	var back Config
	if err := yaml.Unmarshal([]byte(out), &back); err != nil {
		t.Fatal(err)
	}
	if back != *cfg {
		t.Errorf("round trip changed config: %+v", back)
	}
}

func TestMinimalConfigParses(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal([]byte(MinimalConfig()), &cfg); err != nil {
		t.Fatalf("MinimalConfig does not parse: %v", err)
	}
	if cfg.HistoryLimit != 1000 {
		t.Errorf("HistoryLimit = %d, want 1000", cfg.HistoryLimit)
	}
}
