package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// isolate points HOME and the working directory at empty temp dirs
// so the search order only sees files the test writes.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	isolate(t)

	cfg, src, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %q, expected %q", src, SourceEmbedded)
	}
	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Errorf("embedded runner.yaml drifted from DefaultRunnerConfig:\n got %+v\nwant %+v", cfg, DefaultRunnerConfig())
	}
}

func TestLoadRunnerSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, "configs", "runner.yaml"), "physics:\n  gravity: 2.0\n")
	cfg, src, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if src != SourceLocal || cfg.Physics.Gravity != 2.0 {
		t.Errorf("expected local config with gravity 2.0, got %q gravity %v", src, cfg.Physics.Gravity)
	}

	writeFile(t, filepath.Join(home, ".arcade", "configs", "runner.yaml"), "physics:\n  gravity: 3.0\n")
	cfg, src, err = LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if src != SourceUser || cfg.Physics.Gravity != 3.0 {
		t.Errorf("user config should win over local, got %q gravity %v", src, cfg.Physics.Gravity)
	}

	custom := filepath.Join(work, "mine.yaml")
	writeFile(t, custom, "physics:\n  gravity: 4.0\n")
	cfg, src, err = LoadRunner(custom)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if src != SourceCustom || cfg.Physics.Gravity != 4.0 {
		t.Errorf("custom path should win, got %q gravity %v", src, cfg.Physics.Gravity)
	}
}

func TestLoadRunnerMergesOntoDefaults(t *testing.T) {
	_, work := isolate(t)

	custom := filepath.Join(work, "partial.yaml")
	writeFile(t, custom, "scoring:\n  mode: compound\n  seed: 1\n")

	cfg, _, err := LoadRunner(custom)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if cfg.Scoring.Mode != ScoreCompound || cfg.Scoring.Seed != 1 {
		t.Errorf("scoring not applied: %+v", cfg.Scoring)
	}
	if cfg.Physics.JumpPower != 25 || cfg.Obstacles.Size != 128 {
		t.Error("keys missing from the file should keep their defaults")
	}
}

func TestLoadRunnerErrors(t *testing.T) {
	_, work := isolate(t)

	if _, _, err := LoadRunner(filepath.Join(work, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	broken := filepath.Join(work, "broken.yaml")
	writeFile(t, broken, "physics: [not, a, map\n")
	if _, _, err := LoadRunner(broken); err == nil {
		t.Error("unparsable custom config should fail")
	}

	invalid := filepath.Join(work, "invalid.yaml")
	writeFile(t, invalid, "physics:\n  gravity: -1\nscoring:\n  mode: bogus\n")
	_, _, err := LoadRunner(invalid)
	if err == nil {
		t.Fatal("invalid custom config should fail validation")
	}
	for _, want := range []string{"physics.gravity", "scoring.mode"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("validation error should mention %s, got %v", want, err)
		}
	}
}

func TestLoadRunnerSkipsBrokenUserConfig(t *testing.T) {
	home, _ := isolate(t)

	writeFile(t, filepath.Join(home, ".arcade", "configs", "runner.yaml"), "{{{")
	_, src, err := LoadRunner("")
	if err != nil {
		t.Fatalf("broken user config should be skipped, got %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %q, expected embedded fallback", src)
	}
}

func TestValidateDefaults(t *testing.T) {
	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}

	cfg := DefaultRunnerConfig()
	cfg.Obstacles.Capacity = 0
	cfg.Input.HoldTicks = 0
	cfg.Player.HitboxShrinkW = 500
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	for _, want := range []string{"obstacles.capacity", "input.hold_ticks", "player hitbox"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %s, got %v", want, err)
		}
	}
}

func TestGetDefaultYAML(t *testing.T) {
	if len(GetDefaultYAML("runner")) == 0 {
		t.Error("runner should have embedded YAML")
	}
	if GetDefaultYAML("nope") != nil {
		t.Error("unknown game should have no YAML")
	}
}
