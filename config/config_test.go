// ABOUTME: Tests for configuration load/save functionality
// ABOUTME: Validates TOML parsing, default config fallback, and hot-reload behavior

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.PopulationSize != 40 {
		t.Errorf("Expected PopulationSize 40, got %d", cfg.PopulationSize)
	}
	if cfg.Compiler != "gcc" {
		t.Errorf("Expected Compiler gcc, got %q", cfg.Compiler)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	tmpfile, err := os.CreateTemp(t.TempDir(), "asmgp-*.toml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())
	tmpfile.Close()

	cfg := DefaultConfig()
	cfg.PopulationSize = 64
	cfg.Compiler = "clang"
	cfg.CompilerFlags = []string{"-O2", "-static"}
	if err := SaveConfig(tmpfile.Name(), cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(tmpfile.Name())
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if loaded.PopulationSize != cfg.PopulationSize {
		t.Errorf("PopulationSize mismatch: got %d, want %d", loaded.PopulationSize, cfg.PopulationSize)
	}
	if loaded.Compiler != cfg.Compiler {
		t.Errorf("Compiler mismatch: got %q, want %q", loaded.Compiler, cfg.Compiler)
	}
	if len(loaded.CompilerFlags) != 2 || loaded.CompilerFlags[0] != "-O2" {
		t.Errorf("unexpected CompilerFlags: %+v", loaded.CompilerFlags)
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.toml")
	if err != nil {
		t.Errorf("Expected no error for non-existent file, got: %v", err)
	}

	defaults := DefaultConfig()
	if !reflect.DeepEqual(cfg, defaults) {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadMalformedConfigReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("not = [valid toml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected an error for malformed TOML")
	}
}

func TestSharedConfigGetUpdate(t *testing.T) {
	sc := NewSharedConfig(DefaultConfig())
	if sc.Get().PopulationSize != DefaultConfig().PopulationSize {
		t.Fatalf("unexpected initial value")
	}

	updated := DefaultConfig()
	updated.PopulationSize = 99
	sc.Update(updated)

	if sc.Get().PopulationSize != 99 {
		t.Fatalf("Update did not take effect")
	}
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asmgp.toml")
	initial := DefaultConfig()
	initial.PopulationSize = 10
	if err := SaveConfig(path, initial); err != nil {
		t.Fatal(err)
	}

	sc := NewSharedConfig(initial)
	stop, err := Watch(path, sc, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer stop()

	updated := initial
	updated.PopulationSize = 77
	if err := SaveConfig(path, updated); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if sc.Get().PopulationSize == 77 {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("config was not hot-reloaded within the deadline, got %+v", sc.Get())
}

func TestWatchKeepsLastGoodConfigOnMalformedWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asmgp.toml")
	initial := DefaultConfig()
	initial.PopulationSize = 11
	if err := SaveConfig(path, initial); err != nil {
		t.Fatal(err)
	}

	sc := NewSharedConfig(initial)
	stop, err := Watch(path, sc, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer stop()

	if err := os.WriteFile(path, []byte("not = [valid"), 0o644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(debounceWindow + 300*time.Millisecond)
	if sc.Get().PopulationSize != 11 {
		t.Fatalf("expected last-good config to survive, got %+v", sc.Get())
	}
}
