package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	// Point HOME at an empty dir so no user config is found.
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Exam.TimeoutPolicy != "freeze" {
		t.Errorf("TimeoutPolicy = %q, want %q", cfg.Exam.TimeoutPolicy, "freeze")
	}
	if cfg.Debug.LogFile != "" {
		t.Errorf("LogFile = %q, want empty", cfg.Debug.LogFile)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "exam:\n  timeout_policy: relock\ndebug:\n  log_file: /tmp/ptrdojo.log\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Exam.TimeoutPolicy != "relock" {
		t.Errorf("TimeoutPolicy = %q, want %q", cfg.Exam.TimeoutPolicy, "relock")
	}
	if cfg.Debug.LogFile != "/tmp/ptrdojo.log" {
		t.Errorf("LogFile = %q, want /tmp/ptrdojo.log", cfg.Debug.LogFile)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with missing custom path should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("exam: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() with unparseable custom path should fail")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".ptrdojo")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "exam:\n  timeout_policy: relock\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Exam.TimeoutPolicy != "relock" {
		t.Errorf("TimeoutPolicy = %q, want %q", cfg.Exam.TimeoutPolicy, "relock")
	}
}

func TestNormalizeFillsPolicy(t *testing.T) {
	cfg := normalize(Config{})
	if cfg.Exam.TimeoutPolicy != "freeze" {
		t.Errorf("TimeoutPolicy = %q, want %q", cfg.Exam.TimeoutPolicy, "freeze")
	}
}
