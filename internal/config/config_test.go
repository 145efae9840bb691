package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	opts, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if opts.SampleWindow() != time.Second {
		t.Errorf("sample window: got %v, want 1s", opts.SampleWindow())
	}
	if opts.TopN != 5 {
		t.Errorf("top_n: got %d, want 5", opts.TopN)
	}
	if len(opts.AuthLogPaths) != 2 {
		t.Errorf("auth log paths: got %v", opts.AuthLogPaths)
	}
	if len(opts.ExcludedFilesystems) != 3 {
		t.Errorf("excluded filesystems: got %v", opts.ExcludedFilesystems)
	}
}

func TestYAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "sample_window_sec: 0.5\ntop_n: 3\nauth_log_paths:\n  - /tmp/auth.log\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts.SampleWindow() != 500*time.Millisecond {
		t.Errorf("sample window: got %v, want 500ms", opts.SampleWindow())
	}
	if opts.TopN != 3 {
		t.Errorf("top_n: got %d, want 3", opts.TopN)
	}
	if len(opts.AuthLogPaths) != 1 || opts.AuthLogPaths[0] != "/tmp/auth.log" {
		t.Errorf("auth log paths: got %v", opts.AuthLogPaths)
	}
	// Untouched keys keep their defaults.
	if opts.FailedLoginPattern != "Failed password" {
		t.Errorf("pattern: got %q", opts.FailedLoginPattern)
	}
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("top_n: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load with negative top_n: expected error, got nil")
	}
}

func TestMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of missing file: expected error, got nil")
	}
}
