package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultEffective(t *testing.T) {
	d := DefaultEffective()
	if d.Threshold != 3 {
		t.Errorf("default threshold: got %d, want 3", d.Threshold)
	}
	if d.Shards != 5 {
		t.Errorf("default shards: got %d, want 5", d.Shards)
	}
	if d.OutputDir != "." {
		t.Errorf("default output_dir: got %q, want .", d.OutputDir)
	}
}

func TestLoad_NoFile(t *testing.T) {
	SetLoaded(nil)
	cfg, err := Load("", "")
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}
	if cfg.Threshold != 3 {
		t.Errorf("threshold: got %d, want default", cfg.Threshold)
	}
}

func TestLoad_ExplicitPath_NotFound(t *testing.T) {
	SetLoaded(nil)
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"), "")
	if err != nil {
		t.Fatalf("Load(nonexistent): %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil")
	}
	if cfg.Shards != 5 {
		t.Errorf("shards: got %d, want default", cfg.Shards)
	}
}

func TestLoad_ExplicitPath_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shardvault.yaml")
	content := []byte(`audit_log: /var/log/shardvault.jsonl
threshold: 4
shards: 9
output_dir: /tmp/out
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	SetLoaded(nil)
	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if cfg.AuditLog != "/var/log/shardvault.jsonl" {
		t.Errorf("audit_log: got %q", cfg.AuditLog)
	}
	if cfg.Threshold != 4 {
		t.Errorf("threshold: got %d, want 4", cfg.Threshold)
	}
	if cfg.Shards != 9 {
		t.Errorf("shards: got %d, want 9", cfg.Shards)
	}
	if cfg.OutputDir != "/tmp/out" {
		t.Errorf("output_dir: got %q", cfg.OutputDir)
	}
}

func TestLoad_ProfileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shardvault.yaml")
	content := []byte(`threshold: 3
shards: 5
profiles:
  prod:
    threshold: 5
    shards: 12
    audit_log: /var/log/shardvault-prod.jsonl
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	SetLoaded(nil)
	cfg, err := Load(path, "prod")
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if cfg.Threshold != 5 {
		t.Errorf("profile threshold: got %d, want 5", cfg.Threshold)
	}
	if cfg.Shards != 12 {
		t.Errorf("profile shards: got %d, want 12", cfg.Shards)
	}
	if cfg.AuditLog != "/var/log/shardvault-prod.jsonl" {
		t.Errorf("profile audit_log: got %q", cfg.AuditLog)
	}

	// Unknown profile falls back to the base keys.
	SetLoaded(nil)
	cfg, err = Load(path, "staging")
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if cfg.Threshold != 3 || cfg.Shards != 5 {
		t.Errorf("unknown profile should keep base values, got %+v", cfg)
	}

	if Get() != cfg {
		t.Error("Get() should return the last loaded config")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("::: not yaml :::"), 0o600); err != nil {
		t.Fatal(err)
	}
	SetLoaded(nil)
	if _, err := Load(path, ""); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}
