package rtconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/attrgrammar/evalorder/rtconfig"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := rtconfig.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TraceLevel != "Info" {
		t.Errorf("TraceLevel = %q, want %q", cfg.TraceLevel, "Info")
	}
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evalorder.yaml")
	content := "trace_level: Debug\ndemo_path: /srv/demos\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := rtconfig.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TraceLevel != "Debug" {
		t.Errorf("TraceLevel = %q, want %q", cfg.TraceLevel, "Debug")
	}
	if cfg.DemoPath != "/srv/demos" {
		t.Errorf("DemoPath = %q, want %q", cfg.DemoPath, "/srv/demos")
	}
}

func TestLoadFillsDefaultTraceLevelWhenOmitted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evalorder.yaml")
	if err := os.WriteFile(path, []byte("demo_path: /srv/demos\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := rtconfig.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TraceLevel != "Info" {
		t.Errorf("TraceLevel = %q, want %q", cfg.TraceLevel, "Info")
	}
}
