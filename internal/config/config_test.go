package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gatewire.yaml")
	data := `
listen: ":25566"
backend: "10.0.0.5:8483"
compression_threshold: 256
online_mode: true
motd: "hello"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Listen != ":25566" || cfg.Backend != "10.0.0.5:8483" {
		t.Errorf("addresses = %q, %q", cfg.Listen, cfg.Backend)
	}
	if cfg.CompressionThreshold != 256 || !cfg.OnlineMode || cfg.Motd != "hello" {
		t.Errorf("cfg = %+v", cfg)
	}
	// Defaults fill the rest.
	if cfg.BackendTransport != "tcp" || cfg.MaxPlayers != 20 || cfg.LogLevel != "info" {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load("/does/not/exist.yaml"); err == nil {
		t.Error("missing file must error")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Listen == "" || cfg.Backend == "" || cfg.Motd == "" {
		t.Errorf("defaults incomplete: %+v", cfg)
	}
}
