package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
defaults:
  dialect: "3.2"
  srsDimension: 2
  version: "2.0.2"
layers:
  - name: town
    ns: topp
    geometryName: geom
    whitelist: [name, pop]
namespaces:
  topp: http://example.com/topp
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Defaults.Version != "2.0.2" {
		t.Errorf("expected version 2.0.2, got %s", cfg.Defaults.Version)
	}
	if len(cfg.Layers) != 1 || cfg.Layers[0].Ns != "topp" {
		t.Errorf("unexpected layers: %+v", cfg.Layers)
	}
	if cfg.Namespaces["topp"] != "http://example.com/topp" {
		t.Errorf("unexpected namespaces: %v", cfg.Namespaces)
	}
}

func TestLoadFallbackPaths(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 7000\n")
	missing := filepath.Join(t.TempDir(), "absent.yml")

	cfg, err := Load(missing, path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("expected fallback path to load, got port %d", cfg.Server.Port)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad dialect", content: "defaults:\n  dialect: gml4\n"},
		{name: "bad srsDimension", content: "defaults:\n  srsDimension: 5\n"},
		{name: "layer without name", content: "layers:\n  - ns: topp\n"},
		{name: "not yaml", content: "{{{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("expected an error, got none")
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	var cfg AppConfig
	cfg.ApplyDefaults()
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Defaults.Dialect != "3.2" {
		t.Errorf("expected default dialect 3.2, got %s", cfg.Defaults.Dialect)
	}
	if cfg.Defaults.SrsName != "" {
		t.Errorf("expected no default srsName for 3.2, got %s", cfg.Defaults.SrsName)
	}
	if cfg.Defaults.Version != "2.0.0" {
		t.Errorf("expected default version 2.0.0, got %s", cfg.Defaults.Version)
	}

	simple := AppConfig{Defaults: EncodingDefaults{Dialect: "simple"}}
	simple.ApplyDefaults()
	if simple.Defaults.SrsName != "EPSG:4326" {
		t.Errorf("expected EPSG:4326 default for simple dialect, got %s", simple.Defaults.SrsName)
	}
}

func TestSelectLayer(t *testing.T) {
	cfg := AppConfig{Layers: []LayerConfig{
		{Name: "town"},
		{Name: "river"},
	}}

	if l, ok := cfg.SelectLayer("river"); !ok || l.Name != "river" {
		t.Errorf("expected river layer, got %+v ok=%v", l, ok)
	}
	if l, ok := cfg.SelectLayer(""); !ok || l.Name != "town" {
		t.Errorf("expected first layer for empty name, got %+v ok=%v", l, ok)
	}
	if _, ok := cfg.SelectLayer("road"); ok {
		t.Error("expected miss for unknown layer")
	}
}
