package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/felt-ui/felt/pkg/errors"
	"github.com/felt-ui/felt/pkg/graphics"
	"github.com/felt-ui/felt/pkg/render"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func sameOptions(a, b render.Options) bool {
	return a.ShowStats == b.ShowStats && a.VSync == b.VSync &&
		a.Antialiasing == b.Antialiasing && a.BaseColor == b.BaseColor
}

func TestResolve_Defaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/acme/dashboard/v2\n\ngo 1.25\n")

	cfg, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.ModulePath != "example.com/acme/dashboard/v2" {
		t.Errorf("ModulePath = %q", cfg.ModulePath)
	}
	if cfg.AppName != "dashboard" {
		t.Errorf("AppName = %q, want dashboard", cfg.AppName)
	}
	if cfg.Width != DefaultWidth || cfg.Height != DefaultHeight {
		t.Errorf("size = %dx%d", cfg.Width, cfg.Height)
	}
	if !sameOptions(cfg.Options, render.DefaultOptions()) {
		t.Errorf("Options = %+v, want defaults", cfg.Options)
	}
	if want := filepath.Join(dir, "dashboard.png"); cfg.OutputPath != want {
		t.Errorf("OutputPath = %q, want %q", cfg.OutputPath, want)
	}
	if cfg.Frames != DefaultFrames {
		t.Errorf("Frames = %d", cfg.Frames)
	}
}

func TestResolve_WithoutGoMod(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "scratch")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.AppName != "scratch" || cfg.ModulePath != "" {
		t.Errorf("AppName = %q, ModulePath = %q", cfg.AppName, cfg.ModulePath)
	}
}

func TestResolve_File(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
app:
  name: demo
window:
  width: 1280
  height: 720
renderer:
  vsync: mailbox
  antialiasing: msaa8
  show_stats: false
  background: "#0a0a0a"
output:
  path: out/frame.png
  frames: 30
`)
	cfg, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.AppName != "demo" || cfg.Width != 1280 || cfg.Height != 720 {
		t.Errorf("got %q %dx%d", cfg.AppName, cfg.Width, cfg.Height)
	}
	want := render.Options{
		ShowStats:    false,
		VSync:        render.VSyncMailbox,
		Antialiasing: render.AntialiasingMSAA8,
		BaseColor:    graphics.RGB(10, 10, 10),
	}
	if !sameOptions(cfg.Options, want) {
		t.Errorf("Options = %+v, want %+v", cfg.Options, want)
	}
	if got := cfg.OutputPath; got != filepath.Join(dir, "out", "frame.png") {
		t.Errorf("OutputPath = %q", got)
	}
	if cfg.Frames != 30 {
		t.Errorf("Frames = %d", cfg.Frames)
	}
}

func TestResolve_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "app: [unclosed"},
		{"bad vsync", "renderer:\n  vsync: adaptive\n"},
		{"bad antialiasing", "renderer:\n  antialiasing: fxaa\n"},
		{"bad background", "renderer:\n  background: notacolor\n"},
		{"negative width", "window:\n  width: -1\n"},
		{"huge height", "window:\n  height: 100000\n"},
		{"negative frames", "output:\n  frames: -3\n"},
		{"bad name", "app:\n  name: \"my app\"\n"},
		{"leading dash", "app:\n  name: -app\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, FileName, tt.yaml)
			_, err := Resolve(dir)
			if err == nil {
				t.Fatal("expected error")
			}
			if kind := errors.KindOf(err); kind != errors.KindConfig {
				t.Errorf("kind = %v, want config", kind)
			}
		})
	}
}

func TestDefaultAppName(t *testing.T) {
	tests := []struct {
		module, dir, want string
	}{
		{"github.com/felt-ui/felt", "/src/x", "felt"},
		{"example.com/app/v3", "/src/x", "app"},
		{"", "/src/project", "project"},
		{"", "/", "felt_app"},
	}
	for _, tt := range tests {
		if got := defaultAppName(tt.module, tt.dir); got != tt.want {
			t.Errorf("defaultAppName(%q, %q) = %q, want %q", tt.module, tt.dir, got, tt.want)
		}
	}
}
