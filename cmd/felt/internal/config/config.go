// Package config loads the optional felt.yaml project file.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/felt-ui/felt/pkg/errors"
	"github.com/felt-ui/felt/pkg/graphics"
	"github.com/felt-ui/felt/pkg/render"
)

// FileName is the project configuration file looked up in the project root.
const FileName = "felt.yaml"

// Config represents felt.yaml. Every field is optional.
type Config struct {
	App      AppConfig      `yaml:"app"`
	Window   WindowConfig   `yaml:"window"`
	Renderer RendererConfig `yaml:"renderer"`
	Output   OutputConfig   `yaml:"output"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// WindowConfig sets the viewport size in pixels.
type WindowConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

// RendererConfig mirrors render.Options.
type RendererConfig struct {
	VSync        string `yaml:"vsync,omitempty"`
	Antialiasing string `yaml:"antialiasing,omitempty"`
	ShowStats    *bool  `yaml:"show_stats,omitempty"`
	Background   string `yaml:"background,omitempty"`
}

// OutputConfig controls where rendered frames are written.
type OutputConfig struct {
	Path   string `yaml:"path,omitempty"`
	Frames int    `yaml:"frames,omitempty"`
}

// Resolved contains configuration with defaults applied and values parsed.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	Width      int
	Height     int
	Options    render.Options
	OutputPath string
	Frames     int
}

// Defaults used when felt.yaml leaves a value unset.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultFrames = 1
	maxDimension  = 16384
)

// LoadOptional reads felt.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, configError("read", fmt.Errorf("failed to read %s: %w", FileName, err))
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, configError("parse", fmt.Errorf("failed to parse %s: %w", FileName, err))
	}
	return &cfg, nil
}

// Resolve loads felt.yaml (if present) from dir and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return cfg.resolve(dir, modulePath)
}

func (cfg *Config) resolve(dir, modulePath string) (*Resolved, error) {
	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}
	if err := validateAppName(appName); err != nil {
		return nil, configError("validate", err)
	}

	width, height := cfg.Window.Width, cfg.Window.Height
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}
	if width < 0 || height < 0 || width > maxDimension || height > maxDimension {
		return nil, configError("validate",
			fmt.Errorf("window size %dx%d out of range (1..%d)", width, height, maxDimension))
	}

	opts, err := cfg.Renderer.options()
	if err != nil {
		return nil, configError("validate", err)
	}

	frames := cfg.Output.Frames
	if frames == 0 {
		frames = DefaultFrames
	}
	if frames < 0 {
		return nil, configError("validate", fmt.Errorf("output.frames must be positive (got %d)", frames))
	}
	out := strings.TrimSpace(cfg.Output.Path)
	if out == "" {
		out = appName + ".png"
	}
	if !filepath.IsAbs(out) {
		out = filepath.Join(dir, out)
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		AppName:    appName,
		Width:      width,
		Height:     height,
		Options:    opts,
		OutputPath: out,
		Frames:     frames,
	}, nil
}

func (rc RendererConfig) options() (render.Options, error) {
	opts := render.DefaultOptions()
	if rc.VSync != "" {
		v, err := render.ParseVSync(rc.VSync)
		if err != nil {
			return opts, fmt.Errorf("renderer.vsync: %w", err)
		}
		opts.VSync = v
	}
	if rc.Antialiasing != "" {
		aa, err := render.ParseAntialiasing(rc.Antialiasing)
		if err != nil {
			return opts, fmt.Errorf("renderer.antialiasing: %w", err)
		}
		opts.Antialiasing = aa
	}
	if rc.ShowStats != nil {
		opts.ShowStats = *rc.ShowStats
	}
	if rc.Background != "" {
		c, err := graphics.ParseHex(rc.Background)
		if err != nil {
			return opts, fmt.Errorf("renderer.background: %w", err)
		}
		opts.BaseColor = c
	}
	return opts, nil
}

// FindProjectRoot walks up from the current directory to the nearest
// directory holding felt.yaml or go.mod. Outside any project it returns the
// current directory.
func FindProjectRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for dir := wd; ; {
		for _, name := range []string{FileName, "go.mod"} {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return wd, nil
		}
		dir = parent
	}
}

// modulePath returns the module path of dir/go.mod, or "" without one.
func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", configError("read", fmt.Errorf("failed to read go.mod: %w", err))
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", configError("parse", fmt.Errorf("could not determine module path from go.mod"))
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		if prefix, _, ok := module.SplitPathVersion(modulePath); ok {
			parts := strings.Split(prefix, "/")
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "felt_app"
	}
	return base
}

func validateAppName(name string) error {
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '_' || r == '-' || r == '.':
		default:
			return fmt.Errorf("app.name contains invalid character %q in %q", r, name)
		}
	}
	if name == "" || name[0] == '.' || name[0] == '-' {
		return fmt.Errorf("app.name must start with a letter, digit or '_' (got %q)", name)
	}
	return nil
}

func configError(op string, err error) error {
	return errors.New("config."+op, errors.KindConfig, err)
}
