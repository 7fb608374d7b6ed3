// Package config holds the directory layout and image extensions the
// generator works with. Values come from built-in defaults, an optional
// gallery.yaml at the web root, and finally command-line flags.
package config

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/jakoblorz/go-gallery-manifest/internal/filesystem"
	"github.com/jakoblorz/go-gallery-manifest/internal/gallery"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the web root.
const FileName = "gallery.yaml"

// Config describes where assets live relative to the web root.
type Config struct {
	// AssetsDir is the asset directory under the web root (default "assets").
	// It must exist for a run to proceed.
	AssetsDir string `yaml:"assets_dir"`

	// HomepageDir is the homepage image directory under AssetsDir
	// (default "Homepage").
	HomepageDir string `yaml:"homepage_dir"`

	// ProjectsDir is the directory holding one folder per project, under
	// AssetsDir (default "projects").
	ProjectsDir string `yaml:"projects_dir"`

	// Extensions lists the image extensions to index, with or without dots
	// (default jpg, jpeg, png, webp, gif, bmp).
	Extensions []string `yaml:"extensions"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.AssetsDir == "" {
		c.AssetsDir = "assets"
	}
	if c.HomepageDir == "" {
		c.HomepageDir = "Homepage"
	}
	if c.ProjectsDir == "" {
		c.ProjectsDir = "projects"
	}
	if len(c.Extensions) == 0 {
		c.Extensions = append([]string(nil), gallery.DefaultExtensions...)
	}
}

// Load reads the configuration file at path. When the file does not exist
// and required is false, the defaults are returned.
func Load(fs filesystem.FileSystem, path string, required bool) (*Config, error) {
	if !fs.Exists(path) {
		if required {
			return nil, fmt.Errorf("config file %s not found", path)
		}
		return Default(), nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that every directory is a relative path inside the web root
// and that at least one extension is usable.
func (c *Config) Validate() error {
	dirs := []struct {
		key   string
		value string
	}{
		{"assets_dir", c.AssetsDir},
		{"homepage_dir", c.HomepageDir},
		{"projects_dir", c.ProjectsDir},
	}

	for _, d := range dirs {
		if err := validateRelative(d.value); err != nil {
			return fmt.Errorf("%s: %w", d.key, err)
		}
	}

	if c.ImageExtensions().Len() == 0 {
		return errors.New("extensions: no usable extension")
	}

	return nil
}

func validateRelative(dir string) error {
	slashed := filepath.ToSlash(dir)
	if slashed == "" {
		return errors.New("must not be empty")
	}
	if path.IsAbs(slashed) || filepath.IsAbs(dir) {
		return fmt.Errorf("%q must be relative", dir)
	}
	for _, part := range strings.Split(path.Clean(slashed), "/") {
		if part == ".." || part == "." {
			return fmt.Errorf("%q must stay inside its parent directory", dir)
		}
	}
	return nil
}

// ImageExtensions returns the configured extensions as an immutable set.
func (c *Config) ImageExtensions() gallery.Extensions {
	return gallery.NewExtensions(c.Extensions...)
}

// AssetsPath is the assets directory on disk for the given web root.
func (c *Config) AssetsPath(webroot string) string {
	return filepath.Join(webroot, filepath.FromSlash(c.AssetsDir))
}

// HomepagePath is the homepage directory on disk for the given web root.
func (c *Config) HomepagePath(webroot string) string {
	return filepath.Join(c.AssetsPath(webroot), filepath.FromSlash(c.HomepageDir))
}

// ProjectsPath is the projects directory on disk for the given web root.
func (c *Config) ProjectsPath(webroot string) string {
	return filepath.Join(c.AssetsPath(webroot), filepath.FromSlash(c.ProjectsDir))
}

// ProjectsWebPrefix is the URL path of the projects directory relative to the
// web root, always slash separated (e.g. "assets/projects").
func (c *Config) ProjectsWebPrefix() string {
	return path.Join(filepath.ToSlash(c.AssetsDir), filepath.ToSlash(c.ProjectsDir))
}
