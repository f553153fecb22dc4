package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// Site Configuration
// =============================================================================

// configFileName is the optional site configuration file, looked up in the
// site root. A missing file is not an error; defaults apply.
const configFileName = "photo-site.yaml"

// Config holds the site-wide settings.
// All fields have working defaults so the tool runs with no config at all.
type Config struct {
	// PhotosDir is the directory (relative to the site root) that contains
	// one subdirectory per photo category.
	PhotosDir string `yaml:"photos_dir"`

	// OutputDir is where thumbnails, gallery pages, and the staged site
	// tree are written, relative to the site root.
	OutputDir string `yaml:"output_dir"`

	// Extensions is the image extension allow-list. Entries are normalized
	// to lower case with a leading dot.
	Extensions []string `yaml:"extensions"`

	Thumbnail ThumbnailConfig `yaml:"thumbnail"`
	Deploy    DeployConfig    `yaml:"deploy"`

	// Categories maps a category directory name to its display metadata.
	// Categories without an entry get a title-cased fallback name.
	Categories map[string]CategoryInfo `yaml:"categories"`
}

// ThumbnailConfig controls thumbnail generation.
type ThumbnailConfig struct {
	Size    int `yaml:"size"`    // bounding box edge in pixels
	Quality int `yaml:"quality"` // JPEG quality, 1-100
}

// DeployConfig names the publish command run after staging the output tree.
// The output directory is appended as the command's last argument.
type DeployConfig struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// CategoryInfo is the display metadata for one category, used by the
// gallery pages.
type CategoryInfo struct {
	Name        string `yaml:"name"`        // English display name
	Native      string `yaml:"native"`      // native-script name, optional
	Icon        string `yaml:"icon"`        // font-awesome icon class, optional
	Description string `yaml:"description"` // one-line blurb, optional
}

// defaultConfig returns the built-in settings used when no config file exists.
func defaultConfig() Config {
	return Config{
		PhotosDir:  "photos",
		OutputDir:  "output",
		Extensions: []string{".jpg", ".jpeg", ".png"},
		Thumbnail:  ThumbnailConfig{Size: 300, Quality: 85},
	}
}

// loadConfig reads <root>/photo-site.yaml if present and merges it over the
// defaults. A missing file yields the defaults; an unreadable or invalid
// file is an error (the operator should fix it, not run with surprises).
func loadConfig(root string) (Config, error) {
	cfg := defaultConfig()

	path := filepath.Join(root, configFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize fills empty fields with defaults and clamps out-of-range values.
func (c *Config) normalize() {
	if strings.TrimSpace(c.PhotosDir) == "" {
		c.PhotosDir = "photos"
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		c.OutputDir = "output"
	}

	if len(c.Extensions) == 0 {
		c.Extensions = []string{".jpg", ".jpeg", ".png"}
	}
	for i, ext := range c.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Extensions[i] = ext
	}

	if c.Thumbnail.Size == 0 {
		c.Thumbnail.Size = 300
	}
	if c.Thumbnail.Size < 16 {
		c.Thumbnail.Size = 16
	}
	if c.Thumbnail.Quality == 0 {
		c.Thumbnail.Quality = 85
	}
	if c.Thumbnail.Quality < 1 {
		c.Thumbnail.Quality = 1
	}
	if c.Thumbnail.Quality > 100 {
		c.Thumbnail.Quality = 100
	}
}

// allowedExts returns the extension allow-list as a lookup set.
func (c *Config) allowedExts() map[string]bool {
	m := make(map[string]bool, len(c.Extensions))
	for _, ext := range c.Extensions {
		if ext != "" {
			m[ext] = true
		}
	}
	return m
}

// categoryInfo returns the display metadata for a category directory name.
// Categories absent from the config get a title-cased form of the name
// ("nan-xun-gu-zhen" -> "Nan Xun Gu Zhen").
func (c *Config) categoryInfo(name string) CategoryInfo {
	if info, ok := c.Categories[name]; ok {
		if strings.TrimSpace(info.Name) == "" {
			info.Name = titleCase(name)
		}
		return info
	}
	return CategoryInfo{Name: titleCase(name)}
}

// titleCase turns a category directory name into a display name.
func titleCase(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
	}
	return strings.Join(words, " ")
}
