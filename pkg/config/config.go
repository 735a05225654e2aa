package config

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"devicon/internal/core/domain"
)

// DefaultFileName is the config file looked up in the working directory
const DefaultFileName = ".devicon.yaml"

type Config struct {
	SourceDir string   `yaml:"source_dir"`
	DestDir   string   `yaml:"dest_dir"`
	Icons     []string `yaml:"icons"`

	// Badge Settings
	Label         string   `yaml:"label"`
	BadgeColor    string   `yaml:"badge_color"`
	BadgeOpacity  int      `yaml:"badge_opacity"`
	LabelColor    string   `yaml:"label_color"`
	TriangleRatio float64  `yaml:"triangle_ratio"`
	FontRatio     float64  `yaml:"font_ratio"`
	MinFontSize   int      `yaml:"min_font_size"`
	LabelInset    int      `yaml:"label_inset"`
	FontPaths     []string `yaml:"font_paths"`

	// Watch Settings
	WatchDebounceMS int `yaml:"watch_debounce_ms"`

	// UI Settings
	ColorTheme string `yaml:"color_theme"`
}

// DefaultConfig returns a Config struct with default values matching the
// stock extension layout and badge appearance
func DefaultConfig() *Config {
	return &Config{
		SourceDir:       filepath.Join("chrome-extension-wxt", "public"),
		DestDir:         filepath.Join("chrome-extension-wxt", "public", "dev"),
		Icons:           domain.DefaultIconSet(),
		Label:           "DEV",
		BadgeColor:      "#DC143C",
		BadgeOpacity:    200,
		LabelColor:      "#FFFFFF",
		TriangleRatio:   0.6,
		FontRatio:       0.25,
		MinFontSize:     6,
		LabelInset:      2,
		FontPaths:       domain.DefaultFontPaths(),
		WatchDebounceMS: 500,
		ColorTheme:      "auto",
	}
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	// Start with default config
	cfg := DefaultConfig()

	// Try to read the file
	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config (not an error)
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// normalize resets out-of-range or missing values to their defaults
func (c *Config) normalize() {
	defaults := DefaultConfig()

	if c.SourceDir == "" {
		c.SourceDir = defaults.SourceDir
	}
	if c.DestDir == "" {
		c.DestDir = defaults.DestDir
	}
	if len(c.Icons) == 0 {
		c.Icons = defaults.Icons
	}
	if c.Label == "" {
		c.Label = defaults.Label
	}
	if _, err := parseHexColor(c.BadgeColor); err != nil {
		c.BadgeColor = defaults.BadgeColor
	}
	if c.BadgeOpacity < 0 || c.BadgeOpacity > 255 {
		c.BadgeOpacity = defaults.BadgeOpacity
	}
	if _, err := parseHexColor(c.LabelColor); err != nil {
		c.LabelColor = defaults.LabelColor
	}
	if c.TriangleRatio <= 0 || c.TriangleRatio > 1 {
		c.TriangleRatio = defaults.TriangleRatio
	}
	if c.FontRatio <= 0 || c.FontRatio > 1 {
		c.FontRatio = defaults.FontRatio
	}
	if c.MinFontSize <= 0 {
		c.MinFontSize = defaults.MinFontSize
	}
	if c.LabelInset < 0 {
		c.LabelInset = defaults.LabelInset
	}
	if c.WatchDebounceMS <= 0 {
		c.WatchDebounceMS = defaults.WatchDebounceMS
	}
	if c.ColorTheme == "" {
		c.ColorTheme = defaults.ColorTheme
	}
}

// BadgeStyle converts the config into a domain badge style. Color fields
// are guaranteed parseable after Load; direct struct construction should
// use valid hex strings.
func (c *Config) BadgeStyle() domain.BadgeStyle {
	fill, err := parseHexColor(c.BadgeColor)
	if err != nil {
		fill, _ = parseHexColor(DefaultConfig().BadgeColor)
	}
	fill.A = uint8(c.BadgeOpacity)

	label, err := parseHexColor(c.LabelColor)
	if err != nil {
		label, _ = parseHexColor(DefaultConfig().LabelColor)
	}

	return domain.BadgeStyle{
		Label:         c.Label,
		Fill:          fill,
		LabelColor:    label,
		TriangleRatio: c.TriangleRatio,
		FontRatio:     c.FontRatio,
		MinFontSize:   c.MinFontSize,
		LabelInset:    c.LabelInset,
		FontPaths:     c.FontPaths,
	}
}

// parseHexColor parses a "#RRGGBB" string into an opaque color
func parseHexColor(s string) (color.NRGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
