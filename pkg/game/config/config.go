// Package config loads the player settings that tune how activities are built
// and judged.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	gameerrors "boxplay/pkg/game/errors"
)

// CellSize is the pixel size of one grid cell in the GUI renderer
type CellSize struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Config holds activity and application settings.
type Config struct {
	// Shuffles is the number of pairwise swaps applied when scrambling a grid
	Shuffles int `yaml:"shuffles"`

	// TrembleThreshold is the release distance in pixels under which a drag
	// is treated as a click
	TrembleThreshold float64 `yaml:"tremble_threshold"`

	// ShuffleRetries caps how often a shuffle step is redrawn when both
	// picks land on the same position
	ShuffleRetries int `yaml:"shuffle_retries"`

	// DragCells selects drag-to-match; otherwise cells are matched with two clicks
	DragCells bool `yaml:"drag_cells"`

	CaseSensitive bool `yaml:"case_sensitive"`

	// AmongParagraphs lets ordering targets move between paragraphs
	AmongParagraphs bool `yaml:"among_paragraphs"`

	Wildcard        string   `yaml:"wildcard"`
	Alphabet        string   `yaml:"alphabet"`
	WildTransparent bool     `yaml:"wild_transparent"`
	CellSize        CellSize `yaml:"cell_size"`

	Locale   string `yaml:"locale"`
	LogLevel string `yaml:"log_level"`

	// DumpDir is where the dump board action writes board.txt
	DumpDir string `yaml:"dump_dir"`

	// KeyBindings rebinds actions to single keys, e.g. hint: "h"
	KeyBindings map[string]string `yaml:"key_bindings"`
}

// Defaults
const (
	DefaultShuffles         = 31
	DefaultTrembleThreshold = 3.0
	DefaultShuffleRetries   = 100
	DefaultWildcard         = "*"
	DefaultAlphabet         = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DefaultLocale           = "en"
	DefaultLogLevel         = "info"
	DefaultCellWidth        = 80
	DefaultCellHeight       = 60
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Shuffles:         DefaultShuffles,
		TrembleThreshold: DefaultTrembleThreshold,
		ShuffleRetries:   DefaultShuffleRetries,
		Wildcard:         DefaultWildcard,
		Alphabet:         DefaultAlphabet,
		CellSize:         CellSize{Width: DefaultCellWidth, Height: DefaultCellHeight},
		Locale:           DefaultLocale,
		LogLevel:         DefaultLogLevel,
	}
}

// Load reads a YAML file over the defaults. An empty path or a missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, gameerrors.NewInvalidConfig(path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, gameerrors.NewInvalidConfig(path, err)
	}
	cfg.Normalize()
	return cfg, nil
}

// ApplyOverrides applies key=value pairs, using the YAML key names, on top of
// the current values.
func (c *Config) ApplyOverrides(pairs []string) error {
	if len(pairs) == 0 {
		return nil
	}
	var doc strings.Builder
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return gameerrors.NewInvalidConfig("--set", fmt.Errorf("expected key=value, got %q", p))
		}
		fmt.Fprintf(&doc, "%s: %s\n", strings.TrimSpace(key), strings.TrimSpace(value))
	}
	if err := yaml.Unmarshal([]byte(doc.String()), c); err != nil {
		return gameerrors.NewInvalidConfig("--set", err)
	}
	c.Normalize()
	return nil
}

// Normalize replaces out of range values with defaults
func (c *Config) Normalize() {
	if c.Shuffles < 0 {
		c.Shuffles = 0
	}
	if c.TrembleThreshold < 0 {
		c.TrembleThreshold = DefaultTrembleThreshold
	}
	if c.ShuffleRetries < 0 {
		c.ShuffleRetries = 0
	}
	if utf8.RuneCountInString(c.Wildcard) != 1 {
		c.Wildcard = DefaultWildcard
	}
	if strings.TrimSpace(c.Alphabet) == "" {
		c.Alphabet = DefaultAlphabet
	}
	if c.CellSize.Width <= 0 {
		c.CellSize.Width = DefaultCellWidth
	}
	if c.CellSize.Height <= 0 {
		c.CellSize.Height = DefaultCellHeight
	}
	if c.Locale == "" {
		c.Locale = DefaultLocale
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil || c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// WildcardRune returns the wildcard as a rune
func (c *Config) WildcardRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Wildcard)
	return r
}

// Level returns the configured log level
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
