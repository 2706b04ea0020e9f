// Package config loads the game configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file name looked up by Load
const DefaultFile = "game.yaml"

// MinSampleRate is the lowest audio rate accepted; it leaves room for the
// highest feedback tone below the Nyquist limit
const MinSampleRate = 8000

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Load reads and validates the named file on top of the defaults
func (l *Loader) Load(name string) (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return Parse(data, name)
}

// LoadDefault loads game.yaml
func (l *Loader) LoadDefault() (*GameConfig, error) {
	return l.Load(DefaultFile)
}

// LoadFile loads a config from an explicit path on disk
func LoadFile(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes YAML over Default() and validates the result.
// name is only used in error messages.
func Parse(data []byte, name string) (*GameConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// Validate checks the values the game loop relies on
func (c *GameConfig) Validate() error {
	d := c.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, d.ScreenWidth, d.ScreenHeight)
	}
	if d.Framerate <= 0 {
		return fmt.Errorf("%w: framerate %d", ErrInvalid, d.Framerate)
	}
	if d.Scale <= 0 {
		return fmt.Errorf("%w: scale %d", ErrInvalid, d.Scale)
	}

	b := c.Boxes
	if b.Count < 0 {
		return fmt.Errorf("%w: box count %d", ErrInvalid, b.Count)
	}
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: box size %gx%g", ErrInvalid, b.Width, b.Height)
	}
	if c.UI.StripHeight < 0 || c.UI.StripHeight >= d.ScreenHeight {
		return fmt.Errorf("%w: ui strip height %d", ErrInvalid, c.UI.StripHeight)
	}
	playH := float64(d.ScreenHeight - c.UI.StripHeight)
	if b.Width >= float64(d.ScreenWidth) || b.Height >= playH {
		return fmt.Errorf("%w: box %gx%g does not fit the playable area", ErrInvalid, b.Width, b.Height)
	}
	if b.Speed < 0 {
		return fmt.Errorf("%w: negative box speed", ErrInvalid)
	}

	h := c.Hit
	if h.ProgressStep < 1 || h.ProgressStep > 100 {
		return fmt.Errorf("%w: progress step %d (want 1-100)", ErrInvalid, h.ProgressStep)
	}
	if h.ShakeDuration < 0 || h.ShakeIntensity < 0 {
		return fmt.Errorf("%w: negative shake settings", ErrInvalid)
	}

	if c.UI.FontSize <= 0 {
		return fmt.Errorf("%w: font size %g", ErrInvalid, c.UI.FontSize)
	}

	if c.Audio.Enabled && c.Audio.SampleRate < MinSampleRate {
		return fmt.Errorf("%w: audio sample rate %d below %d", ErrInvalid, c.Audio.SampleRate, MinSampleRate)
	}
	return nil
}
