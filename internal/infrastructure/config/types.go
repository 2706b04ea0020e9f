package config

import "image/color"

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display DisplayConfig `yaml:"display"`
	Boxes   BoxesConfig   `yaml:"boxes"`
	Hit     HitConfig     `yaml:"hit"`
	UI      UIConfig      `yaml:"ui"`
	Storage StorageConfig `yaml:"storage"`
	Audio   AudioConfig   `yaml:"audio"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Scale        int    `yaml:"scale"`
	Framerate    int    `yaml:"framerate"`
	Title        string `yaml:"title"`
	// FixedStep uses 1/framerate as delta time instead of the wall clock.
	FixedStep bool `yaml:"fixedStep"`
}

// BoxesConfig describes the boxes spawned at game start
type BoxesConfig struct {
	Count  int     `yaml:"count"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // pixels per second on each axis
	Color  RGB     `yaml:"color"`
	// SpawnAttempts bounds the retries for finding a non-overlapping spot
	SpawnAttempts int `yaml:"spawnAttempts"`
}

// HitConfig tunes what a successful click does to a box
type HitConfig struct {
	ProgressStep   int     `yaml:"progressStep"`
	ShakeDuration  float64 `yaml:"shakeDuration"`  // seconds
	ShakeIntensity float64 `yaml:"shakeIntensity"` // max jitter in pixels per axis
}

type UIConfig struct {
	StripHeight int     `yaml:"stripHeight"` // reserved band at the top, boxes bounce below it
	Margin      int     `yaml:"margin"`
	FontPath    string  `yaml:"fontPath"` // TTF/OTF file; empty uses the bundled Go Regular
	FontSize    float64 `yaml:"fontSize"`
	BarHeight   float64 `yaml:"barHeight"`
	BarGap      float64 `yaml:"barGap"`
	Background  RGB     `yaml:"background"`
	BarBack     RGB     `yaml:"barBack"`
	BarFill     RGB     `yaml:"barFill"`
	Text        RGB     `yaml:"text"`
}

type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"dbPath"`
}

type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sampleRate"`
	Volume     float64 `yaml:"volume"` // 0.0 - 1.0
}

// RGB is an opaque color
type RGB struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// RGBA converts to a fully opaque color.RGBA
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{c.R, c.G, c.B, 255}
}
