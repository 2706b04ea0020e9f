package config

// Default returns the built-in configuration. Loaded files are decoded on top
// of it, so a file only needs the keys it changes.
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 600,
			Scale:        1,
			Framerate:    60,
			Title:        "Clicker",
		},
		Boxes: BoxesConfig{
			Count:         3,
			Width:         50,
			Height:        50,
			Speed:         80,
			Color:         RGB{0, 0, 255},
			SpawnAttempts: 32,
		},
		Hit: HitConfig{
			ProgressStep:   10,
			ShakeDuration:  0.3,
			ShakeIntensity: 4,
		},
		UI: UIConfig{
			StripHeight: 0,
			Margin:      10,
			FontSize:    20,
			BarHeight:   6,
			BarGap:      4,
			Background:  RGB{255, 255, 255},
			BarBack:     RGB{128, 128, 128},
			BarFill:     RGB{0, 200, 0},
			Text:        RGB{0, 0, 0},
		},
		Storage: StorageConfig{
			Enabled: true,
			DBPath:  "~/.clicker/scores.db",
		},
		Audio: AudioConfig{
			Enabled:    false,
			SampleRate: 44100,
			Volume:     0.4,
		},
	}
}
