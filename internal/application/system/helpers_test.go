package system

import (
	"image/color"
	"math/rand"

	"github.com/younwookim/boxclicker/internal/application/state"
	"github.com/younwookim/boxclicker/internal/domain/entity"
	"github.com/younwookim/boxclicker/internal/infrastructure/config"
)

// createTestConfig creates a minimal 800x600 config without UI strip
func createTestConfig() *config.GameConfig {
	cfg := config.Default()
	cfg.UI.StripHeight = 0
	cfg.Hit.ProgressStep = 10
	cfg.Hit.ShakeDuration = 0.3
	cfg.Hit.ShakeIntensity = 4
	return cfg
}

func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func newBox(id entity.BoxID, x, y float64) *entity.Box {
	return entity.NewBox(id, x, y, 50, 50, 80, 80, color.RGBA{0, 0, 255, 255})
}

func newState(boxes ...*entity.Box) *state.GameState {
	return state.New(boxes)
}
