package system

import (
	"math/rand"

	"github.com/younwookim/boxclicker/internal/domain/entity"
	"github.com/younwookim/boxclicker/internal/infrastructure/config"
)

// SpawnBoxes places count boxes at random positions inside the playable area.
// Each box gets the configured speed on both axes with a random sign.
// Placement retries up to SpawnAttempts times to avoid overlapping a box that
// was already placed; after that the last candidate is accepted.
func SpawnBoxes(cfg *config.GameConfig, rng *rand.Rand, count int) []*entity.Box {
	bounds := PlayBounds(cfg)
	w, h := cfg.Boxes.Width, cfg.Boxes.Height
	speed := cfg.Boxes.Speed
	c := cfg.Boxes.Color.RGBA()

	// Keep one pixel off the walls so a fresh box does not bounce on its first tick
	spanX := bounds.Width() - w - 2
	spanY := bounds.Height() - h - 2
	if spanX < 0 {
		spanX = 0
	}
	if spanY < 0 {
		spanY = 0
	}

	attempts := cfg.Boxes.SpawnAttempts
	if attempts < 1 {
		attempts = 1
	}

	boxes := make([]*entity.Box, 0, count)
	for i := 0; i < count; i++ {
		var x, y float64
		for try := 0; try < attempts; try++ {
			x = bounds.MinX + 1 + rng.Float64()*spanX
			y = bounds.MinY + 1 + rng.Float64()*spanY
			if !overlapsAny(boxes, x, y, w, h) {
				break
			}
		}

		boxes = append(boxes, entity.NewBox(
			entity.BoxID(i+1), x, y, w, h,
			randomSign(rng)*speed, randomSign(rng)*speed, c,
		))
	}
	return boxes
}

func overlapsAny(boxes []*entity.Box, x, y, w, h float64) bool {
	for _, b := range boxes {
		if x < b.X+b.W && x+w > b.X && y < b.Y+b.H && y+h > b.Y {
			return true
		}
	}
	return false
}

func randomSign(rng *rand.Rand) float64 {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
