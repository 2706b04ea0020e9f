package system

import (
	"testing"

	"github.com/younwookim/boxclicker/internal/domain/entity"
)

const benchBoxes = 1_000

// gridBoxes lays n boxes out row by row inside an 800x600 area
func gridBoxes(n int) []*entity.Box {
	boxes := make([]*entity.Box, n)
	for i := 0; i < n; i++ {
		x := float64((i * 7) % 750)
		y := float64((i * 13) % 550)
		boxes[i] = newBox(entity.BoxID(i+1), x, y)
	}
	return boxes
}

// Case 1: motion only, no shaking boxes

func BenchmarkMotion_Update(b *testing.B) {
	cfg := createTestConfig()
	sys := NewMotionSystem(cfg, newRNG())
	gs := newState(gridBoxes(benchBoxes)...)

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		sys.Update(gs, 1.0/60.0)
	}
}

// Case 2: every box shaking, one jitter draw per axis

func BenchmarkMotion_UpdateShaking(b *testing.B) {
	cfg := createTestConfig()
	sys := NewMotionSystem(cfg, newRNG())
	boxes := gridBoxes(benchBoxes)
	gs := newState(boxes...)

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for _, box := range boxes {
			box.StartShake(1)
		}
		sys.Update(gs, 1.0/60.0)
	}
}

// Case 3: hit test that misses, scanning every box

func BenchmarkHitTest_Miss(b *testing.B) {
	boxes := gridBoxes(benchBoxes)

	var hit *entity.Box
	for n := 0; n < b.N; n++ {
		hit = HitTest(boxes, -10, -10)
	}
	_ = hit
}

// Case 4: click that hits and prunes

func BenchmarkClick_HandleInput(b *testing.B) {
	cfg := createTestConfig()
	sys := NewClickSystem(cfg, newRNG())

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		b.StopTimer()
		gs := newState(gridBoxes(benchBoxes)...)
		b.StartTimer()
		sys.HandleInput(gs, PointerPress(20, 20))
	}
}
