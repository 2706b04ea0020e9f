package entity

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testBounds = Bounds{MinX: 0, MinY: 0, MaxX: 800, MaxY: 600}

func newTestBox(x, y, dx, dy float64) *Box {
	return NewBox(1, x, y, 50, 50, dx, dy, color.RGBA{0, 0, 255, 255})
}

func TestBox_MoveAndBounce_NoWallContact(t *testing.T) {
	b := newTestBox(375, 275, 80, 80)

	bx, by := b.MoveAndBounce(1.0, testBounds)

	assert.False(t, bx)
	assert.False(t, by)
	assert.InDelta(t, 455.0, b.X, 1e-9)
	assert.InDelta(t, 355.0, b.Y, 1e-9)
	assert.Equal(t, 80.0, b.DX, "velocity unchanged without wall contact")
	assert.Equal(t, 80.0, b.DY)
}

func TestBox_MoveAndBounce_Walls(t *testing.T) {
	tests := []struct {
		name      string
		x, y      float64
		dx, dy    float64
		dt        float64
		bounds    Bounds
		wantFlipX bool
		wantFlipY bool
	}{
		{"right wall", 745, 300, 80, 0, 0.1, testBounds, true, false},
		{"left wall", 5, 300, -80, 0, 0.1, testBounds, true, false},
		{"exactly touching left", 8, 300, -80, 0, 0.1, testBounds, true, false},
		{"bottom wall", 300, 545, 0, 80, 0.1, testBounds, false, true},
		{"top wall", 300, 5, 0, -80, 0.1, testBounds, false, true},
		{"corner", 745, 545, 80, 80, 0.1, testBounds, true, true},
		{"free flight", 300, 300, 80, -80, 0.1, testBounds, false, false},
		{"ui strip acts as top wall", 300, 35, 0, -80, 0.1, Bounds{MaxX: 800, MinY: 32, MaxY: 600}, false, true},
		{"below ui strip", 300, 60, 0, -80, 0.1, Bounds{MaxX: 800, MinY: 32, MaxY: 600}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBox(tt.x, tt.y, tt.dx, tt.dy)

			bx, by := b.MoveAndBounce(tt.dt, tt.bounds)

			assert.Equal(t, tt.wantFlipX, bx)
			assert.Equal(t, tt.wantFlipY, by)
			if tt.wantFlipX {
				assert.Equal(t, -tt.dx, b.DX)
			} else {
				assert.Equal(t, tt.dx, b.DX)
			}
			if tt.wantFlipY {
				assert.Equal(t, -tt.dy, b.DY)
			} else {
				assert.Equal(t, tt.dy, b.DY)
			}
		})
	}
}

func TestBox_MoveAndBounce_KeepsSpeed(t *testing.T) {
	b := newTestBox(700, 500, 80, 80)

	for i := 0; i < 500; i++ {
		b.MoveAndBounce(1.0/60.0, testBounds)
		assert.Equal(t, 80.0, abs(b.DX))
		assert.Equal(t, 80.0, abs(b.DY))
	}
}

func TestBox_Contains(t *testing.T) {
	b := newTestBox(375, 275, 0, 0)

	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"center", 400, 300, true},
		{"top-left corner inclusive", 375, 275, true},
		{"right edge exclusive", 425, 300, false},
		{"bottom edge exclusive", 400, 325, false},
		{"just inside bottom-right", 424.9, 324.9, true},
		{"left of box", 374, 300, false},
		{"above box", 400, 274, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Contains(tt.px, tt.py))
		})
	}
}

func TestBox_AddProgress(t *testing.T) {
	b := newTestBox(0, 0, 0, 0)

	b.AddProgress(10)
	assert.Equal(t, 10, b.Progress)
	assert.False(t, b.IsComplete())

	b.AddProgress(-5)
	assert.Equal(t, 10, b.Progress, "progress never decreases")

	b.Progress = 99
	b.AddProgress(10)
	assert.Equal(t, MaxProgress, b.Progress, "capped at 100")
	assert.True(t, b.IsComplete())
}

func TestBox_ShowsProgressBar(t *testing.T) {
	b := newTestBox(0, 0, 0, 0)
	assert.False(t, b.ShowsProgressBar(), "untouched box has no bar")

	b.Progress = 50
	assert.True(t, b.ShowsProgressBar())
	assert.Equal(t, 0.5, b.ProgressRatio())

	b.Progress = MaxProgress
	assert.False(t, b.ShowsProgressBar())
}

func TestBox_Shake(t *testing.T) {
	b := newTestBox(100, 100, 0, 0)
	assert.False(t, b.IsShaking())

	b.StartShake(0.3)
	b.ShakeX, b.ShakeY = 2, -3
	assert.True(t, b.IsShaking())
	assert.Equal(t, 102.0, b.DrawX())
	assert.Equal(t, 97.0, b.DrawY())
	assert.Equal(t, 100.0, b.X, "jitter never moves the stored position")

	b.StopShake()
	assert.False(t, b.IsShaking())
	assert.Equal(t, 100.0, b.DrawX())
}

func TestScore_Increment(t *testing.T) {
	var s Score
	s.Increment()
	s.Increment()
	assert.Equal(t, 2, s.Value())
}

func TestBounds_Size(t *testing.T) {
	b := Bounds{MinX: 0, MinY: 32, MaxX: 800, MaxY: 600}
	assert.Equal(t, 800.0, b.Width())
	assert.Equal(t, 568.0, b.Height())
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
