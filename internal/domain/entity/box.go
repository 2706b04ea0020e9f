package entity

import "image/color"

// Box is a clickable rectangle bouncing inside the window.
//
// X, Y is the stored top-left corner. ShakeX, ShakeY is the jitter applied on
// top of it for the current frame while ShakeTimer is running; the jitter
// never feeds back into the stored position or velocity.
type Box struct {
	ID     BoxID
	X, Y   float64
	W, H   float64
	DX, DY float64

	Color    color.RGBA
	Progress int

	// Shake feedback
	ShakeTimer     float64
	ShakeX, ShakeY float64
}

// NewBox creates a box at pixel position x, y moving with velocity dx, dy
func NewBox(id BoxID, x, y, w, h, dx, dy float64, c color.RGBA) *Box {
	return &Box{
		ID:    id,
		X:     x,
		Y:     y,
		W:     w,
		H:     h,
		DX:    dx,
		DY:    dy,
		Color: c,
	}
}

// MoveAndBounce integrates the position over dt seconds and reflects the
// velocity on any axis whose extent now touches or crosses a wall.
// Overshoot is not corrected.
func (b *Box) MoveAndBounce(dt float64, bounds Bounds) (bouncedX, bouncedY bool) {
	b.X += b.DX * dt
	b.Y += b.DY * dt

	if b.X <= bounds.MinX || b.X+b.W >= bounds.MaxX {
		b.DX = -b.DX
		bouncedX = true
	}
	if b.Y <= bounds.MinY || b.Y+b.H >= bounds.MaxY {
		b.DY = -b.DY
		bouncedY = true
	}
	return bouncedX, bouncedY
}

// Contains reports whether the point lies in [X, X+W) x [Y, Y+H)
func (b *Box) Contains(px, py float64) bool {
	return px >= b.X && px < b.X+b.W && py >= b.Y && py < b.Y+b.H
}

// AddProgress advances progress by step, capped at MaxProgress.
// Negative steps are ignored so progress never goes down.
func (b *Box) AddProgress(step int) {
	if step <= 0 {
		return
	}
	b.Progress += step
	if b.Progress > MaxProgress {
		b.Progress = MaxProgress
	}
}

// IsComplete returns true once the box has reached full progress
func (b *Box) IsComplete() bool {
	return b.Progress >= MaxProgress
}

// IsShaking returns true while the post-hit shake is running
func (b *Box) IsShaking() bool {
	return b.ShakeTimer > 0
}

// StartShake (re)starts the shake timer
func (b *Box) StartShake(duration float64) {
	b.ShakeTimer = duration
}

// StopShake clears the timer and the current jitter
func (b *Box) StopShake() {
	b.ShakeTimer = 0
	b.ShakeX = 0
	b.ShakeY = 0
}

// DrawX returns the on-screen X including shake jitter
func (b *Box) DrawX() float64 {
	return b.X + b.ShakeX
}

// DrawY returns the on-screen Y including shake jitter
func (b *Box) DrawY() float64 {
	return b.Y + b.ShakeY
}

// ProgressRatio returns progress as 0.0 - 1.0
func (b *Box) ProgressRatio() float64 {
	return float64(b.Progress) / float64(MaxProgress)
}

// ShowsProgressBar returns true when the bar should be drawn (partially damaged)
func (b *Box) ShowsProgressBar() bool {
	return b.Progress > 0 && b.Progress < MaxProgress
}
