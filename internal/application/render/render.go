// Package render draws the game state onto an abstract surface.
//
// The renderer only reads state. Everything backend-specific (Ebitengine
// images, fonts) lives behind Surface.
package render

import (
	"fmt"
	"image/color"

	"github.com/younwookim/boxclicker/internal/application/state"
	"github.com/younwookim/boxclicker/internal/domain/entity"
	"github.com/younwookim/boxclicker/internal/infrastructure/config"
)

// Surface is the drawing target for one frame
type Surface interface {
	Clear(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	DrawText(s string, x, y float64, c color.Color)
	// MeasureText returns the rendered size of s in pixels
	MeasureText(s string) (w, h float64)
}

// Renderer draws boxes, progress bars and the score label
type Renderer struct {
	screenW float64
	margin  float64

	barHeight float64
	barGap    float64

	colorBG      color.RGBA
	colorBarBack color.RGBA
	colorBarFill color.RGBA
	colorText    color.RGBA
}

// NewRenderer creates a renderer from the display and UI config
func NewRenderer(cfg *config.GameConfig) *Renderer {
	return &Renderer{
		screenW:      float64(cfg.Display.ScreenWidth),
		margin:       float64(cfg.UI.Margin),
		barHeight:    cfg.UI.BarHeight,
		barGap:       cfg.UI.BarGap,
		colorBG:      cfg.UI.Background.RGBA(),
		colorBarBack: cfg.UI.BarBack.RGBA(),
		colorBarFill: cfg.UI.BarFill.RGBA(),
		colorText:    cfg.UI.Text.RGBA(),
	}
}

// Draw renders one frame of gs onto dst
func (r *Renderer) Draw(dst Surface, gs *state.GameState) {
	dst.Clear(r.colorBG)

	for _, b := range gs.Boxes {
		if b.ShowsProgressBar() {
			r.drawProgressBar(dst, b)
		}
		dst.FillRect(b.DrawX(), b.DrawY(), b.W, b.H, b.Color)
	}

	r.drawScore(dst, gs.Score)
}

// drawProgressBar draws the two-rect bar just above the box
func (r *Renderer) drawProgressBar(dst Surface, b *entity.Box) {
	x := b.DrawX()
	y := b.DrawY() - r.barGap - r.barHeight

	dst.FillRect(x, y, b.W, r.barHeight, r.colorBarBack)
	dst.FillRect(x, y, b.W*b.ProgressRatio(), r.barHeight, r.colorBarFill)
}

// drawScore draws the score label right-aligned at the top
func (r *Renderer) drawScore(dst Surface, score entity.Score) {
	label := ScoreLabel(score)
	w, _ := dst.MeasureText(label)
	dst.DrawText(label, r.screenW-w-r.margin, r.margin, r.colorText)
}

// ScoreLabel formats the score overlay text
func ScoreLabel(score entity.Score) string {
	return fmt.Sprintf("Score: %d", score.Value())
}
