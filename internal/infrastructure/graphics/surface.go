package graphics

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface adapts an *ebiten.Image to render.Surface for a single frame
type Surface struct {
	dst  *ebiten.Image
	face text.Face
}

// NewSurface wraps the frame's screen image
func NewSurface(dst *ebiten.Image, face text.Face) *Surface {
	return &Surface{dst: dst, face: face}
}

// Clear fills the whole image
func (s *Surface) Clear(c color.Color) {
	s.dst.Fill(c)
}

// FillRect draws a filled axis-aligned rectangle
func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

// DrawText draws s with its top-left corner at x, y
func (s *Surface) DrawText(str string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.dst, str, s.face, op)
}

// MeasureText returns the size of str in the surface's face
func (s *Surface) MeasureText(str string) (float64, float64) {
	return text.Measure(str, s.face, 0)
}
