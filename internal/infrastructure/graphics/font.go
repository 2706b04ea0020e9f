// Package graphics implements the render surface on top of Ebitengine.
package graphics

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// LoadFace loads the font used for the overlay text.
// An empty path selects the bundled Go Regular face.
func LoadFace(path string, size float64) (*text.GoTextFace, error) {
	data := goregular.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font %s: %w", path, err)
		}
		data = b
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	return &text.GoTextFace{Source: src, Size: size}, nil
}
