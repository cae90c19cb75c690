package qr

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// renderModules rasterizes a module matrix onto a fresh canvas. Each matrix
// cell becomes a boxSize square; border adds a quiet zone of whole modules
// around the symbol.
func renderModules(modules [][]bool, boxSize, border int, fill, back color.Color) *image.NRGBA {
	side := (len(modules) + 2*border) * boxSize
	canvas := imaging.New(side, side, back)

	for my, row := range modules {
		for mx, dark := range row {
			if !dark {
				continue
			}
			x0 := (border + mx) * boxSize
			y0 := (border + my) * boxSize
			for y := y0; y < y0+boxSize; y++ {
				for x := x0; x < x0+boxSize; x++ {
					canvas.Set(x, y, fill)
				}
			}
		}
	}
	return canvas
}
