// Package prep prepares raster media for the panel: center-square
// crops, fixed-size resizes and JPEG output at the qualities the
// firmware assets were produced with.
package prep

import (
	"bytes"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/spf13/afero"
)

// Navy is the canvas color behind clock-offset frames.
var Navy = color.NRGBA{R: 0, G: 0, B: 128, A: 255}

// CropSquare cuts the largest centered square out of img.
func CropSquare(img image.Image) image.Image {
	side := img.Bounds().Dx()
	if h := img.Bounds().Dy(); h < side {
		side = h
	}
	return imaging.CropCenter(img, side, side)
}

// Square crops the center square and resizes it to edge pixels a side.
func Square(img image.Image, edge int) image.Image {
	return imaging.Resize(CropSquare(img), edge, edge, imaging.Lanczos)
}

// SaveJPEG encodes img at the given quality and writes it through fs.
func SaveJPEG(fs afero.Fs, path string, img image.Image, quality int) error {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return err
	}
	return afero.WriteFile(fs, path, buf.Bytes(), 0644)
}

// Clock returns count copies of img, each pasted onto a bg-colored
// canvas of the same size, offset along a circle of the given radius.
// Index 0 points at 12 o'clock and the angle advances clockwise, so a
// frame per index makes the image orbit once around the center.
func Clock(img image.Image, count, radius int, bg color.Color) []image.Image {
	bounds := img.Bounds()
	out := make([]image.Image, 0, count)

	for i := 0; i < count; i++ {
		rad := 2 * math.Pi * float64(i) / float64(count)
		dx := int(math.Round(float64(radius) * math.Sin(rad)))
		dy := int(math.Round(-float64(radius) * math.Cos(rad)))

		canvas := imaging.New(bounds.Dx(), bounds.Dy(), bg)
		out = append(out, imaging.Paste(canvas, img, image.Pt(dx, dy)))
	}

	return out
}
