// Package frames expands animated GIFs and video containers into
// standalone frames.
package frames

import (
	"image"
	"image/draw"
	"image/gif"
	"io"

	"github.com/pkg/errors"
)

// DecodeGIF decodes every frame of a GIF, composing each one over the
// running canvas so partial-update frames come out whole.
func DecodeGIF(r io.Reader) ([]image.Image, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "gif decode")
	}
	if len(g.Image) == 0 {
		return nil, errors.New("gif has no frames")
	}

	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		bounds = g.Image[0].Bounds()
	}

	canvas := image.NewRGBA(bounds)
	out := make([]image.Image, 0, len(g.Image))
	for _, frame := range g.Image {
		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)

		dup := image.NewRGBA(bounds)
		draw.Draw(dup, bounds, canvas, bounds.Min, draw.Src)
		out = append(out, dup)
	}

	return out, nil
}
