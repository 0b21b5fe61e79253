package frames

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGIF(t *testing.T) []byte {
	t.Helper()

	palette := color.Palette{
		color.NRGBA{0, 0, 0, 255},
		color.NRGBA{255, 0, 0, 255},
		color.NRGBA{0, 0, 255, 255},
	}

	// Full first frame, red.
	first := image.NewPaletted(image.Rect(0, 0, 8, 8), palette)
	for i := range first.Pix {
		first.Pix[i] = 1
	}

	// Second frame only updates the top-left quadrant to blue.
	second := image.NewPaletted(image.Rect(0, 0, 4, 4), palette)
	for i := range second.Pix {
		second.Pix[i] = 2
	}

	var buf bytes.Buffer
	require.NoError(t, gif.EncodeAll(&buf, &gif.GIF{
		Image:  []*image.Paletted{first, second},
		Delay:  []int{10, 10},
		Config: image.Config{Width: 8, Height: 8},
	}))
	return buf.Bytes()
}

func rgb(t *testing.T, img image.Image, x, y int) (uint32, uint32, uint32) {
	t.Helper()
	r, g, b, _ := img.At(x, y).RGBA()
	return r >> 8, g >> 8, b >> 8
}

func TestDecodeGIFComposesFrames(t *testing.T) {
	imgs, err := DecodeGIF(bytes.NewReader(testGIF(t)))
	require.NoError(t, err)
	require.Len(t, imgs, 2)

	for _, img := range imgs {
		assert.Equal(t, 8, img.Bounds().Dx())
		assert.Equal(t, 8, img.Bounds().Dy())
	}

	r, _, b := rgb(t, imgs[1], 1, 1)
	assert.Zero(t, r)
	assert.EqualValues(t, 255, b)

	// Outside the partial second frame the first frame shows through.
	r, _, b = rgb(t, imgs[1], 6, 6)
	assert.EqualValues(t, 255, r)
	assert.Zero(t, b)
}

func TestDecodeGIFGarbage(t *testing.T) {
	_, err := DecodeGIF(bytes.NewReader([]byte("nope")))
	assert.Error(t, err)
}
