package prep

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProcessorStill(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, solid(100, 60, red)))

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "media/photo.png", buf.Bytes(), 0644))

	p := NewProcessor(fs, nil, zap.NewNop(), 48, 24)
	require.NoError(t, p.Process("media/photo.png"))

	bs, err := afero.ReadFile(fs, "media/photo_48.jpg")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(bs, []byte{0xFF, 0xD8}))
}

func TestProcessorGIFSequence(t *testing.T) {
	palette := color.Palette{color.NRGBA{A: 255}, red}
	frame := image.NewPaletted(image.Rect(0, 0, 8, 8), palette)
	for i := range frame.Pix {
		frame.Pix[i] = 1
	}

	var buf bytes.Buffer
	require.NoError(t, gif.EncodeAll(&buf, &gif.GIF{
		Image: []*image.Paletted{frame, frame, frame},
		Delay: []int{5, 5, 5},
	}))

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "clip.gif", buf.Bytes(), 0644))

	p := NewProcessor(fs, nil, zap.NewNop(), 48, 24)
	require.NoError(t, p.Process("clip.gif"))

	for _, name := range []string{"clip/0.jpg", "clip/1.jpg", "clip/2.jpg"} {
		bs, err := afero.ReadFile(fs, name)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(bs, []byte{0xFF, 0xD8}))
	}
	exists, err := afero.Exists(fs, "clip/3.jpg")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestProcessorStillMissing(t *testing.T) {
	p := NewProcessor(afero.NewMemMapFs(), nil, zap.NewNop(), 48, 24)
	assert.Error(t, p.Process("missing.png"))
}
