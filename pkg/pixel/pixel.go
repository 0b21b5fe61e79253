package pixel

import (
	"image"
)

// Format selects the packed pixel layout understood by the panel driver.
type Format int

const (
	RGB565 Format = iota
	RGB666
)

func (f Format) String() string {
	if f == RGB666 {
		return "rgb666"
	}
	return "rgb565"
}

// Pack converts one 8-bit RGB triple into the packed value for f.
func (f Format) Pack(r, g, b uint8) uint16 {
	if f == RGB666 {
		return Pack666(r, g, b)
	}
	return Pack565(r, g, b)
}

// Pack565 packs an 8-bit RGB triple as RRRRRGGGGGGBBBBB. Channels are
// reduced by truncation, no rounding or dithering.
func Pack565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// Pack666 reduces each channel to 6 bits and packs them with shifts of
// 12 and 6. The result is 18 bits wide, so the top two red bits fall out
// of the 16-bit slot. The firmware tables on the device were generated
// exactly this way, so the truncation is kept bit-for-bit.
func Pack666(r, g, b uint8) uint16 {
	return uint16(uint32(r>>2)<<12 | uint32(g>>2)<<6 | uint32(b>>2))
}

// Values scans img row by row, top to bottom, and packs every pixel.
func Values(img image.Image, f Format) []uint16 {
	bounds := img.Bounds()
	out := make([]uint16, 0, bounds.Dx()*bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			out = append(out, f.Pack(uint8(r>>8), uint8(g>>8), uint8(b>>8)))
		}
	}

	return out
}
