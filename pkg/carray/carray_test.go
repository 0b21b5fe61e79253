package carray

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdent(t *testing.T) {
	assert.Equal(t, "my_img_01", Ident("my-img 01"))
	assert.Equal(t, "back0", Ident("back0"))
	assert.Equal(t, "a_b_c", Ident("a.b.c"))
}

func TestGuardFor(t *testing.T) {
	assert.Equal(t, "RGB565_LOGO_H", GuardFor("out/rgb565_logo.h"))
	assert.Equal(t, "FACES_H", GuardFor("faces.h"))
	assert.Equal(t, "DICE_SET_H", GuardFor("dice-set.h"))
}

func arrayLines(t *testing.T, body string) []string {
	t.Helper()
	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	return lines[1 : len(lines)-1]
}

func TestByteArrayWrapsAtTwelve(t *testing.T) {
	var buf bytes.Buffer
	cw := NewWriter(&buf)
	cw.ByteArray("pad", make([]byte, 12))
	require.NoError(t, cw.Err())

	lines := arrayLines(t, buf.String())
	require.Len(t, lines, 1)
	assert.False(t, strings.HasSuffix(lines[0], ","))
	assert.Equal(t, 12, strings.Count(lines[0], "0x"))
}

func TestByteArrayThirteenValues(t *testing.T) {
	var buf bytes.Buffer
	cw := NewWriter(&buf)
	cw.ByteArray("pad", make([]byte, 13))
	require.NoError(t, cw.Err())

	lines := arrayLines(t, buf.String())
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], ","))
	assert.Equal(t, 12, strings.Count(lines[0], "0x"))
	assert.False(t, strings.HasSuffix(lines[1], ","))
	assert.Equal(t, 1, strings.Count(lines[1], "0x"))
}

func TestWordArrayWrapsAtSixteen(t *testing.T) {
	var buf bytes.Buffer
	cw := NewWriter(&buf)
	cw.WordArray("pix", make([]uint16, 17))
	require.NoError(t, cw.Err())

	assert.True(t, strings.HasPrefix(buf.String(), "const uint16_t pix[] = {\n"))
	lines := arrayLines(t, buf.String())
	require.Len(t, lines, 2)
	assert.Equal(t, 16, strings.Count(lines[0], "0x"))
	assert.Equal(t, 1, strings.Count(lines[1], "0x"))
}

func TestWordArrayFormatsHex(t *testing.T) {
	var buf bytes.Buffer
	cw := NewWriter(&buf)
	cw.WordArray("pix", []uint16{0xF800, 0x001F})
	require.NoError(t, cw.Err())
	assert.Contains(t, buf.String(), "    0xF800, 0x001F\n")
}

func TestSizeDecl(t *testing.T) {
	var buf bytes.Buffer
	cw := NewWriter(&buf)
	cw.SizeDecl("logo")
	require.NoError(t, cw.Err())
	assert.Equal(t, "const size_t logo_SIZE = sizeof(logo) / sizeof(logo[0]);\n\n", buf.String())
}

func TestTables(t *testing.T) {
	var buf bytes.Buffer
	cw := NewWriter(&buf)
	cw.PointerTable("faces", U16, []string{"faces_00", "faces_01"})
	cw.SizeTable("faces", []int{230400, 57600})
	require.NoError(t, cw.Err())

	want := "const uint16_t* faces_array[2] = {\n" +
		"    faces_00,\n" +
		"    faces_01\n" +
		"};\n\n" +
		"const size_t faces_sizes[2] = {\n" +
		"    230400,\n" +
		"    57600\n" +
		"};\n\n"
	assert.Equal(t, want, buf.String())
}

func TestGuards(t *testing.T) {
	var buf bytes.Buffer
	cw := NewWriter(&buf)
	cw.GuardOpen("LOGO_H")
	cw.GuardClose("LOGO_H")
	require.NoError(t, cw.Err())
	assert.Equal(t, "#ifndef LOGO_H\n#define LOGO_H\n\n#endif // LOGO_H\n", buf.String())
}
