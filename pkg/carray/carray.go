// Package carray serializes byte and word buffers as C array
// declarations, the way the firmware expects its embedded assets.
package carray

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode"
)

const (
	bytesPerLine = 12
	wordsPerLine = 16
	indent       = "    "
)

// Elem is the C element type of an emitted array.
type Elem int

const (
	U8 Elem = iota
	U16
)

func (e Elem) CType() string {
	if e == U16 {
		return "uint16_t"
	}
	return "uint8_t"
}

// Ident rewrites s into a valid C identifier, replacing anything that
// cannot appear in one with an underscore.
func Ident(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, s)
}

// GuardFor derives an include guard from an output file name, e.g.
// "assets/rgb565_logo.h" becomes "RGB565_LOGO_H".
func GuardFor(outPath string) string {
	base := filepath.Base(outPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return Ident(strings.ToUpper(base)) + "_H"
}

// NewWriter wraps w. Write errors are sticky: the first one is kept and
// every later call becomes a no-op, so callers check Err once at the end.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

type Writer struct {
	w   io.Writer
	err error
}

func (cw *Writer) Err() error {
	return cw.err
}

func (cw *Writer) printf(format string, args ...interface{}) {
	if cw.err != nil {
		return
	}
	_, cw.err = fmt.Fprintf(cw.w, format, args...)
}

func (cw *Writer) GuardOpen(guard string) {
	cw.printf("#ifndef %s\n#define %s\n\n", guard, guard)
}

func (cw *Writer) GuardClose(guard string) {
	cw.printf("#endif // %s\n", guard)
}

// ByteArray emits data as a uint8_t array, 12 hex values per line.
func (cw *Writer) ByteArray(name string, data []byte) {
	cw.printf("const uint8_t %s[] = {\n", name)
	for i := 0; i < len(data); i += bytesPerLine {
		end := i + bytesPerLine
		if end > len(data) {
			end = len(data)
		}
		vals := make([]string, 0, end-i)
		for _, b := range data[i:end] {
			vals = append(vals, fmt.Sprintf("0x%02X", b))
		}
		cw.line(vals, end == len(data))
	}
	cw.printf("};\n\n")
}

// WordArray emits data as a uint16_t array, 16 hex values per line.
func (cw *Writer) WordArray(name string, data []uint16) {
	cw.printf("const uint16_t %s[] = {\n", name)
	for i := 0; i < len(data); i += wordsPerLine {
		end := i + wordsPerLine
		if end > len(data) {
			end = len(data)
		}
		vals := make([]string, 0, end-i)
		for _, w := range data[i:end] {
			vals = append(vals, fmt.Sprintf("0x%04X", w))
		}
		cw.line(vals, end == len(data))
	}
	cw.printf("};\n\n")
}

// SizeDecl emits the element-count companion of a single array.
func (cw *Writer) SizeDecl(name string) {
	cw.printf("const size_t %s_SIZE = sizeof(%s) / sizeof(%s[0]);\n\n", name, name, name)
}

// PointerTable references every named array from one table.
func (cw *Writer) PointerTable(base string, elem Elem, names []string) {
	cw.printf("const %s* %s_array[%d] = {\n", elem.CType(), base, len(names))
	for i, name := range names {
		cw.line([]string{name}, i == len(names)-1)
	}
	cw.printf("};\n\n")
}

// SizeTable lists the element count of every array in table order.
func (cw *Writer) SizeTable(base string, sizes []int) {
	cw.printf("const size_t %s_sizes[%d] = {\n", base, len(sizes))
	for i, size := range sizes {
		cw.line([]string{fmt.Sprintf("%d", size)}, i == len(sizes)-1)
	}
	cw.printf("};\n\n")
}

// line writes one indented value row; every row but the last gets a
// trailing comma.
func (cw *Writer) line(vals []string, last bool) {
	sep := ","
	if last {
		sep = ""
	}
	cw.printf("%s%s%s\n", indent, strings.Join(vals, ", "), sep)
}
