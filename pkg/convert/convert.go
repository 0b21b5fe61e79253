// Package convert turns images into C header artifacts, either one file
// at a time or a whole directory into a batched header with pointer and
// size tables.
package convert

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/inhies/go-bytesize"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/ShapiroDesignLab/DiceMaster-ESPScreen/pkg/carray"
	"github.com/ShapiroDesignLab/DiceMaster-ESPScreen/pkg/imgio"
	"github.com/ShapiroDesignLab/DiceMaster-ESPScreen/pkg/pixel"
)

// Options control artifact naming; empty fields are derived from the
// input path.
type Options struct {
	Output string
	Name   string
	Guard  string
}

// NewRaw builds a converter that embeds the input file bytes verbatim
// as uint8_t arrays.
func NewRaw(fs afero.Fs, logger *zap.Logger) *Converter {
	return &Converter{
		fs:     fs,
		logger: logger,
		elem:   carray.U8,
	}
}

// NewPixels builds a converter that decodes each image, resizes it to
// edge x edge and packs every pixel in the given format.
func NewPixels(fs afero.Fs, format pixel.Format, edge int, logger *zap.Logger) *Converter {
	return &Converter{
		fs:     fs,
		logger: logger,
		elem:   carray.U16,
		pixels: true,
		format: format,
		edge:   edge,
		prefix: format.String() + "_",
	}
}

type Converter struct {
	fs     afero.Fs
	logger *zap.Logger
	elem   carray.Elem
	pixels bool
	format pixel.Format
	edge   int
	prefix string
}

// Run dispatches on the input: http(s) URLs and plain files become one
// artifact, directories become a batched artifact.
func (c *Converter) Run(input string, opts Options) error {
	if imgio.IsURL(input) {
		return c.File(input, opts)
	}

	info, err := c.fs.Stat(input)
	if err != nil {
		return fmt.Errorf("stat input failed: %w", err)
	}

	return lo.Ternary(info.IsDir(), c.Dir, c.File)(input, opts)
}

// File converts a single image into one header artifact carrying the
// array and its _SIZE companion.
func (c *Converter) File(input string, opts Options) error {
	var bs []byte
	var err error
	if imgio.IsURL(input) {
		bs, err = imgio.NewFetcher().Fetch(input)
	} else if !imgio.Supported(input) {
		return fmt.Errorf("unsupported file format: %s", input)
	} else {
		bs, err = afero.ReadFile(c.fs, input)
	}
	if err != nil {
		return fmt.Errorf("read input failed: %w", err)
	}

	pl, err := c.build(bs)
	if err != nil {
		return err
	}

	opts = c.fill(imgio.BaseName(input), opts)

	var buf bytes.Buffer
	cw := carray.NewWriter(&buf)
	cw.GuardOpen(opts.Guard)
	c.emit(cw, opts.Name, pl)
	cw.SizeDecl(opts.Name)
	cw.GuardClose(opts.Guard)
	if err := cw.Err(); err != nil {
		return err
	}

	return c.write(opts.Output, buf.Bytes())
}

// Dir converts every supported image directly inside dir into one
// artifact: per-image arrays suffixed _00, _01, ... followed by a
// pointer table and a size table. Images that fail to decode are
// reported and skipped; the tables only reference successful ones.
func (c *Converter) Dir(dir string, opts Options) error {
	files, err := imgio.ListImages(c.fs, dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no images found in %s", dir)
	}

	opts = c.fill(filepath.Base(filepath.Clean(dir)), opts)

	var buf bytes.Buffer
	cw := carray.NewWriter(&buf)
	cw.GuardOpen(opts.Guard)

	var names []string
	var sizes []int
	for _, file := range files {
		pl, err := c.load(filepath.Join(dir, file))
		if err != nil {
			c.logger.With(zap.String("file", file), zap.Error(err)).Warn("skipped")
			continue
		}

		name := fmt.Sprintf("%s_%02d", opts.Name, len(names))
		c.emit(cw, name, pl)
		names = append(names, name)
		sizes = append(sizes, pl.count())
	}

	if len(names) == 0 {
		return fmt.Errorf("no images converted from %s", dir)
	}

	cw.PointerTable(opts.Name, c.elem, names)
	cw.SizeTable(opts.Name, sizes)
	cw.GuardClose(opts.Guard)
	if err := cw.Err(); err != nil {
		return err
	}

	return c.write(opts.Output, buf.Bytes())
}

type payload struct {
	bytes []byte
	words []uint16
}

func (p payload) count() int {
	if p.words != nil {
		return len(p.words)
	}
	return len(p.bytes)
}

func (c *Converter) load(file string) (payload, error) {
	bs, err := afero.ReadFile(c.fs, file)
	if err != nil {
		return payload{}, fmt.Errorf("read input failed: %w", err)
	}
	return c.build(bs)
}

func (c *Converter) build(bs []byte) (payload, error) {
	if !c.pixels {
		return payload{bytes: bs}, nil
	}

	img, err := imgio.DecodeBytes(bs)
	if err != nil {
		return payload{}, err
	}

	img = imaging.Resize(img, c.edge, c.edge, imaging.Lanczos)
	return payload{words: pixel.Values(img, c.format)}, nil
}

func (c *Converter) emit(cw *carray.Writer, name string, pl payload) {
	if c.pixels {
		cw.WordArray(name, pl.words)
	} else {
		cw.ByteArray(name, pl.bytes)
	}
}

func (c *Converter) fill(base string, opts Options) Options {
	if opts.Output == "" {
		opts.Output = c.prefix + base + ".h"
	}
	if opts.Name == "" {
		opts.Name = base
	}
	opts.Name = carray.Ident(opts.Name)
	if opts.Guard == "" {
		opts.Guard = carray.GuardFor(opts.Output)
	}
	return opts
}

func (c *Converter) write(output string, bs []byte) error {
	if err := afero.WriteFile(c.fs, output, bs, 0644); err != nil {
		return fmt.Errorf("write header failed: %w", err)
	}

	c.logger.With(
		zap.String("output", output),
		zap.String("size", bytesize.New(float64(len(bs))).String()),
	).Info("header written")

	return nil
}
