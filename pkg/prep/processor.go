package prep

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/ShapiroDesignLab/DiceMaster-ESPScreen/pkg/frames"
	"github.com/ShapiroDesignLab/DiceMaster-ESPScreen/pkg/imgio"
)

const (
	stillQuality = 80
	frameQuality = 30
)

func NewProcessor(fs afero.Fs, ex *frames.Extractor, logger *zap.Logger, stillEdge, frameEdge int) *Processor {
	return &Processor{
		fs:        fs,
		frames:    ex,
		logger:    logger,
		stillEdge: stillEdge,
		frameEdge: frameEdge,
	}
}

type Processor struct {
	fs        afero.Fs
	frames    *frames.Extractor
	logger    *zap.Logger
	stillEdge int
	frameEdge int
}

// Process dispatches on the input extension: still images get cropped
// and resized in place with an edge suffix, anything else is treated as
// a frame sequence and expanded into a folder named after the input.
func (p *Processor) Process(input string) error {
	if imgio.Supported(input) {
		return p.still(input)
	}
	return p.sequence(input)
}

func (p *Processor) still(input string) error {
	img, err := imgio.Decode(p.fs, input)
	if err != nil {
		return fmt.Errorf("open image failed: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	output := filepath.Join(filepath.Dir(input), fmt.Sprintf("%s_%d.jpg", base, p.stillEdge))

	if err := SaveJPEG(p.fs, output, Square(img, p.stillEdge), stillQuality); err != nil {
		return fmt.Errorf("save image failed: %w", err)
	}

	p.logger.With(zap.String("output", output)).Info("image saved")
	return nil
}

func (p *Processor) sequence(input string) error {
	var imgs []image.Image
	var err error

	if strings.EqualFold(filepath.Ext(input), ".gif") {
		var f afero.File
		if f, err = p.fs.Open(input); err != nil {
			return fmt.Errorf("open sequence failed: %w", err)
		}
		imgs, err = frames.DecodeGIF(f)
		_ = f.Close()
	} else {
		imgs, err = p.frames.Video(input)
	}
	if err != nil {
		return fmt.Errorf("decode sequence failed: %w", err)
	}

	dir := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	if err := p.fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create frame dir failed: %w", err)
	}

	bar := progressbar.Default(int64(len(imgs)), "Writing frames")
	for i, img := range imgs {
		output := filepath.Join(dir, fmt.Sprintf("%d.jpg", i))
		if err := SaveJPEG(p.fs, output, Square(img, p.frameEdge), frameQuality); err != nil {
			return fmt.Errorf("save frame failed: %w", err)
		}
		_ = bar.Add(1)
	}

	p.logger.With(zap.Int("frames", len(imgs)), zap.String("dir", dir)).Info("frames saved")
	return nil
}
