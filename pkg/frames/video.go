package frames

import (
	"fmt"
	"image"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/ShapiroDesignLab/DiceMaster-ESPScreen/pkg/imgio"
)

func NewExtractor(logger *zap.Logger) *Extractor {
	return &Extractor{logger: logger}
}

type Extractor struct {
	logger *zap.Logger
}

// Video decodes every frame of a video container by having ffmpeg dump
// numbered PNGs into a scratch directory, then reading them back in
// order. The scratch directory is removed afterwards.
func (e *Extractor) Video(input string) ([]image.Image, error) {
	tmp := filepath.Join(os.TempDir(), "frames-"+xid.New().String())
	if err := os.MkdirAll(tmp, 0755); err != nil {
		return nil, errors.Wrap(err, "create workdir")
	}
	defer func() {
		_ = os.RemoveAll(tmp)
	}()

	cmd := exec.Command(
		"ffmpeg",
		"-i", input,
		"-vsync", "0",
		filepath.Join(tmp, "%06d.png"),
	)
	if bs, err := cmd.CombinedOutput(); err != nil {
		e.logger.With(zap.String("exec", cmd.String()), zap.Error(err)).Info("failed")
		fmt.Println(string(bs))
		return nil, errors.Wrap(err, "ffmpeg")
	}

	names, err := filepath.Glob(filepath.Join(tmp, "*.png"))
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	if len(names) == 0 {
		return nil, errors.New("no frames decoded")
	}

	e.logger.With(zap.String("input", input), zap.Int("frames", len(names))).Debug("extracted")

	bar := progressbar.Default(int64(len(names)), "Reading frames")
	out := make([]image.Image, 0, len(names))
	for _, name := range names {
		bs, err := os.ReadFile(name)
		if err != nil {
			return nil, errors.Wrap(err, "read frame")
		}
		img, err := imgio.DecodeBytes(bs)
		if err != nil {
			return nil, errors.Wrapf(err, "decode frame %s", filepath.Base(name))
		}
		out = append(out, img)
		_ = bar.Add(1)
	}

	return out, nil
}
