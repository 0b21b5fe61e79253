package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ShapiroDesignLab/DiceMaster-ESPScreen/pkg/imgio"
	"github.com/ShapiroDesignLab/DiceMaster-ESPScreen/pkg/prep"
)

var circle = flag.Bool("circle", false, "generate one offset image per clock position")
var size = flag.Int("size", 240, "output edge in pixels")
var positions = flag.Int("positions", 24, "number of clock positions")
var radius = flag.Int("radius", 60, "orbit radius in pixels")

func main() {
	flag.Parse()

	if flag.NArg() != 2 {
		log.Fatal("usage: imgcircle [flags] <input> <output.jpg>")
	}
	input := flag.Arg(0)
	output := flag.Arg(1)

	logger, _ := zap.NewDevelopment()
	fs := afero.NewOsFs()

	img, err := imgio.Decode(fs, input)
	if err != nil {
		log.Fatal(err)
	}

	if img.Bounds().Dx() != 480 || img.Bounds().Dy() != 480 {
		logger.With(
			zap.Int("width", img.Bounds().Dx()),
			zap.Int("height", img.Bounds().Dy()),
		).Warn("input is not 480x480, continuing anyway")
	}

	resized := imaging.Resize(img, *size, *size, imaging.Lanczos)

	if !*circle {
		if err := prep.SaveJPEG(fs, output, resized, 80); err != nil {
			log.Fatal(err)
		}
		logger.With(zap.String("output", output)).Info("image saved")
		return
	}

	ext := filepath.Ext(output)
	base := strings.TrimSuffix(output, ext)

	for i, frame := range prep.Clock(resized, *positions, *radius, prep.Navy) {
		name := fmt.Sprintf("%s_%02d%s", base, i, ext)
		if err := prep.SaveJPEG(fs, name, frame, 80); err != nil {
			log.Fatal(err)
		}
		logger.With(zap.String("output", name)).Info("image saved")
	}
}
