package main

import (
	"context"
	"log"

	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/ShapiroDesignLab/DiceMaster-ESPScreen/pkg/frames"
	"github.com/ShapiroDesignLab/DiceMaster-ESPScreen/pkg/prep"
)

var size = flag.Int("size", 480, "edge for still images")
var frameSize = flag.Int("frame-size", 240, "edge for sequence frames")

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: imgprep [flags] <image|gif|video>")
	}
	input := flag.Arg(0)

	var runErr error

	fx.New(
		fx.NopLogger,
		fx.Provide(
			zap.NewDevelopment,
			afero.NewOsFs,
			frames.NewExtractor,
			func(fs afero.Fs, ex *frames.Extractor, logger *zap.Logger) *prep.Processor {
				return prep.NewProcessor(fs, ex, logger, *size, *frameSize)
			},
		),
		fx.Invoke(func(lc fx.Lifecycle, sd fx.Shutdowner, p *prep.Processor) {
			lc.Append(fx.Hook{OnStart: func(context.Context) error {
				go func() {
					runErr = p.Process(input)
					_ = sd.Shutdown()
				}()
				return nil
			}})
		}),
	).Run()

	if runErr != nil {
		log.Fatal(runErr)
	}
}
