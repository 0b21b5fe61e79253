package main

import (
	"log"

	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ShapiroDesignLab/DiceMaster-ESPScreen/pkg/convert"
	"github.com/ShapiroDesignLab/DiceMaster-ESPScreen/pkg/pixel"
)

var output = flag.StringP("output", "o", "", "output .h path (default: rgb666_<input>.h)")
var name = flag.StringP("name", "n", "", "array base name (default: input name)")
var guard = flag.StringP("guard", "g", "", "include guard (default: derived from output name)")
var size = flag.Int("size", 480, "square resize edge in pixels")

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: img2rgb666 [flags] <file|dir|url>")
	}

	logger, _ := zap.NewDevelopment()

	c := convert.NewPixels(afero.NewOsFs(), pixel.RGB666, *size, logger)
	if err := c.Run(flag.Arg(0), convert.Options{
		Output: *output,
		Name:   *name,
		Guard:  *guard,
	}); err != nil {
		log.Fatal(err)
	}
}
