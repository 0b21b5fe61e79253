package main

import (
	"log"

	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ShapiroDesignLab/DiceMaster-ESPScreen/pkg/convert"
)

var output = flag.StringP("output", "o", "", "output .h path (default: input name with .h)")
var name = flag.StringP("name", "n", "", "array base name (default: input name)")
var guard = flag.StringP("guard", "g", "", "include guard (default: derived from output name)")

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: img2bytes [flags] <file|dir>")
	}

	logger, _ := zap.NewDevelopment()

	c := convert.NewRaw(afero.NewOsFs(), logger)
	if err := c.Run(flag.Arg(0), convert.Options{
		Output: *output,
		Name:   *name,
		Guard:  *guard,
	}); err != nil {
		log.Fatal(err)
	}
}
