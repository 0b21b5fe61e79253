package main

import (
	"fmt"
	"log"

	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"

	"github.com/ShapiroDesignLab/DiceMaster-ESPScreen/pkg/combine"
)

var output = flag.StringP("output", "o", "combined.h", "output file name")

func main() {
	flag.Parse()

	dir := "."
	if flag.NArg() > 0 {
		dir = flag.Arg(0)
	}

	if err := combine.Headers(afero.NewOsFs(), dir, *output); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Combined .h files have been written to '%s'.\n", *output)
}
