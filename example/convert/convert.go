package main

import (
	"fmt"

	"github.com/taperoom/tap2tzx"
	"github.com/taperoom/tap2tzx/tapefile"
)

func main() {
	tap, err := tapefile.Read("game.tap")
	if err != nil {
		panic(err)
	}

	// convert with the default pause of one second after each block
	tzx, blocks, err := tap2tzx.Convert(tap, tap2tzx.Options{})
	if err != nil {
		panic(err)
	}

	if err := tapefile.Write(tapefile.Target("game.tap"), tzx); err != nil {
		panic(err)
	}

	fmt.Printf("successful converted %d blocks \n", blocks)
}
