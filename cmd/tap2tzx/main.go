package main

import "github.com/taperoom/tap2tzx/cmd/tap2tzx/cmd"

func main() {
	cmd.Execute()
}
