package main

import (
	"os"

	"github.com/barhechalo/arogyam/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
