package main

import (
	"os"

	"github.com/ziadkadry99/hvacpanel/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
