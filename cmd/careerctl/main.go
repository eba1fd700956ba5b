package main

import (
	"os"

	"roadtrip-career/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
