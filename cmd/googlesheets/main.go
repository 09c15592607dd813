package main

import (
	"os"

	"github.com/CJWorkbench/googlesheets/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
