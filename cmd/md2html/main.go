package main

import (
	"os"

	"github.com/salmonumbrella/md2html/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
