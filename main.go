package main

import (
	"os"

	"github.com/jdwhite/blogctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
