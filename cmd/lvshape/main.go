package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvshape/config"
	"github.com/katalvlaran/lvshape/internal/cli"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := cli.NewRootCommand(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
