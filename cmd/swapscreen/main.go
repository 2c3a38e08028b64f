package main

import (
	"fmt"
	"os"

	"github.com/csheth/swapscreen/internal/config"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		printError(err)
		os.Exit(1)
	}
	if err := newRootCmd().Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
