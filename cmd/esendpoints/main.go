package main

import (
	"context"
	"fmt"
	"os"

	"github.com/monzo/esendpoints"
)

// Version is set during build using ldflags
var Version = "dev"

func main() {
	app := newApp(esendpoints.DefaultRegistry())
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
