package main

import (
	"fmt"
	"os"
)

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sexpc: %s\n", err)
		os.Exit(1)
	}
}
