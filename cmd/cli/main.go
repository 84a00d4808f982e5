package main

import (
	"fmt"
	"os"

	"github.com/costlens/costlens/pkg/terminal"
)

func main() {
	endpoint := os.Getenv("COSTLENS_ENDPOINT")

	cli := terminal.NewCLI(terminal.Options{
		Endpoint: endpoint,
		Output:   os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
