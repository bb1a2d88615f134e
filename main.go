package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/quadro/cmd"
	"github.com/thenoetrevino/quadro/internal/cli"
)

func main() {
	err := cmd.Execute()

	// commands report their own failures through the output formatter
	var cmdErr *cli.CommandError
	if err != nil && !errors.As(err, &cmdErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	os.Exit(cli.ExitCode(err))
}
