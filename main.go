package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/todo/cmd"
	"github.com/thenoetrevino/todo/internal/cli"
)

func main() {
	err := cmd.Execute()
	if err == nil {
		return
	}

	// Commands that already reported their failure return an ExitCodeError
	var exitErr *cli.ExitCodeError
	if !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cli.ExitCode(err))
}
