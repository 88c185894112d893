package main

import (
	"os"

	"github.com/sandboxgui/wsbctl/cmd"
	"github.com/sandboxgui/wsbctl/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
