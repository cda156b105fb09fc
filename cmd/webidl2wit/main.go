package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"

	"github.com/dennwc/webidl2wit/cmd/webidl2wit/commands"
	"github.com/dennwc/webidl2wit/internal/logger"
)

func main() {
	cmd := commands.NewRootCmd(afero.NewOsFs(), os.Stdout)
	err := cmd.Execute()
	logger.Cleanup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
