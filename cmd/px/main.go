package main

import (
	"fmt"
	"os"

	"github.com/abdul-hamid-achik/pixgen/internal/apperror"
	"github.com/abdul-hamid-achik/pixgen/internal/px/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(apperror.ExitCode(err))
	}
}
