// Command fixcalc evaluates, inverts and cross-checks fixed-width unsigned
// integers of a configurable word size and word count.
package main

import (
	"context"
	"os"

	"github.com/agbru/fixcalc/internal/app"
	apperrors "github.com/agbru/fixcalc/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		os.Exit(apperrors.HandleError(err, 0, os.Stderr, nil))
	}

	os.Exit(application.Run(context.Background(), os.Stdout))
}
