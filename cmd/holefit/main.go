package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/holefit/internal/cli"
	"github.com/matzehuels/holefit/pkg/errors"
)

// Exit codes. A placement that check --strict rejects gets its own code so
// scripts can tell it apart from a broken input file.
const (
	exitError       = 1
	exitUnsubmitted = 2
	exitInterrupted = 130
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	os.Exit(exitCode(run(ctx)))
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case stderrors.Is(err, context.Canceled):
		return exitInterrupted
	}
	fmt.Fprintln(os.Stderr, "holefit:", err)
	if errors.Is(err, errors.ErrCodeNotSubmittable) {
		return exitUnsubmitted
	}
	return exitError
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()

	// -v surfaces the mode, edit and store events logged by the hooks.
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log mode changes, edits and store access")

	configure := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		if configure != nil {
			return configure(cmd, args)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}
