// Command fftwisdom generates, checks and distributes planner wisdom.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "fftwisdom:", err)
		stop()
		os.Exit(1)
	}
}

// run executes one command line. Resources built for the command are
// released even when it fails.
func run(ctx context.Context, args []string) error {
	a := newApp()
	defer a.close()

	root := a.rootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
