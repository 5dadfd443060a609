// Command mountsim exercises the mount core against YAML scene files.
//
// Usage:
//
//	mountsim flatten scene.yaml          Print the flattened outputs
//	mountsim scroll scene.yaml -s 2      Scroll top to bottom, reporting mounts
//	mountsim watch scene.yaml            Reflatten whenever the file changes
//	mountsim view scene.yaml             Scroll interactively
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
