package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCommand(newService).ExecuteContext(ctx)
	cancel()
	if err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints err unless the run was interrupted or the failure
// was already written out with the results.
func reportError(w io.Writer, err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, errAnalysisFailed) {
		return
	}
	fmt.Fprintln(w, err)
}
