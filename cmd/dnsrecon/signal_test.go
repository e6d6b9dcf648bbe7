//go:build !windows
// +build !windows

package main

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"
)

func TestWithSignalCancel(t *testing.T) {
	ctx, stop := withSignalCancel(context.Background())
	defer stop()

	err := syscall.Kill(os.Getpid(), syscall.SIGHUP)
	if err != nil {
		t.Fatal("Could not signal self", err)
	}

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Error("Context not cancelled by signal")
	}
}

func TestWithSignalCancelStop(t *testing.T) {
	ctx, stop := withSignalCancel(context.Background())
	stop()
	if ctx.Err() == nil {
		t.Error("stop() should cancel the context")
	}
}
