//go:build !windows
// +build !windows

package osutil

import (
	"os"
	"syscall"
	"testing"
	"time"
)

func TestIsSignal(t *testing.T) {
	if !IsSignalINT(os.Interrupt) || IsSignalINT(syscall.SIGTERM) {
		t.Error("IsSignalINT wrong")
	}
	if !IsSignalTERM(syscall.SIGTERM) || IsSignalTERM(os.Interrupt) {
		t.Error("IsSignalTERM wrong")
	}
	if !IsSignalHUP(syscall.SIGHUP) || IsSignalHUP(syscall.SIGTERM) {
		t.Error("IsSignalHUP wrong")
	}
}

func TestSignalNotify(t *testing.T) {
	c := make(chan os.Signal, 1)
	SignalNotify(c)
	defer SignalStop(c)

	err := syscall.Kill(os.Getpid(), syscall.SIGHUP)
	if err != nil {
		t.Fatal("Could not signal self", err)
	}

	select {
	case s := <-c:
		if !IsSignalHUP(s) {
			t.Error("Expected SIGHUP, not", s)
		}
	case <-time.After(2 * time.Second):
		t.Error("Signal not delivered")
	}
}
