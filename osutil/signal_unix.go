//go:build !windows
// +build !windows

package osutil

import (
	"os"
	"os/signal"
	"syscall"
)

// SignalNotify asks OS to send the signals which stop dnsrecon to the supplied channel.
func SignalNotify(c chan os.Signal) {
	signal.Notify(c, os.Interrupt, syscall.SIGHUP, syscall.SIGTERM)
}

// SignalStop undoes SignalNotify.
func SignalStop(c chan os.Signal) {
	signal.Stop(c)
}

// IsSignalTERM returns true if the supplied signal is SIGTERM. A noop on Windows.
func IsSignalTERM(s os.Signal) bool {
	return s == syscall.SIGTERM
}

// IsSignalINT returns true if the supplied signal is SIGINT.
func IsSignalINT(s os.Signal) bool {
	return s == os.Interrupt
}

// IsSignalHUP returns true if the supplied signal is SIGHUP. A noop on Windows.
func IsSignalHUP(s os.Signal) bool {
	return s == syscall.SIGHUP
}
