package main

import (
	"context"
	"os"

	"github.com/markdingo/dnsrecon/log"
	"github.com/markdingo/dnsrecon/osutil"
)

// withSignalCancel returns a context which is cancelled when the process is asked to
// stop. Probes and zone dumps check the context between lookups so the current lookup
// completes before dnsrecon stops. The returned function must be called to release the
// signal handler.
func withSignalCancel(parent context.Context) (context.Context, func()) {
	sig := make(chan os.Signal, 1)
	osutil.SignalNotify(sig)
	ctx, cancel := context.WithCancel(parent)

	go func() {
		select {
		case s := <-sig:
			if osutil.IsSignalINT(s) || osutil.IsSignalTERM(s) || osutil.IsSignalHUP(s) {
				log.Minor("Signal ", s, " received: stopping")
			}
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		osutil.SignalStop(sig)
		cancel()
	}
}
