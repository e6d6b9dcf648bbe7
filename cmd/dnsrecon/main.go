package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/markdingo/dnsrecon/log"
)

func reportError(severity string, err error, messages ...string) {
	msg := severity
	if len(messages) > 0 {
		msg += ": " + strings.Join(messages, " ")
	}
	if err != nil {
		msg += ": " + err.Error()
	}
	fmt.Fprintln(log.Out(), msg)
}

func warning(err error, messages ...string) {
	reportError("Warning", err, messages...)
}

func fatal(err error, messages ...string) {
	reportError("Fatal", err, messages...)
	os.Exit(1)
}

//////////////////////////////////////////////////////////////////////

func main() {
	ctx, stop := withSignalCancel(context.Background())
	dr := newDNSRecon(nil, nil, nil)
	err := dr.execute(ctx, os.Args[1:])
	stop()
	if err != nil {
		fatal(err)
	}
}
