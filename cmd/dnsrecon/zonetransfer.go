package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/markdingo/dnsrecon/report"
	"github.com/markdingo/dnsrecon/zone"
)

const wwwPrefixNote = "Zone transfer does not require a prefix (e.g., www) for the hostname."

func (t *dnsRecon) newZoneTransferCommand() *cobra.Command {
	opts := &subdomainOptions{}
	cmd := &cobra.Command{
		Use:   "zonetransfer <hostname>",
		Short: "Probe subdomains of <hostname>, attempt zone transfers then resolve <hostname>",
		Long: `Probe subdomains of <hostname> itself using fragments from the --enumerate
wordlist. With --zonetransfer, attempt an AXFR of <hostname> from each of its
nameservers and print every A record. Finally <hostname> itself is resolved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t.runZoneTransfer(cmd.Context(), args[0], opts)
			return nil
		},
	}
	fs := cmd.Flags()
	onceStringVarP(fs, &opts.wordlist, "enumerate", "e",
		"Wordlist of subdomain fragments, one per line")
	fs.BoolVarP(&opts.zoneTransfer, "zonetransfer", "z", false,
		"Attempt a zone transfer from each nameserver")

	return cmd
}

// runZoneTransfer prints each section in turn. Either misuse note stops the command
// without an error.
func (t *dnsRecon) runZoneTransfer(ctx context.Context, hostname string, opts *subdomainOptions) {
	if len(opts.wordlist) > 0 {
		if !t.checkPlainHostname(hostname) {
			return
		}
		t.enumerate(ctx, hostname, opts.wordlist, false)
	}

	if opts.zoneTransfer {
		if hasWWWPrefix(hostname) {
			t.printer.Note(wwwPrefixNote)
			t.printer.EndSection()
			return
		}
		t.dumpZone(ctx, hostname)
	}

	t.mainHost(ctx, hostname)
}

func (t *dnsRecon) dumpZone(ctx context.Context, domain string) {
	t.printer.Section(report.ZoneTransferTitle)
	defer t.printer.EndSection()

	sink := func(ev zone.Event) {
		t.printer.ZoneEvent(ev)
	}
	t.printer.ZoneOutcome(zone.NewDumper(t.resolver).Dump(ctx, domain, sink))
}

// hasWWWPrefix is case sensitive.
func hasWWWPrefix(hostname string) bool {
	return strings.HasPrefix(hostname, "www.")
}
