package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/markdingo/dnsrecon/dnsutil"
)

const plainHostnameNote = "Please provide a plain hostname (e.g. google.com) or with a prefix (e.g., www) for subdomain enumeration."

type subdomainOptions struct {
	wordlist     string
	zoneTransfer bool
}

func (t *dnsRecon) newSubdomainCommand() *cobra.Command {
	opts := &subdomainOptions{}
	cmd := &cobra.Command{
		Use:   "subdomain <hostname>",
		Short: "Probe subdomains of the parent of <hostname> then resolve <hostname>",
		Long: `Probe subdomains of the parent domain of <hostname> using fragments from the
--enumerate wordlist, thus www.example.com probes <fragment>.example.com. Finally
<hostname> itself is resolved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t.runSubdomain(cmd.Context(), args[0], opts)
			return nil
		},
	}
	onceStringVarP(cmd.Flags(), &opts.wordlist, "enumerate", "e",
		"Wordlist of subdomain fragments, one per line")

	return cmd
}

func (t *dnsRecon) runSubdomain(ctx context.Context, hostname string, opts *subdomainOptions) {
	if len(opts.wordlist) > 0 {
		if !t.checkPlainHostname(hostname) {
			return
		}
		t.enumerate(ctx, hostname, opts.wordlist, true)
	}
	t.mainHost(ctx, hostname)
}

// checkPlainHostname prints a note and returns false if hostname has an empty first
// label, such as ".example.com".
func (t *dnsRecon) checkPlainHostname(hostname string) bool {
	first, _ := dnsutil.SplitFirstLabel(hostname)
	if len(first) > 0 {
		return true
	}
	t.printer.Note(plainHostnameNote)
	t.printer.EndSection()

	return false
}
