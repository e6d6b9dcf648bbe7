package main

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/markdingo/dnsrecon/nameserver"
)

func (t *dnsRecon) newNameserverCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nameserver <domain>",
		Short: "List the nameservers of a domain and save them to <domain>.txt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return t.runNameserver(cmd.Context(), args[0])
		},
	}
	onceStringVarP(cmd.Flags(), &t.cfg.outputDir, "output-dir", "o",
		"Directory to save <domain>.txt in (default current directory)")

	return cmd
}

// runNameserver only returns an error if the list could not be saved.
func (t *dnsRecon) runNameserver(ctx context.Context, domain string) error {
	r := nameserver.List(ctx, t.resolver, domain)
	path := filepath.Join(t.cfg.outputDir, nameserver.Filename(domain))
	if r.Found() {
		err := nameserver.Save(path, r.Nameservers)
		if err != nil {
			return err
		}
	}
	t.printer.Nameservers(path, r)

	return nil
}
