package main

import (
	"context"

	"github.com/spf13/cobra"
)

// execute parses args and runs the selected subcommand. Errors are returned rather than
// printed so that main decides how to exit.
func (t *dnsRecon) execute(ctx context.Context, args []string) error {
	root := t.newRootCommand()
	root.SetArgs(args)
	root.SetOut(t.out)
	root.SetErr(t.out)

	return root.ExecuteContext(ctx)
}

func (t *dnsRecon) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   programName,
		Short: "DNS reconnaissance: nameservers, subdomains and zone transfers",
		Long: `dnsrecon lists the nameservers of a domain, brute-forces subdomains from a
wordlist and attempts zone transfers from each nameserver of a domain.`,
		SilenceErrors: true, // main reports errors
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if t.cfg.versionFlag {
				t.cfg.printVersion(t.out)
				return nil
			}
			return cmd.Help()
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SilenceUsage = true // Args are valid so errors from here on are not usage errors
			t.prepare()
		},
	}

	// cobra's own --version is not used as it only prints the version number.
	root.Flags().BoolVarP(&t.cfg.versionFlag, "version", "v", false,
		"Print version and origin URL")

	pfs := root.PersistentFlags()
	onceStringVarP(pfs, &t.cfg.server, "server", "s",
		"Send all queries to this nameserver (host or host:port) instead of\nthe system resolvers")
	pfs.BoolVar(&t.cfg.logMinorFlag, "log-minor", false, "Log the outcome of each lookup")
	pfs.BoolVar(&t.cfg.logDebugFlag, "log-debug", false,
		"Log DNS exchanges - this implies --log-minor")
	pfs.BoolVar(&t.cfg.noColorFlag, "no-color", false, "Do not colour diagnostics")

	root.AddCommand(t.newNameserverCommand(), t.newSubdomainCommand(), t.newZoneTransferCommand())

	return root
}
