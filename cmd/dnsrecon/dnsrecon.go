package main

import (
	"context"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/markdingo/dnsrecon/log"
	"github.com/markdingo/dnsrecon/report"
	"github.com/markdingo/dnsrecon/resolver"
	"github.com/markdingo/dnsrecon/subdomain"
)

// The dnsRecon container carries everything the subcommands share so that each
// subcommand is a short linear sequence of calls.
type dnsRecon struct {
	cfg      *config
	resolver resolver.Resolver
	out      io.Writer
	printer  *report.Printer
}

// newDNSRecon fills in defaults for any nil argument. A nil resolver is created once the
// command line has been parsed as it depends on --server.
func newDNSRecon(cfg *config, r resolver.Resolver, out io.Writer) *dnsRecon {
	t := &dnsRecon{cfg: cfg, resolver: r, out: out}
	if t.cfg == nil {
		t.cfg = newConfig()
	}
	if t.out == nil {
		t.out = os.Stdout
	}

	return t
}

// prepare transfers command line settings to the log package and creates the
// collaborators which depend on them. It is called once the subcommand and its options
// have been validated.
func (t *dnsRecon) prepare() {
	log.SetOut(t.out)
	log.SetLevel(log.MajorLevel)
	if t.cfg.logMinorFlag {
		log.SetLevel(log.MinorLevel)
	}
	if t.cfg.logDebugFlag {
		log.SetLevel(log.DebugLevel)
	}

	if t.resolver == nil {
		t.resolver = resolver.NewResolver(t.cfg.server)
	}

	useColor := !t.cfg.noColorFlag && !color.NoColor && t.out == os.Stdout
	t.printer = report.NewPrinter(t.out, useColor)

	if log.IfMinor() {
		server := t.cfg.server
		if len(server) == 0 {
			server = "system resolvers"
		}
		log.Minorf("%s queries sent to %s", programName, server)
	}
}

// enumerate runs the subdomain enumeration section. A missing wordlist is reported and
// enumeration is skipped but it is not an error.
func (t *dnsRecon) enumerate(ctx context.Context, hostname, wordlist string, stripFirstLabel bool) {
	t.printer.Section(report.EnumerationTitle)
	defer t.printer.EndSection()

	fragments, err := subdomain.LoadWordlist(wordlist)
	if err != nil {
		if resolver.Classify(err) == resolver.FileNotFound {
			t.printer.MissingWordlist(wordlist)
		} else {
			warning(err, "Cannot read wordlist")
		}
		return
	}

	base := subdomain.BaseDomain(hostname, stripFirstLabel)
	count := subdomain.NewProber(t.resolver).ProbeAll(ctx, base, fragments, t.printer.ProbeResult)
	if log.IfMinor() {
		log.Minorf("%d of %d candidates resolved under %s", count, len(fragments), base)
	}
}

// mainHost is the final section of the subdomain and zonetransfer subcommands.
func (t *dnsRecon) mainHost(ctx context.Context, hostname string) {
	t.printer.Section(report.MainHostTitle)
	t.printer.MainHost(hostname, subdomain.ForwardLookup(ctx, t.resolver, hostname))
}
