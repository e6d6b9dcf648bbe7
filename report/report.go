/*
Package report is the single place where results are turned into output lines. Every
subcommand prints through a Printer so the wording of results and diagnostics is
consistent regardless of which subcommand produced them.
*/
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/markdingo/dnsrecon/dnsutil"
	"github.com/markdingo/dnsrecon/log"
	"github.com/markdingo/dnsrecon/nameserver"
	"github.com/markdingo/dnsrecon/resolver"
	"github.com/markdingo/dnsrecon/subdomain"
	"github.com/markdingo/dnsrecon/zone"
)

// NotAvailable is printed in place of a value which could not be determined.
const NotAvailable = "N/A"

// Section titles
const (
	EnumerationTitle  = "Performing subdomain enumeration:"
	ZoneTransferTitle = "Performing zone transfer:"
	MainHostTitle     = "Performing forward lookup for the main hostname:"
)

// Printer writes result lines to an io.Writer. Diagnostics are coloured if colour is
// enabled. Results are never coloured so they remain easy to post-process.
type Printer struct {
	out *log.Logger

	good, warn, bad *color.Color
}

// NewPrinter creates a Printer writing to w. useColor is normally true only when w is a
// terminal.
func NewPrinter(w io.Writer, useColor bool) *Printer {
	t := &Printer{
		out:  log.New(w, log.MajorLevel),
		good: color.New(color.FgGreen),
		warn: color.New(color.FgYellow),
		bad:  color.New(color.FgRed),
	}
	for _, c := range []*color.Color{t.good, t.warn, t.bad} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return t
}

func (t *Printer) println(s string) {
	t.out.Print(log.MajorLevel, s)
}

func (t *Printer) printf(format string, a ...interface{}) {
	t.out.Print(log.MajorLevel, fmt.Sprintf(format, a...))
}

// Section starts a new output section.
func (t *Printer) Section(title string) {
	t.println(title)
}

// EndSection separates sections with an empty line.
func (t *Printer) EndSection() {
	t.println("")
}

// Note prints an advisory message about how the command was invoked.
func (t *Printer) Note(s string) {
	t.println(t.warn.Sprint("Note: " + s))
}

// ProbeResult prints one successful subdomain probe.
func (t *Printer) ProbeResult(pr subdomain.ProbeResult) {
	t.printf("Subdomain: %s | IP: %s | DNS Record Name: %s | DNS Record Type: %s",
		pr.Candidate, pr.IP.Or(NotAvailable),
		pr.ReverseName.Or(NotAvailable), pr.RecordType.Or(NotAvailable))
}

// MissingWordlist reports a wordlist which could not be opened.
func (t *Printer) MissingWordlist(path string) {
	t.println(t.warn.Sprintf("Subdomains file '%s' not found.", path))
}

// MainHost prints the forward lookup of the hostname given on the command line. Nothing
// is printed if it did not resolve.
func (t *Printer) MainHost(host string, ip subdomain.Lookup) {
	if ip.Found() {
		t.printf("Hostname: %s resolved to IP address: %s", host, ip.Value)
	}
}

// Nameservers prints the result of a nameserver listing and where it was saved.
func (t *Printer) Nameservers(file string, r nameserver.Result) {
	if !r.Found() {
		t.println(t.warn.Sprint("No name servers found for the domain."))
		return
	}
	t.println(t.good.Sprintf("Name servers saved successfully in %s", file))
	t.println("Successful discovery of name servers:")
	for _, ns := range r.Nameservers {
		t.println(dnsutil.ChompName(ns))
	}
}

// ZoneOutcome prints the domain-level outcome of a zone dump. Nothing is printed on
// Success as the per-nameserver events have already said it all.
func (t *Printer) ZoneOutcome(o resolver.Outcome) {
	switch o {
	case resolver.Success:
	case resolver.NameNotFound:
		t.println(t.bad.Sprint("Domain not found."))
	case resolver.NoAnswer:
		t.println(t.warn.Sprint("No NS records found for the domain."))
	default:
		t.println(t.bad.Sprint("No nameservers found for the domain."))
	}
}

// ZoneEvent prints the results of a transfer attempt from one nameserver.
func (t *Printer) ZoneEvent(ev zone.Event) {
	if !ev.Attempted() {
		t.println(t.warn.Sprintf("No A record found for %s", ev.Nameserver))
		return
	}

	t.printf("\nDumping zone file from %s - %s...", ev.Nameserver, ev.Address)
	switch ev.Outcome {
	case resolver.Success:
		for _, ar := range ev.Records {
			t.printf("%s - %s\t %s", ar.Relative, ar.Address, ar.Owner)
		}
	case resolver.TransferRefused:
		t.println(t.warn.Sprintf("Transfer not allowed for %s", ev.Nameserver))
	case resolver.MalformedTransfer:
		t.println(t.bad.Sprintf("Malformed data received from %s", ev.Nameserver))
	default:
		t.println(t.bad.Sprintf("Zone transfer error from %s: %s", ev.Nameserver, cause(ev.Err)))
	}
}

// cause returns the most useful part of err for a human. A *resolver.LookupError
// already says which nameserver and zone, so only the underlying cause is needed.
func cause(err error) string {
	if err == nil {
		return "unknown error"
	}
	var le *resolver.LookupError
	if errors.As(err, &le) && le.Err != nil {
		err = le.Err
	}

	return dnsutil.ShortenLookupError(err).Error()
}
