/*
Package nameserver lists the nameservers of a domain and saves them to a file.
*/
package nameserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/dchest/safefile"

	"github.com/markdingo/dnsrecon/dnsutil"
	"github.com/markdingo/dnsrecon/log"
	"github.com/markdingo/dnsrecon/resolver"
)

// Result holds the nameservers of Domain in resolver order with trailing dots
// removed. If Outcome is anything other than resolver.Success, Nameservers is empty and
// Err holds the reason.
type Result struct {
	Domain      string
	Nameservers []string
	Outcome     resolver.Outcome
	Err         error
}

// Found returns true if at least one nameserver was listed.
func (t Result) Found() bool {
	return t.Outcome == resolver.Success && len(t.Nameservers) > 0
}

// List looks up the NS RRSet of domain. Lookup failures are recorded in the Result
// rather than returned, as "none found" is a normal answer.
func List(ctx context.Context, res resolver.Resolver, domain string) Result {
	r := Result{Domain: domain}
	nss, err := res.LookupNS(ctx, domain)
	r.Outcome = resolver.Classify(err)
	if err != nil {
		r.Err = err
		if log.IfMinor() {
			log.Minorf("NS lookup of %s: %s", domain, dnsutil.ShortenLookupError(err))
		}
		return r
	}

	for _, ns := range nss {
		r.Nameservers = append(r.Nameservers, dnsutil.ChompName(ns))
	}
	if len(r.Nameservers) == 0 {
		r.Outcome = resolver.NoAnswer
	}

	return r
}

// Filename returns the name of the file the nameservers of domain are saved to.
func Filename(domain string) string {
	return domain + ".txt"
}

// Save writes one nameserver per line to path, replacing any existing file. The file is
// only replaced once completely written.
func Save(path string, nameservers []string) error {
	var b strings.Builder
	for _, ns := range nameservers {
		b.WriteString(dnsutil.ChompName(ns))
		b.WriteByte('\n')
	}

	err := safefile.WriteFile(path, []byte(b.String()), 0644)
	if err != nil {
		return fmt.Errorf("nameserver save: %w", err)
	}

	return nil
}
