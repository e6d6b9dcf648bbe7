package subdomain

import (
	"github.com/markdingo/dnsrecon/dnsutil"
)

// Candidate is a single name to probe.
type Candidate struct {
	Fragment string // As read from the wordlist
	FullName string // Fragment + "." + base domain
}

func NewCandidate(fragment, baseDomain string) Candidate {
	return Candidate{Fragment: fragment, FullName: fragment + "." + baseDomain}
}

// BaseDomain returns the domain candidates are appended to. When stripFirstLabel is set
// the parent of hostname is used, thus "www.example.com" probes "example.com". A
// hostname with a single label is always used as is.
func BaseDomain(hostname string, stripFirstLabel bool) string {
	if !stripFirstLabel {
		return hostname
	}
	_, rest := dnsutil.SplitFirstLabel(hostname)
	if len(rest) == 0 {
		return hostname
	}

	return rest
}
