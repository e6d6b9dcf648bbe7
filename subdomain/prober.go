package subdomain

import (
	"context"
	"net"

	"github.com/markdingo/dnsrecon/dnsutil"
	"github.com/markdingo/dnsrecon/log"
	"github.com/markdingo/dnsrecon/resolver"
)

// ProbeResult is emitted for every candidate which forward resolves. IP is always Found,
// ReverseName and RecordType may independently be Failed.
type ProbeResult struct {
	Candidate   string
	IP          Lookup
	ReverseName Lookup
	RecordType  Lookup
}

type Prober struct {
	res resolver.Resolver
}

func NewProber(res resolver.Resolver) *Prober {
	return &Prober{res: res}
}

// ForwardLookup resolves host to its first IPv4 address. A 127.0.0.1 answer is treated
// as though the name did not resolve as it is commonly used as a placeholder by
// wildcard or parked zones.
func ForwardLookup(ctx context.Context, res resolver.Resolver, host string) Lookup {
	ips, err := res.LookupIPv4(ctx, host)
	if err != nil {
		return failed(err)
	}
	if len(ips) == 0 {
		return Lookup{State: Failed, Outcome: resolver.NoAnswer}
	}
	if dnsutil.IsLoopback4(ips[0]) {
		if log.IfMinor() {
			log.Minor("Ignoring loopback address for ", host)
		}
		return Lookup{State: Failed, Outcome: resolver.NoAnswer}
	}

	return found(ips[0].String())
}

// Probe looks up a single candidate. The bool return is false if the candidate did not
// forward resolve in which case the ProbeResult is empty.
func (t *Prober) Probe(ctx context.Context, c Candidate) (ProbeResult, bool) {
	ip := ForwardLookup(ctx, t.res, c.FullName)
	if log.IfMinor() {
		log.Minorf("Probe %s: %s", c.FullName, ip)
	}
	if !ip.Found() {
		return ProbeResult{}, false
	}

	pr := ProbeResult{Candidate: c.FullName, IP: ip}

	names, err := t.res.LookupPTR(ctx, net.ParseIP(ip.Value))
	switch {
	case err != nil:
		pr.ReverseName = failed(err)
	case len(names) == 0:
		pr.ReverseName = Lookup{State: Failed, Outcome: resolver.NoAnswer}
	default:
		pr.ReverseName = found(names[0])
	}

	rrtype, err := t.res.LookupType(ctx, c.FullName)
	if err != nil {
		pr.RecordType = failed(err)
	} else {
		pr.RecordType = found(dnsutil.TypeToString(rrtype))
	}

	return pr, true
}

// ProbeAll probes each fragment of the wordlist in order and passes every result to
// sink as soon as it is known. Returns the number of results passed to sink. A cancelled
// ctx stops the scan before the next candidate.
func (t *Prober) ProbeAll(ctx context.Context, baseDomain string, fragments []string,
	sink func(ProbeResult)) (count int) {
	for _, f := range fragments {
		if ctx.Err() != nil {
			log.Minor("Probe stopped: ", ctx.Err())
			break
		}
		pr, ok := t.Probe(ctx, NewCandidate(f, baseDomain))
		if ok {
			sink(pr)
			count++
		}
	}

	return
}
