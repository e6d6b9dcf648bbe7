/*
Package zone dumps the A records of a domain by attempting a zone transfer from each of
its nameservers in turn. Each nameserver is reported through a sink as soon as its
transfer completes. A failing nameserver never prevents the remaining ones from being
tried.
*/
package zone

import (
	"context"

	"github.com/miekg/dns"

	"github.com/markdingo/dnsrecon/dnsutil"
	"github.com/markdingo/dnsrecon/log"
	"github.com/markdingo/dnsrecon/resolver"
)

// AddressRecord is one A record from a transferred zone.
type AddressRecord struct {
	Owner    string // Fully qualified without the trailing dot
	Relative string // Owner relative to the zone, "@" for the apex
	Address  string
}

// Event is the result of attempting a transfer from one nameserver. Address is empty if
// the nameserver could not itself be resolved in which case no transfer was attempted.
type Event struct {
	Nameserver string
	Address    string
	Outcome    resolver.Outcome
	Records    []AddressRecord
	Err        error
}

// Attempted returns true if a transfer was attempted.
func (t Event) Attempted() bool {
	return len(t.Address) > 0
}

type Dumper struct {
	res resolver.Resolver
}

func NewDumper(res resolver.Resolver) *Dumper {
	return &Dumper{res: res}
}

// Dump transfers domain from each of its nameservers and passes one Event per nameserver
// to sink. The returned Outcome reflects the NS lookup of domain: any failure means sink
// is never called. An empty NS set is reported as resolver.NoAnswer.
func (t *Dumper) Dump(ctx context.Context, domain string, sink func(Event)) resolver.Outcome {
	nss, err := t.res.LookupNS(ctx, domain)
	if err != nil {
		if log.IfMinor() {
			log.Minorf("NS lookup of %s: %s", domain, dnsutil.ShortenLookupError(err))
		}
		return resolver.Classify(err)
	}
	if len(nss) == 0 {
		return resolver.NoAnswer
	}

	for _, ns := range nss {
		if ctx.Err() != nil {
			log.Minor("Dump stopped: ", ctx.Err())
			break
		}
		sink(t.dumpOne(ctx, domain, ns))
	}

	return resolver.Success
}

// dumpOne only uses the first address of the nameserver.
func (t *Dumper) dumpOne(ctx context.Context, domain, ns string) Event {
	ev := Event{Nameserver: ns}
	ips, err := t.res.LookupIPv4(ctx, ns)
	if err == nil && len(ips) == 0 {
		err = resolver.ErrNoAnswer
	}
	if err != nil {
		ev.Outcome = resolver.Classify(err)
		ev.Err = err
		return ev
	}
	ev.Address = ips[0].String()

	rrs, err := t.res.Transfer(ctx, domain, ev.Address)
	if err != nil {
		ev.Outcome = resolver.Classify(err)
		ev.Err = err
		if log.IfMinor() {
			log.Minorf("AXFR %s from %s: %s", domain, ev.Address, ev.Outcome)
		}
		return ev
	}

	if log.IfDebug() {
		log.Debug("AXFR RRs: ", dnsutil.PrettyRRSet(rrs, true))
	}
	ev.Records = addressRecords(domain, rrs)
	if log.IfMinor() {
		log.Minorf("AXFR %s from %s: %d RRs %d A", domain, ev.Address, len(rrs), len(ev.Records))
	}

	return ev
}

// addressRecords extracts the A records in transfer order.
func addressRecords(domain string, rrs []dns.RR) []AddressRecord {
	var ars []AddressRecord
	for _, rr := range rrs {
		a, ok := rr.(*dns.A)
		if !ok {
			continue
		}
		owner := dnsutil.ChompName(a.Hdr.Name)
		ars = append(ars, AddressRecord{
			Owner:    owner,
			Relative: dnsutil.RelativeName(owner, domain),
			Address:  a.A.String(),
		})
	}

	return ars
}
