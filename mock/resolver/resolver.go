package resolver

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/miekg/dns"

	"github.com/markdingo/dnsrecon/dnsutil"
	"github.com/markdingo/dnsrecon/log"
	"github.com/markdingo/dnsrecon/resolver"
)

// mockResolver implements the resolver.Resolver interface by converting queries to
// file names and loading responses from those files. The convention is, if the file
// doesn't exist, no nameserver is reachable. If the file exists, each line in the file
// is parsed with dns.NewRR. An empty file means NXDOMAIN and a file with only
// "RCODE:NOERROR" means the name exists but has no data of that type.
//
// The filename convention for Lookup functions is: $dir/lookup/IN/$Type/$qname. PTR
// lookups use the reverse qname derived from the IP address and LookupType reads the A
// file. Transfer reads $dir/axfr/$serverIP/$zone where the RCODE: line, if present,
// is the rcode of the first transfer message.
//
// All qnames are stripped of the trailing dot and lowercased.
type mockResolver struct {
	dir string
}

// NewResolver creates a mock resolver which uses the supplied directory as the location
// of mock files to parse to produce dns lookup responses.
func NewResolver(dir string) *mockResolver {
	return &mockResolver{dir: dir}
}

// lookupError converts a loaded message into one of the sentinel errors, or nil.
func lookupError(msg dns.Msg, found bool) error {
	switch {
	case !found:
		return resolver.ErrNoNameservers
	case msg.Rcode == dns.RcodeNameError:
		return resolver.ErrNameNotFound
	case msg.Rcode != dns.RcodeSuccess:
		return resolver.ErrNoNameservers
	case len(msg.Answer) == 0:
		return resolver.ErrNoAnswer
	}

	return nil
}

func wrap(op, name string, kind error) error {
	if kind == nil {
		return nil
	}
	return &resolver.LookupError{Op: op, Name: name, Kind: kind}
}

func (t *mockResolver) LookupIPv4(ctx context.Context, host string) (ips []net.IP, err error) {
	host = dnsutil.ChompCanonicalName(host)
	msg, path, found := t.loadLookupFile("A", host)
	err = lookupError(msg, found)
	if err == nil {
		for _, rr := range msg.Answer {
			if rrt, ok := rr.(*dns.A); ok {
				ips = append(ips, rrt.A)
			}
		}
		if len(ips) == 0 { // Possibly a dangling CNAME
			err = resolver.ErrNoAnswer
		}
	}
	if log.IfDebug() {
		resolver.LogLookup("A", host, ipStrings(ips), path, err)
	}

	return ips, wrap("A", host, err)
}

func (t *mockResolver) LookupPTR(ctx context.Context, ip net.IP) (names []string, err error) {
	qName := dnsutil.ChompCanonicalName(dnsutil.IPToReverseQName(ip))
	msg, path, found := t.loadLookupFile("PTR", qName)
	err = lookupError(msg, found)
	if err == nil {
		for _, rr := range msg.Answer {
			if rrt, ok := rr.(*dns.PTR); ok {
				names = append(names, rrt.Ptr)
			}
		}
	}
	if log.IfDebug() {
		resolver.LogLookup("PTR", ip.String(), names, path, err)
	}

	return names, wrap("PTR", ip.String(), err)
}

func (t *mockResolver) LookupType(ctx context.Context, name string) (rrtype uint16, err error) {
	name = dnsutil.ChompCanonicalName(name)
	msg, path, found := t.loadLookupFile("A", name)
	err = lookupError(msg, found)
	if err == nil {
		rrtype = msg.Answer[0].Header().Rrtype
		for _, rr := range msg.Answer {
			if strings.EqualFold(dnsutil.ChompName(rr.Header().Name), name) {
				rrtype = rr.Header().Rrtype
				break
			}
		}
	}
	if log.IfDebug() {
		resolver.LogLookup("TYPE", name, []string{dnsutil.TypeToString(rrtype)}, path, err)
	}

	return rrtype, wrap("TYPE", name, err)
}

func (t *mockResolver) LookupNS(ctx context.Context, name string) (nss []string, err error) {
	name = dnsutil.ChompCanonicalName(name)
	msg, path, found := t.loadLookupFile("NS", name)
	err = lookupError(msg, found)
	if err == nil {
		for _, rr := range msg.Answer { // Convert msg Answer RRs to strings
			if rrt, ok := rr.(*dns.NS); ok {
				nss = append(nss, rrt.Ns)
			}
		}
	}
	if log.IfDebug() {
		resolver.LogLookup("NS", name, nss, path, err)
	}

	return nss, wrap("NS", name, err)
}

// Transfer mimics the classification the real resolver applies to miekg transfer
// errors. A missing file is treated as a server which cannot be reached.
func (t *mockResolver) Transfer(ctx context.Context, zone, server string) (rrs []dns.RR, err error) {
	zone = dnsutil.ChompCanonicalName(zone)
	msg, path, found := t.loadTransferFile(server, zone)
	switch {
	case !found:
		err = fmt.Errorf("dial tcp %s: connection refused", server)
		err = &resolver.LookupError{Op: "AXFR", Name: zone + "@" + server,
			Kind: resolver.ErrTransfer, Err: err}
	case msg.Rcode == dns.RcodeRefused, msg.Rcode == dns.RcodeNotAuth:
		err = &resolver.LookupError{Op: "AXFR", Name: zone + "@" + server,
			Kind: resolver.ErrTransferRefused}
	case msg.Rcode != dns.RcodeSuccess && msg.Rcode != dns.RcodeFormatError:
		err = &resolver.LookupError{Op: "AXFR", Name: zone + "@" + server,
			Kind: resolver.ErrTransfer, Err: fmt.Errorf("dns: bad xfr rcode: %d", msg.Rcode)}
	case msg.Rcode == dns.RcodeFormatError,
		len(msg.Answer) == 0, msg.Answer[0].Header().Rrtype != dns.TypeSOA:
		err = &resolver.LookupError{Op: "AXFR", Name: zone + "@" + server,
			Kind: resolver.ErrMalformedTransfer, Err: dns.ErrSoa}
	default:
		rrs = msg.Answer
	}
	if log.IfDebug() {
		resolver.LogTransfer(zone, server, rrs, path, err)
	}

	return
}

func ipStrings(ips []net.IP) []string {
	ar := make([]string, 0, len(ips))
	for _, ip := range ips {
		ar = append(ar, ip.String())
	}

	return ar
}
