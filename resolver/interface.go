package resolver

import (
	"context"
	"net"

	"github.com/miekg/dns"
)

// Resolver covers all of the lookups dnsrecon makes which reach out to the network.
//
// Every error returned by an implementation must satisfy errors.Is for exactly one of
// the sentinel errors in this package so that Classify returns a meaningful
// Outcome. Implementations derive their own deadlines from the supplied context so
// callers need not worry about timeouts.
type Resolver interface {

	// LookupIPv4 is similar to net.Resolver.LookupIP with network "ip4". It returns
	// ErrNoAnswer if the name exists but has no IPv4 addresses.
	LookupIPv4(ctx context.Context, host string) ([]net.IP, error)

	// LookupPTR is similar to net.Resolver.LookupAddr. Returned names are fully
	// qualified.
	LookupPTR(ctx context.Context, ip net.IP) ([]string, error)

	// LookupType queries for the A RRSet of name and returns the type code of the
	// first answer owned by name. That is dns.TypeA for a plain host and
	// dns.TypeCNAME for an alias.
	LookupType(ctx context.Context, name string) (uint16, error)

	// LookupNS is similar to net.Resolver.LookupNS. Returned names are fully
	// qualified and in the order the resolver supplied them.
	LookupNS(ctx context.Context, name string) ([]string, error)

	// Transfer performs a full AXFR of zone from server and returns every RR
	// received, including both SOAs. server is host or host:port. Failures satisfy
	// ErrTransferRefused, ErrMalformedTransfer or ErrTransfer.
	Transfer(ctx context.Context, zone, server string) ([]dns.RR, error)
}
