package resolver

import (
	"context"
	"net"
	"time"

	"github.com/markdingo/dnsrecon/dnsutil"
	"github.com/markdingo/dnsrecon/log"
)

const (
	defaultLookupTimeout   = 4 * time.Second // Applies to each Lookup* and each exchange
	defaultTransferTimeout = 3 * defaultLookupTimeout
	defaultQueryTries      = 2 // Passes over the server list by LookupType
	defaultResolvConf      = "/etc/resolv.conf"
)

type resolver struct {
	netResolver *net.Resolver
	server      string // Empty means use the system configuration
	resolvConf  string // Source of servers for miekg exchanges when server is empty

	// Currently these timeout and retry values cannot be changed from the defaults
	// other than by tests.
	lookupTimeout, transferTimeout time.Duration
	queryTries                     int
}

// NewResolver creates a fully formed resolver which is ready to use. If server is empty,
// the system resolver configuration is used, otherwise all queries are sent to server
// which is a host or host:port.
func NewResolver(server string) *resolver {
	t := &resolver{
		netResolver:     net.DefaultResolver,
		resolvConf:      defaultResolvConf,
		lookupTimeout:   defaultLookupTimeout,
		transferTimeout: defaultTransferTimeout,
		queryTries:      defaultQueryTries,
	}

	if len(server) > 0 {
		t.server = dnsutil.WithDefaultService(server)
		t.netResolver = &net.Resolver{
			PreferGo: true,
			Dial: func(ctx context.Context, network, _ string) (net.Conn, error) {
				d := net.Dialer{Timeout: t.lookupTimeout}
				return d.DialContext(ctx, network, t.server)
			},
		}
	}

	return t
}

// Server returns the nameserver all queries are sent to or an empty string if the
// system configuration is in use.
func (t *resolver) Server() string {
	return t.server
}

func (t *resolver) LookupIPv4(ctx context.Context, host string) ([]net.IP, error) {
	ctxWithTO, cancel := context.WithTimeout(ctx, t.lookupTimeout)
	defer cancel()
	ips, err := t.netResolver.LookupIP(ctxWithTO, "ip4", host)
	if log.IfDebug() {
		LogLookup("A", host, ipStrings(ips), "", err)
	}
	if err != nil {
		return []net.IP{}, netError("A", host, err)
	}
	if len(ips) == 0 {
		return []net.IP{}, newLookupError("A", host, ErrNoAnswer, nil)
	}

	return ips, nil
}

func (t *resolver) LookupPTR(ctx context.Context, ip net.IP) ([]string, error) {
	ctxWithTO, cancel := context.WithTimeout(ctx, t.lookupTimeout)
	defer cancel()
	addr := ip.String()
	names, err := t.netResolver.LookupAddr(ctxWithTO, addr)
	if log.IfDebug() {
		LogLookup("PTR", addr, names, "", err)
	}
	if err != nil {
		return []string{}, netError("PTR", addr, err)
	}
	if len(names) == 0 {
		return []string{}, newLookupError("PTR", addr, ErrNoAnswer, nil)
	}

	return names, nil
}

func (t *resolver) LookupNS(ctx context.Context, name string) ([]string, error) {
	ctxWithTO, cancel := context.WithTimeout(ctx, t.lookupTimeout)
	defer cancel()
	nsSet, err := t.netResolver.LookupNS(ctxWithTO, name)
	nss := make([]string, 0, len(nsSet))
	for _, n := range nsSet {
		nss = append(nss, n.Host)
	}
	if log.IfDebug() {
		LogLookup("NS", name, nss, "", err)
	}
	if err != nil {
		return []string{}, netError("NS", name, err)
	}
	if len(nss) == 0 {
		return []string{}, newLookupError("NS", name, ErrNoAnswer, nil)
	}

	return nss, nil
}

func ipStrings(ips []net.IP) []string {
	ar := make([]string, 0, len(ips))
	for _, ip := range ips {
		ar = append(ar, ip.String())
	}

	return ar
}
