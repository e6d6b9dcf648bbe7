package resolver

import (
	"context"

	"github.com/miekg/dns"

	"github.com/markdingo/dnsrecon/dnsutil"
	"github.com/markdingo/dnsrecon/log"
)

// Transfer AXFRs zone from server. miekg's Transfer does not accept a context so ctx is
// only checked prior to starting, the Transfer timeouts bound the rest.
func (t *resolver) Transfer(ctx context.Context, zone, server string) (rrs []dns.RR, err error) {
	server = dnsutil.WithDefaultService(server)
	defer func() {
		if log.IfDebug() {
			LogTransfer(zone, server, rrs, "", err)
		}
	}()

	if err = ctx.Err(); err != nil {
		return nil, newLookupError("AXFR", zone+"@"+server, ErrTransfer, err)
	}

	tr := &dns.Transfer{DialTimeout: t.lookupTimeout, ReadTimeout: t.transferTimeout}
	req := new(dns.Msg)
	req.SetAxfr(dns.Fqdn(zone))
	channel, e := tr.In(req, server)
	if e != nil {
		return nil, transferError(zone, server, e)
	}

	for env := range channel {
		if env.Error != nil {
			return nil, transferError(zone, server, env.Error)
		}
		rrs = append(rrs, env.RR...)
	}

	return rrs, nil
}
