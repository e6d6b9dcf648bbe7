package resolver

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"

	"github.com/markdingo/dnsrecon/dnsutil"
	"github.com/markdingo/dnsrecon/log"
)

// servers returns the list of nameservers to send miekg exchanges to. If an explicit
// server was configured that is the only one, otherwise resolv.conf is consulted.
func (t *resolver) servers() ([]string, error) {
	if len(t.server) > 0 {
		return []string{t.server}, nil
	}

	conf, err := dns.ClientConfigFromFile(t.resolvConf)
	if err != nil {
		return nil, err
	}
	if len(conf.Servers) == 0 {
		return nil, fmt.Errorf("%s contains no nameservers", t.resolvConf)
	}

	ss := make([]string, 0, len(conf.Servers))
	for _, s := range conf.Servers {
		ss = append(ss, net.JoinHostPort(s, conf.Port))
	}

	return ss, nil
}

// singleExchange makes a single exchange attempt with the server; no retries, no
// fallback to TCP.
func (t *resolver) singleExchange(ctx context.Context, network string, q *dns.Msg,
	server string) (r *dns.Msg, err error) {
	client := &dns.Client{Net: network, Timeout: t.lookupTimeout, UDPSize: dnsutil.MaxUDPSize}
	question := q.Question[0]

	if log.IfDebug() {
		LogExchangeQ(network, server, question)
	}

	r, _, err = client.ExchangeContext(ctx, q, server)

	if log.IfDebug() {
		LogExchangeA(server, question, r, err)
	}

	return
}

// fullExchange is a wrapper around singleExchange which tries each server in turn and
// re-tries over TCP if a UDP response is truncated. The first response which is either
// NOERROR or NXDOMAIN is returned. All other rcodes are treated like an unreachable
// server and the next server is tried.
func (t *resolver) fullExchange(ctx context.Context, q *dns.Msg) (*dns.Msg, error) {
	servers, err := t.servers()
	if err != nil {
		return nil, err
	}

	var lastErr error
	for tries := 0; tries < t.queryTries; tries++ {
		for _, server := range servers {
			r, err := t.singleExchange(ctx, dnsutil.UDPNetwork, q, server)
			if err == nil && r.Truncated {
				r, err = t.singleExchange(ctx, dnsutil.TCPNetwork, q, server)
			}
			if err != nil {
				lastErr = err
				if ctx.Err() != nil {
					return nil, lastErr
				}
				continue
			}
			switch r.Rcode {
			case dns.RcodeSuccess, dns.RcodeNameError:
				return r, nil
			}
			lastErr = fmt.Errorf("%s answered %s", server, dnsutil.RcodeToString(r.Rcode))
		}
	}

	return nil, lastErr // No valid response from any nameserver
}

func (t *resolver) LookupType(ctx context.Context, name string) (uint16, error) {
	ctxWithTO, cancel := context.WithTimeout(ctx,
		t.lookupTimeout*(2*time.Duration(t.queryTries)+1))
	defer cancel()

	q := new(dns.Msg)
	q.SetQuestion(dns.Fqdn(name), dns.TypeA)
	q.RecursionDesired = true
	q.SetEdns0(dnsutil.MaxUDPSize, false)

	r, err := t.fullExchange(ctxWithTO, q)
	if err != nil {
		return 0, newLookupError("TYPE", name, ErrNoNameservers, err)
	}
	if r.Rcode == dns.RcodeNameError {
		return 0, newLookupError("TYPE", name, ErrNameNotFound, nil)
	}
	if len(r.Answer) == 0 {
		return 0, newLookupError("TYPE", name, ErrNoAnswer, nil)
	}

	qName := q.Question[0].Name
	for _, rr := range r.Answer {
		if strings.EqualFold(rr.Header().Name, qName) {
			return rr.Header().Rrtype, nil
		}
	}

	return r.Answer[0].Header().Rrtype, nil
}
