package dns

import (
	"sync"

	"github.com/miekg/dns"

	"github.com/markdingo/dnsrecon/dnsutil"
)

// serveAXFR sends all in-domain RRs bracketed by the zone SOA. The whole zone is sent as
// a single envelope so a client which gives up early never leaves the sender blocked.
func (t *ZoneServer) serveAXFR(wtr dns.ResponseWriter, q *dns.Msg) {
	t.mu.Lock()
	resp := t.axfr
	t.mu.Unlock()

	question := q.Question[0]
	if question.Qclass != dns.ClassINET {
		r := new(dns.Msg)
		r.SetRcode(q, dns.RcodeFormatError)
		wtr.WriteMsg(r)
		return
	}

	if resp.Rcode != dns.RcodeSuccess { // Is a custom Rcode requested?
		r := new(dns.Msg)
		r.SetRcode(q, resp.Rcode)
		wtr.WriteMsg(r)
		return
	}

	zone := dns.CanonicalName(question.Name)
	var soa dns.RR
	var body []dns.RR
	for _, rr := range t.rrs {
		if !dnsutil.InDomain(rr.Header().Name, zone) {
			continue
		}
		if rr.Header().Rrtype == dns.TypeSOA && dns.CanonicalName(rr.Header().Name) == zone {
			soa = rr
			continue
		}
		body = append(body, rr)
	}

	if soa == nil {
		r := new(dns.Msg)
		r.SetRcode(q, dns.RcodeNotAuth)
		wtr.WriteMsg(r)
		return
	}

	env := &dns.Envelope{}
	if !resp.NoSOA {
		env.RR = append(env.RR, soa)
	}
	env.RR = append(env.RR, body...)
	if !resp.NoSOA {
		env.RR = append(env.RR, soa)
	}

	ch := make(chan *dns.Envelope, 1)
	ch <- env
	close(ch)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		new(dns.Transfer).Out(wtr, q, ch)
		wg.Done()
	}()
	wg.Wait() // wait until everything is written out
}
