package dns

import (
	"fmt"
	"strings"
	"sync"

	"github.com/miekg/dns"
)

// ZoneServer is a mock authoritative server which answers ordinary queries and AXFR
// requests from an in-memory list of RRs. Names which own no RRs get NXDOMAIN, names
// which own RRs of other types get NODATA. A CNAME is followed one step if the target is
// also present.
//
// It's just test scaffolding so it checks as little as possible to do the job.
type ZoneServer struct {
	mu   sync.Mutex
	rrs  []dns.RR
	axfr AXFRResponse

	QueryCount int
}

// AXFRResponse defines how a ZoneServer responds to AXFR requests.
type AXFRResponse struct {
	Rcode int  // If non-zero, reply with just this rcode
	NoSOA bool // Omit the SOAs which makes the transfer malformed
}

// NewZoneServer parses the zone-file formatted text into a ZoneServer. Parse failures
// are a setup error so they panic.
func NewZoneServer(text string) *ZoneServer {
	t := &ZoneServer{}
	parser := dns.NewZoneParser(strings.NewReader(text), "", "mock")
	parser.SetDefaultTTL(60) // ZoneParser needs this in case $TTL is absent
	for rr, ok := parser.Next(); ok; rr, ok = parser.Next() {
		t.rrs = append(t.rrs, rr)
	}
	if err := parser.Err(); err != nil {
		panic("Set up error: " + err.Error())
	}

	return t
}

// SetAXFR changes how subsequent AXFR requests are answered.
func (t *ZoneServer) SetAXFR(r AXFRResponse) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.axfr = r
}

// ServeDNS meets the interface definition for dns.Handler
func (t *ZoneServer) ServeDNS(wtr dns.ResponseWriter, q *dns.Msg) {
	t.mu.Lock()
	t.QueryCount++
	t.mu.Unlock()

	if len(q.Question) != 1 {
		r := new(dns.Msg)
		r.SetRcode(q, dns.RcodeFormatError)
		wtr.WriteMsg(r)
		return
	}

	question := q.Question[0]
	if question.Qtype == dns.TypeAXFR {
		t.serveAXFR(wtr, q)
		return
	}

	r := new(dns.Msg)
	r.SetReply(q)
	r.Authoritative = true
	r.RecursionAvailable = true
	owned := t.owned(question.Name)
	if len(owned) == 0 {
		r.Rcode = dns.RcodeNameError
	}
	for _, rr := range owned {
		rrtype := rr.Header().Rrtype
		switch {
		case rrtype == question.Qtype:
			r.Answer = append(r.Answer, rr)
		case rrtype == dns.TypeCNAME:
			r.Answer = append(r.Answer, rr)
			for _, trr := range t.owned(rr.(*dns.CNAME).Target) {
				if trr.Header().Rrtype == question.Qtype {
					r.Answer = append(r.Answer, trr)
				}
			}
		}
	}

	err := wtr.WriteMsg(r)
	if err != nil {
		fmt.Println("Alert: WriteMsg error:", err)
	}
}

func (t *ZoneServer) owned(name string) (rrs []dns.RR) {
	name = dns.CanonicalName(name)
	for _, rr := range t.rrs {
		if dns.CanonicalName(rr.Header().Name) == name {
			rrs = append(rrs, rr)
		}
	}

	return
}
