package dnsutil

import (
	"fmt"
	"strings"

	"github.com/miekg/dns"
)

// The Pretty* functions return compact renditions of miekg structures for debug output.
// The standard String() methods produce dig-style output which is far too verbose for a
// one-line trace.

// PrettyMsg1 returns a compact string representing the complete message.
func PrettyMsg1(m *dns.Msg) string {
	h := m.MsgHdr
	flags := []string{}
	if h.Response {
		flags = append(flags, "qr")
	}
	if h.Authoritative {
		flags = append(flags, "aa")
	}
	if h.Truncated {
		flags = append(flags, "tc")
	}

	qTypes := make([]string, 0, len(m.Question))
	for _, q := range m.Question {
		qTypes = append(qTypes, TypeToString(q.Qtype))
	}

	return fmt.Sprintf("%d f=%s %s Q=%d-%s Ans=%d-%s Ns=%d-%s Extra=%d-%s",
		h.Id, strings.Join(flags, "+"), RcodeToString(h.Rcode),
		len(m.Question), strings.Join(qTypes, ","),
		len(m.Answer), rrTypes(m.Answer),
		len(m.Ns), rrTypes(m.Ns),
		len(m.Extra), rrTypes(m.Extra))
}

func rrTypes(rrs []dns.RR) string {
	ar := make([]string, 0, len(rrs))
	for _, rr := range rrs {
		ar = append(ar, TypeToString(rr.Header().Rrtype))
	}

	return strings.Join(ar, ",")
}

// PrettyQuestion returns a compact representation of the dns.Question
func PrettyQuestion(q dns.Question) string {
	return fmt.Sprintf("%s/%s %s",
		ClassToString(dns.Class(q.Qclass)), TypeToString(q.Qtype), q.Name)
}

// PrettyRR returns a compact representation of a single RR. Types of interest to zone
// dumps get a short RDATA rendition, all others use the general rendering offered by
// miekg.
func PrettyRR(rr dns.RR, includeName bool) (s string) {
	var rdata string
	switch rrt := rr.(type) {
	case *dns.A:
		rdata = rrt.A.String()
	case *dns.AAAA:
		rdata = rrt.AAAA.String()
	case *dns.NS:
		rdata = rrt.Ns
	case *dns.CNAME:
		rdata = rrt.Target
	case *dns.PTR:
		rdata = rrt.Ptr
	case *dns.SOA:
		rdata = fmt.Sprintf("%s %s %d %d %d %d %d", rrt.Ns, rrt.Mbox,
			rrt.Serial, rrt.Refresh, rrt.Retry, rrt.Expire, rrt.Minttl)
	default:
		return rr.String()
	}

	h := rr.Header()
	if includeName {
		s = h.Name + " "
	}
	s += fmt.Sprintf("%s/%s %d %s",
		ClassToString(dns.Class(h.Class)), TypeToString(h.Rrtype), h.Ttl, rdata)

	return
}

// PrettyRRSet returns a compact representation of the slice of RRs separated by ", ".
func PrettyRRSet(rrs []dns.RR, includeName bool) string {
	ar := make([]string, 0, len(rrs))
	for _, rr := range rrs {
		ar = append(ar, PrettyRR(rr, includeName))
	}

	return strings.Join(ar, ", ")
}
