package resolver

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/miekg/dns"

	real "github.com/markdingo/dnsrecon/resolver"
)

// Make sure we meet the interface
var _ real.Resolver = NewResolver("")

func TestLookupIPv4(t *testing.T) {
	r := NewResolver("./testdata")
	testCases := []struct {
		host string
		ips  int
		err  error
	}{
		{"www.example.net", 1, nil},
		{"WWW.example.net.", 1, nil},
		{"web.example.net", 1, nil},
		{"v6only.example.net", 0, real.ErrNoAnswer},
		{"nxdomain.example.net", 0, real.ErrNameNotFound},
		{"nofile.example.net", 0, real.ErrNoNameservers},
	}

	for ix, tc := range testCases {
		ips, err := r.LookupIPv4(context.Background(), tc.host)
		if !errors.Is(err, tc.err) {
			t.Error(ix, "Wrong error. Got", err, "want", tc.err)
		}
		if len(ips) != tc.ips {
			t.Error(ix, "Expected", tc.ips, "IPs, not", len(ips))
		}
	}
}

func TestLookupPTR(t *testing.T) {
	r := NewResolver("./testdata")
	names, err := r.LookupPTR(context.Background(), net.ParseIP("192.0.2.80"))
	if err != nil {
		t.Fatal("Setup error with 192.0.2.80", err)
	}
	if len(names) != 1 || names[0] != "www.example.net." {
		t.Error("Unexpected PTR names", names)
	}

	_, err = r.LookupPTR(context.Background(), net.ParseIP("192.0.2.81"))
	if real.Classify(err) != real.NoNameservers {
		t.Error("Missing file should classify as NoNameservers, not", real.Classify(err))
	}
}

func TestLookupType(t *testing.T) {
	r := NewResolver("./testdata")
	testCases := []struct {
		name   string
		rrtype uint16
		out    real.Outcome
	}{
		{"www.example.net", dns.TypeA, real.Success},
		{"web.example.net", dns.TypeCNAME, real.Success},
		{"v6only.example.net", 0, real.NoAnswer},
		{"nxdomain.example.net", 0, real.NameNotFound},
	}

	for ix, tc := range testCases {
		rrtype, err := r.LookupType(context.Background(), tc.name)
		if rrtype != tc.rrtype {
			t.Error(ix, "Type", rrtype, "want", tc.rrtype)
		}
		if out := real.Classify(err); out != tc.out {
			t.Error(ix, "Outcome", out, "want", tc.out)
		}
	}
}

func TestLookupNS(t *testing.T) {
	r := NewResolver("./testdata")
	nss, err := r.LookupNS(context.Background(), "example.net.")
	if err != nil {
		t.Fatal("Setup error with example.net", err)
	}
	if len(nss) != 2 || nss[0] != "ns1.example.net." || nss[1] != "ns2.example.net." {
		t.Error("Wrong NS set", nss)
	}
}

func TestTransfer(t *testing.T) {
	r := NewResolver("./testdata")
	testCases := []struct {
		server string
		rrs    int
		out    real.Outcome
	}{
		{"192.0.2.53", 0, real.TransferRefused},
		{"192.0.2.54:53", 4, real.Success},
		{"192.0.2.55", 0, real.MalformedTransfer},
		{"192.0.2.56", 0, real.TransferError},
	}

	for ix, tc := range testCases {
		rrs, err := r.Transfer(context.Background(), "example.net", tc.server)
		if len(rrs) != tc.rrs {
			t.Error(ix, "RR count", len(rrs), "want", tc.rrs)
		}
		if out := real.Classify(err); out != tc.out {
			t.Error(ix, "Outcome", out, "want", tc.out, err)
		}
	}
}
