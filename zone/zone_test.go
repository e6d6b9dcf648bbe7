package zone

import (
	"context"
	"testing"

	mockresolver "github.com/markdingo/dnsrecon/mock/resolver"
	"github.com/markdingo/dnsrecon/resolver"
)

func TestDump(t *testing.T) {
	d := NewDumper(mockresolver.NewResolver("testdata"))
	var events []Event
	out := d.Dump(context.Background(), "example.com", func(ev Event) {
		events = append(events, ev)
	})
	if out != resolver.Success {
		t.Fatal("Expected Success, not", out)
	}
	if len(events) != 5 {
		t.Fatal("Expected one event per nameserver, not", len(events))
	}

	testCases := []struct {
		ns      string
		address string
		out     resolver.Outcome
		records int
	}{
		{"ns1.example.com.", "192.0.2.53", resolver.TransferRefused, 0},
		{"ns2.example.com.", "192.0.2.54", resolver.Success, 3},
		{"ns3.example.com.", "192.0.2.55", resolver.MalformedTransfer, 0},
		{"ns4.example.com.", "192.0.2.56", resolver.TransferError, 0},
		{"ns5.example.com.", "", resolver.NoAnswer, 0},
	}

	for ix, tc := range testCases {
		ev := events[ix]
		if ev.Nameserver != tc.ns {
			t.Error(ix, "Nameserver", ev.Nameserver, "want", tc.ns)
		}
		if ev.Address != tc.address {
			t.Error(ix, "Address", ev.Address, "want", tc.address)
		}
		if ev.Attempted() != (len(tc.address) > 0) {
			t.Error(ix, "Attempted() wrong")
		}
		if ev.Outcome != tc.out {
			t.Error(ix, "Outcome", ev.Outcome, "want", tc.out, ev.Err)
		}
		if (ev.Err == nil) != (tc.out == resolver.Success) {
			t.Error(ix, "Err inconsistent with Outcome", ev.Err)
		}
		if len(ev.Records) != tc.records {
			t.Error(ix, "Records", len(ev.Records), "want", tc.records)
		}
	}

	recs := events[1].Records
	exp := []AddressRecord{
		{"example.com", "@", "192.0.2.1"},
		{"www.example.com", "www", "192.0.2.80"},
		{"a.b.example.com", "a.b", "192.0.2.81"},
	}
	for ix, ar := range exp {
		if ix >= len(recs) {
			break
		}
		if recs[ix] != ar {
			t.Error(ix, "Record", recs[ix], "want", ar)
		}
	}
}

func TestDumpDomainOutcomes(t *testing.T) {
	d := NewDumper(mockresolver.NewResolver("testdata"))
	testCases := []struct {
		domain string
		out    resolver.Outcome
	}{
		{"nxdomain.example.com", resolver.NameNotFound},
		{"empty.example.com", resolver.NoAnswer},
		{"nofile.example.com", resolver.NoNameservers},
	}

	for ix, tc := range testCases {
		called := false
		out := d.Dump(context.Background(), tc.domain, func(Event) { called = true })
		if out != tc.out {
			t.Error(ix, "Outcome", out, "want", tc.out)
		}
		if called {
			t.Error(ix, "Sink should not be called when the NS lookup fails")
		}
	}
}

func TestDumpCancelled(t *testing.T) {
	d := NewDumper(mockresolver.NewResolver("testdata"))
	ctx, cancel := context.WithCancel(context.Background())
	count := 0
	d.Dump(ctx, "example.com", func(Event) {
		count++
		cancel()
	})
	if count != 1 {
		t.Error("Expected Dump to stop after cancel, got", count, "events")
	}
}
