package dns

import (
	"fmt"
	"sync"

	"github.com/miekg/dns"
)

// ExchangeResponse defines the canned reply of an ExchangeServer.
type ExchangeResponse struct {
	Ignore    bool // Don't reply at all
	Truncated bool
	Rcode     int
	Answer    []dns.RR

	QueryCount int // Times the server served this response
}

// ExchangeServer is a dumb server which copies response values into every reply. It
// never checks the question.
type ExchangeServer struct {
	mu   sync.Mutex
	resp *ExchangeResponse
}

// SetResponse sets a new response for subsequent queries
func (t *ExchangeServer) SetResponse(r *ExchangeResponse) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.resp = r
}

// GetResponse returns the current response as set
func (t *ExchangeServer) GetResponse() *ExchangeResponse {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.resp
}

// ServeDNS meets the interface definition for dns.Handler
func (t *ExchangeServer) ServeDNS(wtr dns.ResponseWriter, q *dns.Msg) {
	t.mu.Lock()
	resp := t.resp
	if resp == nil {
		t.mu.Unlock()
		panic("resp == nil in mock exchange server")
	}
	resp.QueryCount++
	t.mu.Unlock()

	if resp.Ignore {
		return
	}

	m := new(dns.Msg)
	m.SetRcode(q, resp.Rcode)
	m.RecursionAvailable = true
	if resp.Truncated {
		m.Truncated = true
	} else if resp.Rcode == dns.RcodeSuccess { // Only populate if rcode is good
		m.Answer = resp.Answer
	}

	err := wtr.WriteMsg(m)
	if err != nil {
		fmt.Println("Alert: WriteMsg error:", err)
	}
}
