package resolver

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"path"
	"strings"

	"github.com/miekg/dns"

	"github.com/markdingo/dnsrecon/dnsutil"
	"github.com/markdingo/dnsrecon/log"
)

func (t *mockResolver) loadLookupFile(qType, qName string) (r dns.Msg, fname string, found bool) {
	fname = path.Join(t.dir, "lookup", "IN", strings.ToUpper(qType), strings.ToLower(qName))
	r, found = t.loadFile(fname)
	return
}

// loadTransferFile is keyed by the server address and zone. The server is normally
// ip:service but only the host portion forms part of the path.
func (t *mockResolver) loadTransferFile(server, zone string) (r dns.Msg, fname string, found bool) {
	host, _, err := net.SplitHostPort(dnsutil.WithDefaultService(server))
	if err != nil {
		panic("Bogus server address:" + server)
	}
	fname = path.Join(t.dir, "axfr", host, strings.ToLower(zone))
	r, found = t.loadFile(fname)
	return
}

// Attempt to open a mock file. If it doesn't exist, return found=false and let the caller
// decide what that means. If it does exist and is empty, rcode is NXDOMAIN. If it's not
// empty parse as a series of dns.NewRR() lines with a prefix indicating which section
// the RR belongs in:
//
// A:Answer
// N:NS
// E:Extra
// RCODE:miekg rcode string - must be uppercase - see miekg/msg.go lines 139 onwards.
// ;; Comment
// Blank lines ignored
// No spaces between the ":" separator
//
// If you set RCODE: then normally there should be no RRs in the message as no caller
// will look at them.

func init() {
	path := os.Getenv("DNSRECON_TRACE")
	if len(path) > 0 {
		var err error
		tracer, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			panic(err)
		}
	}
}

var tracer *os.File

// It turns out that github and zip don't like filenames with colons, so we substitute
// with "_". This is all just test data so it has no impact on running code.
func (t *mockResolver) loadFile(fname string) (r dns.Msg, found bool) {
	fname = strings.ReplaceAll(fname, ":", "_")
	log.Debug("mock:Resolver:Open:", fname)
	file, err := os.Open(fname)
	if tracer != nil {
		_, e2 := fmt.Fprintf(tracer, "%s:%t\n", fname, err == nil)
		if e2 != nil {
			panic(e2)
		}
		tracer.Sync() // Because we never get a chance to close it
	}

	if err != nil { // Assume no exist
		r.MsgHdr.Rcode = dns.RcodeRefused
		return
	}
	defer file.Close()
	found = true
	rcode := -1 // Means not set

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		if strings.HasPrefix(line, ";;") {
			continue
		}
		ar := strings.SplitN(line, ":", 2)
		if len(ar) != 2 { // Malformed is a setup error
			panic("Malformed loadfile " + fname)
		}

		if ar[0] == "RCODE" {
			var ok bool
			rcode, ok = dns.StringToRcode[ar[1]]
			if !ok {
				panic("Unknown RCODE in " + fname + ": " + ar[1])
			}
			log.Debugf("Mock:File:Rcode %d from '%s'\n", rcode, ar[1])
			continue
		}

		rr, err := dns.NewRR(ar[1])
		if err != nil {
			panic(err) // Parse failure is a setup error
		}

		switch ar[0] {
		case "A":
			r.Answer = append(r.Answer, rr)
		case "N":
			r.Ns = append(r.Ns, rr)
		case "E":
			r.Extra = append(r.Extra, rr)

		default:
			panic("filemock bad Section: " + ar[0])
		}
	}

	if rcode == -1 {
		if len(r.Answer) == 0 && len(r.Ns) == 0 && len(r.Extra) == 0 {
			rcode = dns.RcodeNameError // NXDOMAIN
		}
	}
	if rcode == -1 {
		rcode = dns.RcodeSuccess
	}
	r.MsgHdr.Rcode = rcode

	return
}
