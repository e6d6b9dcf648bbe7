package resolver

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strings"

	"github.com/miekg/dns"
)

// Sentinel errors. Concrete errors are *LookupError which match one of these with
// errors.Is.
var (
	ErrNameNotFound      = errors.New("name not found")
	ErrNoAnswer          = errors.New("no answer")
	ErrNoNameservers     = errors.New("no nameservers reachable")
	ErrTransferRefused   = errors.New("transfer refused")
	ErrMalformedTransfer = errors.New("malformed transfer response")
	ErrTransfer          = errors.New("transfer error")
)

// LookupError records which lookup failed, its classification and the underlying cause,
// if any.
type LookupError struct {
	Op   string // "A", "PTR", "NS", "AXFR", ...
	Name string
	Kind error // One of the sentinel errors
	Err  error // Underlying cause, may be nil
}

func (t *LookupError) Error() string {
	s := t.Op + " " + t.Name + ": " + t.Kind.Error()
	if t.Err != nil {
		s += ": " + t.Err.Error()
	}

	return s
}

func (t *LookupError) Is(target error) bool {
	return target == t.Kind
}

func (t *LookupError) Unwrap() error {
	return t.Err
}

func newLookupError(op, name string, kind, err error) *LookupError {
	return &LookupError{Op: op, Name: name, Kind: kind, Err: err}
}

// Outcome is the tagged result of classifying a lookup, file or transfer error.
type Outcome int

const (
	Success Outcome = iota
	NameNotFound
	NoAnswer
	NoNameservers
	FileNotFound
	TransferRefused
	MalformedTransfer
	TransferError
)

func (t Outcome) String() string {
	switch t {
	case Success:
		return "Success"
	case NameNotFound:
		return "NameNotFound"
	case NoAnswer:
		return "NoAnswer"
	case NoNameservers:
		return "NoNameservers"
	case FileNotFound:
		return "FileNotFound"
	case TransferRefused:
		return "TransferRefused"
	case MalformedTransfer:
		return "MalformedTransfer"
	case TransferError:
		return "TransferError"
	}

	return fmt.Sprintf("Outcome(%d)", int(t))
}

// IsTransfer returns true for the three zone transfer outcomes.
func (t Outcome) IsTransfer() bool {
	return t == TransferRefused || t == MalformedTransfer || t == TransferError
}

// Classify is the single place where errors are mapped to an Outcome. nil is
// Success. Errors which carry no recognizable classification are treated as
// NoNameservers on the basis that no server gave a usable answer.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, ErrNameNotFound):
		return NameNotFound
	case errors.Is(err, ErrNoAnswer):
		return NoAnswer
	case errors.Is(err, ErrNoNameservers):
		return NoNameservers
	case errors.Is(err, ErrTransferRefused):
		return TransferRefused
	case errors.Is(err, ErrMalformedTransfer):
		return MalformedTransfer
	case errors.Is(err, ErrTransfer):
		return TransferError
	case errors.Is(err, fs.ErrNotExist):
		return FileNotFound
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
		return NameNotFound
	}

	return NoNameservers
}

// netError converts a net.Resolver error into a *LookupError.
func netError(op, name string, err error) error {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
		return newLookupError(op, name, ErrNameNotFound, err)
	}

	return newLookupError(op, name, ErrNoNameservers, err)
}

// xfrRcode reproduces the miekg error text for a non-zero rcode in the first AXFR
// response. miekg does not export a typed error for this case.
func xfrRcode(rcode int) string {
	return fmt.Sprintf("bad xfr rcode: %d", rcode)
}

// transferError classifies an error returned by dns.Transfer. Refusal covers servers
// which say REFUSED or NOTAUTH; malformed covers responses which cannot be a legitimate
// transfer stream.
func transferError(zone, server string, err error) error {
	m := err.Error()
	name := zone + "@" + server
	switch {
	case strings.Contains(m, xfrRcode(dns.RcodeRefused)),
		strings.Contains(m, xfrRcode(dns.RcodeNotAuth)):
		return newLookupError("AXFR", name, ErrTransferRefused, err)

	case errors.Is(err, dns.ErrSoa), errors.Is(err, dns.ErrId),
		strings.Contains(m, xfrRcode(dns.RcodeFormatError)),
		strings.Contains(m, "unpack"), strings.Contains(m, "overflow"),
		strings.Contains(m, "bad rdlength"), strings.Contains(m, "buffer size too small"):
		return newLookupError("AXFR", name, ErrMalformedTransfer, err)
	}

	return newLookupError("AXFR", name, ErrTransfer, err)
}
