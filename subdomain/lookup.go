package subdomain

import (
	"github.com/markdingo/dnsrecon/resolver"
)

// LookupState distinguishes a lookup which was never made from one which failed.
type LookupState int

const (
	NotAttempted LookupState = iota
	Found
	Failed
)

func (t LookupState) String() string {
	switch t {
	case Found:
		return "Found"
	case Failed:
		return "Failed"
	}

	return "NotAttempted"
}

// Lookup is the optional result of a single lookup. Value is only meaningful when State
// is Found and Outcome is only meaningful when State is Failed.
type Lookup struct {
	State   LookupState
	Value   string
	Outcome resolver.Outcome
}

func found(v string) Lookup {
	return Lookup{State: Found, Value: v}
}

func failed(err error) Lookup {
	return Lookup{State: Failed, Outcome: resolver.Classify(err)}
}

// Found returns true if the lookup produced a value.
func (t Lookup) Found() bool {
	return t.State == Found
}

// Or returns Value if found, otherwise def.
func (t Lookup) Or(def string) string {
	if t.State == Found {
		return t.Value
	}

	return def
}

func (t Lookup) String() string {
	switch t.State {
	case Found:
		return t.Value
	case Failed:
		return t.Outcome.String()
	}

	return t.State.String()
}
