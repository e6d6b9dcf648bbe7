package main

import (
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
)

// Both the standard "flag" package and "spf13/pflag" silently accept duplicate options
// with the last one winning. That's impossible to detect unless you use your own Value
// implementations, so options where a duplicate is likely a mistake use onceString.
type onceString struct {
	p   *string
	set bool
}

var _ flag.Value = (*onceString)(nil)

func (t *onceString) String() string {
	if t.p == nil {
		return ""
	}
	return *t.p
}

func (t *onceString) Set(v string) error {
	if t.set {
		return fmt.Errorf("duplicate option value '%s' not allowed", v)
	}
	if len(strings.TrimSpace(v)) == 0 {
		return fmt.Errorf("empty value not allowed")
	}
	*t.p = v
	t.set = true

	return nil
}

func (t *onceString) Type() string {
	return "string"
}

// onceStringVarP is the onceString equivalent of fs.StringVarP with an empty default.
func onceStringVarP(fs *flag.FlagSet, p *string, name, shorthand, usage string) {
	fs.VarP(&onceString{p: p}, name, shorthand, usage)
}
