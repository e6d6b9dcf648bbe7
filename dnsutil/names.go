package dnsutil

import (
	"net"
	"strings"

	"github.com/miekg/dns"
)

// ChompCanonicalName makes name canonical but loses the trailing dot. For logging and
// mock processing where names are converted to file names, the trailing dot is more of a
// hinderance than a help.
func ChompCanonicalName(n string) string {
	n = dns.CanonicalName(n)
	if len(n) > 0 && n[len(n)-1] == '.' {
		n = n[:len(n)-1]
	}

	return n
}

// ChompName removes all trailing root dots from n without otherwise changing it. This is
// the form used for display and for saved nameserver lists.
func ChompName(n string) string {
	return strings.TrimRight(n, ".")
}

// InDomain returns true if sub is in-domain of parent. Both names are made canonical
// before comparison and parent may or may not have a leading ".".
func InDomain(sub, parent string) bool {
	if len(parent) == 0 || parent == "." { // Root?
		return true
	}

	parent = dns.CanonicalName(parent)
	if parent[0] == '.' {
		parent = parent[1:]
	}
	sub = dns.CanonicalName(sub)
	if len(sub) < len(parent) {
		return false
	}
	if sub == parent {
		return true
	}

	return strings.HasSuffix(sub, "."+parent)
}

// RelativeName returns owner relative to zone in the style of a zone file: "@" for the
// apex and the leading labels otherwise. An owner which is not in-domain is returned in
// its chomped canonical form.
func RelativeName(owner, zone string) string {
	o := ChompCanonicalName(owner)
	z := ChompCanonicalName(zone)
	switch {
	case o == z:
		return "@"
	case len(z) == 0:
		return o
	case InDomain(o, z):
		return strings.TrimSuffix(o, "."+z)
	}

	return o
}

// SplitFirstLabel splits name at its first dot. rest is empty if name has only one
// label.
func SplitFirstLabel(name string) (first, rest string) {
	ix := strings.Index(name, ".")
	if ix == -1 {
		return name, ""
	}

	return name[:ix], name[ix+1:]
}

// WithDefaultService coerces a service onto server if it hasn't got one. IPv6 addresses
// without a port gain their brackets.
func WithDefaultService(server string) string {
	if _, _, err := net.SplitHostPort(server); err == nil {
		return server
	}

	return net.JoinHostPort(strings.Trim(server, "[]"), DefaultService)
}
