package dnsutil

import (
	"fmt"
	"net"
	"strings"
)

// IPToReverseQName converts an IP address into the fully qualified name looked up in the
// reverse tree, e.g. 192.0.2.1 becomes 1.2.0.192.in-addr.arpa.
//
// An empty string is returned if the IP address cannot be parsed.
func IPToReverseQName(ip net.IP) string {
	if ip == nil {
		return ""
	}
	if ip4 := ip.To4(); ip4 != nil {
		return fmt.Sprintf("%d.%d.%d.%d%s", ip4[3], ip4[2], ip4[1], ip4[0], V4Suffix)
	}

	ip6 := ip.To16()
	if ip6 == nil {
		return ""
	}

	nibbles := make([]string, 0, 32)
	for ix := 15; ix >= 0; ix-- {
		nibbles = append(nibbles, fmt.Sprintf("%x", ip6[ix]&0xf), fmt.Sprintf("%x", ip6[ix]>>4))
	}

	return strings.Join(nibbles, ".") + V6Suffix
}

// IsLoopback4 returns true if ip is exactly 127.0.0.1. Other addresses in 127/8 are
// deliberately not matched.
func IsLoopback4(ip net.IP) bool {
	return ip.Equal(net.IPv4(127, 0, 0, 1))
}
