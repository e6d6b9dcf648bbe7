/*
Package resolver defines an interface and provides a concrete implementation of the DNS
resolver service used by dnsrecon. The implementation is an amalgam of the standard go
net package resolver functions and the github.com/miekg/dns package: forward, reverse and
NS lookups go via net.Resolver so they honour the system configuration (including
/etc/hosts) while the record-type query and zone transfers use miekg directly.

The package exists so that resolving is an interface which can be mocked for testing
purposes, and so that every lookup failure is converted into one of a small set of
sentinel errors which Classify maps to an Outcome. Callers never need to know whether a
failure came from net or from miekg.
*/
package resolver
