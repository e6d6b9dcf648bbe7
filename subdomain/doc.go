/*
Package subdomain brute-forces subdomains of a base domain by combining it with
fragments from a wordlist. Each candidate which resolves to an IPv4 address is reverse
looked up and has its record type determined before being handed to a caller-supplied
sink. Candidates which fail to resolve are silently dropped.

Probing is strictly sequential. Every lookup failure is captured in a Lookup value at
the point it occurs so one candidate never affects another.
*/
package subdomain
