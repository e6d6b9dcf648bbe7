// Copyright (c) 2021, 2022 Mark Delany. All rights reserved. Use of this source code is
// governed by a BSD-style license that can be found in the LICENSE file.

// This file exists so that "go doc github.com/markdingo/dnsrecon" displays something
// useful.

/*

Package dnsrecon is a small collection of DNS reconnaissance commands combined into one
program. It lists the nameservers of a domain, brute-forces subdomains from a wordlist
with forward, reverse and record type lookups, and attempts zone transfers from each
nameserver of a domain.

Each command is a linear sequence of DNS queries with results printed as soon as they
are known. dnsrecon is not a DNS server and keeps no state between runs other than the
nameserver list it optionally saves.

The program is in cmd/dnsrecon.

Project site: https://github.com/markdingo/dnsrecon

*/
package dnsrecon
