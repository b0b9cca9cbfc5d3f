package publicip

import (
	"net"

	"github.com/miekg/dns"
)

// queryMethod fixes, per provider, both the record type asked for and the only
// record type accepted back.
type queryMethod int

const (
	methodA    queryMethod = iota // Our address is the first A record
	methodAAAA                    // Our address is the first AAAA record
	methodTXT                     // Our address is the first TXT chunk, as text
)

func (t queryMethod) qType() uint16 {
	switch t {
	case methodA:
		return dns.TypeA
	case methodAAAA:
		return dns.TypeAAAA
	}

	return dns.TypeTXT
}

// provider describes one DNS echo service: where to send the query, what to ask and
// how to read the answer. Providers are compiled-in data, defined once and shared
// read-only for the process lifetime.
type provider struct {
	qName   string   // Fully qualified query name
	servers []net.IP // Candidate servers; all the same family in the stock catalog
	port    string   // Service for net.JoinHostPort
	method  queryMethod
	qClass  uint16
}

// filterServers returns the candidate servers whose IP family matches the requested
// version. Traversal order among a provider's own servers carries no meaning; the
// slice happens to be in declaration order but nothing may rely on that.
func (t *provider) filterServers(version Version) []net.IP {
	out := make([]net.IP, 0, len(t.servers))
	for _, s := range t.servers {
		if version.Matches(s) {
			out = append(out, s)
		}
	}

	return out
}

func mustIPs(addrs ...string) (ips []net.IP) {
	for _, a := range addrs {
		ip := net.ParseIP(a)
		if ip == nil {
			panic("publicip: bad compiled-in server address: " + a)
		}
		ips = append(ips, ip)
	}

	return
}

// The catalog. Iteration order is the fixed priority: the first successful,
// version-matching answer wins and no later provider is consulted. Each of the three
// operators appears twice, once per address family, but filterServers still runs
// against every entry in case the catalog is ever extended with mixed-family ones.
var catalog = []*provider{
	{
		qName:   "myip.opendns.com.",
		servers: mustIPs("208.67.222.222", "208.67.220.220", "208.67.222.220", "208.67.220.222"),
		port:    "53",
		method:  methodA,
		qClass:  dns.ClassINET,
	},
	{
		qName:   "myip.opendns.com.",
		servers: mustIPs("2620:0:ccc::2", "2620:0:ccd::2"),
		port:    "53",
		method:  methodAAAA,
		qClass:  dns.ClassINET,
	},
	{
		qName:   "o-o.myaddr.l.google.com.",
		servers: mustIPs("216.239.32.10", "216.239.34.10", "216.239.36.10", "216.239.38.10"),
		port:    "53",
		method:  methodTXT,
		qClass:  dns.ClassINET,
	},
	{
		qName: "o-o.myaddr.l.google.com.",
		servers: mustIPs("2001:4860:4802:32::a", "2001:4860:4802:34::a",
			"2001:4860:4802:36::a", "2001:4860:4802:38::a"),
		port:   "53",
		method: methodTXT,
		qClass: dns.ClassINET,
	},
	{
		qName:   "whoami.cloudflare.",
		servers: mustIPs("1.1.1.1", "1.0.0.1"),
		port:    "53",
		method:  methodTXT,
		qClass:  dns.ClassCHAOS,
	},
	{
		qName:   "whoami.cloudflare.",
		servers: mustIPs("2606:4700:4700::1111", "2606:4700:4700::1001"),
		port:    "53",
		method:  methodTXT,
		qClass:  dns.ClassCHAOS,
	},
}
