package dnsutil

import (
	"net"
)

// IsV4 returns true if ip is an IPv4 address, including a 4-in-6 mapped one, which
// is how net.ParseIP represents dotted-quad input.
func IsV4(ip net.IP) bool {
	return ip.To4() != nil
}

// IsV6 returns true if ip is an IPv6 address proper. A 4-in-6 mapped address counts
// as IPv4, not IPv6, matching the classification made by net.IP.To4().
func IsV6(ip net.IP) bool {
	return ip.To4() == nil && ip.To16() != nil
}
