package publicip

import (
	"context"
	"net"

	"github.com/markdingo/publicip/dnsutil"
)

// Version selects which IP address family a resolution is after.
type Version int

const (
	V4 Version = iota
	V6
	Any
)

// Matches returns true if the supplied address belongs to the family the Version
// asks for. Any matches everything.
func (t Version) Matches(ip net.IP) bool {
	switch t {
	case Any:
		return true
	case V4:
		return dnsutil.IsV4(ip)
	case V6:
		return dnsutil.IsV6(ip)
	}

	return false
}

func (t Version) String() string {
	switch t {
	case V4:
		return "IPv4"
	case V6:
		return "IPv6"
	}

	return "any"
}

// All package-level calls share one Client; it holds no state beyond the read-only
// catalog so there is nothing to coordinate.
var defaultClient = NewClient()

// Addr resolves the caller's public IP address of either family.
func Addr(ctx context.Context) (net.IP, error) {
	return defaultClient.Resolve(ctx, Any)
}

// AddrV4 resolves the caller's public IPv4 address.
func AddrV4(ctx context.Context) (net.IP, error) {
	ip, err := defaultClient.Resolve(ctx, V4)
	if err != nil {
		return nil, err
	}
	ip4 := ip.To4()
	if ip4 == nil { // Resolve(V4) only ever returns addresses matching V4
		panic("publicip: Resolve(V4) produced a non-IPv4 address: " + ip.String())
	}

	return ip4, nil
}

// AddrV6 resolves the caller's public IPv6 address.
func AddrV6(ctx context.Context) (net.IP, error) {
	ip, err := defaultClient.Resolve(ctx, V6)
	if err != nil {
		return nil, err
	}
	if !dnsutil.IsV6(ip) { // Resolve(V6) only ever returns addresses matching V6
		panic("publicip: Resolve(V6) produced a non-IPv6 address: " + ip.String())
	}

	return ip.To16(), nil
}

// Resolve resolves the caller's public IP address of the requested Version using
// the stock provider catalog. See Client.Resolve for the full contract.
func Resolve(ctx context.Context, version Version) (net.IP, error) {
	return defaultClient.Resolve(ctx, version)
}
