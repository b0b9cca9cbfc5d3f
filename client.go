package publicip

import (
	"context"
	"fmt"
	"net"

	"github.com/miekg/dns"

	"github.com/markdingo/publicip/dnsutil"
	"github.com/markdingo/publicip/resolver"
)

// Client drives the fallback traversal over the provider catalog. It holds no
// mutable state so a single Client is safe for any amount of concurrent use.
type Client struct {
	res     resolver.Resolver
	catalog []*provider
}

// NewClient returns a Client backed by the stock provider catalog and the real
// network resolver.
func NewClient() *Client {
	return &Client{res: resolver.NewResolver(), catalog: catalog}
}

// Resolve works through the catalog in priority order, one attempt at a time, and
// returns the first address of the requested version that any provider echoes back.
//
// Transport failures and unusable answers are remembered and the traversal moves to
// the next server, then the next provider. Two outcomes are decisive and stop the
// traversal at once: a version-matching address, and a well-formed address of the
// wrong version which returns ErrVersionMismatch - wrong-family answers from a
// curated echo service indicate trouble that must not be masked by falling back.
//
// If every server of every provider is filtered out by version, or every attempt
// fails, the error from the last attempt is returned (ErrNoAddress when no attempt
// was made at all).
func (t *Client) Resolve(ctx context.Context, version Version) (net.IP, error) {
	lastErr := ErrNoAddress

	for _, p := range t.catalog {
		for _, server := range p.filterServers(version) {
			ip, err := t.attempt(ctx, p, server)
			if err != nil {
				lastErr = err
				continue
			}
			if !version.Matches(ip) {
				return nil, ErrVersionMismatch
			}
			return ip, nil
		}
	}

	return nil, lastErr
}

// attempt makes exactly one query/response round trip with one server. The exchange
// opens its own ephemeral socket and tears it down on completion; nothing persists
// between attempts.
func (t *Client) attempt(ctx context.Context, p *provider, server net.IP) (net.IP, error) {
	hostPort := net.JoinHostPort(server.String(), p.port)

	q := new(dns.Msg)
	q.SetQuestion(p.qName, p.method.qType())
	q.Question[0].Qclass = p.qClass
	q.SetEdns0(dnsutil.MaxUDPSize, false)
	opt := q.IsEdns0()
	opt.Option = append(opt.Option, &dns.EDNS0_COOKIE{
		Code:   dns.EDNS0COOKIE,
		Cookie: dnsutil.ClientCookie(hostPort),
	})

	r, _, err := t.res.SingleExchange(ctx, resolver.NewExchangeConfig(), q,
		hostPort, p.qName)
	if err != nil {
		return nil, fmt.Errorf("exchange with %s: %w", hostPort, err)
	}

	return extractAddr(r, p.method)
}
