package resolver

import (
	"context"
	"time"

	"github.com/miekg/dns"

	"github.com/markdingo/publicip/dnsutil"
)

const (
	defaultSingleExchangeTimeout = 4 * time.Second
)

// ExchangeConfig expresses the settings which would otherwise be passed to miekg via
// a Client struct. Only the ones relevant to this module have been transferred
// across. It's defined as an interface rather than a struct to enforce the use of
// NewExchangeConfig which sets defaults.
type ExchangeConfig interface {
	Net() string
	UDPSize() uint16
}

type exchangeConfig struct {
	net     string
	udpSize uint16
}

func (t *exchangeConfig) Net() string     { return t.net }
func (t *exchangeConfig) UDPSize() uint16 { return t.udpSize }

func NewExchangeConfig() *exchangeConfig {
	return &exchangeConfig{net: dnsutil.UDPNetwork, udpSize: dnsutil.MaxUDPSize}
}

// Resolver is the networking interface consumed by the resolution engine. The
// concrete implementation wraps miekg; tests substitute their own.
//
// Based on the claim that miekg's Client is concurrency safe, implementations of
// this interface must also ensure concurrency safety.
type Resolver interface {

	// SingleExchange is a shim for the github.com/miekg/dns ExchangeContext
	// function which makes a single exchange attempt with the server; no retries,
	// no fallback to TCP. A fresh client and socket is created for each call and
	// torn down before it returns, so no transport state survives across attempts.
	//
	// SingleExchange sets dns.Client.Timeout so one unresponsive server cannot
	// stall the caller indefinitely, regardless of whether the supplied context
	// carries a deadline.
	//
	// The dns.Msg must be fully formed with all flags, EDNS options and Id set as
	// needed by the caller.
	//
	// logName identifies the query target in debug output; it is normally the
	// query name since server is just an ip address in this module's context.
	SingleExchange(ctx context.Context, c ExchangeConfig, q *dns.Msg,
		server, logName string) (r *dns.Msg, rtt time.Duration, err error)
}
