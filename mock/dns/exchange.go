package dns

import (
	"fmt"
	"sync"

	"github.com/miekg/dns"
)

// ExchangeResponse defines what the ExchangeServer sends back for each query it
// receives. QueryCount is incremented by the server so tests can verify exactly how
// many exchanges reached a given server.
type ExchangeResponse struct {
	Ignore    bool // Swallow the query to provoke a client-side timeout
	Truncated bool
	Rcode     int
	Answer    []dns.RR
	Ns        []dns.RR
	Extra     []dns.RR

	QueryCount int
}

// ExchangeServer is a dumb server designed for single DNS exchanges; it copies the
// configured response values into the reply message without ever examining the query.
type ExchangeServer struct {
	mu   sync.Mutex
	resp *ExchangeResponse
}

// SetResponse sets the response for subsequent queries.
func (t *ExchangeServer) SetResponse(r *ExchangeResponse) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.resp = r
}

// GetResponse returns the current response as set.
func (t *ExchangeServer) GetResponse() *ExchangeResponse {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.resp
}

// ServeDNS meets the interface definition for dns.Handler.
func (t *ExchangeServer) ServeDNS(wtr dns.ResponseWriter, q *dns.Msg) {
	resp := t.GetResponse()
	if resp == nil {
		panic("resp == nil in mock exchange server")
	}
	resp.QueryCount++
	if resp.Ignore {
		return
	}

	m := new(dns.Msg)
	m.SetRcode(q, resp.Rcode)
	if resp.Truncated {
		m.MsgHdr.Truncated = true
	} else if resp.Rcode == dns.RcodeSuccess { // Only populate if rcode is good
		m.Answer = resp.Answer
		m.Ns = resp.Ns
		m.Extra = resp.Extra
	}

	err := wtr.WriteMsg(m)
	if err != nil {
		fmt.Println("Alert: WriteMsg error:", err)
	}
}
