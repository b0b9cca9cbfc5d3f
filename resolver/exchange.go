package resolver

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/miekg/dns"

	"github.com/markdingo/publicip/dnsutil"
	"github.com/markdingo/publicip/log"
)

func (t *resolver) SingleExchange(ctx context.Context, c ExchangeConfig, q *dns.Msg,
	server, logName string) (r *dns.Msg, rtt time.Duration, err error) {
	if len(q.Question) != 1 {
		err = fmt.Errorf("SingleExchange Message contains %d Question(s), expect one",
			len(q.Question))
		return
	}

	question := q.Question[0]
	client := &dns.Client{Timeout: t.singleExchangeTimeout}
	client.Net = c.Net()
	client.UDPSize = c.UDPSize()
	_, _, e := net.SplitHostPort(server) // Coerce a service onto the address if
	if e != nil {                        // it hasn't got one
		server = net.JoinHostPort(server, dnsutil.DefaultPort)
	}

	if log.IfDebug() {
		LogExchangeQ(client.Net, logName, server, question)
	}

	r, rtt, err = client.ExchangeContext(ctx, q, server)

	if log.IfDebug() {
		LogExchangeA(server, question, r, err)
	}

	return
}
