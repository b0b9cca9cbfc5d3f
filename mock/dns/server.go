// Package dns runs miekg servers on loopback addresses so exchange tests exercise
// the real UDP path rather than stubbing below the client.
package dns

import (
	"github.com/miekg/dns"
)

// StartServer starts a miekg DNS server with the supplied handler and does not
// return until the server is accepting queries. The caller owns Shutdown.
func StartServer(net, serverAddr string, h dns.Handler) *dns.Server {
	srv := &dns.Server{Net: net, Addr: serverAddr, Handler: h}
	hasStarted := make(chan struct{})
	srv.NotifyStartedFunc = func() {
		hasStarted <- struct{}{}
	}

	go func() {
		err := srv.ListenAndServe()
		defer close(hasStarted)
		if err != nil { // Shutdown or real error?
			panic("Setup of mock DNS Server failed:" + err.Error())
		}
	}()

	<-hasStarted // Wait for server, one way or the other

	return srv
}
