package resolver

import (
	"github.com/miekg/dns"

	"github.com/markdingo/publicip/dnsutil"
	"github.com/markdingo/publicip/log"
)

// LogExchangeQ logs the question given to miekg.Exchange(). Exported for alternate
// Resolver implementations. Caller should test log.IfDebug() prior to calling.
func LogExchangeQ(net, logName, server string, q dns.Question) {
	log.Debugf("miekg Q:%s:%s/%s q=%s",
		net, logName, server, dnsutil.PrettyQuestion(q))
}

// LogExchangeA logs the answer returned by miekg.Exchange(). See above.
func LogExchangeA(server string, question dns.Question, r *dns.Msg, err error) {
	if err == nil {
		log.Debug("miekg A:", dnsutil.PrettyMsg1(r))
	} else {
		log.Debugf("miekg E:%s/%s/%s %s",
			server, dnsutil.ChompCanonicalName(question.Name),
			dns.TypeToString[question.Qtype],
			dnsutil.ShortenExchangeError(err).Error())
	}
}
