package dnsutil

import (
	"fmt"
	"strings"

	"github.com/miekg/dns"
)

// The Pretty* functions return a compact rendition of the various dns structures.
// The standard String() methods are designed to be consistent with traditional
// dig-type output which is far too verbose for single-line debug logging.

// PrettyMsg1 returns a compact string representing the complete message.
func PrettyMsg1(m *dns.Msg) string {
	h := m.MsgHdr
	flags := []string{}
	if h.Response {
		flags = append(flags, "qr")
	}
	if h.Authoritative {
		flags = append(flags, "aa")
	}
	if h.Truncated {
		flags = append(flags, "tc")
	}

	qTypes := make([]string, 0)
	aTypes := make([]string, 0)
	eTypes := make([]string, 0)
	for _, q := range m.Question {
		qTypes = append(qTypes, TypeToString(q.Qtype))
	}
	for _, rr := range m.Answer {
		aTypes = append(aTypes, TypeToString(rr.Header().Rrtype))
	}
	for _, rr := range m.Extra {
		eTypes = append(eTypes, TypeToString(rr.Header().Rrtype))
	}
	return fmt.Sprintf("%d f=%s %s Q=%d-%s Ans=%d-%s Extra=%d-%s",
		h.Id, strings.Join(flags, "+"), RcodeToString(h.Rcode),
		len(m.Question), strings.Join(qTypes, ","),
		len(m.Answer), strings.Join(aTypes, ","),
		len(m.Extra), strings.Join(eTypes, ","))
}

// PrettyQuestion returns a compact representation of the dns.Question.
func PrettyQuestion(q dns.Question) string {
	return fmt.Sprintf("%s/%s %s",
		ClassToString(dns.Class(q.Qclass)),
		TypeToString(q.Qtype),
		q.Name)
}

// PrettyRR returns a compact representation of the single RR. The RR types this
// module actually meets get bespoke rendering; anything else falls back on the
// general rendering offered by miekg.
func PrettyRR(rr dns.RR, includeName bool) (s string) {
	var rdata string
	switch rrt := rr.(type) {
	case *dns.A:
		rdata = rrt.A.String()
	case *dns.AAAA:
		rdata = rrt.AAAA.String()
	case *dns.TXT:
		rdata = strings.Join(rrt.Txt, " ")
	default:
		return rr.String()
	}

	hdr := rr.Header()
	if includeName {
		s = hdr.Name + " "
	}
	s += fmt.Sprintf("%s/%s %d %s",
		ClassToString(dns.Class(hdr.Class)),
		TypeToString(hdr.Rrtype),
		hdr.Ttl, rdata)
	return
}

// ClassToString converts a miekg class to a string, but if the resulting string is
// empty it's replaced with the numeric value.
func ClassToString(c dns.Class) (s string) {
	s = dns.ClassToString[uint16(c)]
	if len(s) == 0 {
		s = fmt.Sprintf("C-%d", c)
	}

	return
}

// TypeToString converts a miekg type to a string, but if the resulting string is
// empty it's replaced with the numeric value.
func TypeToString(t uint16) (s string) {
	s = dns.TypeToString[t]
	if len(s) == 0 {
		s = fmt.Sprintf("T-%d", t)
	}

	return
}

// RcodeToString converts a miekg rcode to a string, but if the resulting string is
// empty it's replaced with the numeric value.
func RcodeToString(r int) (s string) {
	s = dns.RcodeToString[r]
	if len(s) == 0 {
		s = fmt.Sprintf("r-%d", r)
	}

	return
}

// ChompCanonicalName makes the name canonical but loses the trailing dot. For
// logging, the trailing dot is more of a hindrance than a help.
func ChompCanonicalName(n string) string {
	n = dns.CanonicalName(n)
	if len(n) > 0 && n[len(n)-1] == '.' {
		n = n[:len(n)-1]
	}

	return n
}
