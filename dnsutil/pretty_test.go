package dnsutil_test

import (
	"testing"

	"github.com/miekg/dns"

	"github.com/markdingo/publicip/dnsutil"
)

func TestPrettyQuestion(t *testing.T) {
	q := dns.Question{Name: "myip.opendns.com.", Qtype: dns.TypeA, Qclass: dns.ClassINET}
	exp := "IN/A myip.opendns.com."
	if got := dnsutil.PrettyQuestion(q); got != exp {
		t.Error("Got", got, "Expected", exp)
	}

	q = dns.Question{Name: "whoami.cloudflare.", Qtype: dns.TypeTXT, Qclass: dns.ClassCHAOS}
	exp = "CH/TXT whoami.cloudflare."
	if got := dnsutil.PrettyQuestion(q); got != exp {
		t.Error("Got", got, "Expected", exp)
	}
}

func TestPrettyRR(t *testing.T) {
	testCases := []struct {
		rrStr    string
		withName bool
		expect   string
	}{
		{"myip.opendns.com. 60 IN A 93.184.216.34", false, "IN/A 60 93.184.216.34"},
		{"myip.opendns.com. 60 IN AAAA 2001:db8::1", true,
			"myip.opendns.com. IN/AAAA 60 2001:db8::1"},
		{"o-o.myaddr.l.google.com. 60 IN TXT \"203.0.113.5\"", false,
			"IN/TXT 60 203.0.113.5"},
	}

	for ix, tc := range testCases {
		rr, err := dns.NewRR(tc.rrStr)
		if err != nil {
			t.Fatal(ix, "Setup error", err)
		}
		if got := dnsutil.PrettyRR(rr, tc.withName); got != tc.expect {
			t.Error(ix, "Got", got, "Expected", tc.expect)
		}
	}

	// Unhandled types fall back on miekg rendering
	rr, _ := dns.NewRR("example.net. 60 IN NS a.ns.example.net.")
	if got := dnsutil.PrettyRR(rr, true); got != rr.String() {
		t.Error("Fallback rendering expected for NS, got", got)
	}
}

func TestPrettyMsg1(t *testing.T) {
	q := new(dns.Msg)
	q.SetQuestion("myip.opendns.com.", dns.TypeA)
	q.Id = 2712
	r := new(dns.Msg)
	r.SetReply(q)
	rr, _ := dns.NewRR("myip.opendns.com. 60 IN A 93.184.216.34")
	r.Answer = append(r.Answer, rr)

	exp := "2712 f=qr NOERROR Q=1-A Ans=1-A Extra=0-"
	if got := dnsutil.PrettyMsg1(r); got != exp {
		t.Error("Got", got, "Expected", exp)
	}
}

func TestToString(t *testing.T) {
	if got := dnsutil.ClassToString(dns.Class(dns.ClassCHAOS)); got != "CH" {
		t.Error("CHAOS came back as", got)
	}
	if got := dnsutil.ClassToString(dns.Class(4711)); got != "C-4711" {
		t.Error("Unknown class came back as", got)
	}
	if got := dnsutil.TypeToString(dns.TypeTXT); got != "TXT" {
		t.Error("TXT came back as", got)
	}
	if got := dnsutil.TypeToString(4712); got != "T-4712" {
		t.Error("Unknown type came back as", got)
	}
	if got := dnsutil.RcodeToString(dns.RcodeRefused); got != "REFUSED" {
		t.Error("REFUSED came back as", got)
	}
	if got := dnsutil.RcodeToString(4713); got != "r-4713" {
		t.Error("Unknown rcode came back as", got)
	}
}

func TestChompCanonicalName(t *testing.T) {
	testCases := []struct{ in, expect string }{
		{"MyIP.OpenDNS.Com.", "myip.opendns.com"},
		{"whoami.cloudflare", "whoami.cloudflare"},
		{".", ""},
		{"", ""},
	}
	for ix, tc := range testCases {
		if got := dnsutil.ChompCanonicalName(tc.in); got != tc.expect {
			t.Error(ix, "Got", got, "Expected", tc.expect)
		}
	}
}
