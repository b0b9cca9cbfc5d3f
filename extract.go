package publicip

import (
	"net"
	"unicode/utf8"

	"github.com/miekg/dns"
)

// extractAddr pulls our public address out of a DNS response according to the
// provider's query method. Only the first answer RR is consulted; anything after it
// is ignored. A record of any other type in that position, or no answer at all, is
// an ErrNoAddress failure which the engine treats as "try the next server".
//
// This function performs no I/O; it is pure given its inputs.
func extractAddr(r *dns.Msg, method queryMethod) (net.IP, error) {
	if len(r.Answer) == 0 {
		return nil, ErrNoAddress
	}

	switch rr := r.Answer[0].(type) {
	case *dns.A:
		if method == methodA {
			if ip := rr.A.To4(); ip != nil {
				return ip, nil
			}
		}
	case *dns.AAAA:
		if method == methodAAAA {
			if ip := rr.AAAA.To16(); ip != nil {
				return ip, nil
			}
		}
	case *dns.TXT:
		if method == methodTXT {
			return parseTXTAddr(rr.Txt)
		}
	}

	return nil, ErrNoAddress
}

// parseTXTAddr interprets the first chunk of a TXT answer as a textual IP literal.
// miekg hands the chunks over as Go strings holding the raw bytes, so the utf8 check
// is real: a chunk of binary junk must fail here, not produce a garbage "address".
func parseTXTAddr(chunks []string) (net.IP, error) {
	if len(chunks) == 0 {
		return nil, ErrNoAddress
	}

	s := chunks[0] // Subsequent chunks carry provider noise, not the address
	if !utf8.ValidString(s) {
		return nil, ErrNoAddress
	}

	ip := net.ParseIP(s)
	if ip == nil {
		return nil, ErrNoAddress
	}

	return ip, nil
}
