package dnsutil

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"sync"

	"github.com/dchest/siphash"
)

// rfc7873 says a client cookie is exactly 8 bytes and recommends deriving it from
// the server identity with a keyed pseudorandom function so that one server cannot
// track the client across other servers. SipHash-2-4 is the recommended hash.

const clientCookieLength = 8

var (
	cookieOnce    sync.Once
	cookieSecrets [2]uint64 // Per-process; regenerated on every start
)

// ClientCookie returns the hex-encoded rfc7873 client cookie to send to the given
// server, suitable for direct assignment to dns.EDNS0_COOKIE.Cookie which miekg
// stores in hex. The cookie is stable for a given server within the process lifetime
// and unlinkable across servers.
func ClientCookie(server string) string {
	cookieOnce.Do(func() {
		var seed [16]byte
		_, err := rand.Read(seed[:])
		if err != nil { // crypto/rand is unrecoverable if broken
			panic("dnsutil: crypto/rand failed: " + err.Error())
		}
		cookieSecrets[0] = binary.BigEndian.Uint64(seed[0:8])
		cookieSecrets[1] = binary.BigEndian.Uint64(seed[8:16])
	})

	var cookie [clientCookieLength]byte
	sum64 := siphash.Hash(cookieSecrets[0], cookieSecrets[1], []byte(server))
	binary.BigEndian.PutUint64(cookie[:], sum64)

	return hex.EncodeToString(cookie[:])
}
