// Package mock provides test doubles shared by the package tests: an accumulating
// io.Writer for capturing log output and, in mock/dns, a loopback DNS server.
package mock

// IOWriter accumulates everything written to it for later inspection. Not
// concurrency-safe; tests are expected to serialize access.
type IOWriter struct {
	buf []byte
}

func (t *IOWriter) Reset() {
	t.buf = t.buf[:0]
}

func (t *IOWriter) Write(b []byte) (int, error) {
	t.buf = append(t.buf, b...)

	return len(b), nil
}

func (t *IOWriter) String() string {
	return string(t.buf)
}

func (t *IOWriter) Len() int {
	return len(t.buf)
}
