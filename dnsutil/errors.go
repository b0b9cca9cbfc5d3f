package dnsutil

import (
	"strings"
)

// shortenedError is a wrapped error so the caller doesn't lose the original error
// context, if that is of interest to them.
type shortenedError struct {
	msg string
	err error
}

func (t *shortenedError) Error() string {
	return t.msg
}

func (t *shortenedError) Unwrap() error {
	return t.err
}

// ShortenExchangeError turns the long unwieldy errors returned by network exchanges
// into succinct ones in the common cases which don't warrant the whole catastrophe.
func ShortenExchangeError(err error) error {
	if err == nil {
		return err
	}
	m := err.Error()
	switch {
	case strings.Contains(m, "i/o timeout"):
		err = &shortenedError{msg: "Timeout", err: err}
	case strings.Contains(m, "connection refused"):
		err = &shortenedError{msg: "Connection refused", err: err}
	case strings.Contains(m, "network is unreachable"):
		err = &shortenedError{msg: "Network unreachable", err: err}
	}

	return err
}
