package publicip

import (
	"errors"
)

var (
	// ErrNoAddress means no answer was present or no valid IP address could be
	// extracted from it. It is also the terminal error when every provider and
	// server has been exhausted without any more specific failure.
	ErrNoAddress = errors.New("no or invalid IP address found")

	// ErrVersionMismatch means a provider returned a well-formed address of the
	// wrong IP version. The catalog is curated so this never happens with a sane
	// provider; when it does it signals misconfiguration serious enough that the
	// whole resolution is aborted rather than retried elsewhere.
	ErrVersionMismatch = errors.New("IP address version not requested was returned")
)
