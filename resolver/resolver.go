package resolver

import (
	"time"
)

type resolver struct {
	// Currently the timeout cannot be changed from the default. Let's see if there
	// is ever any real need for that prior to adding an adjustment capability.
	singleExchangeTimeout time.Duration
}

// NewResolver creates a fully formed resolver which is ready to use.
func NewResolver() *resolver {
	return &resolver{singleExchangeTimeout: defaultSingleExchangeTimeout}
}
