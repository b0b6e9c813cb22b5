// SPDX-License-Identifier: MIT

// Package layout: functional configuration for constructors.
//   - Option / options (functional options with internal state),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions helper that applies defaults.
//
// Options only influence construction diagnostics; they never change the
// memory layout or the indexing arithmetic.
package layout

import (
	"github.com/go-kit/log"
)

const panicNilLogger = "layout: WithLogger: logger must be non-nil"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*options)

// options is the effective configuration after applying Option setters.
type options struct {
	logger log.Logger // DefaultLogger when unset
}

// DefaultLogger discards every record.
var DefaultLogger log.Logger = log.NewNopLogger()

// WithLogger routes construction diagnostics (debug summary, ragged-input and
// odd-side warnings) to logger. Panics when logger is nil.
func WithLogger(logger log.Logger) Option {
	if logger == nil {
		panic(panicNilLogger)
	}

	return func(o *options) {
		o.logger = logger
	}
}

// gatherOptions resolves opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) options {
	o := options{logger: DefaultLogger}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
