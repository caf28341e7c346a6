// Copyright 2026 The sendx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"time"
)

// Default limits installed by DefaultOptions.
const (
	// DefaultMaxResponseBodySize is the default response body size cap,
	// 1 MiB.
	DefaultMaxResponseBodySize int64 = 1 << 20
	// DefaultMaxRedirects is the default redirect budget.
	DefaultMaxRedirects = 5
	// DefaultMaxConnectionTime is the default wall-clock budget for one
	// attempt, including draining the response body.
	DefaultMaxConnectionTime = 60 * time.Second
)

// Options bundles the execution limits applied while a Spec is
// executed.
//
// The zero value disables redirect following and rejects local
// targets, so most callers should start from DefaultOptions (which
// NewSpec installs) and override individual fields.
type Options struct {
	// MaxResponseBodySize caps the accumulated response body size in
	// bytes. Exceeding it fails the execution with a TooLarge error and
	// no partial body. Values <= 0 mean no size cap.
	MaxResponseBodySize int64

	// MaxRedirects is the number of redirect hops followed before a
	// 3xx response is handed back to the caller as-is. Zero disables
	// redirect following entirely; a 3xx response is then a normal
	// response, not an error.
	MaxRedirects int

	// MaxConnectionTime is the wall-clock budget for a single attempt,
	// covering the connection, the response headers, and the whole body
	// drain. Zero means unlimited.
	MaxConnectionTime time.Duration

	// AllowLocal permits requests whose target host is a private,
	// loopback, or link-local address, or the literal name localhost.
	// When false such requests fail with a LocalNotAllowed error before
	// any network activity, including DNS resolution.
	AllowLocal bool
}

// DefaultOptions returns the default execution limits: a 1 MiB body
// cap, 5 redirect hops, a 60 second connection budget, and local
// addresses allowed.
func DefaultOptions() Options {
	return Options{
		MaxResponseBodySize: DefaultMaxResponseBodySize,
		MaxRedirects:        DefaultMaxRedirects,
		MaxConnectionTime:   DefaultMaxConnectionTime,
		AllowLocal:          true,
	}
}
