// Copyright 2026 The sendx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sendx

import (
	"errors"
	"fmt"
	"strings"
)

// A Kind classifies the failure mode of a Spec execution.
type Kind int

const (
	// KindOther is the catch-all for precondition violations, for
	// example a URL without a host or an invalid header field.
	KindOther Kind = iota
	// KindURLParse indicates a URL that does not parse.
	KindURLParse
	// KindTransport indicates an underlying connect, TLS, or protocol
	// failure reported by the Transport. The cause is surfaced
	// verbatim via Unwrap.
	KindTransport
	// KindIO indicates a local I/O failure unrelated to the HTTP
	// protocol, for example an error while draining the response body.
	KindIO
	// KindRedirect indicates a missing or unresolvable Location
	// header, or a 3xx status with no defined continuation rule.
	KindRedirect
	// KindTooLarge indicates the accumulated response body exceeded
	// MaxResponseBodySize.
	KindTooLarge
	// KindTimeout indicates the attempt-wide elapsed time exceeded
	// MaxConnectionTime, or the Transport reported a timeout.
	KindTimeout
	// KindLocalNotAllowed indicates the target is a local address and
	// the spec set AllowLocal to false.
	KindLocalNotAllowed
)

var kindNames = []string{
	"Other",
	"URLParse",
	"Transport",
	"IO",
	"Redirect",
	"TooLarge",
	"Timeout",
	"LocalNotAllowed",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// An Error is the error type returned by Client for every failed
// execution. Op is the net/http-style operation name ("Get", "Put"),
// URL is the URL of the attempt that failed, and Err, which may be nil,
// is the underlying cause.
//
// Every failure is terminal: the client never retries, so an Error
// always describes the attempt that ended the execution.
type Error struct {
	Kind Kind
	Op   string
	URL  string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Op, e.URL, e.message())
}

func (e *Error) message() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	switch e.Kind {
	case KindTooLarge:
		return "remote data is too large"
	case KindTimeout:
		return "the connection has timed out"
	case KindLocalNotAllowed:
		return "local addresses are not allowed"
	default:
		return "request failed"
	}
}

// Unwrap returns the underlying cause, which may be nil.
func (e *Error) Unwrap() error {
	return e.Err
}

// Timeout reports whether the error represents a timeout, either
// because its kind is KindTimeout or because a wrapped cause reports
// one.
func (e *Error) Timeout() bool {
	return e.Kind == KindTimeout || timeoutErr(e.Err)
}

// AsError extracts a *Error from err's chain, returning nil if there
// is none.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// timeoutErr reports whether err or any of its wrapped causes carries a
// Timeout method reporting true. net.Error implementations, *url.Error,
// and context.DeadlineExceeded all satisfy it.
func timeoutErr(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}

// opForMethod is adapted from urlErrorOp in net/http/client.go.
func opForMethod(method string) string {
	if method == "" {
		return "Get"
	}
	return method[:1] + strings.ToLower(method[1:])
}
