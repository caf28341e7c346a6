// Copyright 2026 The sendx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"errors"
	"net/http"
	urlpkg "net/url"
	"strings"
	"time"
)

// An Execution represents the state of a single Spec execution.
//
// When a Spec execution is requested, an Execution is created for it.
// The Execution is updated as the execution progresses through the
// redirect chain (for example when a hop is followed, or when the final
// response body has been buffered) and is ultimately returned as the
// return value of the execution.
//
// Event handlers may set values on an Execution using its SetValue
// method and read them back using the Value method. However, they
// should treat the structure's exported field values as immutable and
// leave them unmodified, as the execution state is vital to the correct
// functioning of the execution logic. A limited exception to this rule
// is making reasonable changes to the http.Request before it is sent,
// for example to support an OAuth or AWS signing use case.
type Execution struct {
	// Spec is the spec being executed. It is never nil, and is never
	// mutated by the execution.
	Spec *Spec

	// Start is the start time of the execution. It is assigned a
	// non-zero value when the execution starts, and this value remains
	// constant thereafter.
	Start time.Time

	// End is the end time of the execution. It contains the zero value
	// until the execution ends, when it is set to the current time.
	End time.Time

	// Hop is the zero-based redirect hop counter. It is zero during the
	// initial attempt, one after the first redirect was followed, and
	// so on. It never exceeds the spec's Options.MaxRedirects.
	Hop int

	// Method is the HTTP method of the current attempt. It starts out
	// as the spec's method but may change across redirect hops (a 303
	// response continues as GET).
	Method string

	// URL is the target of the current attempt: the spec's URL for the
	// initial attempt, and the resolved Location for redirect hops.
	URL *urlpkg.URL

	// Request is the wire request sent, or about to be sent, in the
	// current attempt.
	Request *http.Request

	// Response is the final buffered response. It is nil while the
	// execution is in flight and stays nil if the execution ends in
	// error.
	Response *Response

	// Err is the error that ended the execution, or nil. Whenever Err
	// is non-nil it has type *sendx.Error. Once the execution has
	// ended, Err has the same value as the error returned by the
	// client's executing method.
	Err error

	// data contains arbitrary handler data, managed through Value and
	// SetValue.
	data context.Context
}

// StatusCode returns the status code of the final response, or 0 if the
// execution ended in error or is still in flight.
func (e *Execution) StatusCode() int {
	if e.Response == nil {
		return 0
	}

	return e.Response.StatusCode
}

// Header returns the value of the named header in the final response,
// or the empty string if the header is absent or there is no response
// yet. The name is matched case-insensitively.
func (e *Execution) Header(name string) string {
	if e.Response == nil {
		return ""
	}

	return e.Response.Header[strings.ToLower(name)]
}

// Duration returns the duration of the execution.
//
// If the execution has not yet started, the duration is zero. If the
// execution has ended, the duration returned is equal to End minus
// Start. Otherwise, it is equal to the current time minus Start.
func (e *Execution) Duration() time.Duration {
	if !e.Started() {
		return time.Duration(0)
	} else if !e.Ended() {
		return time.Since(e.Start)
	}

	return e.End.Sub(e.Start)
}

// Started indicates whether the execution has started.
func (e *Execution) Started() bool {
	return e.Start != (time.Time{})
}

// Ended indicates whether the execution has ended. Once an execution
// has ended there will be no further changes to it.
func (e *Execution) Ended() bool {
	return e.End != (time.Time{})
}

// Timeout indicates whether Err currently contains a non-nil value
// which indicates a timeout: either an attempt's wall-clock budget was
// exceeded, or the underlying transport reported a timeout.
func (e *Execution) Timeout() bool {
	var t interface{ Timeout() bool }
	return errors.As(e.Err, &t) && t.Timeout()
}

// SetValue allows event handlers to store arbitrary data in the
// execution.
//
// The key must follow the same rules as the key parameter in
// context.WithValue, namely it:
//
// • may not be nil;
//
// • must be comparable;
//
// • should not be of type string or any other built-in type to avoid
// collisions between different event handlers putting data into the
// same execution.
func (e *Execution) SetValue(key, value interface{}) {
	ctx := e.data
	if ctx == nil {
		ctx = context.Background()
	}

	e.data = context.WithValue(ctx, key, value)
}

// Value returns the data value associated with this execution for key,
// or nil if there is no value associated with key.
func (e *Execution) Value(key interface{}) interface{} {
	ctx := e.data
	if ctx == nil {
		return nil
	}

	return ctx.Value(key)
}
