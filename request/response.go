// Copyright 2026 The sendx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"net/http"
	"strings"
)

// A Response is the fully-buffered result of a successful Spec
// execution.
//
// It is produced fresh per execution and owned solely by the caller;
// the execution engine retains no reference to it.
type Response struct {
	// StatusCode is the HTTP status code of the final response in the
	// redirect chain.
	StatusCode int

	// Header maps lower-cased header names to values. When a header
	// field occurs more than once, the last occurrence wins.
	Header map[string]string

	// Body is the buffered response body. Its length never exceeds the
	// executed spec's Options.MaxResponseBodySize.
	Body []byte
}

// HeaderMap flattens an http.Header into the lower-cased, last-wins
// representation used by Response.Header.
func HeaderMap(h http.Header) map[string]string {
	m := make(map[string]string, len(h))
	for name, values := range h {
		if len(values) == 0 {
			continue
		}
		m[strings.ToLower(name)] = values[len(values)-1]
	}
	return m
}
