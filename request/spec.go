// Copyright 2026 The sendx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	urlpkg "net/url"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/http/httpguts"
)

var (
	template, _ = http.NewRequest("GET", "", nil)
)

const (
	nilCtxMsg = "sendx/request: nil context"
)

// DefaultUserAgent is the identifying User-Agent header value sent when
// a Spec does not supply its own User-Agent header.
const DefaultUserAgent = "sendx/1.0 (+https://github.com/vessence/sendx)"

// A Spec describes a logical HTTP request for execution by a client.
//
// A Spec is a pure value: executing it never consumes or mutates it, so
// the same Spec may be executed any number of times, and concurrently.
// Each execution re-derives the wire-level http.Request (or several, if
// redirects are followed) from the Spec's fields.
//
// The field structure loosely mirrors the lower-level http.Request with
// server-only and stream-oriented fields removed. The request body is a
// structured Body value rather than an io.Reader, so that it can be
// re-encoded fresh for every attempt within an execution.
//
// Like the http.Request structure, a Spec has a context which covers
// the whole execution and can be used to cancel it at any time.
type Spec struct {
	// Method specifies the HTTP method. It must be one of GET, POST,
	// PUT, DELETE, or HEAD. An empty string means GET.
	Method string

	// URL specifies the URL to access. It must be absolute and contain
	// a host by the time the Spec is executed.
	URL *urlpkg.URL

	// Query contains query parameters appended to the URL's existing
	// query component on every attempt. Keys are appended in sorted
	// order so the final URL is deterministic. Query never replaces
	// the query string already present in URL.
	Query map[string]string

	// Body is the request body, or nil for no body. All Body variants
	// are plain values which are re-encoded for every attempt, so a
	// Spec with a body is always safe to re-send.
	Body *Body

	// Header contains extra request header fields to send. A default
	// User-Agent header is injected at build time unless a header in
	// this map already matches "User-Agent" case-insensitively.
	Header http.Header

	// Options bundles the execution limits: response body size cap,
	// redirect budget, connection time budget, and the local-address
	// filter switch.
	Options Options

	// ctx covers the entire Spec execution. It should only be modified
	// by copying the whole Spec using WithContext.
	ctx context.Context
}

// NewSpec wraps NewSpecWithContext using the background context.
func NewSpec(method, url string) (*Spec, error) {
	return NewSpecWithContext(context.Background(), method, url)
}

// NewSpecWithContext returns a new Spec for the given method and URL,
// with default Options installed.
//
// Method must be one of GET, POST, PUT, DELETE, or HEAD; the empty
// string means GET. The URL must parse as an absolute URL.
func NewSpecWithContext(ctx context.Context, method, url string) (*Spec, error) {
	if ctx == nil {
		return nil, errors.New(nilCtxMsg)
	}
	if method == "" {
		method = "GET"
	}
	if !ValidMethod(method) {
		return nil, fmt.Errorf("sendx/request: invalid method %q", method)
	}
	u, err := urlpkg.Parse(url)
	if err != nil {
		return nil, err
	}
	u.Host = removeEmptyPort(u.Host)
	return &Spec{
		ctx:     ctx,
		Method:  method,
		URL:     u,
		Header:  make(http.Header),
		Options: DefaultOptions(),
	}, nil
}

// Context returns the spec's context. The context controls cancellation
// of the overall execution, across all redirect hops. To change the
// context, use WithContext.
//
// The returned context is always non-nil; it defaults to the background
// context.
func (s *Spec) Context() context.Context {
	if s.ctx != nil {
		return s.ctx
	}
	return context.Background()
}

// WithContext returns a shallow copy of s with its context changed to
// ctx, which must be non-nil.
func (s *Spec) WithContext(ctx context.Context) *Spec {
	if ctx == nil {
		panic(nilCtxMsg)
	}
	s2 := new(Spec)
	*s2 = *s
	s2.ctx = ctx
	return s2
}

// AddCookie adds a cookie to the spec. Per RFC 6265 section 5.4,
// AddCookie does not attach more than one Cookie header field. That
// means all cookies, if any, are written into the same line, separated
// by semicolons.
func (s *Spec) AddCookie(c *http.Cookie) {
	c2 := &http.Cookie{Name: c.Name, Value: c.Value}
	v := c2.String()
	if h := s.Header.Get("Cookie"); h != "" {
		s.Header.Set("Cookie", h+"; "+v)
	} else {
		s.Header.Set("Cookie", v)
	}
}

// SetBasicAuth sets the spec's Authorization header to use HTTP Basic
// Authentication with the provided username and password.
//
// With HTTP Basic Authentication the provided username and password are
// not encrypted.
func (s *Spec) SetBasicAuth(username, password string) {
	s.Header.Set("Authorization", "Basic "+basicAuth(username, password))
}

// BuildRequest assembles the wire-level http.Request for one attempt of
// the spec's execution.
//
// Method, u, and body describe the current attempt: they start out as
// the spec's own fields but diverge from them as redirects are followed
// (a 303, for example, continues as GET with no body). BuildRequest
// merges the spec's query parameters into u's query component, attaches
// the spec's headers plus the default User-Agent, and encodes body.
//
// BuildRequest never mutates s, u, or any map reachable from them.
func BuildRequest(ctx context.Context, s *Spec, method string, u *urlpkg.URL, body *Body) (*http.Request, error) {
	header := make(http.Header, len(s.Header)+3)
	hasUserAgent := false
	for name, values := range s.Header {
		if !httpguts.ValidHeaderFieldName(name) {
			return nil, fmt.Errorf("sendx/request: invalid header field name %q", name)
		}
		for _, value := range values {
			if !httpguts.ValidHeaderFieldValue(value) {
				return nil, fmt.Errorf("sendx/request: invalid value for header field %q", name)
			}
		}
		if strings.EqualFold(name, "User-Agent") {
			hasUserAgent = true
		}
		header[name] = values
	}
	if !hasUserAgent {
		header.Set("User-Agent", DefaultUserAgent)
	}

	r := template.WithContext(ctx)
	r.Method = method
	r.URL = mergeQuery(u, s.Query)
	r.Header = header
	r.Host = u.Host
	if body != nil {
		b := body.Encode()
		r.Body = io.NopCloser(bytes.NewReader(b))
		r.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(b)), nil
		}
		r.ContentLength = int64(len(b))
		header.Set("Content-Type", body.ContentType())
		header.Set("Content-Length", strconv.Itoa(len(b)))
	}
	return r, nil
}

// mergeQuery returns a copy of u with the query parameters appended to
// its existing query component, in sorted key order. If query is empty,
// u is returned unchanged.
func mergeQuery(u *urlpkg.URL, query map[string]string) *urlpkg.URL {
	if len(query) == 0 {
		return u
	}
	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString(u.RawQuery)
	for _, k := range keys {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(urlpkg.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(urlpkg.QueryEscape(query[k]))
	}
	u2 := *u
	u2.RawQuery = b.String()
	return &u2
}

// ValidMethod reports whether method is one of the five HTTP methods
// supported by this library: GET, POST, PUT, DELETE, and HEAD.
func ValidMethod(method string) bool {
	switch method {
	case "GET", "POST", "PUT", "DELETE", "HEAD":
		return true
	default:
		return false
	}
}

// basicAuth is lifted verbatim from net/http/client.go.
//
// See 2 (end of page 4) https://www.ietf.org/rfc/rfc2617.txt
// "To receive authorization, the client sends the userid and password,
// separated by a single colon (":") character, within a base64
// encoded string in the credentials."
// It is not meant to be urlencoded.
func basicAuth(username, password string) string {
	auth := username + ":" + password
	return base64.StdEncoding.EncodeToString([]byte(auth))
}

// hasPort is lifted verbatim from net/http/http.go
//
// Given a string of the form "host", "host:port", or "[ipv6::address]:port",
// return true if the string includes a port.
func hasPort(s string) bool { return strings.LastIndex(s, ":") > strings.LastIndex(s, "]") }

// removeEmptyPort is lifted verbatim from net/http/http.go
//
// removeEmptyPort strips the empty port in ":port" to ""
// as mandated by RFC 3986 Section 6.2.3.
func removeEmptyPort(host string) string {
	if hasPort(host) {
		return strings.TrimSuffix(host, ":")
	}
	return host
}
