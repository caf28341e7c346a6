// Copyright 2026 The sendx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sendx

import (
	"context"
	"errors"
	"net/http"
	urlpkg "net/url"
	"time"

	"github.com/vessence/sendx/localaddr"
	"github.com/vessence/sendx/redirect"
	"github.com/vessence/sendx/request"
)

// A Transport sends a single wire-level HTTP request and returns the
// response, in the same manner as the Do method of the GoLang standard
// library http.Client from the net/http package.
//
// The Transport is responsible for all socket-level details: connection
// establishment and reuse, TLS, DNS resolution, and the HTTP wire
// encoding. It must NOT follow redirects on its own — redirect
// following is this package's job, and a Transport that swallows 3xx
// responses defeats it. With an http.Client, set CheckRedirect to
// return http.ErrUseLastResponse, as DefaultTransport does.
//
// The Transport must honor the request context, aborting the underlying
// socket work when the context is cancelled or its deadline passes;
// http.Client already behaves this way.
type Transport interface {
	Do(r *http.Request) (*http.Response, error)
}

// DefaultTransport is the Transport used by the zero value Client: an
// http.Client that hands every response back unmodified, leaving
// redirect handling to the sendx execution engine.
var DefaultTransport Transport = &http.Client{
	CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	},
}

var emptyHandlers = HandlerGroup{}

var errNoHost = errors.New("sendx: a valid HTTP URL needs to contain a host")

// A Client sends structured HTTP requests with bounded redirect
// following, response size and connection time limits, and an optional
// local-address filter. Its zero value is a valid configuration using
// DefaultTransport and no event handlers.
//
// Client's Transport typically has internal state (cached TCP
// connections) so Client instances should be reused instead of created
// as needed. Client is safe for concurrent use by multiple goroutines:
// it keeps no mutable state of its own across calls.
//
// A Client is higher-level than its Transport. The Transport performs
// one wire-level send; on top of that, Client:
//
// • validates the target against the local-address policy (package
// localaddr) before any network activity, when the spec disallows
// local targets;
//
// • builds the wire request from the spec: query parameters merged
// into the URL, a default User-Agent injected when absent, and the
// structured body encoded with its content type and length;
//
// • follows 3xx redirects up to the spec's redirect budget, applying
// the per-status method and body rules (package redirect), and hands
// the 3xx response back as-is once the budget is exhausted;
//
// • buffers the response body while enforcing the spec's cumulative
// size cap and attempt-wide wall-clock budget; and
//
// • invokes user-provided handler functions at designated plug-in
// points within the redirect loop, allowing new features to be mixed
// in from outside libraries.
//
// Client's HTTP methods should feel familiar to anyone who has used
// the Go standard HTTP client. The main differences are that Do
// consumes a request.Spec — a re-sendable value — instead of a one-shot
// http.Request, and that all methods return a request.Execution
// containing a fully-buffered response.
type Client struct {
	// Transport specifies the mechanics of sending a single HTTP
	// request and receiving its response.
	//
	// If Transport is nil, DefaultTransport is used.
	Transport Transport
	// Handlers allows custom handler chains to be invoked when
	// designated events occur during the execution of a spec.
	//
	// If Handlers is nil, no custom handlers are run.
	Handlers *HandlerGroup
}

// Do executes an HTTP request spec and returns the result, following
// redirect, size, and time policy set on the spec's Options.
//
// Do never mutates or retains s, so the same spec may be executed again
// afterward, including by concurrent goroutines.
//
// An error is returned if the execution failed: a transport-level
// failure, a disallowed local target, a redirect that cannot be
// resolved, a response body exceeding the size cap, or the connection
// time budget running out. A non-2xx status code is not an error, and
// neither is a 3xx response once the redirect budget is exhausted (or
// when MaxRedirects is zero) — it is handed back as a normal response.
// No failure is ever retried internally; retry policy, if any, belongs
// to the caller.
//
// The returned Execution is never nil. If the returned error is nil,
// the Execution contains a non-nil Response with a fully-buffered body
// (of length zero or more). If an error was returned, the Execution's
// Err field references the same error, its Response is nil, and no
// partial body is exposed. Any returned error is of type *Error.
func (c *Client) Do(s *request.Spec) (*request.Execution, error) {
	e := &request.Execution{Spec: s}

	t := c.transport()
	handlers := c.Handlers
	if handlers == nil {
		handlers = &emptyHandlers
	}

	handlers.run(BeforeExecutionStart, e)
	e.Start = time.Now()

	method := s.Method
	if method == "" {
		method = "GET"
	}
	u := s.URL
	body := s.Body
	hops := s.Options.MaxRedirects

	for {
		e.Method = method
		e.URL = u
		next := attempt(e, t, handlers, method, u, body, hops > 0)
		if next == nil {
			break
		}
		u = next.url
		method = next.method
		if !next.keepBody {
			body = nil
		}
		hops--
		e.Hop++
		handlers.run(AfterRedirect, e)
	}

	e.End = time.Now()
	handlers.run(AfterExecutionEnd, e)
	return e, e.Err
}

// A hop carries the redirect loop state from one attempt to the next.
type hop struct {
	url      *urlpkg.URL
	method   string
	keepBody bool
}

// attempt runs one validate→build→send→read cycle. It returns the next
// hop when the response is a redirect that should be followed, and nil
// when the execution is complete, in which case either e.Response or
// e.Err has been set.
func attempt(e *request.Execution, t Transport, handlers *HandlerGroup, method string, u *urlpkg.URL, body *request.Body, follow bool) *hop {
	s := e.Spec
	opts := s.Options
	op := opForMethod(method)

	if u == nil || u.Host == "" {
		e.Err = &Error{Kind: KindOther, Op: op, URL: urlString(u), Err: errNoHost}
		return nil
	}
	if !opts.AllowLocal && localaddr.IsLocal(u.Hostname()) {
		e.Err = &Error{Kind: KindLocalNotAllowed, Op: op, URL: u.String()}
		return nil
	}

	ctx := s.Context()
	if opts.MaxConnectionTime > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.MaxConnectionTime)
		defer cancel()
	}

	req, err := request.BuildRequest(ctx, s, method, u, body)
	if err != nil {
		e.Err = &Error{Kind: KindOther, Op: op, URL: u.String(), Err: err}
		return nil
	}
	e.Request = req
	handlers.run(BeforeAttempt, e)

	start := time.Now()
	resp, err := t.Do(e.Request)
	if err != nil {
		kind := KindTransport
		if timeoutErr(err) {
			kind = KindTimeout
		}
		e.Err = &Error{Kind: kind, Op: op, URL: u.String(), Err: err}
		handlers.run(AfterAttempt, e)
		return nil
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// A response that arrived too slowly is still a timeout.
	if opts.MaxConnectionTime > 0 && time.Since(start) > opts.MaxConnectionTime {
		e.Err = &Error{Kind: KindTimeout, Op: op, URL: u.String()}
		handlers.run(AfterAttempt, e)
		return nil
	}

	if follow && redirect.Is3xx(resp.StatusCode) {
		next, err := evalRedirect(u, resp, method)
		if err != nil {
			e.Err = &Error{Kind: KindRedirect, Op: op, URL: u.String(), Err: err}
			handlers.run(AfterAttempt, e)
			return nil
		}
		handlers.run(AfterAttempt, e)
		return next
	}

	handlers.run(BeforeReadBody, e)
	b, err := readBodyBounded(resp.Body, opts.MaxResponseBodySize, start, opts.MaxConnectionTime)
	if err != nil {
		e.Err = readError(op, u, err)
		handlers.run(AfterAttempt, e)
		return nil
	}
	e.Response = &request.Response{
		StatusCode: resp.StatusCode,
		Header:     request.HeaderMap(resp.Header),
		Body:       b,
	}
	handlers.run(AfterAttempt, e)
	return nil
}

// evalRedirect resolves the Location header of a 3xx response and
// applies the per-status continuation rule.
func evalRedirect(u *urlpkg.URL, resp *http.Response, method string) (*hop, error) {
	location := resp.Header.Get("Location")
	if location == "" {
		return nil, redirect.ErrMissingLocation
	}
	nextURL, err := redirect.Resolve(u, location)
	if err != nil {
		return nil, err
	}
	next, err := redirect.ForStatus(resp.StatusCode, method)
	if err != nil {
		return nil, err
	}
	return &hop{url: nextURL, method: next.Method, keepBody: next.KeepBody}, nil
}

func readError(op string, u *urlpkg.URL, err error) *Error {
	kind := KindIO
	switch {
	case errors.Is(err, errBodyTooLarge):
		kind = KindTooLarge
	case errors.Is(err, errBodyReadTimeout) || timeoutErr(err):
		kind = KindTimeout
	}
	return &Error{Kind: kind, Op: op, URL: u.String(), Err: err}
}

func urlString(u *urlpkg.URL) string {
	if u == nil {
		return ""
	}
	return u.String()
}

// Get issues a GET to the specified URL, using the same policies
// followed by Do.
//
// To make a spec with custom headers or options, use request.NewSpec
// and Client.Do.
func (c *Client) Get(url string) (*request.Execution, error) {
	return Get(c, url)
}

// Head issues a HEAD to the specified URL, using the same policies
// followed by Do.
//
// To make a spec with custom headers or options, use request.NewSpec
// and Client.Do.
func (c *Client) Head(url string) (*request.Execution, error) {
	return Head(c, url)
}

// Post issues a POST to the specified URL, using the same policies
// followed by Do.
//
// The body parameter may be nil for an empty body, or may be any of
// the types supported by request.NewBody, namely: *request.Body;
// string; []byte; io.Reader; and io.ReadCloser.
//
// To make a spec with custom headers or options, use request.NewSpec
// and Client.Do.
func (c *Client) Post(url, contentType string, body interface{}) (*request.Execution, error) {
	return Post(c, url, contentType, body)
}

// PostForm issues a POST to the specified URL, with data's keys and
// values percent-encoded as the request body.
//
// The Content-Type header is set to application/x-www-form-urlencoded.
// To set other headers, use request.NewSpec and Client.Do.
func (c *Client) PostForm(url string, data map[string]string) (*request.Execution, error) {
	return PostForm(c, url, data)
}

// Put issues a PUT to the specified URL, using the same policies
// followed by Do.
//
// The body parameter accepts the same types as Post.
func (c *Client) Put(url, contentType string, body interface{}) (*request.Execution, error) {
	return Put(c, url, contentType, body)
}

// Delete issues a DELETE to the specified URL, using the same policies
// followed by Do.
func (c *Client) Delete(url string) (*request.Execution, error) {
	return Delete(c, url)
}

// CloseIdleConnections invokes the same method on the client's
// underlying Transport.
//
// If the Transport has no CloseIdleConnections method, this method does
// nothing. Otherwise the effect depends entirely on the Transport's
// implementation; http.Client forwards the call to its own transport.
func (c *Client) CloseIdleConnections() {
	t := c.transport()
	if ic, ok := t.(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}

func (c *Client) transport() Transport {
	if c.Transport == nil {
		return DefaultTransport
	}

	return c.Transport
}
