// Copyright 2026 The sendx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sendx

import (
	"github.com/vessence/sendx/request"
)

// Doer is the interface that wraps the basic Do method.
//
// Do executes an HTTP request spec and returns the final execution
// state (and error, if any). Client implements the Doer interface, and
// any other Doer implementation must behave substantially the same as
// Client.Do.
//
// Any Doer can be converted into an Executor via the Inflate function.
type Doer interface {
	Do(s *request.Spec) (*request.Execution, error)
}

// Getter is the interface that wraps the basic Get method.
//
// Get creates a spec to issue a GET to the specified URL, executes it,
// and returns the final execution state (and error, if any).
//
// Any Doer can be used to emulate a Getter via the Get function.
type Getter interface {
	Get(url string) (*request.Execution, error)
}

// Header is the interface that wraps the basic Head method.
//
// Head creates a spec to issue a HEAD to the specified URL, executes
// it, and returns the final execution state (and error, if any).
//
// Any Doer can be used to emulate a Header via the Head function.
type Header interface {
	Head(url string) (*request.Execution, error)
}

// Poster is the interface that wraps the basic Post method.
//
// Post creates a spec to issue a POST to the specified URL, executes
// it, and returns the final execution state (and error, if any).
//
// The body parameter may be nil for an empty body, or may be any of
// the types supported by request.NewBody, namely: *request.Body;
// string; []byte; io.Reader; and io.ReadCloser.
//
// Any Doer can be used to emulate a Poster via the Post function.
type Poster interface {
	Post(url, contentType string, body interface{}) (*request.Execution, error)
}

// FormPoster is the interface that wraps the basic PostForm method.
//
// PostForm creates a spec to issue a form POST to the specified URL,
// executes it, and returns the final execution state (and error, if
// any). The spec body is set to the percent-encoded keys and values
// from data, and the content type is set to
// application/x-www-form-urlencoded.
//
// Any Doer can be used to emulate a FormPoster via the PostForm
// function.
type FormPoster interface {
	PostForm(url string, data map[string]string) (*request.Execution, error)
}

// Putter is the interface that wraps the basic Put method.
//
// Put creates a spec to issue a PUT to the specified URL, executes it,
// and returns the final execution state (and error, if any). The body
// parameter accepts the same types as Poster's.
//
// Any Doer can be used to emulate a Putter via the Put function.
type Putter interface {
	Put(url, contentType string, body interface{}) (*request.Execution, error)
}

// Deleter is the interface that wraps the basic Delete method.
//
// Delete creates a spec to issue a DELETE to the specified URL,
// executes it, and returns the final execution state (and error, if
// any).
//
// Any Doer can be used to emulate a Deleter via the Delete function.
type Deleter interface {
	Delete(url string) (*request.Execution, error)
}

// IdleCloser is the interface that wraps the basic CloseIdleConnections
// method.
//
// If the underlying implementation supports it, CloseIdleConnections
// closes any connections which were previously connected from previous
// requests but are now sitting idle in a "keep-alive" state. It does
// not interrupt any connections currently in use.
//
// If the underlying implementation does not support this ability,
// CloseIdleConnections does nothing.
type IdleCloser interface {
	CloseIdleConnections()
}

// Executor is the interface that groups the basic Do, Get, Head, Post,
// PostForm, Put, Delete, and CloseIdleConnections methods.
//
// Any Doer can be converted into an Executor via the Inflate function.
type Executor interface {
	Doer
	Getter
	Header
	Poster
	FormPoster
	Putter
	Deleter
	IdleCloser
}

// newSpec builds the spec for a convenience verb, wrapping a URL parse
// failure in a KindURLParse error.
func newSpec(method, url string) (*request.Spec, error) {
	s, err := request.NewSpec(method, url)
	if err != nil {
		return nil, &Error{Kind: KindURLParse, Op: opForMethod(method), URL: url, Err: err}
	}
	return s, nil
}

// Get uses the specified Doer to issue a GET to the specified URL,
// using the same policies as d.Do.
//
// To make a spec with custom headers or options, use request.NewSpec
// and d.Do.
func Get(d Doer, url string) (*request.Execution, error) {
	s, err := newSpec("GET", url)
	if err != nil {
		return nil, err
	}
	return d.Do(s)
}

// Head uses the specified Doer to issue a HEAD to the specified URL,
// using the same policies as d.Do.
//
// To make a spec with custom headers or options, use request.NewSpec
// and d.Do.
func Head(d Doer, url string) (*request.Execution, error) {
	s, err := newSpec("HEAD", url)
	if err != nil {
		return nil, err
	}
	return d.Do(s)
}

// Post uses the specified Doer to issue a POST to the specified URL,
// using the same policies as d.Do.
//
// The body parameter may be nil for an empty body, or may be any of
// the types supported by request.NewBody, namely: *request.Body;
// string; []byte; io.Reader; and io.ReadCloser.
//
// To make a spec with custom headers or options, use request.NewSpec
// and d.Do.
func Post(d Doer, url, contentType string, body interface{}) (*request.Execution, error) {
	b, err := request.NewBody(contentType, body)
	if err != nil {
		return nil, err
	}
	s, err := newSpec("POST", url)
	if err != nil {
		return nil, err
	}
	s.Body = b
	return d.Do(s)
}

// PostForm uses the specified Doer to issue a POST to the specified
// URL, with data's keys and values percent-encoded as the request body.
//
// The Content-Type header is set to application/x-www-form-urlencoded.
// To set other headers, use request.NewSpec and d.Do.
func PostForm(d Doer, url string, data map[string]string) (*request.Execution, error) {
	return Post(d, url, request.FormContentType, request.Form(data))
}

// Put uses the specified Doer to issue a PUT to the specified URL,
// using the same policies as d.Do. The body parameter accepts the same
// types as Post.
func Put(d Doer, url, contentType string, body interface{}) (*request.Execution, error) {
	b, err := request.NewBody(contentType, body)
	if err != nil {
		return nil, err
	}
	s, err := newSpec("PUT", url)
	if err != nil {
		return nil, err
	}
	s.Body = b
	return d.Do(s)
}

// Delete uses the specified Doer to issue a DELETE to the specified
// URL, using the same policies as d.Do.
func Delete(d Doer, url string) (*request.Execution, error) {
	s, err := newSpec("DELETE", url)
	if err != nil {
		return nil, err
	}
	return d.Do(s)
}

// Inflate converts any non-nil Doer into an Executor. This may be
// helpful for interop across library boundaries, i.e. if code that only
// has access to a Doer needs to call a function that requires an
// Executor.
func Inflate(d Doer) Executor {
	if d == nil {
		panic("sendx: nil doer")
	}

	if e, ok := d.(Executor); ok {
		return e
	}

	return inflated{d}
}

type inflated struct {
	doer Doer
}

func (i inflated) Do(s *request.Spec) (*request.Execution, error) {
	return i.doer.Do(s)
}

func (i inflated) Get(url string) (*request.Execution, error) {
	return Get(i.doer, url)
}

func (i inflated) Head(url string) (*request.Execution, error) {
	return Head(i.doer, url)
}

func (i inflated) Post(url, contentType string, body interface{}) (*request.Execution, error) {
	return Post(i.doer, url, contentType, body)
}

func (i inflated) PostForm(url string, data map[string]string) (*request.Execution, error) {
	return PostForm(i.doer, url, data)
}

func (i inflated) Put(url, contentType string, body interface{}) (*request.Execution, error) {
	return Put(i.doer, url, contentType, body)
}

func (i inflated) Delete(url string) (*request.Execution, error) {
	return Delete(i.doer, url)
}

func (i inflated) CloseIdleConnections() {
	if ic, ok := i.doer.(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}
