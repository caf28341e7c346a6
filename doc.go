// Copyright 2026 The sendx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package sendx sends HTTP and HTTPS requests with bounded redirect
following, response size and connection time limits, and an optional
filter against private, loopback, and link-local targets.

Create a Client to begin making requests.

	client := &sendx.Client{}
	ex, err := client.Get("https://www.example.com")
	...
	ex, err := client.Post("https://www.example.com/upload",
		"application/json", &buf)
	...
	ex, err := client.PostForm("http://example.com/form",
		map[string]string{"key": "value", "id": "123"})

For anything beyond the simple verbs, build a request.Spec. A Spec is a
plain value which the client never consumes or mutates, so the same
Spec can be sent as many times as needed:

	s, err := request.NewSpec("PUT", "https://example.com/thing/1")
	...
	s.Body = request.Text("application/json", `{"name":"thing"}`)
	s.Query = map[string]string{"pretty": "1"}
	s.Options.MaxRedirects = 2
	s.Options.AllowLocal = false
	ex, err := client.Do(s)

The Spec's Options bundle the execution limits. The response body is
buffered under a cumulative size cap, each attempt (including its body
drain) runs under a wall-clock budget, redirects are followed up to a
hop budget and then handed back as-is, and targets classified as local
by package localaddr can be rejected before any network activity.

For control over how individual wire requests are sent and received,
use a custom Transport. A Transport must not follow redirects itself;
with an http.Client, set CheckRedirect to return
http.ErrUseLastResponse:

	doer := &http.Client{
		Transport: ..., // see package "net/http"
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	client := &sendx.Client{
		Transport: doer,
	}

To hook into the fine-grained details of the client's execution logic,
install a handler into the appropriate handler chain:

	log := log.New(os.Stdout, "", log.LstdFlags)
	handlers := &sendx.HandlerGroup{}
	handlers.PushBack(sendx.AfterRedirect, sendx.HandlerFunc(
		func(_ sendx.Event, e *request.Execution) {
			log.Printf("Hop %d for %s", e.Hop, e.Spec.URL.String())
		})
	)
	client := &sendx.Client{
		Handlers: handlers,
	}

Every failed execution returns a *sendx.Error whose Kind states what
went wrong: KindTransport, KindRedirect, KindTooLarge, KindTimeout,
KindLocalNotAllowed, and so on. The client never retries a failed
attempt; retry policy, if wanted, belongs to the caller.

Package sendx provides basic interfaces for each method of the client
(Doer, Getter, Header, Poster, FormPoster, Putter, Deleter, and
IdleCloser); a combined interface that composes all the basic methods
(Executor); and utility functions for working with a Doer (Inflate,
Get, Head, Post, PostForm, Put, and Delete).
*/
package sendx
