// Copyright 2026 The sendx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the core types Spec (describes an HTTP request
to be sent) and Execution (describes a Spec execution). These two types
are fundamental to sending requests with sendx.

The first core type is Spec, which represents a logical HTTP request.

A Spec describes how to make a logical HTTP request, potentially
involving several wire-level request attempts if the server responds
with redirects. For those familiar with the Go standard HTTP library,
net/http, a Spec looks like a stripped-down http.Request with all
server-side fields removed, the body replaced by the structured Body
value type (so it can be re-encoded for every attempt), and the query
parameters and execution limits lifted into their own fields. A Spec is
never consumed or mutated by an execution, so the same Spec can be sent
repeatedly.

Create a spec to make a request:

	s, err := request.NewSpec("GET", "https://example.com")
	...
	e, err := client.Do(s)
	...

The spec's Options field carries the execution limits: the response body
size cap, the redirect budget, the per-attempt wall-clock budget, and
whether local (private, loopback, link-local) targets are allowed.
NewSpec installs DefaultOptions; override individual fields as needed:

	s.Options.MaxRedirects = 0      // hand 3xx responses back as-is
	s.Options.AllowLocal = false    // refuse localhost and friends

A spec may be assigned a context to allow the whole execution, across
all redirect hops, to be cancelled:

	s, err := request.NewSpecWithContext(ctx, "POST", "https://example.com/upload")
	...

The second core type is Execution, which represents the state of the
execution of a Spec. Execution is both the output type of
sendx.Client's executing methods and the input type for event handlers
invoked during the execution. You will typically not allocate Execution
instances yourself, but will instead work with the ones handed out by
the client's execution logic.
*/
package request
