// Copyright 2026 The sendx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sendx

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Client to extend it with custom
// functionality.
type Event int

const (
	// BeforeExecutionStart identifies the event that occurs before the
	// spec execution starts.
	//
	// When Client fires BeforeExecutionStart, the execution is non-nil
	// but the only field that has been set is the spec.
	BeforeExecutionStart Event = iota
	// BeforeAttempt identifies the event that occurs before each
	// attempt in the redirect chain, after the target passed the
	// local-address check and the wire request was built.
	//
	// When Client fires BeforeAttempt, the execution's Request field
	// is set to the HTTP request that WILL BE sent after all
	// BeforeAttempt handlers have finished.
	//
	// BeforeAttempt handlers may modify the execution's request, or
	// some of its fields, thus changing the HTTP request that will be
	// sent. However, handlers should clone request fields which have
	// reference types (URL and Header) before changing them to avoid
	// side effects on later hops.
	BeforeAttempt
	// BeforeReadBody identifies the event that occurs after an attempt
	// has resulted in an HTTP response that will not be followed as a
	// redirect, but before the response body is read and buffered
	// under the size and time bounds.
	//
	// BeforeReadBody never fires for attempts that ended in error or
	// that continue as a redirect hop; it always fires for the final
	// response of a successful chain, regardless of status code and
	// regardless of whether the response carries a body.
	BeforeReadBody
	// AfterAttempt identifies the event that occurs after an attempt
	// is concluded, regardless of how it concluded: with a buffered
	// final response, with an error, or as a redirect about to be
	// followed.
	//
	// When Client fires AfterAttempt, exactly one of the following
	// holds: the execution's Response field is set (final response,
	// body buffered); its Err field is set (the execution is over);
	// or neither is set, in which case the attempt ended in a 3xx
	// response that will be followed and AfterRedirect fires next.
	AfterAttempt
	// AfterRedirect identifies the event that occurs after a redirect
	// response was resolved and before the next hop's attempt begins.
	//
	// When Client fires AfterRedirect, the execution's Hop counter has
	// been incremented, and its Method and URL fields still describe
	// the attempt that produced the redirect; they are updated for the
	// next hop after all AfterRedirect handlers have finished.
	AfterRedirect
	// AfterExecutionEnd identifies the event that occurs after the
	// spec execution ends.
	//
	// When Client fires AfterExecutionEnd, the execution is in the
	// same state it was in after the final attempt (and the last
	// AfterAttempt event) EXCEPT that the end time is set to the time
	// the execution ended.
	AfterExecutionEnd
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events typed as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeExecutionStart",
	"BeforeAttempt",
	"BeforeReadBody",
	"AfterAttempt",
	"AfterRedirect",
	"AfterExecutionEnd",
}

// Events returns a slice containing all events which can occur in a
// spec execution by Client, in the order in which they would occur.
func Events() []Event {
	return []Event{
		BeforeExecutionStart,
		BeforeAttempt,
		BeforeReadBody,
		AfterAttempt,
		AfterRedirect,
		AfterExecutionEnd,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
