// Copyright 2026 The sendx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package redirect

import (
	"errors"
	urlpkg "net/url"
	"strings"
)

var (
	// ErrMissingLocation indicates a redirect response without a
	// Location header.
	ErrMissingLocation = errors.New(`cannot get the "Location" field in headers`)
	// ErrBadLocation indicates a Location header value that cannot be
	// resolved into a URL.
	ErrBadLocation = errors.New(`cannot parse the "Location" field in headers`)
	// ErrUnsupportedStatus indicates a 3xx status code with no defined
	// continuation rule.
	ErrUnsupportedStatus = errors.New("unsupported redirection status")
)

// Is3xx reports whether status is a redirection status code.
func Is3xx(status int) bool {
	return status >= 300 && status <= 399
}

// Resolve resolves a Location header value against the URL of the
// request that produced it.
//
// If location parses as an absolute URL it is used directly, except
// that when it carries no host of its own it inherits current's
// userinfo, host, and port. Otherwise location is treated as a path and
// joined onto current's scheme and authority with exactly one slash at
// the join point. A result that still fails to parse as an absolute URL
// is ErrBadLocation.
//
// Resolve never mutates current.
func Resolve(current *urlpkg.URL, location string) (*urlpkg.URL, error) {
	if location == "" {
		return nil, ErrMissingLocation
	}
	if u, err := urlpkg.Parse(location); err == nil && u.IsAbs() {
		if u.Host == "" && current.Host != "" {
			u2 := *u
			u2.User = current.User
			u2.Host = current.Host
			return &u2, nil
		}
		return u, nil
	}

	var b strings.Builder
	b.WriteString(current.Scheme)
	b.WriteString("://")
	if current.User != nil {
		b.WriteString(current.User.String())
		b.WriteByte('@')
	}
	b.WriteString(current.Host)
	u, err := urlpkg.Parse(JoinSlash(b.String(), location))
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil, ErrBadLocation
	}
	return u, nil
}

// A Next describes how the execution continues after a redirect
// response: the method for the next attempt, and whether the request
// body is sent again.
type Next struct {
	Method   string
	KeepBody bool
}

// ForStatus returns the continuation rule for the given redirection
// status code and current request method.
//
// 303 (See Other) always continues as GET with no body, regardless of
// the original method. 301, 302, 307, and 308 continue with the
// original method and resend the body. Any other 3xx code returns
// ErrUnsupportedStatus.
func ForStatus(status int, method string) (Next, error) {
	switch status {
	case 303:
		return Next{Method: "GET"}, nil
	case 301, 302, 307, 308:
		return Next{Method: method, KeepBody: true}, nil
	default:
		return Next{}, ErrUnsupportedStatus
	}
}

// JoinSlash concatenates a and b with exactly one slash at the join
// point, neither doubling an existing slash nor omitting a missing one.
func JoinSlash(a, b string) string {
	aSlash := strings.HasSuffix(a, "/")
	bSlash := strings.HasPrefix(b, "/")
	switch {
	case aSlash && bSlash:
		return a + b[1:]
	case !aSlash && !bSlash:
		return a + "/" + b
	default:
		return a + b
	}
}
