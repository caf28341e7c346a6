// Copyright 2026 The sendx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"errors"
	"io"
)

const badBodyTypeMsg = "sendx/request: invalid type (for body use nil, " +
	"*Body, string, []byte, io.Reader or io.ReadCloser)"

// NewBody converts a generic body parameter into a *Body with the given
// content type, for use by the convenience request methods.
//
// The body parameter may be nil, or it may be a *Body, string, []byte,
// io.Reader, or io.ReadCloser. The conversion logic is:
//
// • If body is nil, a nil Body and no error is returned.
//
// • If body is a *Body, it is returned unchanged and contentType is
// ignored.
//
// • If body is a string, a text Body with the given content type is
// returned.
//
// • If body is a []byte, a bytes Body with the given content type is
// returned.
//
// • If body is an io.Reader or io.ReadCloser, it is read to the end
// (and closed if it implements Closer) and the buffered content is
// returned as a bytes Body. A read or close error is returned as-is
// with a nil Body.
//
// • Any other type produces a nil Body and an error.
func NewBody(contentType string, body interface{}) (*Body, error) {
	switch x := body.(type) {
	case nil:
		return nil, nil
	case *Body:
		return x, nil
	case string:
		return Text(contentType, x), nil
	case []byte:
		return Bytes(contentType, x), nil
	case io.ReadCloser:
		b, err := io.ReadAll(x)
		if err != nil {
			return nil, err
		}
		err = x.Close()
		if err != nil {
			return nil, err
		}
		return Bytes(contentType, b), nil
	case io.Reader:
		return NewBody(contentType, io.NopCloser(x))
	default:
		return nil, errors.New(badBodyTypeMsg)
	}
}
