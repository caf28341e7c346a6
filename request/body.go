// Copyright 2026 The sendx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	urlpkg "net/url"
)

// FormContentType is the content type sent with bodies constructed by
// Form.
const FormContentType = "application/x-www-form-urlencoded"

type bodyKind int

const (
	bytesBody bodyKind = iota
	textBody
	formBody
)

// A Body is a structured request body: raw bytes, text, or form fields.
//
// Every Body variant is a plain value that can be encoded any number of
// times, which is what makes a Spec safe to re-send: each attempt in an
// execution, including redirect hops that resend the body, encodes the
// Body afresh. There is deliberately no streaming variant; a body that
// could only be read once would break re-sending, so it cannot be
// constructed.
//
// The zero Body is treated as an empty bytes body.
type Body struct {
	kind        bodyKind
	contentType string
	data        []byte
	form        map[string]string
}

// Bytes returns a Body that sends b verbatim with the given content
// type. The caller must not modify b after the call.
func Bytes(contentType string, b []byte) *Body {
	return &Body{kind: bytesBody, contentType: contentType, data: b}
}

// Text returns a Body that sends the UTF-8 encoding of text with the
// given content type.
func Text(contentType, text string) *Body {
	return &Body{kind: textBody, contentType: contentType, data: []byte(text)}
}

// Form returns a Body that sends fields percent-encoded per the
// application/x-www-form-urlencoded rules (space encoded as "+"),
// joined with "&" in sorted key order. Its content type is always
// FormContentType.
//
// Form copies fields, so later changes to the map do not affect the
// returned Body.
func Form(fields map[string]string) *Body {
	form := make(map[string]string, len(fields))
	for k, v := range fields {
		form[k] = v
	}
	return &Body{kind: formBody, form: form}
}

// ContentType returns the content type the body is sent with.
func (b *Body) ContentType() string {
	if b.kind == formBody {
		return FormContentType
	}
	return b.contentType
}

// Encode returns the encoded body bytes. Form bodies are re-encoded on
// every call; bytes and text bodies return their backing data, which
// the caller must treat as read-only.
func (b *Body) Encode() []byte {
	if b.kind != formBody {
		return b.data
	}
	values := make(urlpkg.Values, len(b.form))
	for k, v := range b.form {
		values.Set(k, v)
	}
	return []byte(values.Encode())
}

// Len returns the encoded length of the body in bytes.
func (b *Body) Len() int {
	if b.kind != formBody {
		return len(b.data)
	}
	return len(b.Encode())
}

// Clone returns a deep copy of the body sharing no mutable state with
// b. Cloning a nil body returns nil.
func (b *Body) Clone() *Body {
	if b == nil {
		return nil
	}
	b2 := &Body{kind: b.kind, contentType: b.contentType}
	if b.data != nil {
		b2.data = make([]byte, len(b.data))
		copy(b2.data, b.data)
	}
	if b.form != nil {
		b2.form = make(map[string]string, len(b.form))
		for k, v := range b.form {
			b2.form[k] = v
		}
	}
	return b2
}
