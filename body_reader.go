// Copyright 2026 The sendx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sendx

import (
	"errors"
	"io"
	"time"
)

const readChunkSize = 512

var (
	errBodyTooLarge    = errors.New("sendx: remote data is too large")
	errBodyReadTimeout = errors.New("sendx: the connection has timed out")
)

// readBodyBounded consumes r incrementally, accumulating at most
// maxSize bytes within the wall-clock budget measured from start (the
// beginning of the attempt, not of the read phase). Both bounds are
// re-checked after every chunk, so the loop stops within one chunk of
// a bound being crossed.
//
// On failure no partial body is returned. maxSize <= 0 disables the
// size bound and budget <= 0 disables the time bound.
func readBodyBounded(r io.Reader, maxSize int64, start time.Time, budget time.Duration) ([]byte, error) {
	var body []byte
	var sum int64
	buf := make([]byte, readChunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			sum += int64(n)
			if maxSize > 0 && sum > maxSize {
				return nil, errBodyTooLarge
			}
			body = append(body, buf[:n]...)
			if budget > 0 && time.Since(start) > budget {
				return nil, errBodyReadTimeout
			}
		}
		if err == io.EOF {
			if body == nil {
				body = []byte{}
			}
			return body, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
