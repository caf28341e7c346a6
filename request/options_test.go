// Copyright 2026 The sendx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, int64(1024*1024), opts.MaxResponseBodySize)
	assert.Equal(t, 5, opts.MaxRedirects)
	assert.Equal(t, 60*time.Second, opts.MaxConnectionTime)
	assert.True(t, opts.AllowLocal)
}
