// Copyright 2026 The sendx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package redirect contains the pure pieces of redirect following:
// resolving a Location header value against the current request URL,
// and the per-status rules for how the next attempt continues (which
// method, and whether the body is resent). The sendx client drives the
// actual redirect loop; this package makes no decisions about budgets
// and performs no I/O.
package redirect
