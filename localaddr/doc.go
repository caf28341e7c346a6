// Copyright 2026 The sendx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package localaddr classifies request targets as local: private,
// loopback, link-local, and similar addresses that a server-side HTTP
// client often must not be allowed to reach. The sendx client consults
// it before any network activity when a spec sets AllowLocal to false.
//
// Package localaddr is extremely lightweight, as it depends only on the
// standard library packages "net/netip" and "strings", so it doesn't
// bring any significant dependencies when imported as a standalone
// package.
package localaddr
