// Copyright 2026 The sendx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package localaddr

import (
	"net/netip"
	"strings"
)

var (
	v4Broadcast = netip.AddrFrom4([4]byte{255, 255, 255, 255})

	// TEST-NET-1, TEST-NET-2, and TEST-NET-3 (RFC 5737).
	v4Documentation = []netip.Prefix{
		netip.MustParsePrefix("192.0.2.0/24"),
		netip.MustParsePrefix("198.51.100.0/24"),
		netip.MustParsePrefix("203.0.113.0/24"),
	}

	v6UniqueLocal   = netip.MustParsePrefix("fc00::/7")
	v6Documentation = netip.MustParsePrefix("2001:db8::/32")
)

// IsLocal reports whether host names a local target: the literal name
// "localhost" (matched case-insensitively), or an IP address literal
// classified as local by IsLocalIPv4 or IsLocalIPv6.
//
// IsLocal is pure and performs no I/O. In particular it never resolves
// domain names, so a domain other than localhost is never local, even
// if it would resolve to a local address.
func IsLocal(host string) bool {
	if strings.EqualFold(host, "localhost") {
		return true
	}
	// Bracketed IPv6 literals, in case the caller did not go through
	// url.Hostname.
	host = strings.TrimPrefix(strings.TrimSuffix(host, "]"), "[")
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	return IsLocalAddr(addr)
}

// IsLocalAddr reports whether addr is a local IPv4 or IPv6 address.
// IPv4-mapped IPv6 addresses are unmapped and classified under the
// IPv4 rules.
func IsLocalAddr(addr netip.Addr) bool {
	addr = addr.Unmap()
	if addr.Is4() {
		return IsLocalIPv4(addr)
	}
	return IsLocalIPv6(addr)
}

// IsLocalIPv4 reports whether addr is a local IPv4 address: private
// (RFC 1918), loopback (127.0.0.0/8), link-local (169.254.0.0/16),
// broadcast (255.255.255.255), documentation (RFC 5737), or unspecified
// (0.0.0.0). A non-IPv4 address is never local under this rule.
func IsLocalIPv4(addr netip.Addr) bool {
	addr = addr.Unmap()
	if !addr.Is4() {
		return false
	}
	if addr.IsPrivate() || addr.IsLoopback() || addr.IsLinkLocalUnicast() || addr.IsUnspecified() {
		return true
	}
	if addr == v4Broadcast {
		return true
	}
	for _, p := range v4Documentation {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// IsLocalIPv6 reports whether addr is a local IPv6 address.
//
// A multicast address is local unless its scope field is global (0xe).
// A non-multicast address is local if it is the loopback (::1), the
// unspecified address (::), unicast link-local (fe80::/10), unique
// local (fc00::/7), or within the documentation prefix 2001:db8::/32.
// A non-IPv6 address is never local under this rule.
func IsLocalIPv6(addr netip.Addr) bool {
	if !addr.Is6() || addr.Is4In6() {
		return false
	}
	if addr.IsMulticast() {
		return multicastScope(addr) != 0xe
	}
	return addr.IsLoopback() ||
		addr.IsUnspecified() ||
		addr.IsLinkLocalUnicast() ||
		v6UniqueLocal.Contains(addr) ||
		v6Documentation.Contains(addr)
}

// multicastScope extracts the 4-bit scope field of an IPv6 multicast
// address (RFC 4291 section 2.7).
func multicastScope(addr netip.Addr) uint8 {
	return addr.As16()[1] & 0x0f
}
