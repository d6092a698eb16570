// Package rcode models the three DNS response-code spaces and the
// conversions between them.
//
// Standards Compliance:
//
// This package implements the response-code registries from the following RFCs:
//
//   - RFC 1035: Domain Names - Implementation and Specification (4-bit header RCODE)
//   - RFC 2136: Dynamic Updates in the DNS (response codes 6-10)
//   - RFC 6891: Extension Mechanisms for DNS (12-bit extended RCODE via OPT)
//   - RFC 2845: Secret Key Transaction Authentication for DNS (TSIG error field)
//   - RFC 2930: Secret Key Establishment for DNS (TKEY errors)
//   - RFC 4635: HMAC SHA TSIG Algorithm Identifiers (BADTRUNC)
//   - RFC 7873: Domain Name System Cookies (BADCOOKIE)
//
// Three Spaces, One Numbering:
//
// Values 0-10 mean the same thing in all three spaces. Above 10 the spaces
// diverge: the extended space adds BadVers (16) and BadCookie (23), the TSIG
// space adds BadSig (16) through BadCookie (23). The numeric collision at 16
// is historical: BadVers and BadSig share a value, not a meaning, so
// conversions between the spaces classify by value against the target
// space's table.
//
// Open Tails:
//
// Every constructor is total. An integer that matches no registry entry is
// kept as-is (reduced to the space's bit width) instead of being rejected,
// so codes from newer registry assignments or private use survive the round
// trip through these types.
//
// Error Handling:
//
// Only the text surface can fail. Parse errors wrap ErrInvalidCode with
// fmt.Errorf("...: %w") context; match them with errors.Is.
package rcode

import "errors"

var (
	// ErrInvalidCode is the sentinel error for text that names no response
	// code in the space being parsed.
	ErrInvalidCode = errors.New("rcode: invalid response code")
)
