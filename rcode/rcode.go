package rcode

import (
	"encoding"
	"fmt"
	"strconv"
	"strings"

	"github.com/jroosing/dnscodes/internal/helpers"
)

// Code is the 4-bit response code carried in the DNS header flags word
// (RFC 1035 Section 4.1.1):
//
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	|QR|   Opcode  |AA|TC|RD|RA| Z|AD|CD|   RCODE   |
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	 15 14 13 12 11 10  9  8  7  6  5  4  3  2  1  0
//
// Code occupies bits 3-0. Wider response codes exist (Extended, TSIG), but
// the header field itself never carries more than these four bits.
//
// The zero value is NoError.
type Code uint8

// codeMask keeps the low 4 bits, the width of the header RCODE field.
const codeMask = 0x0F

const (
	NoError  Code = 0  // No error
	FormErr  Code = 1  // Format error: query malformed
	ServFail Code = 2  // Server failure: internal error
	NXDomain Code = 3  // Non-existent domain
	NotImp   Code = 4  // Not implemented: unsupported query type
	Refused  Code = 5  // Query refused by policy
	YXDomain Code = 6  // Name exists when it should not (RFC 2136)
	YXRRSet  Code = 7  // RR set exists when it should not (RFC 2136)
	NXRRSet  Code = 8  // RR set that should exist does not (RFC 2136)
	NotAuth  Code = 9  // Server not authoritative for zone (RFC 2136)
	NotZone  Code = 10 // Name not contained in zone (RFC 2136)
)

var codeToString = map[Code]string{
	NoError:  "NOERROR",
	FormErr:  "FORMERR",
	ServFail: "SERVFAIL",
	NXDomain: "NXDOMAIN",
	NotImp:   "NOTIMP",
	Refused:  "REFUSED",
	YXDomain: "YXDOMAIN",
	YXRRSet:  "YXRRSET",
	NXRRSet:  "NXRRSET",
	NotAuth:  "NOAUTH", // rendered without the T; parsing accepts both spellings
	NotZone:  "NOTZONE",
}

var stringToCode = helpers.ReverseMap(codeToString)

func init() {
	// Accept the IANA registry spelling alongside the rendered one.
	stringToCode["NOTAUTH"] = NotAuth
}

// FromInt classifies a raw integer as a header response code. The value is
// reduced to the low four bits first, so every input is accepted.
func FromInt(v uint8) Code {
	return Code(v & codeMask)
}

// FromFlags extracts the response code from a DNS header flags word.
// The RCODE occupies the low 4 bits of the flags field.
func FromFlags(flags uint16) Code {
	return FromInt(uint8(flags)) //nolint:gosec // low byte is wanted, FromInt masks further
}

// ToInt returns the numeric registry value. Values outside the table are
// reduced to the low four bits.
func (c Code) ToInt() uint8 {
	if c.Known() {
		return uint8(c)
	}
	return uint8(c) & codeMask
}

// Known reports whether the value is a registered code rather than part of
// the open tail.
func (c Code) Known() bool {
	_, ok := codeToString[c]
	return ok
}

// String renders the canonical uppercase mnemonic. A value outside the
// table is re-classified at its 4-bit width first, in case the reduced
// value names a registered code; otherwise the reduced value renders as a
// plain decimal.
func (c Code) String() string {
	if s, ok := codeToString[c]; ok {
		return s
	}
	r := FromInt(uint8(c))
	if s, ok := codeToString[r]; ok {
		return s
	}
	return strconv.Itoa(int(r))
}

// Parse resolves a mnemonic (case-insensitive) or a decimal string to a
// header response code. Decimal input goes through FromInt, so any numeric
// value that fits eight bits is accepted.
func Parse(s string) (Code, error) {
	if c, ok := stringToCode[strings.ToUpper(s)]; ok {
		return c, nil
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("parse rcode %q: %w", s, ErrInvalidCode)
	}
	return FromInt(uint8(n)), nil //nolint:gosec // width-checked by ParseUint
}

// MarshalText implements encoding.TextMarshaler. Unregistered codes marshal
// as their decimal rendering, which UnmarshalText accepts back.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

var (
	_ encoding.TextMarshaler   = Code(0)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)
