package rcode

import (
	"encoding"
	"fmt"
	"strconv"
	"strings"

	"github.com/jroosing/dnscodes/internal/helpers"
)

// Extended is the 12-bit response code introduced by EDNS (RFC 6891
// Section 6.1.3). The upper eight bits travel in the OPT record's TTL
// field, the lower four in the header RCODE field:
//
//	+---+---+---+---+---+---+---+---+---+---+---+---+
//	|  EXTENDED-RCODE (OPT TTL 31-24)  |   RCODE    |
//	+---+---+---+---+---+---+---+---+---+---+---+---+
//	 11  10   9   8   7   6   5   4   3   2   1   0
//
// An extended code is meaningless without the header nibble; the two parts
// only ever appear recombined, which is what this type holds.
//
// The zero value is ExtendedNoError.
type Extended uint16

// extendedMask keeps the low 12 bits, the combined width of the OPT
// extension octet and the header RCODE field.
const extendedMask = 0x0FFF

const (
	ExtendedNoError  Extended = 0  // No error
	ExtendedFormErr  Extended = 1  // Format error: query malformed
	ExtendedServFail Extended = 2  // Server failure: internal error
	ExtendedNXDomain Extended = 3  // Non-existent domain
	ExtendedNotImp   Extended = 4  // Not implemented: unsupported query type
	ExtendedRefused  Extended = 5  // Query refused by policy
	ExtendedYXDomain Extended = 6  // Name exists when it should not (RFC 2136)
	ExtendedYXRRSet  Extended = 7  // RR set exists when it should not (RFC 2136)
	ExtendedNXRRSet  Extended = 8  // RR set that should exist does not (RFC 2136)
	ExtendedNotAuth  Extended = 9  // Server not authoritative for zone (RFC 2136)
	ExtendedNotZone  Extended = 10 // Name not contained in zone (RFC 2136)

	ExtendedBadVers   Extended = 16 // Unsupported OPT version (RFC 6891)
	ExtendedBadCookie Extended = 23 // Missing or bad server cookie (RFC 7873)
)

var extendedToString = map[Extended]string{
	ExtendedNoError:   "NOERROR",
	ExtendedFormErr:   "FORMERR",
	ExtendedServFail:  "SERVFAIL",
	ExtendedNXDomain:  "NXDOMAIN",
	ExtendedNotImp:    "NOTIMP",
	ExtendedRefused:   "REFUSED",
	ExtendedYXDomain:  "YXDOMAIN",
	ExtendedYXRRSet:   "YXRRSET",
	ExtendedNXRRSet:   "NXRRSET",
	ExtendedNotAuth:   "NOAUTH", // rendered without the T; parsing accepts both spellings
	ExtendedNotZone:   "NOTZONE",
	ExtendedBadVers:   "BADVER", // rendered without the trailing S; parsing accepts both
	ExtendedBadCookie: "BADCOOKIE",
}

var stringToExtended = helpers.ReverseMap(extendedToString)

func init() {
	// Accept the IANA registry spellings alongside the rendered ones.
	stringToExtended["NOTAUTH"] = ExtendedNotAuth
	stringToExtended["BADVERS"] = ExtendedBadVers
}

// ExtendedFromInt classifies a raw integer as an extended response code.
// The value is reduced to the low twelve bits first, so every input is
// accepted.
func ExtendedFromInt(v uint16) Extended {
	return Extended(v & extendedMask)
}

// ExtendedFromCode widens a header response code into the extended space.
// Values 0-10 name the same registry entries in both spaces.
func ExtendedFromCode(c Code) Extended {
	return ExtendedFromInt(uint16(c.ToInt()))
}

// ExtendedFromParts combines a header response code with the extension
// octet from an OPT record. A zero extension octet widens the header code
// directly; otherwise the octet forms bits 11-4 of the combined value:
//
//	uint16(ext)<<4 | uint16(base.ToInt())
func ExtendedFromParts(base Code, ext uint8) Extended {
	if ext == 0 {
		return ExtendedFromCode(base)
	}
	return ExtendedFromInt(uint16(ext)<<4 | uint16(base.ToInt()))
}

// ToInt returns the numeric registry value. Values outside the table are
// reduced to the low four bits, the width of the header field.
func (x Extended) ToInt() uint16 {
	if x.Known() {
		return uint16(x)
	}
	return uint16(x) & codeMask
}

// Parts splits the resolved value into its header code and extension
// octet. The header component is the low byte classified at 4-bit width;
// the extension octet is the high byte of the resolved value.
func (x Extended) Parts() (Code, uint8) {
	res := x.ToInt()
	return FromInt(uint8(res)), uint8(res >> 8) //nolint:gosec // byte split of a 16-bit value
}

// Code returns the header-code component of Parts.
func (x Extended) Code() Code {
	c, _ := x.Parts()
	return c
}

// Ext returns the extension-octet component of Parts.
func (x Extended) Ext() uint8 {
	_, ext := x.Parts()
	return ext
}

// Known reports whether the value is a registered code rather than part of
// the open tail.
func (x Extended) Known() bool {
	_, ok := extendedToString[x]
	return ok
}

// String renders the canonical uppercase mnemonic. A value outside the
// table is re-classified at its 12-bit width first; if the reduced value
// still names no registered code it renders as a plain decimal.
func (x Extended) String() string {
	if s, ok := extendedToString[x]; ok {
		return s
	}
	r := ExtendedFromInt(uint16(x))
	if s, ok := extendedToString[r]; ok {
		return s
	}
	return strconv.Itoa(int(r))
}

// ParseExtended resolves a mnemonic (case-insensitive) or a decimal string
// to an extended response code. Decimal input goes through ExtendedFromInt.
func ParseExtended(s string) (Extended, error) {
	if x, ok := stringToExtended[strings.ToUpper(s)]; ok {
		return x, nil
	}
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("parse extended rcode %q: %w", s, ErrInvalidCode)
	}
	return ExtendedFromInt(uint16(n)), nil //nolint:gosec // width-checked by ParseUint
}

// MarshalText implements encoding.TextMarshaler. Unregistered codes marshal
// as their decimal rendering, which UnmarshalText accepts back.
func (x Extended) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Extended) UnmarshalText(text []byte) error {
	parsed, err := ParseExtended(string(text))
	if err != nil {
		return err
	}
	*x = parsed
	return nil
}

var (
	_ encoding.TextMarshaler   = Extended(0)
	_ encoding.TextUnmarshaler = (*Extended)(nil)
)
