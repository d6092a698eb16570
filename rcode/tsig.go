package rcode

import (
	"encoding"
	"fmt"
	"strconv"
	"strings"

	"github.com/jroosing/dnscodes/internal/helpers"
)

// TSIG is the 16-bit response code carried in the error field of TSIG
// (RFC 2845) and TKEY (RFC 2930) records. Unlike the header and extended
// spaces it occupies a full 16-bit field of its own, so no reduction
// happens on construction.
//
// The zero value is TSIGNoError.
type TSIG uint16

const (
	TSIGNoError  TSIG = 0  // No error
	TSIGFormErr  TSIG = 1  // Format error: query malformed
	TSIGServFail TSIG = 2  // Server failure: internal error
	TSIGNXDomain TSIG = 3  // Non-existent domain
	TSIGNotImp   TSIG = 4  // Not implemented: unsupported query type
	TSIGRefused  TSIG = 5  // Query refused by policy
	TSIGYXDomain TSIG = 6  // Name exists when it should not (RFC 2136)
	TSIGYXRRSet  TSIG = 7  // RR set exists when it should not (RFC 2136)
	TSIGNXRRSet  TSIG = 8  // RR set that should exist does not (RFC 2136)
	TSIGNotAuth  TSIG = 9  // Server not authoritative for zone (RFC 2136)
	TSIGNotZone  TSIG = 10 // Name not contained in zone (RFC 2136)

	TSIGBadSig    TSIG = 16 // Signature failed verification (RFC 2845)
	TSIGBadKey    TSIG = 17 // Key not recognized (RFC 2845)
	TSIGBadTime   TSIG = 18 // Signature outside the time window (RFC 2845)
	TSIGBadMode   TSIG = 19 // Unsupported TKEY mode (RFC 2930)
	TSIGBadName   TSIG = 20 // Duplicate key name (RFC 2930)
	TSIGBadAlg    TSIG = 21 // Algorithm not supported (RFC 2930)
	TSIGBadTrunc  TSIG = 22 // Bad MAC truncation (RFC 4635)
	TSIGBadCookie TSIG = 23 // Missing or bad server cookie (RFC 7873)
)

var tsigToString = map[TSIG]string{
	TSIGNoError:   "NOERROR",
	TSIGFormErr:   "FORMERR",
	TSIGServFail:  "SERVFAIL",
	TSIGNXDomain:  "NXDOMAIN",
	TSIGNotImp:    "NOTIMP",
	TSIGRefused:   "REFUSED",
	TSIGYXDomain:  "YXDOMAIN",
	TSIGYXRRSet:   "YXRRSET",
	TSIGNXRRSet:   "NXRRSET",
	TSIGNotAuth:   "NOAUTH", // rendered without the T; parsing accepts both spellings
	TSIGNotZone:   "NOTZONE",
	TSIGBadSig:    "BADSIG",
	TSIGBadKey:    "BADKEY",
	TSIGBadTime:   "BADTIME",
	TSIGBadMode:   "BADMODE",
	TSIGBadName:   "BADNAME",
	TSIGBadAlg:    "BADALG",
	TSIGBadTrunc:  "BADTRUNC",
	TSIGBadCookie: "BADCOOKIE",
}

var stringToTSIG = helpers.ReverseMap(tsigToString)

func init() {
	// Accept the IANA registry spelling alongside the rendered one.
	stringToTSIG["NOTAUTH"] = TSIGNotAuth
}

// TSIGFromInt classifies a raw integer as a TSIG response code. The field
// is a full 16 bits wide, so the value is taken unreduced and every input
// is accepted.
func TSIGFromInt(v uint16) TSIG {
	return TSIG(v)
}

// TSIGFromCode widens a header response code into the TSIG space. Values
// 0-10 name the same registry entries in both spaces.
func TSIGFromCode(c Code) TSIG {
	return TSIGFromInt(uint16(c.ToInt()))
}

// TSIGFromExtended classifies an extended response code against the TSIG
// table. The two spaces collide numerically above the shared range: value
// 16 is BadVers in the extended space but BadSig here, while 23 is
// BadCookie in both. Callers crossing the spaces get the target space's
// name for the value, never the source's.
func TSIGFromExtended(x Extended) TSIG {
	return TSIGFromInt(x.ToInt())
}

// ToInt returns the numeric registry value. Values outside the table are
// reduced to the low four bits, the width of the header field.
func (c TSIG) ToInt() uint16 {
	if c.Known() {
		return uint16(c)
	}
	return uint16(c) & codeMask
}

// Code reduces the code to the 4-bit header space: the low byte of the
// resolved value, classified. Values above the header range lose their
// high bits in the reduction (BadKey, 17, reduces to FormErr, 1).
func (c TSIG) Code() Code {
	return FromInt(uint8(c.ToInt())) //nolint:gosec // resolved values fit the low byte
}

// Known reports whether the value is a registered code rather than part of
// the open tail.
func (c TSIG) Known() bool {
	_, ok := tsigToString[c]
	return ok
}

// String renders the canonical uppercase mnemonic, or the plain decimal
// value for anything outside the table.
func (c TSIG) String() string {
	if s, ok := tsigToString[c]; ok {
		return s
	}
	return strconv.Itoa(int(c))
}

// ParseTSIG resolves a mnemonic (case-insensitive) or a decimal string to
// a TSIG response code. Decimal input goes through TSIGFromInt.
func ParseTSIG(s string) (TSIG, error) {
	if c, ok := stringToTSIG[strings.ToUpper(s)]; ok {
		return c, nil
	}
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("parse tsig rcode %q: %w", s, ErrInvalidCode)
	}
	return TSIGFromInt(uint16(n)), nil //nolint:gosec // width-checked by ParseUint
}

// MarshalText implements encoding.TextMarshaler. Unregistered codes marshal
// as their decimal rendering, which UnmarshalText accepts back.
func (c TSIG) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *TSIG) UnmarshalText(text []byte) error {
	parsed, err := ParseTSIG(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

var (
	_ encoding.TextMarshaler   = TSIG(0)
	_ encoding.TextUnmarshaler = (*TSIG)(nil)
)
