// Package ede models the Extended DNS Error info-code registry (RFC 8914).
//
// An EDE rides inside the OPT record as EDNS option 15, pairing a 16-bit
// INFO-CODE with optional free-form text. The info-code space is flat: no
// header nibble, no composition, just the registered purposes below and an
// open tail. Codes 49152 and up are reserved for private use.
package ede

import (
	"encoding"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidCode is the sentinel error for text that names no EDE
	// info-code.
	ErrInvalidCode = errors.New("ede: invalid info-code")
)

// Code is a 16-bit EDE INFO-CODE. The zero value is Other.
type Code uint16

const (
	Other                      Code = 0
	UnsupportedDNSKEYAlgorithm Code = 1
	UnsupportedDSDigestType    Code = 2
	StaleAnswer                Code = 3
	ForgedAnswer               Code = 4
	DNSSECIndeterminate        Code = 5
	DNSSECBogus                Code = 6
	SignatureExpired           Code = 7
	SignatureNotYetValid       Code = 8
	DNSKEYMissing              Code = 9
	RRSIGsMissing              Code = 10
	NoZoneKeyBitSet            Code = 11
	NSECMissing                Code = 12
	CachedError                Code = 13
	NotReady                   Code = 14
	Blocked                    Code = 15
	Censored                   Code = 16
	Filtered                   Code = 17
	Prohibited                 Code = 18
	StaleNXDomainAnswer        Code = 19
	NotAuthoritative           Code = 20
	NotSupported               Code = 21
	NoReachableAuthority       Code = 22
	NetworkError               Code = 23
	InvalidData                Code = 24
)

// privateFloor is the first info-code of the private-use range
// (RFC 8914 Section 5.2).
const privateFloor Code = 49152

var codeToString = map[Code]string{
	Other:                      "Other",
	UnsupportedDNSKEYAlgorithm: "Unsupported DNSKEY Algorithm",
	UnsupportedDSDigestType:    "Unsupported DS Digest Type",
	StaleAnswer:                "Stale Answer",
	ForgedAnswer:               "Forged Answer",
	DNSSECIndeterminate:        "DNSSEC Indeterminate",
	DNSSECBogus:                "DNSSEC Bogus",
	SignatureExpired:           "Signature Expired",
	SignatureNotYetValid:       "Signature Not Yet Valid",
	DNSKEYMissing:              "DNSKEY Missing",
	RRSIGsMissing:              "RRSIGs Missing",
	NoZoneKeyBitSet:            "No Zone Key Bit Set",
	NSECMissing:                "NSEC Missing",
	CachedError:                "Cached Error",
	NotReady:                   "Not Ready",
	Blocked:                    "Blocked",
	Censored:                   "Censored",
	Filtered:                   "Filtered",
	Prohibited:                 "Prohibited",
	StaleNXDomainAnswer:        "Stale NXDomain Answer",
	NotAuthoritative:           "Not Authoritative",
	NotSupported:               "Not Supported",
	NoReachableAuthority:       "No Reachable Authority",
	NetworkError:               "Network Error",
	InvalidData:                "Invalid Data",
}

// stringToCode indexes the purpose phrases by their normalized form so that
// Parse tolerates case and spacing differences.
var stringToCode = make(map[string]Code, len(codeToString))

func init() {
	for c, s := range codeToString {
		stringToCode[normalize(s)] = c
	}
}

func normalize(s string) string {
	return strings.ToUpper(strings.ReplaceAll(s, " ", ""))
}

// FromInt classifies a raw integer as an EDE info-code. The field is a full
// 16 bits wide, so the value is taken unreduced and every input is accepted.
func FromInt(v uint16) Code {
	return Code(v)
}

// ToInt returns the numeric value. The info-code space has no legacy
// reduction path, so this is always the stored value.
func (c Code) ToInt() uint16 {
	return uint16(c)
}

// Known reports whether the value is a registered info-code.
func (c Code) Known() bool {
	_, ok := codeToString[c]
	return ok
}

// Private reports whether the value falls in the private-use range.
func (c Code) Private() bool {
	return c >= privateFloor
}

// String renders the registry's purpose phrase, or the plain decimal value
// for anything outside the table.
func (c Code) String() string {
	if s, ok := codeToString[c]; ok {
		return s
	}
	return strconv.Itoa(int(c))
}

// Parse resolves a purpose phrase (tolerant of case and spacing) or a
// decimal string to an info-code. Decimal input goes through FromInt.
func Parse(s string) (Code, error) {
	if c, ok := stringToCode[normalize(s)]; ok {
		return c, nil
	}
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("parse ede info-code %q: %w", s, ErrInvalidCode)
	}
	return FromInt(uint16(n)), nil //nolint:gosec // width-checked by ParseUint
}

// MarshalText implements encoding.TextMarshaler.
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
