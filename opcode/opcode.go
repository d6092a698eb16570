// Package opcode models the 4-bit DNS operation code carried in bits 14-11
// of the header flags word (RFC 1035, RFC 1996, RFC 2136).
//
// The design mirrors package rcode: a defined integer type over a closed
// registry table, total constructors that keep unregistered values, and a
// text surface for diagnostics and configuration.
package opcode

import (
	"encoding"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jroosing/dnscodes/internal/helpers"
)

var (
	// ErrInvalidOpcode is the sentinel error for text that names no
	// operation code.
	ErrInvalidOpcode = errors.New("opcode: invalid operation code")
)

// Code is the 4-bit operation code. The zero value is Query.
type Code uint8

// codeMask keeps the low 4 bits, the width of the OPCODE field.
const codeMask = 0x0F

const (
	Query  Code = 0 // Standard query (RFC 1035)
	IQuery Code = 1 // Inverse query, obsoleted by RFC 3425
	Status Code = 2 // Server status request (RFC 1035)
	Notify Code = 4 // Zone change notification (RFC 1996)
	Update Code = 5 // Dynamic update (RFC 2136)
)

var codeToString = map[Code]string{
	Query:  "QUERY",
	IQuery: "IQUERY",
	Status: "STATUS",
	Notify: "NOTIFY",
	Update: "UPDATE",
}

var stringToCode = helpers.ReverseMap(codeToString)

// FromInt classifies a raw integer as an operation code. The value is
// reduced to the low four bits first, so every input is accepted.
func FromInt(v uint8) Code {
	return Code(v & codeMask)
}

// FromFlags extracts the operation code from a DNS header flags word.
// The OPCODE occupies bits 14-11 of the flags field.
func FromFlags(flags uint16) Code {
	return FromInt(uint8(flags >> 11)) //nolint:gosec // shifted into the low byte, FromInt masks further
}

// ToInt returns the numeric registry value. Values outside the table are
// reduced to the low four bits.
func (c Code) ToInt() uint8 {
	if c.Known() {
		return uint8(c)
	}
	return uint8(c) & codeMask
}

// Known reports whether the value is a registered operation code.
func (c Code) Known() bool {
	_, ok := codeToString[c]
	return ok
}

// String renders the canonical uppercase mnemonic, re-classifying values
// outside the table at their 4-bit width first; unassigned values render as
// a plain decimal.
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

// Parse resolves a mnemonic (case-insensitive) or a decimal string to an
// operation code. Decimal input goes through FromInt.
func Parse(s string) (Code, error) {
	if c, ok := stringToCode[strings.ToUpper(s)]; ok {
		return c, nil
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("parse opcode %q: %w", s, ErrInvalidOpcode)
	}
	return FromInt(uint8(n)), nil //nolint:gosec // width-checked by ParseUint
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
