// Package dnsmsg applies and extracts typed response codes on
// github.com/miekg/dns messages.
//
// A 12-bit extended response code is split across two wire locations: the
// low four bits live in the header RCODE field, the high eight in the OPT
// record's TTL. miekg/dns merges the two on unpack and splits them on pack;
// the helpers here work on in-memory messages in any of the intermediate
// states, so they tolerate both the merged and the split representation.
//
// Nothing in this package packs, unpacks, or transmits a message.
package dnsmsg

import (
	"github.com/jroosing/dnscodes/internal/helpers"
	"github.com/jroosing/dnscodes/rcode"
	"github.com/miekg/dns"
)

// defaultUDPPayloadSize is advertised when a helper has to create the OPT
// record itself. 1232 is the safe EDNS size avoiding fragmentation.
const defaultUDPPayloadSize = 1232

// extendedMask keeps the low 12 bits of a response code; extMask keeps the
// bits carried by the OPT extension octet.
const (
	extendedMask = 0x0FFF
	extMask      = 0x0FF0
)

// ExtendedRcode reads the full 12-bit response code of a message: the
// header RCODE bits OR-ed with the extension bits of the OPT record, when
// one is present.
func ExtendedRcode(m *dns.Msg) rcode.Extended {
	v := helpers.ClampIntToUint16(m.Rcode & extendedMask)
	if opt := m.IsEdns0(); opt != nil {
		v |= helpers.ClampIntToUint16(opt.ExtendedRcode()) & extMask
	}
	return rcode.ExtendedFromInt(v)
}

// SetExtendedRcode writes the stored 12-bit value of x onto the message:
// the low nibble into the header RCODE field, the extension bits into the
// OPT record. A value that fits the header field alone needs no OPT; none
// is created for it, and a stale extension octet on an existing OPT is
// cleared. Wider values get a default OPT when the message has none.
//
// The stored value is written, not the reduced ToInt form, so unregistered
// codes keep their extension bits on the message.
func SetExtendedRcode(m *dns.Msg, x rcode.Extended) {
	v := uint16(x) & extendedMask
	m.Rcode = int(v & 0x0F)

	opt := m.IsEdns0()
	if v <= 0x0F {
		if opt != nil {
			opt.SetExtendedRcode(0)
		}
		return
	}
	if opt == nil {
		m.SetEdns0(defaultUDPPayloadSize, false)
		opt = m.IsEdns0()
	}
	opt.SetExtendedRcode(v)
}

// TsigRcode reads the error field of the message's TSIG record. The second
// return is false when the message carries no TSIG record.
func TsigRcode(m *dns.Msg) (rcode.TSIG, bool) {
	t := m.IsTsig()
	if t == nil {
		return 0, false
	}
	return rcode.TSIGFromInt(t.Error), true
}

// SetTsigError writes the stored value of c into the error field of the
// message's TSIG record, reporting whether one was present. The TSIG
// record itself (name, algorithm, MAC) is the caller's to manage; this
// only touches the error field.
func SetTsigError(m *dns.Msg, c rcode.TSIG) bool {
	t := m.IsTsig()
	if t == nil {
		return false
	}
	t.Error = uint16(c)
	return true
}
