package dnsmsg_test

import (
	"testing"

	"github.com/jroosing/dnscodes/dnsmsg"
	"github.com/jroosing/dnscodes/rcode"
	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuery() *dns.Msg {
	m := new(dns.Msg)
	m.SetQuestion("example.com.", dns.TypeA)
	return m
}

func tsigRecord(errCode uint16) *dns.TSIG {
	t := new(dns.TSIG)
	t.Hdr = dns.RR_Header{Name: "key.example.", Rrtype: dns.TypeTSIG, Class: dns.ClassANY}
	t.Algorithm = dns.HmacSHA256
	t.Error = errCode
	return t
}

// =============================================================================
// Reading Extended Response Codes
// =============================================================================

func TestExtendedRcode_HeaderOnly(t *testing.T) {
	m := newQuery()
	m.Rcode = dns.RcodeNameError

	assert.Equal(t, rcode.ExtendedNXDomain, dnsmsg.ExtendedRcode(m))
	assert.Nil(t, m.IsEdns0())
}

func TestExtendedRcode_SplitAcrossHeaderAndOPT(t *testing.T) {
	// Hand-built message before packing: low nibble in the header, the
	// extension octet on the OPT.
	m := newQuery()
	m.SetEdns0(4096, false)
	m.Rcode = 7
	m.IsEdns0().SetExtendedRcode(uint16(rcode.ExtendedBadCookie))

	assert.Equal(t, rcode.ExtendedBadCookie, dnsmsg.ExtendedRcode(m))
}

func TestExtendedRcode_MergedAfterUnpack(t *testing.T) {
	// Unpacking merges the extension bits into Msg.Rcode while the OPT
	// keeps carrying them. Both locations set must not double-count.
	m := newQuery()
	m.SetEdns0(4096, false)
	m.IsEdns0().SetExtendedRcode(uint16(rcode.ExtendedBadCookie))
	m.Rcode = int(rcode.ExtendedBadCookie)

	assert.Equal(t, rcode.ExtendedBadCookie, dnsmsg.ExtendedRcode(m))
}

// =============================================================================
// Writing Extended Response Codes
// =============================================================================

func TestSetExtendedRcode_SmallCodeNeedsNoOPT(t *testing.T) {
	m := newQuery()

	dnsmsg.SetExtendedRcode(m, rcode.ExtendedRefused)

	assert.Equal(t, int(rcode.Refused), m.Rcode)
	assert.Nil(t, m.IsEdns0())
}

func TestSetExtendedRcode_WideCodeSplitsAcrossOPT(t *testing.T) {
	m := newQuery()

	dnsmsg.SetExtendedRcode(m, rcode.ExtendedBadCookie)

	assert.Equal(t, 7, m.Rcode)
	opt := m.IsEdns0()
	require.NotNil(t, opt)
	assert.Equal(t, 16, opt.ExtendedRcode())
	assert.Equal(t, rcode.ExtendedBadCookie, dnsmsg.ExtendedRcode(m))
}

func TestSetExtendedRcode_ReusesExistingOPT(t *testing.T) {
	m := newQuery()
	m.SetEdns0(4096, true)

	dnsmsg.SetExtendedRcode(m, rcode.ExtendedBadVers)

	opt := m.IsEdns0()
	require.NotNil(t, opt)
	assert.Equal(t, uint16(4096), opt.UDPSize())
	assert.True(t, opt.Do())
	assert.Equal(t, rcode.ExtendedBadVers, dnsmsg.ExtendedRcode(m))
}

func TestSetExtendedRcode_ClearsStaleExtensionBits(t *testing.T) {
	m := newQuery()
	dnsmsg.SetExtendedRcode(m, rcode.ExtendedBadVers)

	dnsmsg.SetExtendedRcode(m, rcode.ExtendedRefused)

	assert.Equal(t, int(rcode.Refused), m.Rcode)
	opt := m.IsEdns0()
	require.NotNil(t, opt)
	assert.Equal(t, 0, opt.ExtendedRcode())
	assert.Equal(t, rcode.ExtendedRefused, dnsmsg.ExtendedRcode(m))
}

func TestSetExtendedRcode_UnregisteredValueSurvives(t *testing.T) {
	// The stored value goes onto the message, so an unregistered code
	// keeps its extension bits instead of being reduced to its low nibble.
	m := newQuery()
	x := rcode.ExtendedFromInt(0x234)

	dnsmsg.SetExtendedRcode(m, x)

	assert.Equal(t, 4, m.Rcode)
	require.NotNil(t, m.IsEdns0())
	assert.Equal(t, 0x230, m.IsEdns0().ExtendedRcode())
	assert.Equal(t, x, dnsmsg.ExtendedRcode(m))
}

// =============================================================================
// TSIG Error Field
// =============================================================================

func TestTsigRcode_NoTSIGRecord(t *testing.T) {
	m := newQuery()

	_, ok := dnsmsg.TsigRcode(m)

	assert.False(t, ok)
}

func TestTsigRcode_ReadsErrorField(t *testing.T) {
	m := newQuery()
	m.Extra = append(m.Extra, tsigRecord(16))

	got, ok := dnsmsg.TsigRcode(m)

	require.True(t, ok)
	assert.Equal(t, rcode.TSIGBadSig, got)
	assert.Equal(t, "BADSIG", got.String())
}

func TestSetTsigError_NoTSIGRecord(t *testing.T) {
	m := newQuery()

	assert.False(t, dnsmsg.SetTsigError(m, rcode.TSIGBadKey))
}

func TestSetTsigError_WritesErrorField(t *testing.T) {
	m := newQuery()
	m.Extra = append(m.Extra, tsigRecord(0))

	ok := dnsmsg.SetTsigError(m, rcode.TSIGBadTime)

	require.True(t, ok)
	got, present := dnsmsg.TsigRcode(m)
	require.True(t, present)
	assert.Equal(t, rcode.TSIGBadTime, got)
	assert.Equal(t, uint16(18), m.IsTsig().Error)
}
