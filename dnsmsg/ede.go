package dnsmsg

import (
	"github.com/jroosing/dnscodes/ede"
	"github.com/miekg/dns"
)

// AttachEDE appends an Extended DNS Error option to the message's OPT
// record, creating a default OPT first when the message has none. An empty
// text falls back to the registered purpose of the info-code, so receivers
// always get something human-readable for registered codes.
func AttachEDE(m *dns.Msg, code ede.Code, text string) {
	opt := m.IsEdns0()
	if opt == nil {
		m.SetEdns0(defaultUDPPayloadSize, false)
		opt = m.IsEdns0()
	}

	e := new(dns.EDNS0_EDE)
	e.InfoCode = code.ToInt()
	e.ExtraText = text
	if e.ExtraText == "" {
		if code.Known() {
			e.ExtraText = code.String()
		} else if s, ok := dns.ExtendedErrorCodeToString[code.ToInt()]; ok {
			e.ExtraText = s
		}
	}
	opt.Option = append(opt.Option, e)
}

// EDE reads the first Extended DNS Error option of the message. The third
// return is false when the message has no OPT record or the OPT carries no
// EDE option.
func EDE(m *dns.Msg) (ede.Code, string, bool) {
	opt := m.IsEdns0()
	if opt == nil {
		return 0, "", false
	}
	for _, o := range opt.Option {
		if e, ok := o.(*dns.EDNS0_EDE); ok {
			return ede.FromInt(e.InfoCode), e.ExtraText, true
		}
	}
	return 0, "", false
}
