package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/jroosing/dnscodes/ede"
	"github.com/jroosing/dnscodes/internal/helpers"
	"github.com/jroosing/dnscodes/opcode"
	"github.com/jroosing/dnscodes/rcode"
)

func main() {
	var (
		codeArg = flag.Int("code", -1, "Numeric code to describe")
		nameArg = flag.String("name", "", "Mnemonic to look up (case-insensitive, takes precedence over -code)")
		space   = flag.String("space", "rcode", "Code space: rcode, extended, tsig, opcode, ede or all")
		list    = flag.Bool("list", false, "Print the registered codes of the space")
	)
	flag.Parse()

	if err := run(*space, *codeArg, *nameArg, *list); err != nil {
		fmt.Fprintf(os.Stderr, "rcodeinfo error: %v\n", err)
		os.Exit(1)
	}
}

func run(space string, code int, name string, list bool) error {
	spaces := []string{space}
	if space == "all" {
		spaces = []string{"rcode", "extended", "tsig", "opcode", "ede"}
	} else if !validSpace(space) {
		return fmt.Errorf("unknown space %q (want rcode, extended, tsig, opcode, ede or all)", space)
	}

	switch {
	case list:
		for _, s := range spaces {
			listSpace(s)
		}
		return nil
	case name != "":
		matched := false
		for _, s := range spaces {
			v, err := resolveName(s, name)
			if err != nil {
				if len(spaces) == 1 {
					return err
				}
				continue
			}
			matched = true
			describeValue(s, v)
		}
		if !matched {
			return fmt.Errorf("no code space matches %q", name)
		}
		return nil
	case code >= 0:
		for _, s := range spaces {
			describeValue(s, code)
		}
		return nil
	default:
		return errors.New("one of -list, -code or -name is required")
	}
}

func validSpace(s string) bool {
	switch s {
	case "rcode", "extended", "tsig", "opcode", "ede":
		return true
	}
	return false
}

// resolveName parses a mnemonic or decimal string in the given space and
// returns the stored value of the result.
func resolveName(space, name string) (int, error) {
	switch space {
	case "rcode":
		c, err := rcode.Parse(name)
		return int(c), err
	case "extended":
		x, err := rcode.ParseExtended(name)
		return int(x), err
	case "tsig":
		c, err := rcode.ParseTSIG(name)
		return int(c), err
	case "opcode":
		c, err := opcode.Parse(name)
		return int(c), err
	case "ede":
		c, err := ede.Parse(name)
		return int(c), err
	}
	return 0, fmt.Errorf("unknown space %q", space)
}

// describeValue prints one line per code: the stored value, its rendering,
// registry membership and the cross-space views. The extended and tsig
// lines add value=, the numeric form their ToInt reduction yields, which
// differs from the stored value for unregistered codes.
func describeValue(space string, v int) {
	switch space {
	case "rcode":
		c := rcode.FromInt(helpers.ClampIntToUint8(v))
		fmt.Printf("rcode %d name=%s known=%v extended=%s tsig=%s\n",
			c.ToInt(), c, c.Known(), rcode.ExtendedFromCode(c), rcode.TSIGFromCode(c))
	case "extended":
		x := rcode.ExtendedFromInt(helpers.ClampIntToUint16(v))
		base, ext := x.Parts()
		fmt.Printf("extended %d name=%s known=%v value=%d base=%s ext=%d tsig=%s\n",
			uint16(x), x, x.Known(), x.ToInt(), base, ext, rcode.TSIGFromExtended(x))
	case "tsig":
		c := rcode.TSIGFromInt(helpers.ClampIntToUint16(v))
		fmt.Printf("tsig %d name=%s known=%v value=%d base=%s\n",
			uint16(c), c, c.Known(), c.ToInt(), c.Code())
	case "opcode":
		c := opcode.FromInt(helpers.ClampIntToUint8(v))
		fmt.Printf("opcode %d name=%s known=%v\n", c.ToInt(), c, c.Known())
	case "ede":
		c := ede.FromInt(helpers.ClampIntToUint16(v))
		fmt.Printf("ede %d purpose=%s known=%v private=%v\n",
			c.ToInt(), c, c.Known(), c.Private())
	}
}

// listSpace sweeps the space's full numeric range and prints the values the
// registry names, in ascending order.
func listSpace(space string) {
	switch space {
	case "rcode":
		for v := 0; v <= 0x0F; v++ {
			if c := rcode.FromInt(helpers.ClampIntToUint8(v)); c.Known() {
				fmt.Printf("rcode %2d %s\n", c.ToInt(), c)
			}
		}
	case "extended":
		for v := 0; v <= 0x0FFF; v++ {
			if x := rcode.ExtendedFromInt(helpers.ClampIntToUint16(v)); x.Known() {
				fmt.Printf("extended %4d %s\n", x.ToInt(), x)
			}
		}
	case "tsig":
		for v := 0; v <= 0xFFFF; v++ {
			if c := rcode.TSIGFromInt(helpers.ClampIntToUint16(v)); c.Known() {
				fmt.Printf("tsig %5d %s\n", c.ToInt(), c)
			}
		}
	case "opcode":
		for v := 0; v <= 0x0F; v++ {
			if c := opcode.FromInt(helpers.ClampIntToUint8(v)); c.Known() {
				fmt.Printf("opcode %2d %s\n", c.ToInt(), c)
			}
		}
	case "ede":
		for v := 0; v <= 0xFFFF; v++ {
			if c := ede.FromInt(helpers.ClampIntToUint16(v)); c.Known() {
				fmt.Printf("ede %5d %s\n", c.ToInt(), c)
			}
		}
	}
}
