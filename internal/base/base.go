// Package base implements the numeral codec: parsing text in one of
// the supported bases into an unsigned 64-bit value and formatting a
// value back into text.
package base

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Base selects one of the three supported numeral systems.
type Base int

const (
	Hex Base = iota
	Dec
	Bin
)

// ErrUnknownBase is returned when a base name is not one of
// "hex", "dec" or "bin".
var ErrUnknownBase = errors.New("unknown base")

// String returns the short display label used in prompts and result
// echoes.
func (b Base) String() string {
	switch b {
	case Hex:
		return "hex"
	case Dec:
		return "dec"
	case Bin:
		return "bin"
	}
	return "unknown"
}

// ParseName maps a base name to its Base. Names are lower-case and
// exact: "hex", "dec", "bin".
func ParseName(name string) (Base, error) {
	switch name {
	case "hex":
		return Hex, nil
	case "dec":
		return Dec, nil
	case "bin":
		return Bin, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownBase, name)
}

// Parse reads a numeral in base b into an unsigned 64-bit value.
//
// A single trailing "u" literal suffix is accepted for every base.
// Hex input is case-insensitive and the "0x" prefix is optional.
// Binary input is case-insensitive, may carry a "0b" prefix, and
// underscores are ignored. Decimal input is bare digits only: no
// sign, no prefix, no separators. Values past 2^64-1 fail.
func (b Base) Parse(input string) (uint64, error) {
	input = strings.TrimSuffix(input, "u")

	var digits string
	var radix int
	switch b {
	case Hex:
		digits = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(input)), "0x")
		radix = 16
	case Dec:
		digits = input
		radix = 10
	case Bin:
		digits = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(input)), "_", "")
		digits = strings.TrimPrefix(digits, "0b")
		radix = 2
	}

	v, err := strconv.ParseUint(digits, radix, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%s value %q does not fit in 64 bits", b, input)
		}
		return 0, fmt.Errorf("invalid %s numeral %q", b, input)
	}
	return v, nil
}

// Format renders v in base b. Formatting never fails.
//
// Binary output is grouped into nibbles once the value needs more
// than four bits: each 4-bit group is zero-padded and groups are
// joined most-significant first with underscores, so 2701 renders as
// "1010_1000_1101". Smaller values render without padding.
func (b Base) Format(v uint64) string {
	switch b {
	case Hex:
		return "0x" + strconv.FormatUint(v, 16)
	case Bin:
		if v < 16 {
			return strconv.FormatUint(v, 2)
		}
		var groups []string
		for v > 0 {
			groups = append(groups, fmt.Sprintf("%04b", v&0xf))
			v >>= 4
		}
		for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
			groups[i], groups[j] = groups[j], groups[i]
		}
		return strings.Join(groups, "_")
	}
	return strconv.FormatUint(v, 10)
}
