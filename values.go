package glif

import (
	"errors"
	"strconv"
	"strings"
)

// Primitive value parsers for attribute text. All of them retain the
// offending source text and the strconv cause in the returned error.

func parseNumber(value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errParseValue(InvalidNumber, value, err)
	}
	return f, nil
}

func parseUint(value string) (uint32, error) {
	u, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, errParseValue(InvalidInteger, value, err)
	}
	return uint32(u), nil
}

var errNotScalarValue = errors.New("not a Unicode scalar value")

// parseCodepoint reads a base-16 codepoint and checks that it is a Unicode
// scalar value, i.e. in range and not a surrogate.
func parseCodepoint(value string) (rune, error) {
	u, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		return 0, errParseValue(InvalidCodepoint, value, err)
	}
	if u > 0x10FFFF || (u >= 0xD800 && u <= 0xDFFF) {
		return 0, errParseValue(InvalidCodepoint, value, errNotScalarValue)
	}
	return rune(u), nil
}

// parseColor reads the "r,g,b,a" color syntax: exactly four comma-separated
// floats, no surrounding whitespace.
func parseColor(value string) (*Color, error) {
	fields := strings.Split(value, ",")
	if len(fields) != 4 {
		return nil, errParse(InvalidColor)
	}
	var channels [4]float64
	for i, field := range fields {
		f, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errParse(InvalidColor)
		}
		channels[i] = f
	}
	return &Color{
		Red:   channels[0],
		Green: channels[1],
		Blue:  channels[2],
		Alpha: channels[3],
	}, nil
}
