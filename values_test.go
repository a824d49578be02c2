package glif

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseNumber(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glif")
	defer teardown()
	//
	cases := []struct {
		input string
		want  float64
		fails bool
	}{
		{"0", 0, false},
		{"268", 268, false},
		{"-12", -12, false},
		{"1.234", 1.234, false},
		{"74.123", 74.123, false},
		{"", 0, true},
		{"12,3", 0, true},
		{"abc", 0, true},
	}
	for _, c := range cases {
		got, err := parseNumber(c.input)
		if c.fails {
			if err == nil {
				t.Errorf("parseNumber(%q): expected failure, got %v", c.input, got)
			} else if KindOf(err) != InvalidNumber {
				t.Errorf("parseNumber(%q): expected InvalidNumber, got %v", c.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseNumber(%q): unexpected error %v", c.input, err)
		} else if got != c.want {
			t.Errorf("parseNumber(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestParseNumberRetainsText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glif")
	defer teardown()
	//
	_, err := parseNumber("12#4")
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Text != "12#4" {
		t.Errorf("expected offending text to be retained, got %q", pe.Text)
	}
	if pe.Unwrap() == nil {
		t.Error("expected the strconv cause to be retained")
	}
}

func TestParseUint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glif")
	defer teardown()
	//
	if got, err := parseUint("123"); err != nil || got != 123 {
		t.Errorf("parseUint(\"123\") = %v, %v", got, err)
	}
	for _, input := range []string{"", "-1", "1.5", "abc"} {
		if _, err := parseUint(input); KindOf(err) != InvalidInteger {
			t.Errorf("parseUint(%q): expected InvalidInteger, got %v", input, err)
		}
	}
}

func TestParseCodepoint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glif")
	defer teardown()
	//
	cases := []struct {
		input string
		want  rune
		fails bool
	}{
		{"002E", 0x2E, false},
		{"04D2", 0x4D2, false},
		{"10FFFF", 0x10FFFF, false},
		{"0", 0, false},
		{"110000", 0, true}, // beyond the Unicode range
		{"D800", 0, true},   // surrogate
		{"DFFF", 0, true},
		{"xyz", 0, true},
		{"", 0, true},
	}
	for _, c := range cases {
		got, err := parseCodepoint(c.input)
		if c.fails {
			if KindOf(err) != InvalidCodepoint {
				t.Errorf("parseCodepoint(%q): expected InvalidCodepoint, got %v", c.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseCodepoint(%q): unexpected error %v", c.input, err)
		} else if got != c.want {
			t.Errorf("parseCodepoint(%q) = %U, want %U", c.input, got, c.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glif")
	defer teardown()
	//
	color, err := parseColor("1,0,0,0.5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Color{Red: 1, Green: 0, Blue: 0, Alpha: 0.5}
	if *color != want {
		t.Errorf("parseColor = %v, want %v", *color, want)
	}
	// Only the syntactic shape is enforced, channels are not clamped.
	if _, err := parseColor("2,-1,0,0"); err != nil {
		t.Errorf("out-of-range channels should parse, got %v", err)
	}
	for _, input := range []string{"", "1,0,0", "1,0,0,0,0", "1,0,0,a", "1;0;0;1"} {
		if _, err := parseColor(input); KindOf(err) != InvalidColor {
			t.Errorf("parseColor(%q): expected InvalidColor, got %v", input, err)
		}
	}
}
