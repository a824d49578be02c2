package glif

import (
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"howett.net/plist"
)

const libFragment = `<dict>
	<key>com.letterror.somestuff</key>
	<string>arbitrary custom data!</string>
	<key>public.markColor</key>
	<string>1,0,0,0.5</string>
	<key>numbers</key>
	<array>
		<integer>1</integer>
		<real>2.5</real>
	</array>
</dict>`

func TestLibExtraction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glif")
	defer teardown()
	//
	xml := `<glyph name="a" format="2"><lib>` + libFragment + `</lib></glyph>`
	glyph, err := Parse([]byte(xml))
	if err != nil {
		t.Fatal(err)
	}
	if glyph.Lib == nil {
		t.Fatal("expected a lib dictionary")
	}
	if got := glyph.Lib["public.markColor"]; got != "1,0,0,0.5" {
		t.Errorf("expected markColor '1,0,0,0.5', got %v", got)
	}

	// Slicing must not mutate the sub-document: the dictionary is the same
	// as parsing the fragment directly.
	var direct interface{}
	if _, err := plist.Unmarshal([]byte(libFragment), &direct); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(glyph.Lib, direct) {
		t.Errorf("lib differs from directly parsed fragment:\n%v\n%v", glyph.Lib, direct)
	}
}

func TestLibMustBeDictionary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glif")
	defer teardown()
	//
	xml := `<glyph name="a" format="2"><lib><string>not a dict</string></lib></glyph>`
	if _, err := Parse([]byte(xml)); KindOf(err) != LibMustBeDictionary {
		t.Errorf("expected LibMustBeDictionary, got %v", err)
	}
}

func TestLibParseFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glif")
	defer teardown()
	//
	// Well-formed XML, but not a property list.
	xml := `<glyph name="a" format="2"><lib><shrubbery/></lib></glyph>`
	_, err := Parse([]byte(xml))
	if KindOf(err) != ParsePlist {
		t.Errorf("expected ParsePlist, got %v", err)
	}
	pe, ok := err.(*ParseError)
	if !ok || pe.Unwrap() == nil {
		t.Error("expected the plist cause to be retained")
	}
}
