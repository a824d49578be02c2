/*
Package glif reads glyph description files in the GLIF format, the per-glyph
XML interchange format of UFO font sources
(https://unifiedfontobject.org/versions/ufo3/glyphs/glif/).

A GLIF file holds exactly one glyph: its name, format version, advance,
Unicode codepoints, anchors, guidelines, an optional background image
reference, an optional note and an optional "lib" property dictionary.
Package glif parses one such document from a byte buffer into a Glyph record
in a single streaming pass:

	glyph, err := glif.Parse(buf)
	if err != nil {
	    … // document is rejected as a whole, no partial results
	}
	fmt.Println(glyph.Name, glyph.Width)

Parsing is strict. The first structural or semantic violation aborts the
parse and is reported to the caller, wrapped either in an XMLError (the
document is not well-formed XML) or in a ParseError carrying one of the
ErrorKind reason codes. Retrying with the same buffer reproduces the same
result; parsing has no side effects and no state survives a call, so
concurrent calls on different documents are safe.

The `outline` element (contours, components, points) is currently accepted
but not interpreted; its contents are skipped. Writing GLIF files is not
supported either, this is a one-directional reader.

# Lib data

The content of the `lib` element is an XML property list with its own
escaping and whitespace rules. Package glif does not re-tokenize it; it
hands the exact byte range of the original buffer to the plist parser
(howett.net/plist), so numeric formatting and escaping survive unaltered.
A lib that is not a dictionary at the top level is rejected.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package glif

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'glif'
func tracer() tracing.Trace {
	return tracing.Select("glif")
}
