package glif

import (
	"bytes"
	"encoding/xml"
	"io"

	"howett.net/plist"
)

// extractLib locates the byte range of the lib element's content in the
// original buffer and delegates it to the plist parser.
//
// The plist sub-grammar has its own escaping and whitespace rules, so
// re-emitting tokens would risk losing fidelity. Instead the exact slice
// [after <lib>, before </lib>) of the input is parsed, byte for byte.
// Structural matching of the end tag is still the tokenizer's job.
func (p *parser) extractLib() (map[string]interface{}, error) {
	start := p.dec.InputOffset()
	end := start
	depth := 1

scan:
	for {
		pos := p.dec.InputOffset()
		tok, err := p.dec.Token()
		if err == io.EOF {
			return nil, errParse(UnexpectedEof)
		}
		if err != nil {
			return nil, errXML(err)
		}
		switch tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
			if depth == 0 {
				end = pos
				break scan
			}
		}
	}

	// The plist parser sniffs the format from the first byte, so the
	// insignificant whitespace around the dict element has to go. The value
	// bytes themselves stay untouched.
	slice := bytes.TrimSpace(p.doc[start:end])
	tracer().Debugf("glyph lib spans bytes [%d,%d) of the document", start, end)

	var value interface{}
	if _, err := plist.Unmarshal(slice, &value); err != nil {
		return nil, errParseValue(ParsePlist, "", err)
	}
	dict, ok := value.(map[string]interface{})
	if !ok {
		return nil, errParse(LibMustBeDictionary)
	}
	return dict, nil
}
