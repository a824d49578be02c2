package glif

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// Parse reads one GLIF document from doc and returns the glyph it
// describes. The whole buffer must be present up front; the lib element is
// handed to the plist parser as an exact byte range of doc.
//
// The first violation anywhere rejects the document as a whole: there is no
// partial-result mode. A malformed XML structure is reported as *XMLError,
// a structural or semantic violation as *ParseError.
func Parse(doc []byte) (*Glyph, error) {
	tracer().Debugf("parsing glif document of %d bytes", len(doc))
	p := &parser{
		dec: xml.NewDecoder(bytes.NewReader(doc)),
		doc: doc,
		ids: newIdentifierRegistry(),
	}
	return p.run()
}

// parser carries the per-document parse context: the token source, the
// original buffer (for lib slicing), the identifier registry and the
// cardinality flags for once-only elements.
type parser struct {
	dec         *xml.Decoder
	doc         []byte
	ids         *identifierRegistry
	seenAdvance bool
	seenLib     bool
	seenNote    bool
}

type parseState uint8

const (
	stateStart   parseState = iota // before the glyph element
	stateInGlyph                   // inside the glyph element
	stateDone                      // after </glyph>, expecting end of input
)

func (p *parser) run() (*Glyph, error) {
	state := stateStart
	var glyph *Glyph

	for {
		tok, err := p.dec.Token()
		if err == io.EOF {
			if state == stateDone {
				return glyph, nil
			}
			return nil, errParse(UnexpectedEof)
		}
		if err != nil {
			return nil, errXML(err)
		}

		switch t := tok.(type) {
		case xml.Comment, xml.ProcInst, xml.Directive:
			// transparent in every state

		case xml.CharData:
			if len(bytes.TrimSpace(t)) == 0 {
				break
			}
			if state == stateDone {
				return nil, errParse(TrailingData)
			}
			// Loose text anywhere else passes through, like any other
			// unrecognized content.

		case xml.StartElement:
			switch state {
			case stateStart:
				// The first and only top-level element must be a glyph.
				if t.Name.Local != "glyph" || t.Name.Space != "" {
					return nil, errParse(WrongFirstElement)
				}
				glyph, err = p.parseGlyph(t.Attr)
				if err != nil {
					return nil, err
				}
				state = stateInGlyph
			case stateInGlyph:
				if err := p.child(glyph, t); err != nil {
					return nil, err
				}
			case stateDone:
				return nil, errParse(TrailingData)
			}

		case xml.EndElement:
			switch {
			case state == stateInGlyph && t.Name.Local == "glyph":
				state = stateDone
			case state == stateDone:
				return nil, errParse(TrailingData)
			}
			// End tags of skipped elements pass through.
		}
	}
}

// child folds one immediate (or, by inherited looseness, nested) element of
// the glyph into the record. Unknown element names are skipped one event at
// a time; this keeps the outline subtree syntactically accepted but
// unmodeled.
func (p *parser) child(glyph *Glyph, elem xml.StartElement) error {
	switch elem.Name.Local {
	case "unicode":
		codepoint, err := parseUnicode(elem.Attr)
		if err != nil {
			return err
		}
		glyph.Codepoints = append(glyph.Codepoints, codepoint)

	case "anchor":
		anchor, err := p.parseAnchor(elem.Attr, glyph.Format)
		if err != nil {
			return err
		}
		glyph.Anchors = append(glyph.Anchors, anchor)

	case "guideline":
		guideline, err := p.parseGuideline(elem.Attr, glyph.Format)
		if err != nil {
			return err
		}
		glyph.Guidelines = append(glyph.Guidelines, guideline)

	case "advance":
		if p.seenAdvance {
			return errParse(DuplicateElement)
		}
		p.seenAdvance = true
		height, width, err := parseAdvance(elem.Attr)
		if err != nil {
			return err
		}
		glyph.Height = height
		glyph.Width = width

	case "note":
		if p.seenNote {
			return errParse(DuplicateElement)
		}
		p.seenNote = true
		note, err := p.readNoteText()
		if err != nil {
			return err
		}
		glyph.Note = note

	case "lib":
		if p.seenLib {
			return errParse(DuplicateElement)
		}
		p.seenLib = true
		lib, err := p.extractLib()
		if err != nil {
			return err
		}
		glyph.Lib = lib

	case "image":
		if glyph.Image != nil {
			return errParse(DuplicateElement)
		}
		image, err := parseImage(elem.Attr)
		if err != nil {
			return err
		}
		glyph.Image = image
	}
	return nil
}

// parseGlyph builds the glyph record from the attributes of the opening
// glyph tag. name and format are required, formatMinor defaults to 0.
func (p *parser) parseGlyph(attrs []xml.Attr) (*Glyph, error) {
	var name string
	var format GlifVersion
	var formatMinor uint32

	for _, attr := range attrs {
		if attr.Name.Space != "" {
			return nil, errParse(UnexpectedAttribute)
		}
		switch attr.Name.Local {
		case "name":
			name = attr.Value
		case "format":
			switch attr.Value {
			case "1":
				format = V1
			case "2":
				format = V2
			default:
				return nil, errParse(UnsupportedGlifVersion)
			}
		case "formatMinor":
			minor, err := parseUint(attr.Value)
			if err != nil {
				return nil, err
			}
			formatMinor = minor
		default:
			return nil, errParse(UnexpectedAttribute)
		}
	}

	if name == "" || format == 0 {
		return nil, errParse(InvalidGlyph)
	}
	tracer().Debugf("glyph '%s', format %s.%d", name, format, formatMinor)
	return &Glyph{
		Name:        name,
		Format:      format,
		FormatMinor: formatMinor,
	}, nil
}

func parseAdvance(attrs []xml.Attr) (height, width float64, err error) {
	for _, attr := range attrs {
		if attr.Name.Space != "" {
			return 0, 0, errParse(UnexpectedAttribute)
		}
		switch attr.Name.Local {
		case "height":
			if height, err = parseNumber(attr.Value); err != nil {
				return 0, 0, err
			}
		case "width":
			if width, err = parseNumber(attr.Value); err != nil {
				return 0, 0, err
			}
		default:
			return 0, 0, errParse(UnexpectedAttribute)
		}
	}
	return height, width, nil
}

func parseUnicode(attrs []xml.Attr) (rune, error) {
	codepoint := rune(-1)
	for _, attr := range attrs {
		if attr.Name.Space != "" {
			return 0, errParse(UnexpectedAttribute)
		}
		switch attr.Name.Local {
		case "hex":
			r, err := parseCodepoint(attr.Value)
			if err != nil {
				return 0, err
			}
			codepoint = r
		default:
			return 0, errParse(UnexpectedAttribute)
		}
	}
	if codepoint < 0 {
		return 0, errParse(InvalidUnicode)
	}
	return codepoint, nil
}

func (p *parser) parseAnchor(attrs []xml.Attr, format GlifVersion) (Anchor, error) {
	var x, y *float64
	var name string
	var color *Color
	var identifier *Identifier

	for _, attr := range attrs {
		if attr.Name.Space != "" {
			return Anchor{}, errParse(UnexpectedAttribute)
		}
		switch attr.Name.Local {
		case "x":
			f, err := parseNumber(attr.Value)
			if err != nil {
				return Anchor{}, err
			}
			x = &f
		case "y":
			f, err := parseNumber(attr.Value)
			if err != nil {
				return Anchor{}, err
			}
			y = &f
		case "name":
			name = attr.Value
		case "color":
			c, err := parseColor(attr.Value)
			if err != nil {
				return Anchor{}, err
			}
			color = c
		case "identifier":
			id, err := p.ids.register(attr.Value, format)
			if err != nil {
				return Anchor{}, err
			}
			identifier = id
		default:
			return Anchor{}, errParse(UnexpectedAttribute)
		}
	}

	if x == nil || y == nil {
		return Anchor{}, errParse(InvalidAnchor)
	}
	return Anchor{X: *x, Y: *y, Name: name, Color: color, Identifier: identifier}, nil
}

func (p *parser) parseGuideline(attrs []xml.Attr, format GlifVersion) (Guideline, error) {
	var x, y, angle *float64
	var name string
	var color *Color
	var identifier *Identifier

	for _, attr := range attrs {
		if attr.Name.Space != "" {
			return Guideline{}, errParse(UnexpectedAttribute)
		}
		switch attr.Name.Local {
		case "x":
			f, err := parseNumber(attr.Value)
			if err != nil {
				return Guideline{}, err
			}
			x = &f
		case "y":
			f, err := parseNumber(attr.Value)
			if err != nil {
				return Guideline{}, err
			}
			y = &f
		case "angle":
			f, err := parseNumber(attr.Value)
			if err != nil {
				return Guideline{}, err
			}
			if f < 0 || f > 360 {
				return Guideline{}, errParse(InvalidAngle)
			}
			angle = &f
		case "name":
			name = attr.Value
		case "color":
			c, err := parseColor(attr.Value)
			if err != nil {
				return Guideline{}, err
			}
			color = c
		case "identifier":
			id, err := p.ids.register(attr.Value, format)
			if err != nil {
				return Guideline{}, err
			}
			identifier = id
		default:
			return Guideline{}, errParse(UnexpectedAttribute)
		}
	}

	// Exactly three shapes are legal: x alone, y alone, or all of x, y
	// and angle.
	var line Line
	switch {
	case x != nil && y == nil && angle == nil:
		line = VerticalLine(*x)
	case x == nil && y != nil && angle == nil:
		line = HorizontalLine(*y)
	case x != nil && y != nil && angle != nil:
		line = AngledLine(*x, *y, *angle)
	default:
		return Guideline{}, errParse(InvalidGuideline)
	}

	return Guideline{Line: line, Name: name, Color: color, Identifier: identifier}, nil
}

func parseImage(attrs []xml.Attr) (*Image, error) {
	var fileName string
	var haveFileName bool
	var color *Color
	transform := identityTransform()

	for _, attr := range attrs {
		if attr.Name.Space != "" {
			return nil, errParse(UnexpectedAttribute)
		}
		var err error
		switch attr.Name.Local {
		case "xScale":
			transform.XScale, err = parseNumber(attr.Value)
		case "xyScale":
			transform.XYScale, err = parseNumber(attr.Value)
		case "yxScale":
			transform.YXScale, err = parseNumber(attr.Value)
		case "yScale":
			transform.YScale, err = parseNumber(attr.Value)
		case "xOffset":
			transform.XOffset, err = parseNumber(attr.Value)
		case "yOffset":
			transform.YOffset, err = parseNumber(attr.Value)
		case "color":
			color, err = parseColor(attr.Value)
		case "fileName":
			fileName = attr.Value
			haveFileName = true
		default:
			return nil, errParse(UnexpectedAttribute)
		}
		if err != nil {
			return nil, err
		}
	}

	if !haveFileName {
		return nil, errParse(InvalidImage)
	}
	return &Image{FileName: fileName, Color: color, Transform: transform}, nil
}

// readNoteText consumes the note subtree and returns its character data,
// trimmed. Markup inside a note carries no meaning and is dropped.
func (p *parser) readNoteText() (string, error) {
	var text strings.Builder
	depth := 1
	for {
		tok, err := p.dec.Token()
		if err == io.EOF {
			return "", errParse(UnexpectedEof)
		}
		if err != nil {
			return "", errXML(err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			if depth == 1 {
				text.Write(t)
			}
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
			if depth == 0 {
				return strings.TrimSpace(text.String()), nil
			}
		}
	}
}
