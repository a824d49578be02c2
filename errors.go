package glif

import (
	"errors"
	"fmt"
)

// ErrorKind enumerates the semantic reasons for rejecting a GLIF document.
// Every rejection that is not an XML well-formedness failure carries exactly
// one of these codes.
type ErrorKind int

const (
	NoError ErrorKind = iota
	BadIdentifier
	DuplicateElement
	DuplicateIdentifier
	InvalidAnchor
	InvalidAngle
	InvalidCodepoint
	InvalidColor
	InvalidGlyph
	InvalidGuideline
	InvalidImage
	InvalidInteger
	InvalidNumber
	InvalidUnicode
	LibMustBeDictionary
	ParsePlist
	TrailingData
	UnexpectedAttribute
	UnexpectedEof
	UnsupportedGlifVersion
	WrongFirstElement
)

func (k ErrorKind) String() string {
	switch k {
	case NoError:
		return "OK"
	case BadIdentifier:
		return "bad identifier"
	case DuplicateElement:
		return "found duplicate element"
	case DuplicateIdentifier:
		return "duplicate identifier"
	case InvalidAnchor:
		return "invalid anchor element"
	case InvalidAngle:
		return "an angle must be between 0 and 360°"
	case InvalidCodepoint:
		return "invalid codepoint"
	case InvalidColor:
		return "invalid color attribute"
	case InvalidGlyph:
		return "invalid glyph element"
	case InvalidGuideline:
		return "invalid guideline element"
	case InvalidImage:
		return "invalid image element"
	case InvalidInteger:
		return "invalid integer"
	case InvalidNumber:
		return "invalid number"
	case InvalidUnicode:
		return "invalid unicode element"
	case LibMustBeDictionary:
		return "the glyph lib must be a dictionary"
	case ParsePlist:
		return "failed to parse glyph lib"
	case TrailingData:
		return "expected a single 'glyph' element in the glif file"
	case UnexpectedAttribute:
		return "unexpected attribute"
	case UnexpectedEof:
		return "unexpected end of file"
	case UnsupportedGlifVersion:
		return "unsupported glif version"
	case WrongFirstElement:
		return "'glyph' must be the first element in a glif file"
	}
	return "undefined error"
}

// ParseError is a semantic parse failure. It carries a reason code, the
// offending source text where one exists (numbers, codepoints, integers),
// and the low-level cause for diagnostics.
type ParseError struct {
	Kind ErrorKind
	Text string
	wrap error
}

func (e *ParseError) Error() string {
	switch {
	case e.Text != "" && e.wrap != nil:
		return fmt.Sprintf("%s '%s': %v", e.Kind, e.Text, e.wrap)
	case e.Text != "":
		return fmt.Sprintf("%s '%s'", e.Kind, e.Text)
	case e.wrap != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.wrap)
	}
	return e.Kind.String()
}

func (e *ParseError) Unwrap() error {
	return e.wrap
}

// XMLError is a well-formedness failure reported by the XML tokenizer,
// e.g. an unterminated tag or broken encoding. It is never recovered from.
type XMLError struct {
	wrap error
}

func (e *XMLError) Error() string {
	return fmt.Sprintf("failed to parse the XML structure: %v", e.wrap)
}

func (e *XMLError) Unwrap() error {
	return e.wrap
}

// KindOf extracts the semantic reason code from an error chain.
// It returns NoError if err is nil or not a semantic parse failure.
func KindOf(err error) ErrorKind {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return NoError
}

func errParse(kind ErrorKind) error {
	return &ParseError{Kind: kind}
}

func errParseValue(kind ErrorKind, text string, cause error) error {
	return &ParseError{Kind: kind, Text: text, wrap: cause}
}

func errXML(err error) error {
	return &XMLError{wrap: err}
}
