package glif

import "fmt"

// GlifVersion is the format version of a GLIF document, as declared by the
// `format` attribute of the glyph element.
type GlifVersion uint8

const (
	// V1 is the UFO 1/2 glyph format. It predates identifiers and guidelines.
	V1 GlifVersion = iota + 1
	// V2 is the UFO 3 glyph format.
	V2
)

func (v GlifVersion) String() string {
	switch v {
	case V1:
		return "1"
	case V2:
		return "2"
	}
	return "?"
}

// Glyph is the in-memory record of one parsed GLIF document. It is built up
// by Parse while walking the document and is not mutated afterwards.
type Glyph struct {
	Name        string
	Format      GlifVersion
	FormatMinor uint32
	Width       float64
	Height      float64
	Codepoints  []rune      // document order, duplicates permitted
	Anchors     []Anchor    // document order
	Guidelines  []Guideline // document order
	Image       *Image
	Note        string
	Lib         map[string]interface{}
}

// Anchor is a named reference position on a glyph.
type Anchor struct {
	X          float64
	Y          float64
	Name       string
	Color      *Color
	Identifier *Identifier
}

// Guideline is a reference line on a glyph.
type Guideline struct {
	Line       Line
	Name       string
	Color      *Color
	Identifier *Identifier
}

// LineForm discriminates the three legal shapes of a guideline.
type LineForm uint8

const (
	LineVertical LineForm = iota + 1
	LineHorizontal
	LineAngled
)

// Line is a guideline descriptor: a vertical line at X, a horizontal line
// at Y, or a line through (X, Y) at Degrees. Only the fields belonging to
// Form are meaningful.
type Line struct {
	Form    LineForm
	X       float64
	Y       float64
	Degrees float64
}

// VerticalLine is a line descriptor for a vertical guideline at x.
func VerticalLine(x float64) Line {
	return Line{Form: LineVertical, X: x}
}

// HorizontalLine is a line descriptor for a horizontal guideline at y.
func HorizontalLine(y float64) Line {
	return Line{Form: LineHorizontal, Y: y}
}

// AngledLine is a line descriptor for a guideline through (x, y) with an
// angle of degrees, counter-clockwise from the horizontal.
func AngledLine(x, y, degrees float64) Line {
	return Line{Form: LineAngled, X: x, Y: y, Degrees: degrees}
}

// Image is a background image reference of a glyph.
type Image struct {
	FileName  string // path relative to the UFO's images directory
	Color     *Color
	Transform AffineTransform
}

// AffineTransform is a 2D affine transformation in the order used
// throughout UFO: x-scale, xy-scale, yx-scale, y-scale, x-offset, y-offset.
type AffineTransform struct {
	XScale  float64
	XYScale float64
	YXScale float64
	YScale  float64
	XOffset float64
	YOffset float64
}

// identityTransform has unit scale and zero offset. Unspecified transform
// attributes of an image keep the identity's component, not zero.
func identityTransform() AffineTransform {
	return AffineTransform{XScale: 1, YScale: 1}
}

// Color is an RGBA color with channels nominally in [0, 1]. The parser
// checks only the syntactic shape "r,g,b,a"; it does not clamp.
type Color struct {
	Red   float64
	Green float64
	Blue  float64
	Alpha float64
}

func (c Color) String() string {
	return fmt.Sprintf("%v,%v,%v,%v", c.Red, c.Green, c.Blue, c.Alpha)
}
