package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"

	glif "github.com/madig/experimental-ufoglifparser"
)

// tracer traces with key 'glif'
func tracer() tracing.Trace {
	return tracing.Select("glif")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.glif":      *tlevel,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Println("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	if flag.NArg() != 1 {
		pterm.Error.Println("usage: glifdump [-trace Level] glyph.glif")
		os.Exit(2)
	}
	path := flag.Arg(0)
	doc, err := os.ReadFile(path)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}

	glyph, err := glif.Parse(doc)
	if err != nil {
		tracer().Errorf("%s: %v", path, err)
		pterm.Error.Println(err.Error())
		os.Exit(4)
	}
	dump(glyph)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " glif ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func dump(glyph *glif.Glyph) {
	pterm.Info.Printfln("glyph %q, format %s.%d", glyph.Name, glyph.Format, glyph.FormatMinor)
	pterm.Info.Printfln("advance %v x %v", glyph.Width, glyph.Height)
	if len(glyph.Codepoints) > 0 {
		codepoints := make([]string, len(glyph.Codepoints))
		for i, r := range glyph.Codepoints {
			codepoints[i] = fmt.Sprintf("U+%04X", r)
		}
		pterm.Info.Printfln("codepoints %s", strings.Join(codepoints, " "))
	}
	for _, anchor := range glyph.Anchors {
		pterm.Info.Printfln("anchor %q at (%v,%v)%s", anchor.Name, anchor.X, anchor.Y,
			colorSuffix(anchor.Color))
	}
	for _, guideline := range glyph.Guidelines {
		pterm.Info.Printfln("guideline %q %s%s", guideline.Name,
			describeLine(guideline.Line), colorSuffix(guideline.Color))
	}
	if glyph.Image != nil {
		pterm.Info.Printfln("image %q, transform %+v", glyph.Image.FileName, glyph.Image.Transform)
	}
	if glyph.Note != "" {
		pterm.Info.Printfln("note: %s", glyph.Note)
	}
	if glyph.Lib != nil {
		keys := make([]string, 0, len(glyph.Lib))
		for key := range glyph.Lib {
			keys = append(keys, key)
		}
		pterm.Info.Printfln("lib keys: %s", strings.Join(keys, ", "))
	}
}

func describeLine(line glif.Line) string {
	switch line.Form {
	case glif.LineVertical:
		return fmt.Sprintf("vertical at x=%v", line.X)
	case glif.LineHorizontal:
		return fmt.Sprintf("horizontal at y=%v", line.Y)
	case glif.LineAngled:
		return fmt.Sprintf("through (%v,%v) at %v°", line.X, line.Y, line.Degrees)
	}
	return "?"
}

func colorSuffix(c *glif.Color) string {
	if c == nil {
		return ""
	}
	return ", color " + c.String()
}
