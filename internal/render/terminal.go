package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const (
	unsupportedColorModeTemplateConstant = "unsupported color mode: %s"
)

// ColorMode controls whether terminal output carries ANSI colors.
type ColorMode string

// Supported color modes.
const (
	ColorModeAuto   ColorMode = ColorMode("auto")
	ColorModeAlways ColorMode = ColorMode("always")
	ColorModeNever  ColorMode = ColorMode("never")
)

// ParseColorMode converts a configuration value into a ColorMode. Empty selects auto.
func ParseColorMode(value string) (ColorMode, error) {
	switch ColorMode(strings.ToLower(strings.TrimSpace(value))) {
	case ColorMode(""), ColorModeAuto:
		return ColorModeAuto, nil
	case ColorModeAlways:
		return ColorModeAlways, nil
	case ColorModeNever:
		return ColorModeNever, nil
	default:
		return ColorModeAuto, fmt.Errorf(unsupportedColorModeTemplateConstant, value)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for configuration decoding.
func (colorMode *ColorMode) UnmarshalText(text []byte) error {
	parsedColorMode, parseError := ParseColorMode(string(text))
	if parseError != nil {
		return parseError
	}
	*colorMode = parsedColorMode
	return nil
}

var categoryColorAttributes = map[Category][]color.Attribute{
	CategoryGitCommand: {color.FgBlue, color.Bold},
	CategoryFileChange: {color.FgRed},
	CategoryBranchInfo: {color.FgMagenta},
	CategoryStatusInfo: {color.FgGreen},
}

var plainLinkColorAttributes = []color.Attribute{color.FgBlue}

// TerminalRenderer writes classified report lines to a terminal, coloring them by category.
type TerminalRenderer struct {
	policy    ClassificationPolicy
	colorMode ColorMode
}

// NewTerminalRenderer constructs a terminal renderer.
func NewTerminalRenderer(policy ClassificationPolicy, colorMode ColorMode) *TerminalRenderer {
	if policy != ClassificationFirstMatch {
		policy = ClassificationLastMatch
	}
	return &TerminalRenderer{policy: policy, colorMode: colorMode}
}

// Render writes every report line followed by a newline and returns the number of lines written.
func (renderer *TerminalRenderer) Render(writer io.Writer, reportText string) (int, error) {
	colorEnabled := renderer.colorEnabled(writer)
	classifiedLines := ClassifyReport(reportText, renderer.policy)
	for _, classifiedLine := range classifiedLines {
		if _, writeError := io.WriteString(writer, renderTerminalLine(classifiedLine, colorEnabled)+lineTerminatorConstant); writeError != nil {
			return 0, writeError
		}
	}
	return len(classifiedLines), nil
}

func (renderer *TerminalRenderer) colorEnabled(writer io.Writer) bool {
	switch renderer.colorMode {
	case ColorModeAlways:
		return true
	case ColorModeNever:
		return false
	}

	terminalFile, isFile := writer.(*os.File)
	if !isFile || color.NoColor {
		return false
	}
	fileDescriptor := terminalFile.Fd()
	return isatty.IsTerminal(fileDescriptor) || isatty.IsCygwinTerminal(fileDescriptor)
}

// renderTerminalLine colors plain and link fragments separately so the underline on a link
// does not reset the category color for the rest of the line.
func renderTerminalLine(classifiedLine ClassifiedLine, colorEnabled bool) string {
	if !colorEnabled {
		return classifiedLine.Text
	}

	lineAttributes := categoryColorAttributes[classifiedLine.Category]
	linkAttributes := append(append([]color.Attribute{}, lineAttributes...), color.Underline)
	if len(lineAttributes) == 0 {
		linkAttributes = append(append([]color.Attribute{}, plainLinkColorAttributes...), color.Underline)
	}

	lineColor := color.New(lineAttributes...)
	lineColor.EnableColor()
	linkColor := color.New(linkAttributes...)
	linkColor.EnableColor()

	var builder strings.Builder
	fragmentStart := 0
	for _, linkBounds := range linkPattern.FindAllStringIndex(classifiedLine.Text, -1) {
		builder.WriteString(colorFragment(lineColor, lineAttributes, classifiedLine.Text[fragmentStart:linkBounds[0]]))
		builder.WriteString(linkColor.Sprint(classifiedLine.Text[linkBounds[0]:linkBounds[1]]))
		fragmentStart = linkBounds[1]
	}
	builder.WriteString(colorFragment(lineColor, lineAttributes, classifiedLine.Text[fragmentStart:]))
	return builder.String()
}

func colorFragment(fragmentColor *color.Color, attributes []color.Attribute, fragment string) string {
	if len(fragment) == 0 || len(attributes) == 0 {
		return fragment
	}
	return fragmentColor.Sprint(fragment)
}
