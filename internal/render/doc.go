// Package render classifies repository report lines and renders them as
// documents.
//
// Lines are split on every carriage return and line feed, tagged with at most
// one Category and scanned for http(s) links. HTMLRenderer produces the
// self-contained page handed to viewers; TerminalRenderer writes the same
// classification to a console with ANSI colors.
package render
