// Package inspect gathers the raw repository report.
//
// Inspector runs a fixed, read-only sequence of git commands in the
// repository directory, one after another, and keeps each command's output
// or error text as a Segment. A failing command never stops the sequence.
package inspect
