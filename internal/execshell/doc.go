// Package execshell runs git as an external process in a testable manner.
//
// CommandRunner abstracts process creation so tests can substitute scripted
// results, OSCommandRunner is the os/exec implementation, and ShellExecutor
// layers zap logging and CommandEventObserver notifications on top.
package execshell
