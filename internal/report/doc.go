// Package report serializes inspection reports as YAML, keeping the
// per-command attribution that the rendered document flattens away.
package report
