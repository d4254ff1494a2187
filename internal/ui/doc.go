// Package ui provides helpers for formatting human-readable console output.
//
// ConsoleCommandEventLogger turns git command lifecycle events into short
// progress lines with elapsed times, while detailed telemetry keeps flowing
// through the structured logger owned by the shell executor.
package ui
