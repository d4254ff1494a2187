// Package cli constructs the gitglance command-line interface. It wires the
// Cobra command hierarchy to the Viper-backed configuration loader and the
// zap logger, and registers the check, render, release, show and report
// commands.
package cli
