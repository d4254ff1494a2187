// Package discovery recognizes git repository roots on disk.
package discovery
