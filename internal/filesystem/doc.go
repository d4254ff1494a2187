// Package filesystem provides the operating-system backed implementation of
// the filesystem collaborators used by repository detection and artifact
// storage.
package filesystem
