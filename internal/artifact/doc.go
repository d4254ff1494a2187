// Package artifact exposes the collaborator surface used by viewer hosts.
//
// Service answers whether a path can be rendered, produces a rendered HTML
// summary under a fresh file name, and releases that file once the host is
// done with it. The check, render, and release commands wrap the same
// operations for the command line.
package artifact
