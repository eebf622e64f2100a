// Package book carries the built-in handbook, "The Server-Side Go Primer",
// embedded so the primer binary is self-contained.
package book

import "embed"

// Files holds the handbook chapters. IDs are file names without extension;
// index.md is the table of contents.
//
//go:embed *.md
var Files embed.FS
