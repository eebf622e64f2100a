/*
Package primer is a verifiable handbook engine. It ships an embedded,
chaptered Markdown handbook ("The Server-Side Go Primer") together with the
machinery to load any chapter directory, verify its structure, render it to
the terminal or to HTML, and track reading progress across sessions.

# Concept

A book is a directory of Markdown chapters with YAML frontmatter; index.md is
the table of contents. Chapters are static text: primer never executes the
code examples it carries, it only checks that they are well-formed for their
declared language and that the document's structure holds together: every
table-of-contents entry resolves, every link parses, and rendering is
deterministic.

# Architecture

The engine is hexagonal: pkg/domain holds the structural model (chapters,
sections, code blocks, findings, reading state), pkg/ports the loader and
store contracts, and adapters supply the backends (embedded FS, directory
with hot reload, memory, file, Redis). The CLI, HTTP server, and MCP server
are thin surfaces over the same Book API.

# Usage

	package main

	import (
		"fmt"
		"log"

		"primer"
	)

	func main() {
		// Open the embedded handbook. Pass a directory path to load
		// your own chapters instead.
		book, err := primer.New("")
		if err != nil {
			log.Fatal(err)
		}

		// Walk the table of contents.
		toc, err := book.TOC()
		if err != nil {
			log.Fatal(err)
		}
		for _, entry := range toc {
			fmt.Printf("%2d. %s\n", entry.Weight, entry.Title)
		}

		// Verify the book's structure.
		findings, err := book.Verify()
		if err != nil {
			log.Fatal(err)
		}
		for _, f := range findings {
			fmt.Println(f)
		}
	}
*/
package primer
