package primer_test

import (
	"fmt"
	"log"

	"primer"
)

// Example opens the embedded handbook and walks its table of contents.
func Example() {
	book, err := primer.New("")
	if err != nil {
		log.Fatal(err)
	}

	toc, err := book.TOC()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(len(toc), "chapters, starting with", toc[0].ChapterID)
	// Output: 10 chapters, starting with getting-started
}

// ExampleBook_Verify runs the structural checks a book must pass.
func ExampleBook_Verify() {
	book, err := primer.New("")
	if err != nil {
		log.Fatal(err)
	}

	findings, err := book.Verify()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("findings:", len(findings))
	// Output: findings: 0
}
