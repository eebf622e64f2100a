package snippets

import (
	"fmt"
	"go/parser"
	"go/token"
	"strings"
)

// CheckGo accepts Go snippets in three shapes, tried in order: a complete
// file, a file body without a package clause, and a bare statement list.
// Tutorial examples are usually the second or third shape.
func CheckGo(src string) error {
	if strings.TrimSpace(src) == "" {
		return fmt.Errorf("empty snippet")
	}

	candidates := []string{
		src,
		"package main\n\n" + src,
		"package main\n\nfunc main() {\n" + src + "\n}",
	}

	var firstErr error
	for _, candidate := range candidates {
		fset := token.NewFileSet()
		_, err := parser.ParseFile(fset, "snippet.go", candidate, 0)
		if err == nil {
			return nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}

	return fmt.Errorf("go syntax: %w", firstErr)
}
