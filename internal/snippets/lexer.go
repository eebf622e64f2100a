package snippets

import (
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// lexerCheck builds a checker backed by a chroma lexer. Languages without a
// native parser in the Go ecosystem (js, sql, shell) get a weaker check:
// tokenization must complete without error tokens.
func lexerCheck(lang string) CheckFunc {
	return func(src string) error {
		lexer := lexers.Get(lang)
		if lexer == nil {
			// No lexer registered for this tag; treat as unknown.
			return nil
		}
		lexer = chroma.Coalesce(lexer)

		it, err := lexer.Tokenise(nil, src)
		if err != nil {
			return fmt.Errorf("%s lexer: %w", lang, err)
		}

		for tok := it(); tok != chroma.EOF; tok = it() {
			if tok.Type == chroma.Error {
				return fmt.Errorf("%s lexer rejected input near %q", lang, truncate(tok.Value, 40))
			}
		}
		return nil
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
