// Package snippets checks that fenced code examples are syntactically
// well-formed for their declared language tag. Checks are syntax-level only;
// no snippet is ever executed and no claim is made that examples are
// runnable end-to-end.
package snippets

import "strings"

// CheckFunc validates a snippet body. A nil error means the language's
// front end accepted the snippet.
type CheckFunc func(src string) error

// Registry maps normalized language tags to checkers.
type Registry struct {
	checks map[string]CheckFunc
}

// NewRegistry builds the default registry: native parsers where the ecosystem
// has one (Go, JSON, YAML), lexer-based rejection via chroma for the rest.
func NewRegistry() *Registry {
	r := &Registry{checks: make(map[string]CheckFunc)}

	r.Register("go", CheckGo)
	r.Register("json", CheckJSON)
	r.Register("yaml", CheckYAML)
	r.Register("yml", CheckYAML)

	for _, lang := range []string{"js", "javascript", "sql", "bash", "sh", "shell"} {
		r.Register(lang, lexerCheck(lang))
	}

	return r
}

// Register installs a checker for a language tag.
func (r *Registry) Register(lang string, fn CheckFunc) {
	r.checks[normalize(lang)] = fn
}

// Known reports whether a checker exists for the language tag.
// Unknown tags are skipped by the verifier rather than failed.
func (r *Registry) Known(lang string) bool {
	_, ok := r.checks[normalize(lang)]
	return ok
}

// Check validates a snippet. Snippets with unknown tags pass.
func (r *Registry) Check(lang, src string) error {
	fn, ok := r.checks[normalize(lang)]
	if !ok {
		return nil
	}
	return fn(src)
}

func normalize(lang string) string {
	return strings.ToLower(strings.TrimSpace(lang))
}
