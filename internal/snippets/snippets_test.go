package snippets

import (
	"errors"
	"testing"
)

func TestCheckGo(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr bool
	}{
		{
			name: "complete file",
			src:  "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"hi\")\n}\n",
		},
		{
			name: "file body without package clause",
			src:  "func handler(w http.ResponseWriter, r *http.Request) {\n\tw.Write([]byte(\"ok\"))\n}\n",
		},
		{
			name: "bare statement list",
			src:  "ch := make(chan int)\ngo func() { ch <- 1 }()\n<-ch\n",
		},
		{
			name:    "unbalanced brace",
			src:     "func main() {\n\tfmt.Println(\"hi\"\n}\n",
			wantErr: true,
		},
		{
			name:    "empty",
			src:     "  \n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckGo(tt.src)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckGo() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckJSON(t *testing.T) {
	if err := CheckJSON(`{"name": "primer", "private": true}`); err != nil {
		t.Errorf("valid JSON rejected: %v", err)
	}
	if err := CheckJSON(`{"name": }`); err == nil {
		t.Error("invalid JSON accepted")
	}
}

func TestCheckYAML(t *testing.T) {
	if err := CheckYAML("server:\n  port: 8080\n  debug: true\n"); err != nil {
		t.Errorf("valid YAML rejected: %v", err)
	}
	if err := CheckYAML("server:\n\tport: 8080\n"); err == nil {
		t.Error("tab-indented YAML accepted")
	}
}

func TestLexerCheck(t *testing.T) {
	bash := lexerCheck("bash")
	if err := bash("go build ./... && ./primer serve --port 8080\n"); err != nil {
		t.Errorf("valid shell rejected: %v", err)
	}

	sql := lexerCheck("sql")
	if err := sql("SELECT id, title FROM chapters WHERE weight > 0;\n"); err != nil {
		t.Errorf("valid SQL rejected: %v", err)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	for _, lang := range []string{"go", "GO", " json ", "yaml", "yml", "bash", "sh", "js", "sql"} {
		if !r.Known(lang) {
			t.Errorf("expected %q to be a known language tag", lang)
		}
	}
	if r.Known("cobol") {
		t.Error("cobol should not be a known tag")
	}

	// Unknown tags pass rather than fail.
	if err := r.Check("cobol", "MOVE A TO B."); err != nil {
		t.Errorf("unknown tag should be skipped, got: %v", err)
	}

	if err := r.Check("go", "func broken( {"); err == nil {
		t.Error("broken Go snippet accepted")
	}

	// Custom checkers can be installed.
	r.Register("always-fails", func(string) error { return errTest })
	if err := r.Check("always-fails", "anything"); err != errTest {
		t.Errorf("custom checker not used: %v", err)
	}
}

var errTest = errors.New("test error")
