// Package loader reads FanC syntax trees from YAML fixtures.
//
// A fixture is a mapping with a "funcs" list and an optional "source" text
// used when rendering diagnostics:
//
//	source: |
//	  void main() { printi(1); }
//	funcs:
//	  - line: 1
//	    name: main
//	    returns: void
//	    body:
//	      - {kind: call, line: 1, name: printi, args: [{kind: num, value: 1}]}
//
// Every node may carry a "line"; when it is omitted the node's own line in
// the YAML document is used.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matanophir/Compi-3/internal/frontend/ast"
)

// Program is a decoded fixture.
type Program struct {
	Path   string
	Source string // program text, empty when the fixture has none
	Root   *ast.Funcs
}

// DecodeError points at the fixture node that could not be turned into a
// syntax tree.
type DecodeError struct {
	Path     string // node path, e.g. funcs[0].body[2].init
	YAMLLine int
	Msg      string
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("yaml line %d: %s", e.YAMLLine, e.Msg)
	}
	return fmt.Sprintf("yaml line %d: %s: %s", e.YAMLLine, e.Path, e.Msg)
}

// LoadFile decodes the fixture at path.
func LoadFile(path string) (*Program, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer file.Close()

	prog, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", path, err)
	}
	prog.Path = path
	return prog, nil
}

// Decode reads one fixture document from r.
func Decode(r io.Reader) (*Program, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document")
		}
		return nil, fmt.Errorf("parse: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, &DecodeError{YAMLLine: doc.Line, Msg: "expected a document"}
	}

	d := &decoder{}
	return d.program(doc.Content[0])
}
