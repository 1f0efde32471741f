//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/matanophir/Compi-3/internal/compiler"
)

// The browser playground calls semantCheck(fixture, dumpScopes[, entry])
// with a YAML syntax tree and gets back {accepted, output, scopes, line}.
// Diagnostics and the scope dump are rendered as HTML.
func main() {
	js.Global().Set("semantCheck", js.FuncOf(semantCheck))
	<-make(chan struct{})
}

func semantCheck(_ js.Value, args []js.Value) any {
	if len(args) < 2 || args[0].Type() != js.TypeString {
		return map[string]any{
			"accepted": false,
			"output":   "semantCheck(fixture string, dumpScopes bool[, entry string])",
		}
	}

	opts := &compiler.Options{
		Code:       args[0].String(),
		DumpScopes: args[1].Truthy(),
		LogFormat:  compiler.HTML,
	}
	if len(args) > 2 && args[2].Type() == js.TypeString {
		opts.EntryFunction = args[2].String()
	}

	result := compiler.Compile(opts)
	line := 0
	if result.Diagnostic != nil {
		line = result.Diagnostic.Line
	}
	return map[string]any{
		"accepted": result.Success,
		"output":   result.Output,
		"scopes":   result.Scopes,
		"line":     line,
	}
}
