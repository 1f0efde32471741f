package compiler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/matanophir/Compi-3/colors"
	"github.com/matanophir/Compi-3/internal/diagnostics"
	"github.com/matanophir/Compi-3/internal/frontend/loader"
	"github.com/matanophir/Compi-3/internal/semantics/checker"
	"github.com/matanophir/Compi-3/internal/semantics/scopes"
)

type FORMAT int

const (
	ANSI FORMAT = iota
	HTML
	PLAIN
)

// memoryPath names in-memory programs in diagnostics.
const memoryPath = "<memory>"

// Options for compilation
type Options struct {
	// For file-based compilation
	EntryFile string
	// For in-memory compilation: a YAML syntax tree fixture
	Code string
	// Debug output
	Debug bool
	// Where debug output goes; defaults to stdout
	Trace io.Writer
	// Render the scope dump of accepted programs
	DumpScopes bool
	// Output format: ANSI, HTML or PLAIN
	LogFormat FORMAT
	// Name of the required "void name()" function; defaults to main
	EntryFunction string
}

// Result of compilation
type Result struct {
	Path    string
	Success bool
	// Rendered diagnostics, in the requested format
	Output string
	// Scope dump; set for accepted programs when DumpScopes is on
	Scopes string
	// The diagnostic that rejected the program, nil on success
	Diagnostic *diagnostics.Diagnostic
}

func (opts *Options) trace() io.Writer {
	if !opts.Debug {
		return nil
	}
	if opts.Trace != nil {
		return opts.Trace
	}
	return os.Stdout
}

func (opts *Options) render(s string) string {
	switch opts.LogFormat {
	case HTML:
		return colors.ConvertANSIToHTML(s)
	case PLAIN:
		return colors.StripANSI(s)
	default:
		return s
	}
}

// Compile loads one program and runs semantic analysis over it.
func Compile(opts *Options) Result {
	return compile(opts, nil)
}

// CompileAll checks every file concurrently. Each file gets its own symbol
// table; results come back in input order. Every rejecting diagnostic is
// also collected in the returned bag. Debug traces are buffered per file and
// written in input order once all files are done.
func CompileAll(paths []string, opts *Options) ([]Result, *diagnostics.DiagnosticBag) {
	shared := diagnostics.NewDiagnosticBag()
	results := make([]Result, len(paths))
	traces := make([]bytes.Buffer, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			fileOpts := *opts
			fileOpts.EntryFile = path
			fileOpts.Code = ""
			fileOpts.Trace = &traces[i]
			results[i] = compile(&fileOpts, shared)
		}(i, path)
	}
	wg.Wait()

	if trace := opts.trace(); trace != nil {
		for i := range traces {
			if _, err := traces[i].WriteTo(trace); err != nil {
				break
			}
		}
	}
	return results, shared
}

func compile(opts *Options, sink diagnostics.Sink) Result {
	trace := opts.trace()
	bag := diagnostics.NewDiagnosticBag()

	path := opts.EntryFile
	if opts.Code != "" || path == "" {
		path = memoryPath
	}
	result := Result{Path: path}

	report := func(diag *diagnostics.Diagnostic) Result {
		bag.Add(diag)
		if sink != nil {
			sink.Add(diag)
		}
		result.Diagnostic = diag
		result.Output = opts.render(bag.EmitAllToString())
		if trace != nil {
			colors.RED.Fprintf(trace, "✗ %s rejected\n", path)
		}
		return result
	}

	// Phase 1: load the syntax tree
	if trace != nil {
		colors.CYAN.Fprintf(trace, "[Phase 1] Loading %s\n", path)
	}
	var (
		prog *loader.Program
		err  error
	)
	if opts.Code != "" {
		prog, err = loader.Decode(strings.NewReader(opts.Code))
	} else {
		prog, err = loader.LoadFile(opts.EntryFile)
	}
	if err != nil {
		return report(diagnostics.NewError(fmt.Sprintf("failed to load program: %v", err)).
			WithCode(diagnostics.KindSyn.Code()).
			WithFile(path))
	}

	// Only the fixture's own program text is shown under diagnostics; an
	// empty entry keeps the emitter from reading the fixture file itself.
	bag.AddSourceContent(path, prog.Source)

	// Phase 2: semantic analysis
	if trace != nil {
		colors.CYAN.Fprintf(trace, "[Phase 2] Analyzing %d function(s)\n", len(prog.Root.Funcs))
	}
	printer := scopes.NewPrinter()
	printer.Colored = opts.LogFormat != PLAIN

	checkOpts := []checker.Option{checker.WithListener(printer)}
	if opts.EntryFunction != "" {
		checkOpts = append(checkOpts, checker.WithEntryFunction(opts.EntryFunction))
	}
	if trace != nil {
		checkOpts = append(checkOpts, checker.WithTrace(trace))
	}

	if _, err := checker.Analyze(prog.Root, checkOpts...); err != nil {
		var diag *diagnostics.Diagnostic
		if !errors.As(err, &diag) {
			diag = diagnostics.NewError(err.Error())
		}
		return report(diag.WithFile(path))
	}

	result.Success = true
	if opts.DumpScopes {
		result.Scopes = opts.render(printer.String())
	}
	if trace != nil {
		colors.GREEN.Fprintf(trace, "✓ %s accepted\n", path)
	}
	return result
}
