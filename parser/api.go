package parser

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/oakmoss/html5parse/parser/perr"
	"github.com/oakmoss/html5parse/parser/spec"
)

// Options configures a Parse or ParseFragment call, per §6's external
// interface contract.
//
// The struct's Go zero value (everything false) is usable, but does
// not match the Standard's own stated default for error-location
// tracking, which is on; use DefaultOptions for that baseline and
// override only the fields a caller cares about.
type Options struct {
	// ScriptingEnabled affects a handful of tree-construction and
	// fragment-context decisions (e.g. <noscript> tokenizes as RAWTEXT
	// only when true). Defaults to false, matching the Standard's
	// "scripting disabled" baseline for a parser with no browsing
	// context.
	ScriptingEnabled bool

	// TrackErrorLocations attaches a (line, column) locator to every
	// collected parse error. When false, errors are still collected
	// but their Line/Column fields are left zero, saving the per-rune
	// bookkeeping for callers that only care about error codes.
	TrackErrorLocations bool

	// TrackNodeSourceSpans is accepted for forward compatibility with
	// a future source-mapped sink; the in-memory DefaultSink does not
	// currently record per-node spans, so this is a no-op until a
	// sink that does exists.
	TrackNodeSourceSpans bool

	// Logger, if non-nil, receives a Debug-level entry for every
	// recovered parse error (see perr.List.Add). A nil Logger leaves
	// logrus' package-level standard logger as it is; at that logger's
	// default Info level the Debug entries are not printed.
	Logger *logrus.Logger
}

// DefaultOptions returns the Standard's stated defaults:
// { scripting_enabled: false, track_error_locations: true,
// track_node_source_spans: false }.
func DefaultOptions() Options {
	return Options{TrackErrorLocations: true}
}

// Result is the outcome of Parse.
type Result struct {
	Document *spec.Node
	Errors   perr.List
}

// FragmentResult is the outcome of ParseFragment.
type FragmentResult struct {
	Nodes  []*spec.Node
	Errors perr.List
}

func configureLogging(l *logrus.Logger) {
	if l == nil {
		return
	}
	logrus.StandardLogger().SetOutput(l.Out)
	logrus.StandardLogger().SetLevel(l.GetLevel())
	logrus.StandardLogger().SetFormatter(l.Formatter)
}

// Parse runs the full document-parsing algorithm over input and
// returns the resulting document tree along with every parse error
// recovered along the way. It never returns a non-nil error for
// malformed markup — per §7, malformed input is a parse error, not a
// Go error; a non-nil error here means a caller error (nil input) or
// an I/O failure reading from input.
func Parse(input io.Reader, opts Options) (*Result, error) {
	if input == nil {
		return nil, errors.New("parser: Parse called with a nil input reader")
	}
	configureLogging(opts.Logger)

	p := NewParser(input)
	p.TreeConstructor.scriptingEnabled = opts.ScriptingEnabled
	if !opts.TrackErrorLocations {
		p.Tokenizer.trackLocations = false
	}

	doc, err := p.Start()
	if err != nil {
		return nil, errors.Wrap(err, "parser: reading input")
	}

	errs := make(perr.List, 0, len(p.Tokenizer.Errors)+len(p.TreeConstructor.Errors))
	errs = append(errs, p.Tokenizer.Errors...)
	errs = append(errs, p.TreeConstructor.Errors...)

	return &Result{Document: doc, Errors: errs}, nil
}

// ParseFragment runs the HTML Standard's fragment-parsing algorithm
// for context and returns the context element's resulting children,
// per §6's parse_fragment contract. Any element may serve as context
// — resetInsertionModeWithContext falls back to InBody for names it
// has no dedicated branch for, exactly as the Standard's own "any
// other value" step does.
//
// context must be a non-nil element; anything else is a caller error
// (per §7, surfaced before any tokenization happens).
func ParseFragment(input string, context *spec.Node, opts Options) (*FragmentResult, error) {
	if context == nil || context.NodeType != spec.ElementNode {
		return nil, errors.New("parser: ParseFragment requires a non-nil element context")
	}
	configureLogging(opts.Logger)

	tokenizer := NewHTMLTokenizer(strings.NewReader(input))
	tokenizer.trackLocations = opts.TrackErrorLocations

	quirks := spec.NoQuirks
	if context.OwnerDocument != nil && context.OwnerDocument.Document != nil {
		quirks = context.OwnerDocument.Document.QuirksMode
	}
	treeConstructor := NewHTMLFragmentTreeConstructor(context, quirks, opts.ScriptingEnabled)

	startState := startStateForContext(context, opts.ScriptingEnabled)
	progress := MakeProgress(nil, &startState)
	for tokenizer.Next() {
		t, err := tokenizer.Token(progress)
		if err != nil {
			break
		}
		seen := len(treeConstructor.Errors)
		progress = treeConstructor.ProcessToken(t)
		if tokenizer.trackLocations {
			for i := seen; i < len(treeConstructor.Errors); i++ {
				treeConstructor.Errors[i] = treeConstructor.Errors[i].At(tokenizer.line, tokenizer.column)
			}
		}
	}

	errs := make(perr.List, 0, len(tokenizer.Errors)+len(treeConstructor.Errors))
	errs = append(errs, tokenizer.Errors...)
	errs = append(errs, treeConstructor.Errors...)

	return &FragmentResult{Nodes: treeConstructor.FragmentResult(), Errors: errs}, nil
}
