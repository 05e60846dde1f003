package parser

import (
	"strings"

	"github.com/oakmoss/html5parse/parser/spec"
)

// startStateForContext maps a fragment's context element to the
// tokenizer state the fragment-parsing algorithm requires it to start
// in, per step 4 of
// https://html.spec.whatwg.org/multipage/parsing.html#parsing-html-fragments
func startStateForContext(context *spec.Node, scriptingEnabled bool) tokenizerState {
	switch context.NodeName {
	case "title", "textarea":
		return rcDataState
	case "style", "xmp", "iframe", "noembed", "noframes":
		return rawTextState
	case "script":
		return scriptDataState
	case "noscript":
		if scriptingEnabled {
			return rawTextState
		}
		return dataState
	case "plaintext":
		return plaintextState
	default:
		return dataState
	}
}

// ParseHTMLFragment implements
// https://html.spec.whatwg.org/multipage/parsing.html#parsing-html-fragments
// for a context-free parser: no script execution, no browsing
// context, no document.write reentrancy. input is tokenized and tree
// constructed synchronously and the context element's resulting
// children are returned in document order.
func ParseHTMLFragment(context *spec.Node, input string, quirks spec.QuirksMode, scriptingEnabled bool) []*spec.Node {
	tokenizer := NewHTMLTokenizer(strings.NewReader(input))
	treeConstructor := NewHTMLFragmentTreeConstructor(context, quirks, scriptingEnabled)

	startState := startStateForContext(context, scriptingEnabled)
	progress := MakeProgress(nil, &startState)
	for tokenizer.Next() {
		t, err := tokenizer.Token(progress)
		if err != nil {
			break
		}
		progress = treeConstructor.ProcessToken(t)
	}

	return treeConstructor.FragmentResult()
}
