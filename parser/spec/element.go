package spec

import "github.com/oakmoss/html5parse/parser/webidl"

// Namespace is one of the six namespaces the tokenizer/tree constructor
// need to distinguish; the default for unprefixed elements is Htmlns.
type Namespace uint

const (
	Htmlns Namespace = iota
	Mathmlns
	Svgns
	Xlinkns
	Xmlns
	Xmlnsns
)

func (n Namespace) String() string {
	switch n {
	case Mathmlns:
		return "math"
	case Svgns:
		return "svg"
	case Xlinkns:
		return "xlink"
	case Xmlns:
		return "xml"
	case Xmlnsns:
		return "xmlns"
	default:
		return ""
	}
}

// Element is an individual HTML/SVG/MathML element.
// https://dom.spec.whatwg.org/#interface-element
type Element struct {
	NamespaceURI Namespace
	Prefix       webidl.DOMString
	LocalName    webidl.DOMString
	Attributes   *NamedNodeMap
}
