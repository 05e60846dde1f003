// Package sink defines the abstract boundary the tree constructor
// materializes nodes through. Splitting node creation out behind an
// interface, rather than calling the spec package's constructors
// directly, is what lets a caller swap in a different backing store
// (e.g. one that interns strings, or that streams nodes out to a
// renderer) without touching the insertion-mode algorithms.
package sink

import (
	"github.com/oakmoss/html5parse/parser/spec"
	"github.com/oakmoss/html5parse/parser/webidl"
)

// TreeSink is the set of node-materialization operations the tree
// constructor calls while running the insertion-mode algorithms. It
// is parameterized over *spec.Node rather than an opaque handle type
// because every consumer of this package also needs the full DOM
// surface (sibling/parent links, attribute maps, scope queries) that
// *spec.Node already provides; introducing a second handle type would
// only add a translation layer with no behavioral benefit.
type TreeSink interface {
	// CreateElement returns a new, parentless element node in ns.
	CreateElement(name webidl.DOMString, ns spec.Namespace) *spec.Node

	// CreateComment returns a new, parentless comment node.
	CreateComment(data webidl.DOMString) *spec.Node

	// CreateText returns a new, parentless text node.
	CreateText(data webidl.DOMString) *spec.Node

	// CreateDoctype returns a new, parentless doctype node.
	CreateDoctype(name, publicID, systemID webidl.DOMString) *spec.Node

	// AppendChild appends child as parent's last child.
	AppendChild(parent, child *spec.Node) *spec.Node

	// InsertBefore inserts child as a child of parent immediately
	// before ref. A nil ref behaves like AppendChild.
	InsertBefore(parent, child, ref *spec.Node) *spec.Node
}

// DefaultSink is the in-memory TreeSink every parse uses unless a
// caller supplies their own: it materializes nodes directly via the
// spec package's own constructors, so the resulting tree is exactly
// the *spec.Node graph the rest of this module already operates on.
type DefaultSink struct {
	// Document owns every node this sink creates.
	Document *spec.Node
}

// NewDefaultSink returns a DefaultSink whose nodes are owned by doc.
func NewDefaultSink(doc *spec.Node) *DefaultSink {
	return &DefaultSink{Document: doc}
}

func (s *DefaultSink) CreateElement(name webidl.DOMString, ns spec.Namespace) *spec.Node {
	return spec.NewDOMElement(s.Document, name, ns)
}

func (s *DefaultSink) CreateComment(data webidl.DOMString) *spec.Node {
	return spec.NewCommentNode(data, s.Document)
}

func (s *DefaultSink) CreateText(data webidl.DOMString) *spec.Node {
	return spec.NewTextNode(s.Document, data)
}

func (s *DefaultSink) CreateDoctype(name, publicID, systemID webidl.DOMString) *spec.Node {
	return spec.NewDocTypeNode(name, publicID, systemID)
}

func (s *DefaultSink) AppendChild(parent, child *spec.Node) *spec.Node {
	return parent.AppendChild(child)
}

func (s *DefaultSink) InsertBefore(parent, child, ref *spec.Node) *spec.Node {
	return parent.InsertBefore(child, ref)
}
