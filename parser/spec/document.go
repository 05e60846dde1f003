package spec

// QuirksMode is the document-wide flag set from DOCTYPE analysis.
type QuirksMode int

const (
	NoQuirks QuirksMode = iota
	LimitedQuirks
	Quirks
)

// Document is the root Document node's payload.
// https://dom.spec.whatwg.org/#interface-document
type Document struct {
	QuirksMode      QuirksMode
	DocumentElement *Node
}

// NewHTMLDocumentNode creates an empty #document node.
func NewHTMLDocumentNode() *Node {
	return &Node{
		NodeType: DocumentNode,
		NodeName: "#document",
		Document: &Document{},
	}
}
