package spec

import (
	"sort"
	"strings"

	"github.com/oakmoss/html5parse/parser/webidl"
)

// NodeType distinguishes the handful of DOM node shapes the tree
// constructor ever materializes. There is deliberately no Attr,
// ProcessingInstruction, or ShadowRoot variant: this parser never
// creates those node kinds (attributes live on NamedNodeMap, "<?" is
// tokenized as a bogus comment per the HTML Standard, and shadow trees
// are a browsing-context concept this parser never touches).
type NodeType uint16

const (
	ElementNode NodeType = iota + 1
	TextNode
	CommentNode
	DocumentNode
	DocumentTypeNode
	DocumentFragmentNode
	ScopeMarkerNode
)

// ScopeMarker is the sentinel pushed onto the active formatting
// elements list when entering applets, table cells, and captions.
var ScopeMarker = &Node{
	NodeType: ScopeMarkerNode,
	NodeName: "marker",
}

// Node is the parser's DOM node. Element/Text/Comment/Document/
// DocumentType are mutually exclusive payloads selected by NodeType,
// embedded directly as a sum type and trimmed to only the fields tree
// construction actually reads or writes.
type Node struct {
	NodeType      NodeType
	NodeName      webidl.DOMString
	OwnerDocument *Node

	ParentNode      *Node
	FirstChild      *Node
	LastChild       *Node
	PreviousSibling *Node
	NextSibling     *Node
	ChildNodes      NodeList

	*Element
	*Text
	*Comment
	*Document
	*DocumentType

	// SelfClosingAcknowledged is a slot for recording that a foreign
	// self-closing start tag's flag was acknowledged, per the HTML
	// Standard's "acknowledge the token's self-closing flag" step. The
	// tree constructor never sets it, so it is always false.
	SelfClosingAcknowledged bool
}

// NewCommentNode returns a comment node.
func NewCommentNode(data webidl.DOMString, od *Node) *Node {
	return &Node{
		NodeType:      CommentNode,
		NodeName:      "#comment",
		OwnerDocument: od,
		Comment:       NewComment(data),
	}
}

// NewTextNode returns a text node holding a single run of character data.
func NewTextNode(od *Node, data webidl.DOMString) *Node {
	return &Node{
		NodeType:      TextNode,
		NodeName:      "#text",
		OwnerDocument: od,
		Text:          NewText(data),
	}
}

// NewDocTypeNode returns a doctype node.
func NewDocTypeNode(name, pub, sys webidl.DOMString) *Node {
	return &Node{
		NodeType: DocumentTypeNode,
		NodeName: name,
		DocumentType: &DocumentType{
			Name:     name,
			PublicID: pub,
			SystemID: sys,
		},
	}
}

// NewDOMElement creates an element node in the given namespace with an
// empty (but ordered) attribute map, owned by od.
func NewDOMElement(od *Node, name webidl.DOMString, ns Namespace, prefix ...webidl.DOMString) *Node {
	var p webidl.DOMString
	if len(prefix) >= 1 {
		p = prefix[0]
	}
	n := &Node{
		NodeType:      ElementNode,
		NodeName:      name,
		OwnerDocument: od,
		Element: &Element{
			NamespaceURI: ns,
			Prefix:       p,
			LocalName:    name,
		},
	}
	n.Attributes = NewNamedNodeMap(n)
	return n
}

// HasChildNodes reports whether n has at least one child.
func (n *Node) HasChildNodes() bool {
	return len(n.ChildNodes) > 0
}

// AppendChild appends on as n's last child, relinking sibling pointers.
// https://dom.spec.whatwg.org/#concept-node-append
func (n *Node) AppendChild(on *Node) *Node {
	if n.LastChild != nil {
		on.PreviousSibling = n.LastChild
		n.LastChild.NextSibling = on
	} else {
		n.FirstChild = on
	}
	on.NextSibling = nil
	on.ParentNode = n
	n.LastChild = on
	n.ChildNodes = append(n.ChildNodes, on)
	return on
}

// InsertBefore inserts on as a child of n immediately before child. If
// child is nil it behaves like AppendChild.
func (n *Node) InsertBefore(on, child *Node) *Node {
	if child == nil {
		return n.AppendChild(on)
	}

	i := n.ChildNodes.Contains(child)
	if i == -1 {
		return n.AppendChild(on)
	}

	n.ChildNodes = append(n.ChildNodes[:i], append(NodeList{on}, n.ChildNodes[i:]...)...)
	on.ParentNode = n
	on.NextSibling = child
	if prev := child.PreviousSibling; prev != nil {
		prev.NextSibling = on
		on.PreviousSibling = prev
	} else {
		n.FirstChild = on
	}
	child.PreviousSibling = on
	return on
}

// RemoveChild detaches child from n, leaving it parent-less.
func (n *Node) RemoveChild(child *Node) *Node {
	i := n.ChildNodes.Contains(child)
	if i == -1 {
		return nil
	}
	n.ChildNodes.Remove(i)

	if child.PreviousSibling != nil {
		child.PreviousSibling.NextSibling = child.NextSibling
	} else {
		n.FirstChild = child.NextSibling
	}
	if child.NextSibling != nil {
		child.NextSibling.PreviousSibling = child.PreviousSibling
	} else {
		n.LastChild = child.PreviousSibling
	}

	child.ParentNode = nil
	child.PreviousSibling = nil
	child.NextSibling = nil
	return child
}

// CloneNode clones a node's tag/attributes (and, if deep, its subtree)
// but never its parent or sibling links. Used by the adoption agency
// and by active-formatting-element reconstruction.
func (n *Node) CloneNode(deep bool) *Node {
	var clone *Node
	switch n.NodeType {
	case ElementNode:
		clone = NewDOMElement(n.OwnerDocument, n.NodeName, n.Element.NamespaceURI, n.Element.Prefix)
		for _, a := range n.Attributes.Attrs {
			clone.Attributes.Append(a.Name, a.Value)
		}
	case TextNode:
		clone = NewTextNode(n.OwnerDocument, n.Text.Data)
	case CommentNode:
		clone = NewCommentNode(n.Comment.Data, n.OwnerDocument)
	case DocumentTypeNode:
		clone = NewDocTypeNode(n.DocumentType.Name, n.DocumentType.PublicID, n.DocumentType.SystemID)
	default:
		clone = &Node{NodeType: n.NodeType, NodeName: n.NodeName, OwnerDocument: n.OwnerDocument}
	}

	if deep {
		for _, child := range n.ChildNodes {
			clone.AppendChild(child.CloneNode(true))
		}
	}
	return clone
}

// String renders the subtree rooted at n using the html5lib-tests
// "#document" indentation convention: two spaces per depth, attributes
// sorted by name on their own line below the element that owns them.
// This exists purely to make test fixtures and failures legible; it is
// not the HTML serializer (serialization to markup is out of scope).
func (n *Node) String() string {
	var b strings.Builder
	n.writeIndented(&b, 0)
	return strings.TrimRight(b.String(), "\n")
}

func (n *Node) writeIndented(b *strings.Builder, depth int) {
	if n.NodeType == DocumentNode {
		b.WriteString("#document\n")
	} else {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(describeNode(n, depth))
		b.WriteString("\n")
	}
	for _, child := range n.ChildNodes {
		child.writeIndented(b, depth+1)
	}
}

func describeNode(n *Node, depth int) string {
	switch n.NodeType {
	case ElementNode:
		s := string(n.NodeName)
		if n.Element.NamespaceURI != Htmlns {
			s = n.Element.NamespaceURI.String() + " " + s
		}
		if n.Attributes == nil || n.Attributes.Length() == 0 {
			return s
		}
		names := make([]string, 0, n.Attributes.Length())
		byName := make(map[string]*Attr, n.Attributes.Length())
		for _, a := range n.Attributes.Attrs {
			names = append(names, string(a.Name))
			byName[string(a.Name)] = a
		}
		sort.Strings(names)
		indent := strings.Repeat("  ", depth+1)
		for _, name := range names {
			a := byName[name]
			s += "\n" + indent + name + "=\"" + string(a.Value) + "\""
		}
		return s
	case TextNode:
		return "\"" + string(n.Text.Data) + "\""
	case CommentNode:
		return "<!-- " + string(n.Comment.Data) + " -->"
	case DocumentTypeNode:
		return "<!DOCTYPE " + string(n.DocumentType.Name) + ">"
	default:
		return string(n.NodeName)
	}
}
