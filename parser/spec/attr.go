package spec

import "github.com/oakmoss/html5parse/parser/webidl"

// Attr is a single name/value pair attached to an Element's NamedNodeMap.
// https://dom.spec.whatwg.org/#attr
type Attr struct {
	Namespace    Namespace
	Prefix       webidl.DOMString
	LocalName    webidl.DOMString
	Name         webidl.DOMString
	Value        webidl.DOMString
	OwnerElement *Node
}

func NewAttr(name, value webidl.DOMString, owner *Node) *Attr {
	return &Attr{
		LocalName:    name,
		Name:         name,
		Value:        value,
		OwnerElement: owner,
	}
}
