package spec

import "github.com/oakmoss/html5parse/parser/webidl"

// NamedNodeMap holds an element's attributes in source order. Unlike the
// full DOM interface, this parser only ever needs ordered insertion,
// first-wins dedup, and by-name lookup.
// https://dom.spec.whatwg.org/#namednodemap
type NamedNodeMap struct {
	Attrs             []*Attr
	AssociatedElement *Node
}

func NewNamedNodeMap(oe *Node) *NamedNodeMap {
	return &NamedNodeMap{AssociatedElement: oe}
}

func (n *NamedNodeMap) Length() int {
	return len(n.Attrs)
}

func (n *NamedNodeMap) Item(i int) *Attr {
	if i < 0 || i >= len(n.Attrs) {
		return nil
	}
	return n.Attrs[i]
}

func (n *NamedNodeMap) GetNamedItem(qn webidl.DOMString) *Attr {
	for _, a := range n.Attrs {
		if a.Name == qn {
			return a
		}
	}
	return nil
}

func (n *NamedNodeMap) GetNamedItemNS(ns Namespace, ln webidl.DOMString) *Attr {
	for _, a := range n.Attrs {
		if a.LocalName == ln && a.Namespace == ns {
			return a
		}
	}
	return nil
}

// Append adds a new attribute, keeping the first of any duplicate name
// and reporting whether the attribute was a duplicate (and so dropped).
func (n *NamedNodeMap) Append(name, value webidl.DOMString) (dup bool) {
	if n.GetNamedItem(name) != nil {
		return true
	}
	a := NewAttr(name, value, n.AssociatedElement)
	n.Attrs = append(n.Attrs, a)
	return false
}

func (n *NamedNodeMap) SetNamedItem(s *Attr) *Attr {
	s.OwnerElement = n.AssociatedElement
	if existing := n.GetNamedItemNS(s.Namespace, s.LocalName); existing != nil {
		return existing
	}
	n.Attrs = append(n.Attrs, s)
	return s
}
