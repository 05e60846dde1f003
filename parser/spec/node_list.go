package spec

// NodeList is an ordered sequence of node references, used both as the
// open-elements stack and as the active-formatting-elements list.
// https://dom.spec.whatwg.org/#nodelist
type NodeList []*Node

func (h *NodeList) Contains(n *Node) int {
	for i := range *h {
		if n == (*h)[i] {
			return i
		}
	}
	return -1
}

func (h *NodeList) Remove(i int) *Node {
	if i < 0 || i >= len(*h) {
		return nil
	}
	node := (*h)[i]
	*h = append((*h)[:i], (*h)[i+1:]...)
	return node
}

// InsertBelow inserts n on the stack immediately below above, i.e. at
// above's current index, shifting above (and everything over it) up
// by one. Used when foster parenting and by the adoption agency's
// "insert immediately below furthestBlock" step.
func (h *NodeList) InsertBelow(above, n *Node) {
	i := h.Contains(above)
	if i == -1 {
		*h = append(*h, n)
		return
	}
	*h = append((*h)[:i], append(NodeList{n}, (*h)[i:]...)...)
}

func (h *NodeList) Push(n *Node) {
	*h = append(*h, n)
}

func (h *NodeList) Top() *Node {
	if len(*h) == 0 {
		return nil
	}
	return (*h)[len(*h)-1]
}

func (h *NodeList) Pop() *Node {
	if len(*h) == 0 {
		return nil
	}
	popped := (*h)[len(*h)-1]
	*h = (*h)[:len(*h)-1]
	return popped
}

// Replace swaps old for replacement in place, wherever old currently sits.
func (h *NodeList) Replace(old, replacement *Node) bool {
	i := h.Contains(old)
	if i == -1 {
		return false
	}
	(*h)[i] = replacement
	return true
}

func (h *NodeList) PopUntil(first string, rest ...string) *Node {
	var popped *Node
	for {
		popped = h.Pop()
		if popped == nil {
			return nil
		}
		if string(popped.NodeName) == first {
			return popped
		}
		for _, tagName := range rest {
			if string(popped.NodeName) == tagName {
				return popped
			}
		}
	}
}

func (h *NodeList) PopUntilConditions(funcs ...func(e *Node) bool) *Node {
	for {
		last := len(*h) - 1
		if last < 0 {
			return nil
		}
		for _, f := range funcs {
			if f((*h)[last]) {
				return (*h)[last]
			}
		}
		h.Pop()
	}
}

// --- scope queries -------------------------------------------------
//
// Each *InScope variant is a bounded upward walk on the open-elements
// stack terminated by a variant-specific set of "scope breaker"
// elements. https://html.spec.whatwg.org/#has-an-element-in-the-specific-scope

var defaultScopeBreakers = []string{
	"applet", "caption", "html", "table", "td", "th",
	"marquee", "object", "template",
	"mi", "mo", "mn", "ms", "mtext", "annotation-xml",
	"foreignObject", "desc", "title",
}

func (h *NodeList) HasInSpecificScope(target string, breakers []string) bool {
	for i := len(*h) - 1; i >= 0; i-- {
		name := string((*h)[i].NodeName)
		if name == target {
			return true
		}
		for _, b := range breakers {
			if name == b {
				return false
			}
		}
	}
	return false
}

func (h *NodeList) HasInScope(target string) bool {
	return h.HasInSpecificScope(target, defaultScopeBreakers)
}

func (h *NodeList) HasAnyInScope(targets ...string) bool {
	for _, t := range targets {
		if h.HasInScope(t) {
			return true
		}
	}
	return false
}

func (h *NodeList) HasInListItemScope(target string) bool {
	breakers := append(append([]string{}, defaultScopeBreakers...), "ol", "ul")
	return h.HasInSpecificScope(target, breakers)
}

func (h *NodeList) HasInButtonScope(target string) bool {
	breakers := append(append([]string{}, defaultScopeBreakers...), "button")
	return h.HasInSpecificScope(target, breakers)
}

func (h *NodeList) HasInTableScope(target string) bool {
	return h.HasInSpecificScope(target, []string{"html", "table", "template"})
}

// HasInSelectScope walks the stack but terminates on anything that
// isn't optgroup/option/the target itself — the "except in...scope"
// phrasing the Standard uses for <select>.
func (h *NodeList) HasInSelectScope(target string) bool {
	for i := len(*h) - 1; i >= 0; i-- {
		name := string((*h)[i].NodeName)
		if name == target {
			return true
		}
		if name != "optgroup" && name != "option" {
			return false
		}
	}
	return false
}

// --- the open-elements stack and active-formatting-elements list ---

// StackOfOpenElements is the tree constructor's ordered sequence of
// currently open elements; index 0 is the root.
type StackOfOpenElements struct {
	NodeList
}

// ActiveFormattingElements is the AFE list: Entries plus Marker
// sentinels, with Noah's-ark dedup applied on Push.
type ActiveFormattingElements struct {
	NodeList
}

// Push appends n, first applying the "Noah's ark clause": if three
// entries with an identical tag name, namespace, and attribute set
// already sit between the end of the list and the most recent marker,
// the earliest of those three is removed.
func (s *ActiveFormattingElements) Push(n *Node) {
	lastMarker := -1
	for i := len(s.NodeList) - 1; i >= 0; i-- {
		if s.NodeList[i].NodeType == ScopeMarkerNode {
			lastMarker = i
			break
		}
	}

	var matches []int
	for i := lastMarker + 1; i < len(s.NodeList); i++ {
		if compareNodes(s.NodeList[i], n) {
			matches = append(matches, i)
		}
	}
	if len(matches) >= 3 {
		s.NodeList.Remove(matches[0])
	}

	s.NodeList = append(s.NodeList, n)
}

// PushMarker pushes the scope marker sentinel.
func (s *ActiveFormattingElements) PushMarker() {
	s.NodeList = append(s.NodeList, ScopeMarker)
}

// ClearToLastMarker removes entries back to and including the most
// recent marker, used when closing a table cell/caption/applet.
func (s *ActiveFormattingElements) ClearToLastMarker() {
	for len(s.NodeList) > 0 {
		entry := s.NodeList.Pop()
		if entry.NodeType == ScopeMarkerNode {
			return
		}
	}
}

func compareNodes(a, b *Node) bool {
	if a.NodeType != ElementNode || b.NodeType != ElementNode {
		return false
	}
	if a.NodeName != b.NodeName {
		return false
	}
	if a.Element.NamespaceURI != b.Element.NamespaceURI {
		return false
	}
	if a.Attributes.Length() != b.Attributes.Length() {
		return false
	}
	for _, v := range b.Attributes.Attrs {
		e := a.Attributes.GetNamedItem(v.Name)
		if e == nil || e.Namespace != v.Namespace || e.Value != v.Value {
			return false
		}
	}
	return true
}
