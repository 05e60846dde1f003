package parser

import (
	"strings"

	"github.com/oakmoss/html5parse/parser/perr"
	"github.com/oakmoss/html5parse/parser/sink"
	"github.com/oakmoss/html5parse/parser/spec"
	"github.com/oakmoss/html5parse/parser/webidl"
)

// insertionMode is one of the 23 tree construction modes the Standard
// defines; the mode selects which handler in HTMLTreeConstructor.mappings
// a token is dispatched to.
type insertionMode uint

const (
	initial insertionMode = iota
	beforeHTML
	beforeHead
	inHead
	inHeadNoScript
	afterHead
	inBody
	text
	inTable
	inTableText
	inCaption
	inColumnGroup
	inTableBody
	inRow
	inCell
	inSelect
	inSelectInTable
	inTemplate
	afterBody
	inFrameset
	afterFrameset
	afterAfterBody
	afterAfterFrameset
)

type treeConstructionModeHandler func(t *Token) (bool, insertionMode, *perr.Error)

// HTMLTreeConstructor holds the state the tree construction stage
// needs between tokens: the document under construction, the open
// elements and active formatting elements lists, and which of the 23
// insertion modes governs how the next token is handled.
type HTMLTreeConstructor struct {
	Document *spec.Node

	openElements spec.StackOfOpenElements
	afe          spec.ActiveFormattingElements

	headElementPointer *spec.Node
	formElementPointer *spec.Node

	insertionMode                  insertionMode
	originalInsertionMode          insertionMode
	stackOfTemplateInsertionModes  []insertionMode

	scriptingEnabled bool
	framesetOK       bool
	fosterParenting  bool

	// fragmentContext is non-nil when parsing a document fragment; it is
	// the element the fragment is being parsed as if it were a child of.
	fragmentContext *spec.Node

	quirksMode spec.QuirksMode

	pendingTableCharacters []Token
	pendingTableNonWS      bool

	// pendingTokenizerState, when non-nil after ProcessToken returns, is
	// the state the tokenizer must switch to before reading the next
	// token (RAWTEXT/RCDATA/script-data/PLAINTEXT dispatch).
	pendingTokenizerState *tokenizerState

	Errors perr.List

	// sink is where every node this tree constructor materializes
	// actually comes from; defaults to an in-memory sink.DefaultSink
	// but callers that want a different backing store can replace it
	// before calling ProcessToken.
	sink sink.TreeSink

	mappings map[insertionMode]treeConstructionModeHandler
}

// NewHTMLTreeConstructor creates a tree constructor for parsing a
// full document.
func NewHTMLTreeConstructor() *HTMLTreeConstructor {
	doc := spec.NewHTMLDocumentNode()
	c := &HTMLTreeConstructor{
		Document:   doc,
		framesetOK: true,
		sink:       sink.NewDefaultSink(doc),
	}
	c.createMappings()
	return c
}

// NewHTMLFragmentTreeConstructor creates a tree constructor for
// parsing a document fragment relative to context, per
// https://html.spec.whatwg.org/multipage/parsing.html#parsing-html-fragments
func NewHTMLFragmentTreeConstructor(context *spec.Node, quirks spec.QuirksMode, scriptingEnabled bool) *HTMLTreeConstructor {
	doc := spec.NewHTMLDocumentNode()
	c := &HTMLTreeConstructor{
		Document:         doc,
		framesetOK:       true,
		fragmentContext:  context,
		quirksMode:       quirks,
		scriptingEnabled: scriptingEnabled,
		sink:             sink.NewDefaultSink(doc),
	}
	c.createMappings()
	c.Document.Document.QuirksMode = quirks

	root := c.sink.CreateElement("html", spec.Htmlns)
	c.Document.AppendChild(root)
	c.openElements.Push(root)

	if context != nil && context.NodeName == "template" {
		c.stackOfTemplateInsertionModes = append(c.stackOfTemplateInsertionModes, inTemplate)
	}

	c.resetInsertionModeWithContext()

	for n := context; n != nil; n = n.ParentNode {
		if n.NodeName == "form" {
			c.formElementPointer = n
			break
		}
	}
	return c
}

func (c *HTMLTreeConstructor) createMappings() {
	c.mappings = map[insertionMode]treeConstructionModeHandler{
		initial:            c.initialModeHandler,
		beforeHTML:         c.beforeHTMLModeHandler,
		beforeHead:         c.beforeHeadModeHandler,
		inHead:             c.inHeadModeHandler,
		inHeadNoScript:     c.inHeadNoScriptModeHandler,
		afterHead:          c.afterHeadModeHandler,
		inBody:             c.inBodyModeHandler,
		text:               c.textModeHandler,
		inTable:            c.inTableModeHandler,
		inTableText:        c.inTableTextModeHandler,
		inCaption:          c.inCaptionModeHandler,
		inColumnGroup:      c.inColumnGroupModeHandler,
		inTableBody:        c.inTableBodyModeHandler,
		inRow:              c.inRowModeHandler,
		inCell:             c.inCellModeHandler,
		inSelect:           c.inSelectModeHandler,
		inSelectInTable:    c.inSelectInTableModeHandler,
		inTemplate:         c.inTemplateModeHandler,
		afterBody:          c.afterBodyModeHandler,
		inFrameset:         c.inFramesetModeHandler,
		afterFrameset:      c.afterFramesetModeHandler,
		afterAfterBody:     c.afterAfterBodyModeHandler,
		afterAfterFrameset: c.afterAfterFramesetModeHandler,
	}
}

// ProcessToken runs t through the insertion-mode dispatch table,
// reprocessing as directed, and reports what the tokenizer should do
// before reading its next token: which node is now "adjusted current
// node" (foreign-content tokenization depends on it) and whether the
// tokenizer must switch states (RAWTEXT/RCDATA/script data/PLAINTEXT).
func (c *HTMLTreeConstructor) ProcessToken(t *Token) *Progress {
	reprocess := true
	for reprocess {
		var next insertionMode
		var again bool
		var err *perr.Error

		if len(c.openElements.NodeList) > 0 && c.useForeignContent(t) {
			again, err = c.foreignContentHandler(t)
			next = c.insertionMode
		} else {
			handler := c.mappings[c.insertionMode]
			again, next, err = handler(t)
		}
		c.Errors.Add(err)
		c.insertionMode = next
		reprocess = again
	}

	state := c.pendingTokenizerState
	c.pendingTokenizerState = nil
	return MakeProgress(c.adjustedCurrentNode(), state)
}

// FragmentResult returns the parsed fragment's children in document
// order, per the fragment-parsing algorithm's final step of returning
// the root's children. It does not process any tokens itself.
func (c *HTMLTreeConstructor) FragmentResult() []*spec.Node {
	root := c.openElements.NodeList[0]
	return append([]*spec.Node{}, root.ChildNodes...)
}

func (c *HTMLTreeConstructor) adjustedCurrentNode() *spec.Node {
	if len(c.openElements.NodeList) == 1 && c.fragmentContext != nil {
		return c.fragmentContext
	}
	return c.openElements.Top()
}

func (c *HTMLTreeConstructor) currentNode() *spec.Node {
	return c.openElements.Top()
}

// --- insertion helpers ----------------------------------------------

// appropriatePlaceForInsertingANode returns the parent to insert into
// and, if non-nil, the existing child to insert before (nil means
// append at the end). Foster parenting relocates the insertion point
// out of a table that hasn't started accepting content yet.
// https://html.spec.whatwg.org/multipage/parsing.html#appropriate-place-for-inserting-a-node
func (c *HTMLTreeConstructor) appropriatePlaceForInsertingANode(override *spec.Node) (*spec.Node, *spec.Node) {
	target := override
	if target == nil {
		target = c.currentNode()
	}

	if c.fosterParenting {
		switch target.NodeName {
		case "table", "tbody", "tfoot", "thead", "tr":
			var lastTemplate, lastTable *spec.Node
			lastTemplateIdx, lastTableIdx := -1, -1
			for i, n := range c.openElements.NodeList {
				if n.NodeName == "template" {
					lastTemplate, lastTemplateIdx = n, i
				}
				if n.NodeName == "table" {
					lastTable, lastTableIdx = n, i
				}
			}
			if lastTemplate != nil && (lastTable == nil || lastTemplateIdx > lastTableIdx) {
				return lastTemplate, nil
			}
			if lastTable == nil {
				return c.openElements.NodeList[0], nil
			}
			if lastTable.ParentNode != nil {
				return lastTable.ParentNode, lastTable
			}
			if lastTableIdx > 0 {
				return c.openElements.NodeList[lastTableIdx-1], nil
			}
		}
	}

	return target, nil
}

func (c *HTMLTreeConstructor) insertAtPlace(n *spec.Node) {
	parent, before := c.appropriatePlaceForInsertingANode(nil)
	parent.InsertBefore(n, before)
}

func (c *HTMLTreeConstructor) insertComment(t *Token) {
	n := c.sink.CreateComment(webidl.DOMString(t.Data))
	c.insertAtPlace(n)
}

func (c *HTMLTreeConstructor) insertCommentAsLastChildOfDocument(t *Token) {
	n := c.sink.CreateComment(webidl.DOMString(t.Data))
	c.Document.AppendChild(n)
}

// insertCharacter implements "insert a character", coalescing runs of
// text into a single existing text node where the Standard calls for
// it instead of one text node per character.
func (c *HTMLTreeConstructor) insertCharacter(data string) {
	parent, before := c.appropriatePlaceForInsertingANode(nil)
	if parent.NodeType == spec.DocumentNode {
		return
	}

	var prev *spec.Node
	if before != nil {
		prev = before.PreviousSibling
	} else {
		prev = parent.LastChild
	}

	if prev != nil && prev.NodeType == spec.TextNode {
		prev.Text.Append(webidl.DOMString(data))
		return
	}

	tn := c.sink.CreateText(webidl.DOMString(data))
	parent.InsertBefore(tn, before)
}

func attrNamespaceFor(name string) (spec.Namespace, webidl.DOMString) {
	switch {
	case strings.HasPrefix(name, "xlink:"):
		return spec.Xlinkns, webidl.DOMString(strings.TrimPrefix(name, "xlink:"))
	case strings.HasPrefix(name, "xml:"):
		return spec.Xmlns, webidl.DOMString(strings.TrimPrefix(name, "xml:"))
	case name == "xmlns" || strings.HasPrefix(name, "xmlns:"):
		return spec.Xmlnsns, webidl.DOMString(strings.TrimPrefix(name, "xmlns:"))
	default:
		return spec.Htmlns, webidl.DOMString(name)
	}
}

// createElementForToken implements "create an element for a token"
// minus the custom-element and browsing-context steps, which are out
// of scope for a context-free parser.
// https://html.spec.whatwg.org/multipage/parsing.html#create-an-element-for-the-token
func (c *HTMLTreeConstructor) createElementForToken(t *Token, ns spec.Namespace) *spec.Node {
	el := c.sink.CreateElement(webidl.DOMString(t.TagName), ns)
	for _, a := range t.Attributes {
		if ns == spec.Htmlns {
			el.Attributes.Append(webidl.DOMString(a.Name), webidl.DOMString(a.Value))
			continue
		}
		attrNs, localName := attrNamespaceFor(a.Name)
		el.Attributes.SetNamedItem(&spec.Attr{
			Namespace: attrNs,
			LocalName: localName,
			Name:      webidl.DOMString(a.Name),
			Value:     webidl.DOMString(a.Value),
		})
	}
	return el
}

// insertForeignElementForToken creates an element in ns, inserts it
// at the appropriate place, and pushes it onto the stack of open
// elements. When onlyAddToStack is true the element is pushed without
// being inserted into the tree.
// https://html.spec.whatwg.org/multipage/parsing.html#insert-a-foreign-element
func (c *HTMLTreeConstructor) insertForeignElementForToken(t *Token, ns spec.Namespace, onlyAddToStack bool) *spec.Node {
	el := c.createElementForToken(t, ns)
	if !onlyAddToStack {
		c.insertAtPlace(el)
	}
	c.openElements.Push(el)
	return el
}

func (c *HTMLTreeConstructor) insertHTMLElementForToken(t *Token) *spec.Node {
	return c.insertForeignElementForToken(t, spec.Htmlns, false)
}

// useRulesFor processes t as if the current insertion mode were
// expectedState, then maps "no change" back onto returnState so the
// caller's actual mode isn't silently overwritten with expectedState.
func (c *HTMLTreeConstructor) useRulesFor(t *Token, returnState, expectedState insertionMode) (bool, insertionMode, *perr.Error) {
	reprocess, next, err := c.mappings[expectedState](t)
	if next == expectedState {
		return reprocess, returnState, err
	}
	return reprocess, next, err
}

// --- scope / stack helpers -------------------------------------------

func isSpecial(name webidl.DOMString) bool {
	switch name {
	case "address", "applet", "area", "article", "aside", "base", "basefont", "bgsound",
		"blockquote", "body", "br", "button", "caption", "center", "col", "colgroup", "dd",
		"details", "dir", "div", "dl", "dt", "embed", "fieldset", "figcaption", "figure",
		"footer", "form", "frame", "frameset", "h1", "h2", "h3", "h4", "h5", "h6", "head",
		"header", "hgroup", "hr", "html", "iframe", "img", "input", "keygen", "li", "link",
		"listing", "main", "marquee", "menu", "meta", "nav", "noembed", "noframes", "noscript",
		"object", "ol", "p", "param", "plaintext", "pre", "script", "section", "select",
		"source", "style", "summary", "table", "tbody", "td", "template", "textarea", "tfoot",
		"th", "thead", "title", "tr", "track", "ul", "wbr",
		"mi", "mo", "mn", "ms", "mtext", "annotation-xml", "foreignObject", "desc":
		return true
	}
	return false
}

func isFormattingName(name webidl.DOMString) bool {
	switch name {
	case "a", "b", "big", "code", "em", "font", "i", "nobr", "s", "small", "strike", "strong", "tt", "u":
		return true
	}
	return false
}

// generateImpliedEndTags pops elements off the stack of open elements
// while the current node matches one of the implied-end-tag names,
// per the many "generate implied end tags" steps scattered through
// the Standard. except, if non-empty, is never popped.
func (c *HTMLTreeConstructor) generateImpliedEndTags(except string) {
	impliable := map[webidl.DOMString]bool{
		"dd": true, "dt": true, "li": true, "optgroup": true, "option": true,
		"p": true, "rb": true, "rp": true, "rt": true, "rtc": true,
	}
	for {
		cur := c.currentNode()
		if cur == nil {
			return
		}
		if except != "" && string(cur.NodeName) == except {
			return
		}
		if !impliable[cur.NodeName] {
			return
		}
		c.openElements.Pop()
	}
}

// closePElementIfInButtonScope implements the repeated "if the stack of open
// elements has a p element in button scope, close a p element" step.
func (c *HTMLTreeConstructor) closePElementIfInButtonScope() {
	if c.openElements.HasInButtonScope("p") {
		c.closePElement()
	}
}

func (c *HTMLTreeConstructor) closePElement() {
	c.generateImpliedEndTags("p")
	if c.currentNode() != nil && c.currentNode().NodeName != "p" {
		c.Errors.Add(perr.New(perr.UnexpectedEndTag))
	}
	c.openElements.PopUntil("p")
}

func (c *HTMLTreeConstructor) stopParsing() {
	// the full "stop parsing" algorithm involves script execution and
	// load events; neither applies to a context-free parser, so this
	// just leaves the tree as-is.
}

// resetInsertionModeWithContext implements
// https://html.spec.whatwg.org/multipage/parsing.html#reset-the-insertion-mode-appropriately
func (c *HTMLTreeConstructor) resetInsertionModeWithContext() {
	for i := len(c.openElements.NodeList) - 1; i >= 0; i-- {
		node := c.openElements.NodeList[i]
		last := i == 0

		if last && c.fragmentContext != nil {
			node = c.fragmentContext
		}

		switch node.NodeName {
		case "select":
			if !last {
				for j := i - 1; j > 0; j-- {
					anc := c.openElements.NodeList[j]
					switch anc.NodeName {
					case "template":
						c.insertionMode = inSelect
						return
					case "table":
						c.insertionMode = inSelectInTable
						return
					}
				}
			}
			c.insertionMode = inSelect
			return
		case "td", "th":
			if !last {
				c.insertionMode = inCell
				return
			}
		case "tr":
			c.insertionMode = inRow
			return
		case "tbody", "thead", "tfoot":
			c.insertionMode = inTableBody
			return
		case "caption":
			c.insertionMode = inCaption
			return
		case "colgroup":
			c.insertionMode = inColumnGroup
			return
		case "table":
			c.insertionMode = inTable
			return
		case "template":
			c.insertionMode = c.stackOfTemplateInsertionModes[len(c.stackOfTemplateInsertionModes)-1]
			return
		case "head":
			if !last {
				c.insertionMode = inHead
				return
			}
		case "body":
			c.insertionMode = inBody
			return
		case "frameset":
			c.insertionMode = inFrameset
			return
		case "html":
			if c.headElementPointer == nil {
				c.insertionMode = beforeHead
			} else {
				c.insertionMode = afterHead
			}
			return
		}

		if last {
			c.insertionMode = inBody
			return
		}
	}
}

// --- adoption agency --------------------------------------------------

// adoptionAgencyAlgorithm implements
// https://html.spec.whatwg.org/multipage/parsing.html#adoption-agency-algorithm
// faithfully: no special-cased anchor/list-item handling and no early
// termination beyond what the algorithm itself specifies.
func (c *HTMLTreeConstructor) adoptionAgencyAlgorithm(subject webidl.DOMString) *perr.Error {
	var err *perr.Error

	if c.currentNode() != nil && c.currentNode().NodeName == subject &&
		c.afe.Contains(c.currentNode()) == -1 {
		c.openElements.Pop()
		return nil
	}

	for outer := 0; outer < 8; outer++ {
		// 5: find the last formatting element in the AFE list with the
		// subject's tag name, below the last marker.
		var formattingElement *spec.Node
		feIndex := -1
		for i := len(c.afe.NodeList) - 1; i >= 0; i-- {
			entry := c.afe.NodeList[i]
			if entry.NodeType == spec.ScopeMarkerNode {
				break
			}
			if entry.NodeName == subject {
				formattingElement, feIndex = entry, i
				break
			}
		}
		if formattingElement == nil {
			return err
		}

		si := c.openElements.Contains(formattingElement)
		if si == -1 {
			err = perr.New(perr.EndTagWithoutMatchingOpenElement)
			c.afe.Remove(feIndex)
			return err
		}

		if !c.openElements.HasInScope(string(subject)) {
			return perr.New(perr.GenericParseError)
		}

		if formattingElement != c.currentNode() {
			err = perr.New(perr.GenericParseError)
		}

		var furthestBlock *spec.Node
		fbIndex := -1
		for i := si + 1; i < len(c.openElements.NodeList); i++ {
			if isSpecial(c.openElements.NodeList[i].NodeName) {
				furthestBlock, fbIndex = c.openElements.NodeList[i], i
				break
			}
		}

		if furthestBlock == nil {
			for {
				popped := c.openElements.Pop()
				if popped == formattingElement {
					break
				}
			}
			c.afe.Remove(c.afe.Contains(formattingElement))
			return err
		}

		commonAncestor := c.openElements.NodeList[si-1]
		bookmark := feIndex

		node := furthestBlock
		lastNode := furthestBlock
		nodeIndex := fbIndex

		for inner := 1; ; inner++ {
			nodeIndex--
			node = c.openElements.NodeList[nodeIndex]
			if node == formattingElement {
				break
			}

			nodeAFEIndex := c.afe.Contains(node)
			if inner > 3 && nodeAFEIndex != -1 {
				if nodeAFEIndex <= bookmark {
					bookmark--
				}
				c.afe.Remove(nodeAFEIndex)
				nodeAFEIndex = -1
			}

			if nodeAFEIndex == -1 {
				c.openElements.Remove(nodeIndex)
				continue
			}

			clone := node.CloneNode(false)
			clone.Attributes = node.Attributes
			c.afe.NodeList[nodeAFEIndex] = clone
			c.openElements.NodeList[nodeIndex] = clone
			node = clone

			if lastNode == furthestBlock {
				bookmark = nodeAFEIndex + 1
			}

			if lastNode.ParentNode != nil {
				lastNode.ParentNode.RemoveChild(lastNode)
			}
			node.AppendChild(lastNode)
			lastNode = node
		}

		fpParent, fpBefore := c.appropriatePlaceForInsertingANode(commonAncestor)
		if lastNode.ParentNode != nil {
			lastNode.ParentNode.RemoveChild(lastNode)
		}
		fpParent.InsertBefore(lastNode, fpBefore)

		clone := formattingElement.CloneNode(false)
		clone.Attributes = formattingElement.Attributes
		for _, child := range append([]*spec.Node{}, furthestBlock.ChildNodes...) {
			furthestBlock.RemoveChild(child)
			clone.AppendChild(child)
		}
		furthestBlock.AppendChild(clone)

		c.afe.Remove(c.afe.Contains(formattingElement))
		if bookmark > len(c.afe.NodeList) {
			bookmark = len(c.afe.NodeList)
		}
		c.afe.NodeList = append(c.afe.NodeList[:bookmark], append(spec.NodeList{clone}, c.afe.NodeList[bookmark:]...)...)

		c.openElements.Remove(c.openElements.Contains(formattingElement))
		fbi := c.openElements.Contains(furthestBlock)
		c.openElements.NodeList = append(c.openElements.NodeList[:fbi+1], append(spec.NodeList{clone}, c.openElements.NodeList[fbi+1:]...)...)
	}

	return err
}

// reconstructActiveFormattingElements implements
// https://html.spec.whatwg.org/multipage/parsing.html#reconstruct-the-active-formatting-elements
func (c *HTMLTreeConstructor) reconstructActiveFormattingElements() {
	if len(c.afe.NodeList) == 0 {
		return
	}
	last := len(c.afe.NodeList) - 1
	entry := c.afe.NodeList[last]
	if entry.NodeType == spec.ScopeMarkerNode || c.openElements.Contains(entry) != -1 {
		return
	}

	i := last
	for i > 0 {
		i--
		entry = c.afe.NodeList[i]
		if entry.NodeType == spec.ScopeMarkerNode || c.openElements.Contains(entry) != -1 {
			i++
			break
		}
	}

	for i <= last {
		entry = c.afe.NodeList[i]
		clone := entry.CloneNode(false)
		clone.Attributes = entry.Attributes
		c.insertAtPlace(clone)
		c.openElements.Push(clone)
		c.afe.NodeList[i] = clone
		i++
	}
}

func (c *HTMLTreeConstructor) pushFormattingElement(t *Token, n *spec.Node) {
	c.afe.Push(n)
}

// --- doctype quirks-mode detection ------------------------------------

const (
	ibmxhtml                              = "http://www.ibm.com/data/dtd/v11/ibmxhtml1-transitional.dtd"
	w3cDTDHTML401Frameset                 = "-//W3C//DTD HTML 4.01 Frameset//"
	w3cDTDHTML401Transitional             = "-//W3C//DTD HTML 4.01 Transitional//"
	w3cDTDXHTML1Frameset                  = "-//W3C//DTD XHTML 1.0 Frameset//"
	w3cDTDXHTML1Transitional              = "-//W3C//DTD XHTML 1.0 Transitional//"
)

var quirksPublicIDPrefixes = []string{
	"+//Silmaril//dtd html Pro v0r11 19970101//",
	"-//AS//DTD HTML 3.0 asWedit + extensions//",
	"-//AdvaSoft Ltd//DTD HTML 3.0 asWedit + extensions//",
	"-//IETF//DTD HTML 2.0 Level 1//", "-//IETF//DTD HTML 2.0 Level 2//",
	"-//IETF//DTD HTML 2.0 Strict Level 1//", "-//IETF//DTD HTML 2.0 Strict Level 2//",
	"-//IETF//DTD HTML 2.0 Strict//", "-//IETF//DTD HTML 2.0//", "-//IETF//DTD HTML 2.1E//",
	"-//IETF//DTD HTML 3.0//", "-//IETF//DTD HTML 3.2 Final//", "-//IETF//DTD HTML 3.2//",
	"-//IETF//DTD HTML 3//", "-//IETF//DTD HTML Level 0//", "-//IETF//DTD HTML Level 1//",
	"-//IETF//DTD HTML Level 2//", "-//IETF//DTD HTML Level 3//",
	"-//IETF//DTD HTML Strict Level 0//", "-//IETF//DTD HTML Strict Level 1//",
	"-//IETF//DTD HTML Strict Level 2//", "-//IETF//DTD HTML Strict Level 3//",
	"-//IETF//DTD HTML Strict//", "-//IETF//DTD HTML//",
	"-//Metrius//DTD Metrius Presentational//",
	"-//Microsoft//DTD Internet Explorer 2.0 HTML Strict//",
	"-//Microsoft//DTD Internet Explorer 2.0 HTML//",
	"-//Microsoft//DTD Internet Explorer 2.0 Tables//",
	"-//Microsoft//DTD Internet Explorer 3.0 HTML Strict//",
	"-//Microsoft//DTD Internet Explorer 3.0 HTML//",
	"-//Microsoft//DTD Internet Explorer 3.0 Tables//",
	"-//Netscape Comm. Corp.//DTD HTML//", "-//Netscape Comm. Corp.//DTD Strict HTML//",
	"-//O'Reilly and Associates//DTD HTML 2.0//",
	"-//O'Reilly and Associates//DTD HTML Extended 1.0//",
	"-//O'Reilly and Associates//DTD HTML Extended Relaxed 1.0//",
	"-//SQ//DTD HTML 2.0 HoTMetaL + extensions//",
	"-//SoftQuad Software//DTD HoTMetaL PRO 6.0::19990601::extensions to HTML 4.0//",
	"-//SoftQuad//DTD HoTMetaL PRO 4.0::19971010::extensions to HTML 4.0//",
	"-//Spyglass//DTD HTML 2.0 Extended//",
	"-//Sun Microsystems Corp.//DTD HotJava HTML//",
	"-//Sun Microsystems Corp.//DTD HotJava Strict HTML//",
	"-//W3C//DTD HTML 3 1995-03-24//", "-//W3C//DTD HTML 3.2 Draft//",
	"-//W3C//DTD HTML 3.2 Final//", "-//W3C//DTD HTML 3.2//", "-//W3C//DTD HTML 3.2S Draft//",
	"-//W3C//DTD HTML 4.0 Frameset//", "-//W3C//DTD HTML 4.0 Transitional//",
	"-//W3C//DTD HTML Experimental 19960712//", "-//W3C//DTD HTML Experimental 970421//",
	"-//W3C//DTD W3 HTML//", "-//W3O//DTD W3 HTML 3.0//",
	"-//W3O//DTD W3 HTML Strict 3.0//EN//", "-//WebTechs//DTD Mozilla HTML 2.0//",
	"-//WebTechs//DTD Mozilla HTML//", "-/W3C/DTD HTML 4.0 Transitional/EN", "HTML",
}

func (c *HTMLTreeConstructor) isForceQuirks(t *Token) bool {
	if t.ForceQuirks {
		return true
	}
	if !strings.EqualFold(t.TagName, "html") {
		return true
	}
	if t.SystemIdentifier == ibmxhtml {
		return true
	}
	for _, p := range quirksPublicIDPrefixes {
		if strings.HasPrefix(t.PublicIdentifier, p) {
			return true
		}
	}
	if t.SystemIdentifier == missing &&
		(strings.HasPrefix(t.PublicIdentifier, w3cDTDHTML401Frameset) ||
			strings.HasPrefix(t.PublicIdentifier, w3cDTDHTML401Transitional)) {
		return true
	}
	return false
}

func (c *HTMLTreeConstructor) isLimitedQuirks(t *Token) bool {
	if strings.HasPrefix(t.PublicIdentifier, w3cDTDXHTML1Frameset) ||
		strings.HasPrefix(t.PublicIdentifier, w3cDTDXHTML1Transitional) {
		return true
	}
	if t.SystemIdentifier != missing &&
		(strings.HasPrefix(t.PublicIdentifier, w3cDTDHTML401Frameset) ||
			strings.HasPrefix(t.PublicIdentifier, w3cDTDHTML401Transitional)) {
		return true
	}
	return false
}

// --- generic RAWTEXT / RCDATA element parsing --------------------------

func (c *HTMLTreeConstructor) switchTokenizerStateTo(s tokenizerState) {
	c.pendingTokenizerState = &s
}

// genericRawTextElementParsing and genericRCDATAElementParsing implement
// https://html.spec.whatwg.org/multipage/parsing.html#generic-raw-text-element-parsing-algorithm
func (c *HTMLTreeConstructor) genericRawTextElementParsing(t *Token) insertionMode {
	c.insertHTMLElementForToken(t)
	c.switchTokenizerStateTo(rawTextState)
	c.originalInsertionMode = c.insertionMode
	return text
}

func (c *HTMLTreeConstructor) genericRCDATAElementParsing(t *Token) insertionMode {
	c.insertHTMLElementForToken(t)
	c.switchTokenizerStateTo(rcDataState)
	c.originalInsertionMode = c.insertionMode
	return text
}

func isWhitespaceChar(data string) bool {
	if len(data) != 1 {
		return false
	}
	switch data[0] {
	case '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

// --- foreign content (SVG/MathML) ---------------------------------------

var mathMLTextIntegrationPoints = map[string]bool{
	"mi": true, "mo": true, "mn": true, "ms": true, "mtext": true,
}

var htmlIntegrationPointSVG = map[string]bool{
	"foreignObject": true, "desc": true, "title": true,
}

func isMathMLTextIntegrationPoint(n *spec.Node) bool {
	return n.Element != nil && n.Element.NamespaceURI == spec.Mathmlns && mathMLTextIntegrationPoints[string(n.NodeName)]
}

func isHTMLIntegrationPoint(n *spec.Node) bool {
	if n.Element == nil {
		return false
	}
	if n.Element.NamespaceURI == spec.Mathmlns && n.NodeName == "annotation-xml" {
		enc := n.Attributes.GetNamedItem("encoding")
		if enc != nil {
			v := strings.ToLower(string(enc.Value))
			if v == "text/html" || v == "application/xhtml+xml" {
				return true
			}
		}
	}
	return n.Element.NamespaceURI == spec.Svgns && htmlIntegrationPointSVG[string(n.NodeName)]
}

func (c *HTMLTreeConstructor) useForeignContent(t *Token) bool {
	acn := c.adjustedCurrentNode()
	if acn == nil || acn.Element == nil || acn.Element.NamespaceURI == spec.Htmlns {
		return false
	}
	if t.TokenType == endOfFileToken {
		return false
	}
	if isMathMLTextIntegrationPoint(acn) {
		if t.TokenType == characterToken {
			return false
		}
		if t.TokenType == startTagToken && t.TagName != "mglyph" && t.TagName != "malignmark" {
			return false
		}
	}
	if acn.NodeName == "annotation-xml" && acn.Element.NamespaceURI == spec.Mathmlns &&
		t.TokenType == startTagToken && t.TagName == "svg" {
		return false
	}
	if isHTMLIntegrationPoint(acn) && (t.TokenType == startTagToken || t.TokenType == characterToken) {
		return false
	}
	return true
}

var svgTagNameFixups = map[string]string{
	"altglyph": "altGlyph", "altglyphdef": "altGlyphDef", "altglyphitem": "altGlyphItem",
	"animatecolor": "animateColor", "animatemotion": "animateMotion", "animatetransform": "animateTransform",
	"clippath": "clipPath", "feblend": "feBlend", "fecolormatrix": "feColorMatrix",
	"fecomponenttransfer": "feComponentTransfer", "fecomposite": "feComposite",
	"feconvolvematrix": "feConvolveMatrix", "fediffuselighting": "feDiffuseLighting",
	"fedisplacementmap": "feDisplacementMap", "fedistantlight": "feDistantLight",
	"fedropshadow": "feDropShadow", "feflood": "feFlood", "fefunca": "feFuncA",
	"fefuncb": "feFuncB", "fefuncg": "feFuncG", "fefuncr": "feFuncR", "fegaussianblur": "feGaussianBlur",
	"feimage": "feImage", "femerge": "feMerge", "femergenode": "feMergeNode",
	"femorphology": "feMorphology", "feoffset": "feOffset", "fepointlight": "fePointLight",
	"fespecularlighting": "feSpecularLighting", "fespotlight": "feSpotLight", "fetile": "feTile",
	"feturbulence": "feTurbulence", "foreignobject": "foreignObject", "glyphref": "glyphRef",
	"lineargradient": "linearGradient", "radialgradient": "radialGradient", "textpath": "textPath",
}

// foreignContentHandler implements
// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-inforeign
func (c *HTMLTreeConstructor) foreignContentHandler(t *Token) (bool, *perr.Error) {
	switch t.TokenType {
	case characterToken:
		if t.Data == "\x00" {
			c.insertCharacter("�")
			return false, perr.New(perr.UnexpectedNullCharacter)
		}
		c.insertCharacter(t.Data)
		if !isWhitespaceChar(t.Data) {
			c.framesetOK = false
		}
		return false, nil
	case commentToken:
		c.insertComment(t)
		return false, nil
	case docTypeToken:
		return false, perr.New(perr.MisplacedDOCTYPE)
	case startTagToken:
		switch t.TagName {
		case "b", "big", "blockquote", "body", "br", "center", "code", "dd", "div", "dl",
			"dt", "em", "embed", "h1", "h2", "h3", "h4", "h5", "h6", "head", "hr", "i", "img",
			"li", "listing", "menu", "meta", "nobr", "ol", "p", "pre", "ruby", "s", "small",
			"span", "strong", "strike", "sub", "sup", "table", "tt", "u", "ul", "var":
			for {
				c.openElements.Pop()
				if c.adjustedCurrentNode() == nil || !isForeignBreakoutBlocked(c.adjustedCurrentNode()) {
					break
				}
			}
			return true, perr.New(perr.UnexpectedStartTagIgnored)
		case "font":
			hasBreakoutAttr := false
			for _, a := range t.Attributes {
				if a.Name == "color" || a.Name == "face" || a.Name == "size" {
					hasBreakoutAttr = true
				}
			}
			if hasBreakoutAttr {
				for {
					c.openElements.Pop()
					if c.adjustedCurrentNode() == nil || !isForeignBreakoutBlocked(c.adjustedCurrentNode()) {
						break
					}
				}
				return true, nil
			}
		}

		acn := c.adjustedCurrentNode()
		ns := spec.Htmlns
		if acn != nil && acn.Element != nil {
			ns = acn.Element.NamespaceURI
		}

		tagName := t.TagName
		if ns == spec.Svgns {
			if fixed, ok := svgTagNameFixups[tagName]; ok {
				tagName = fixed
			}
		}
		adjusted := *t
		adjusted.TagName = tagName

		el := c.createElementForToken(&adjusted, ns)
		c.insertAtPlace(el)
		if !t.SelfClosing {
			c.openElements.Push(el)
		}
		return false, nil
	case endTagToken:
		if t.TagName == "script" && c.currentNode() != nil && string(c.currentNode().NodeName) == "script" &&
			c.currentNode().Element != nil && c.currentNode().Element.NamespaceURI == spec.Svgns {
			c.openElements.Pop()
			return false, nil
		}

		i := len(c.openElements.NodeList) - 1
		if i < 0 {
			return false, nil
		}
		if !strings.EqualFold(string(c.openElements.NodeList[i].NodeName), t.TagName) {
			c.Errors.Add(perr.New(perr.UnexpectedEndTag))
		}
		for i > 0 {
			node := c.openElements.NodeList[i]
			if strings.EqualFold(string(node.NodeName), t.TagName) {
				for len(c.openElements.NodeList) > i {
					c.openElements.Pop()
				}
				break
			}
			i--
			if node.Element != nil && node.Element.NamespaceURI == spec.Htmlns {
				return true, nil
			}
		}
		return false, nil
	}
	return false, nil
}

func isForeignBreakoutBlocked(n *spec.Node) bool {
	return n.Element != nil && n.Element.NamespaceURI != spec.Htmlns &&
		!isMathMLTextIntegrationPoint(n) && !isHTMLIntegrationPoint(n)
}
