package parser

import (
	"strings"

	"github.com/oakmoss/html5parse/parser/perr"
	"github.com/oakmoss/html5parse/parser/spec"
	"github.com/oakmoss/html5parse/parser/webidl"
)

// initialModeHandler implements
// https://html.spec.whatwg.org/multipage/parsing.html#the-initial-insertion-mode
func (c *HTMLTreeConstructor) initialModeHandler(t *Token) (bool, insertionMode, *perr.Error) {
	switch t.TokenType {
	case characterToken:
		if isWhitespaceChar(t.Data) {
			return false, initial, nil
		}
	case commentToken:
		c.insertCommentAsLastChildOfDocument(t)
		return false, initial, nil
	case docTypeToken:
		c.Document.DocumentType = nil
		dt := c.sink.CreateDoctype(webidl.DOMString(t.TagName), webidl.DOMString(t.PublicIdentifier), webidl.DOMString(t.SystemIdentifier))
		c.Document.AppendChild(dt)
		if c.isForceQuirks(t) {
			c.Document.Document.QuirksMode = spec.Quirks
		} else if c.isLimitedQuirks(t) {
			c.Document.Document.QuirksMode = spec.LimitedQuirks
		}
		return false, beforeHTML, nil
	}
	return true, beforeHTML, nil
}

// beforeHTMLModeHandler implements
// https://html.spec.whatwg.org/multipage/parsing.html#the-before-html-insertion-mode
func (c *HTMLTreeConstructor) beforeHTMLModeHandler(t *Token) (bool, insertionMode, *perr.Error) {
	switch t.TokenType {
	case docTypeToken:
		return false, beforeHTML, perr.New(perr.UnexpectedDOCTYPE)
	case commentToken:
		c.insertCommentAsLastChildOfDocument(t)
		return false, beforeHTML, nil
	case characterToken:
		if isWhitespaceChar(t.Data) {
			return false, beforeHTML, nil
		}
	case startTagToken:
		if t.TagName == "html" {
			el := c.createElementForToken(t, spec.Htmlns)
			c.Document.AppendChild(el)
			c.openElements.Push(el)
			return false, beforeHead, nil
		}
	case endTagToken:
		switch t.TagName {
		case "head", "body", "html", "br":
		default:
			return false, beforeHTML, perr.New(perr.EndTagWithoutMatchingOpenElement)
		}
	case endOfFileToken:
	}

	el := c.sink.CreateElement("html", spec.Htmlns)
	c.Document.AppendChild(el)
	c.openElements.Push(el)
	return true, beforeHead, nil
}

// beforeHeadModeHandler implements
// https://html.spec.whatwg.org/multipage/parsing.html#the-before-head-insertion-mode
func (c *HTMLTreeConstructor) beforeHeadModeHandler(t *Token) (bool, insertionMode, *perr.Error) {
	switch t.TokenType {
	case characterToken:
		if isWhitespaceChar(t.Data) {
			return false, beforeHead, nil
		}
	case commentToken:
		c.insertComment(t)
		return false, beforeHead, nil
	case docTypeToken:
		return false, beforeHead, perr.New(perr.UnexpectedDOCTYPE)
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, beforeHead, inBody)
		case "head":
			el := c.insertHTMLElementForToken(t)
			c.headElementPointer = el
			return false, inHead, nil
		}
	case endTagToken:
		switch t.TagName {
		case "head", "body", "html", "br":
		default:
			return false, beforeHead, perr.New(perr.EndTagWithoutMatchingOpenElement)
		}
	}

	el := c.insertHTMLElementForToken(&Token{TokenType: startTagToken, TagName: "head"})
	c.headElementPointer = el
	return true, inHead, nil
}

// inHeadModeHandler implements
// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-inhead
func (c *HTMLTreeConstructor) inHeadModeHandler(t *Token) (bool, insertionMode, *perr.Error) {
	switch t.TokenType {
	case characterToken:
		if isWhitespaceChar(t.Data) {
			c.insertCharacter(t.Data)
			return false, inHead, nil
		}
	case commentToken:
		c.insertComment(t)
		return false, inHead, nil
	case docTypeToken:
		return false, inHead, perr.New(perr.UnexpectedDOCTYPE)
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, inHead, inBody)
		case "base", "basefont", "bgsound", "link":
			c.insertHTMLElementForToken(t)
			c.openElements.Pop()
			return false, inHead, nil
		case "meta":
			c.insertHTMLElementForToken(t)
			c.openElements.Pop()
			return false, inHead, nil
		case "title":
			return false, c.genericRCDATAElementParsing(t), nil
		case "noscript":
			if c.scriptingEnabled {
				return false, c.genericRawTextElementParsing(t), nil
			}
			c.insertHTMLElementForToken(t)
			return false, inHeadNoScript, nil
		case "noframes", "style":
			return false, c.genericRawTextElementParsing(t), nil
		case "script":
			c.insertForeignElementForToken(t, spec.Htmlns, false)
			c.switchTokenizerStateTo(scriptDataState)
			c.originalInsertionMode = inHead
			return false, text, nil
		case "template":
			c.insertHTMLElementForToken(t)
			c.afe.PushMarker()
			c.framesetOK = false
			c.stackOfTemplateInsertionModes = append(c.stackOfTemplateInsertionModes, inTemplate)
			return false, inHead, nil
		case "head":
			return false, inHead, perr.New(perr.UnexpectedStartTagIgnored)
		}
	case endTagToken:
		switch t.TagName {
		case "head":
			c.openElements.Pop()
			return false, afterHead, nil
		case "body", "html", "br":
		case "template":
			if c.openElements.Contains(c.headElementPointer) == -1 && !c.hasOpenTemplate() {
				return false, inHead, perr.New(perr.EndTagWithoutMatchingOpenElement)
			}
			c.generateImpliedEndTags("")
			if c.currentNode() != nil && c.currentNode().NodeName != "template" {
				c.Errors.Add(perr.New(perr.UnexpectedEndTag))
			}
			c.openElements.PopUntil("template")
			c.afe.ClearToLastMarker()
			c.popTemplateInsertionMode()
			return false, c.resetInsertionModeAndReturn(), nil
		default:
			return false, inHead, perr.New(perr.EndTagWithoutMatchingOpenElement)
		}
	}

	c.openElements.Pop()
	return true, afterHead, nil
}

func (c *HTMLTreeConstructor) hasOpenTemplate() bool {
	for _, n := range c.openElements.NodeList {
		if n.NodeName == "template" {
			return true
		}
	}
	return false
}

func (c *HTMLTreeConstructor) popTemplateInsertionMode() {
	if len(c.stackOfTemplateInsertionModes) > 0 {
		c.stackOfTemplateInsertionModes = c.stackOfTemplateInsertionModes[:len(c.stackOfTemplateInsertionModes)-1]
	}
}

func (c *HTMLTreeConstructor) resetInsertionModeAndReturn() insertionMode {
	c.resetInsertionModeWithContext()
	return c.insertionMode
}

// inHeadNoScriptModeHandler implements
// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-inheadnoscript
func (c *HTMLTreeConstructor) inHeadNoScriptModeHandler(t *Token) (bool, insertionMode, *perr.Error) {
	switch t.TokenType {
	case docTypeToken:
		return false, inHeadNoScript, perr.New(perr.UnexpectedDOCTYPE)
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, inHeadNoScript, inBody)
		case "basefont", "bgsound", "link", "meta", "noframes", "style":
			return c.useRulesFor(t, inHeadNoScript, inHead)
		case "head", "noscript":
			return false, inHeadNoScript, perr.New(perr.UnexpectedStartTagIgnored)
		}
	case endTagToken:
		switch t.TagName {
		case "noscript":
			c.openElements.Pop()
			return false, inHead, nil
		case "br":
		default:
			return false, inHeadNoScript, perr.New(perr.EndTagWithoutMatchingOpenElement)
		}
	case characterToken:
		if isWhitespaceChar(t.Data) {
			return c.useRulesFor(t, inHeadNoScript, inHead)
		}
	case commentToken:
		return c.useRulesFor(t, inHeadNoScript, inHead)
	}

	c.openElements.Pop()
	return true, inHead, perr.New(perr.UnexpectedStartTagIgnored)
}

// afterHeadModeHandler implements
// https://html.spec.whatwg.org/multipage/parsing.html#the-after-head-insertion-mode
func (c *HTMLTreeConstructor) afterHeadModeHandler(t *Token) (bool, insertionMode, *perr.Error) {
	switch t.TokenType {
	case characterToken:
		if isWhitespaceChar(t.Data) {
			c.insertCharacter(t.Data)
			return false, afterHead, nil
		}
	case commentToken:
		c.insertComment(t)
		return false, afterHead, nil
	case docTypeToken:
		return false, afterHead, perr.New(perr.UnexpectedDOCTYPE)
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, afterHead, inBody)
		case "body":
			c.insertHTMLElementForToken(t)
			c.framesetOK = false
			return false, inBody, nil
		case "frameset":
			c.insertHTMLElementForToken(t)
			return false, inFrameset, nil
		case "base", "basefont", "bgsound", "link", "meta", "noframes", "script", "style",
			"template", "title":
			c.Errors.Add(perr.New(perr.MisplacedStartTagForHeadElement))
			c.openElements.Push(c.headElementPointer)
			again, next, err := c.inHeadModeHandler(t)
			c.openElements.Remove(c.openElements.Contains(c.headElementPointer))
			return again, next, err
		case "head":
			return false, afterHead, perr.New(perr.UnexpectedStartTagIgnored)
		}
	case endTagToken:
		switch t.TagName {
		case "template":
			return c.useRulesFor(t, afterHead, inHead)
		case "body", "html", "br":
		default:
			return false, afterHead, perr.New(perr.EndTagWithoutMatchingOpenElement)
		}
	}

	c.insertHTMLElementForToken(&Token{TokenType: startTagToken, TagName: "body"})
	return true, inBody, nil
}

// inBodyModeHandler implements
// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-inbody
func (c *HTMLTreeConstructor) inBodyModeHandler(t *Token) (bool, insertionMode, *perr.Error) {
	switch t.TokenType {
	case characterToken:
		if t.Data == "\x00" {
			return false, inBody, perr.New(perr.UnexpectedNullCharacter)
		}
		c.reconstructActiveFormattingElements()
		c.insertCharacter(t.Data)
		if !isWhitespaceChar(t.Data) {
			c.framesetOK = false
		}
		return false, inBody, nil
	case commentToken:
		c.insertComment(t)
		return false, inBody, nil
	case docTypeToken:
		return false, inBody, perr.New(perr.UnexpectedDOCTYPE)
	case endOfFileToken:
		if len(c.stackOfTemplateInsertionModes) > 0 {
			return c.useRulesFor(t, inBody, inTemplate)
		}
		c.stopParsing()
		return false, inBody, nil
	case startTagToken:
		return c.inBodyStartTag(t)
	case endTagToken:
		return c.inBodyEndTag(t)
	}
	return false, inBody, nil
}

func (c *HTMLTreeConstructor) inBodyStartTag(t *Token) (bool, insertionMode, *perr.Error) {
	switch t.TagName {
	case "html":
		if c.hasOpenTemplate() {
			return false, inBody, nil
		}
		for _, a := range t.Attributes {
			if c.currentNode().Attributes.GetNamedItem(webidl.DOMString(a.Name)) == nil {
				c.currentNode().Attributes.Append(webidl.DOMString(a.Name), webidl.DOMString(a.Value))
			}
		}
		return false, inBody, nil
	case "base", "basefont", "bgsound", "link", "meta", "noframes", "script", "style",
		"template", "title":
		return c.useRulesFor(t, inBody, inHead)
	case "body":
		if len(c.openElements.NodeList) > 1 && c.openElements.NodeList[1].NodeName == "body" {
			c.framesetOK = false
			for _, a := range t.Attributes {
				body := c.openElements.NodeList[1]
				if body.Attributes.GetNamedItem(webidl.DOMString(a.Name)) == nil {
					body.Attributes.Append(webidl.DOMString(a.Name), webidl.DOMString(a.Value))
				}
			}
		}
		return false, inBody, nil
	case "frameset":
		if !c.framesetOK || len(c.openElements.NodeList) <= 1 || c.openElements.NodeList[1].NodeName != "body" {
			return false, inBody, nil
		}
		body := c.openElements.NodeList[1]
		if body.ParentNode != nil {
			body.ParentNode.RemoveChild(body)
		}
		for len(c.openElements.NodeList) > 1 {
			c.openElements.Pop()
		}
		c.insertHTMLElementForToken(t)
		return false, inFrameset, nil
	case "address", "article", "aside", "blockquote", "center", "details", "dialog", "dir",
		"div", "dl", "fieldset", "figcaption", "figure", "footer", "header", "hgroup", "main",
		"menu", "nav", "ol", "p", "section", "summary", "ul":
		c.closePElementIfInButtonScope()
		c.insertHTMLElementForToken(t)
		return false, inBody, nil
	case "h1", "h2", "h3", "h4", "h5", "h6":
		c.closePElementIfInButtonScope()
		if cur := c.currentNode(); cur != nil {
			switch cur.NodeName {
			case "h1", "h2", "h3", "h4", "h5", "h6":
				c.openElements.Pop()
			}
		}
		c.insertHTMLElementForToken(t)
		return false, inBody, nil
	case "pre", "listing":
		c.closePElementIfInButtonScope()
		c.insertHTMLElementForToken(t)
		c.framesetOK = false
		return false, inBody, nil
	case "form":
		if c.formElementPointer != nil && !c.hasOpenTemplate() {
			return false, inBody, perr.New(perr.UnexpectedStartTagIgnored)
		}
		c.closePElementIfInButtonScope()
		el := c.insertHTMLElementForToken(t)
		if !c.hasOpenTemplate() {
			c.formElementPointer = el
		}
		return false, inBody, nil
	case "li":
		c.framesetOK = false
		for i := len(c.openElements.NodeList) - 1; i >= 0; i-- {
			node := c.openElements.NodeList[i]
			if node.NodeName == "li" {
				c.generateImpliedEndTags("li")
				if c.currentNode() != nil && c.currentNode().NodeName != "li" {
					c.Errors.Add(perr.New(perr.UnexpectedEndTag))
				}
				c.openElements.PopUntil("li")
				break
			}
			if isSpecial(node.NodeName) && node.NodeName != "address" && node.NodeName != "div" && node.NodeName != "p" {
				break
			}
		}
		c.closePElementIfInButtonScope()
		c.insertHTMLElementForToken(t)
		return false, inBody, nil
	case "dd", "dt":
		c.framesetOK = false
		for i := len(c.openElements.NodeList) - 1; i >= 0; i-- {
			node := c.openElements.NodeList[i]
			if node.NodeName == "dd" || node.NodeName == "dt" {
				c.generateImpliedEndTags(string(node.NodeName))
				if c.currentNode() != nil && c.currentNode().NodeName != node.NodeName {
					c.Errors.Add(perr.New(perr.UnexpectedEndTag))
				}
				c.openElements.PopUntil(string(node.NodeName))
				break
			}
			if isSpecial(node.NodeName) && node.NodeName != "address" && node.NodeName != "div" && node.NodeName != "p" {
				break
			}
		}
		c.closePElementIfInButtonScope()
		c.insertHTMLElementForToken(t)
		return false, inBody, nil
	case "plaintext":
		c.closePElementIfInButtonScope()
		c.insertHTMLElementForToken(t)
		c.switchTokenizerStateTo(plaintextState)
		return false, inBody, nil
	case "button":
		if c.openElements.HasInScope("button") {
			c.generateImpliedEndTags("")
			c.openElements.PopUntil("button")
		}
		c.reconstructActiveFormattingElements()
		c.insertHTMLElementForToken(t)
		c.framesetOK = false
		return false, inBody, nil
	case "a":
		if a := c.findActiveFormattingElementByName("a"); a != nil {
			if c.openElements.Contains(a) == -1 {
				c.Errors.Add(perr.New(perr.NestedFormattingElement))
				c.afe.Remove(c.afe.Contains(a))
			} else {
				c.adoptionAgencyAlgorithm("a")
				if idx := c.afe.Contains(a); idx != -1 {
					c.afe.Remove(idx)
				}
				if idx := c.openElements.Contains(a); idx != -1 {
					c.openElements.Remove(idx)
				}
			}
		}
		c.reconstructActiveFormattingElements()
		el := c.insertHTMLElementForToken(t)
		c.pushFormattingElement(t, el)
		return false, inBody, nil
	case "b", "big", "code", "em", "font", "i", "s", "small", "strike", "strong", "tt", "u":
		c.reconstructActiveFormattingElements()
		el := c.insertHTMLElementForToken(t)
		c.pushFormattingElement(t, el)
		return false, inBody, nil
	case "nobr":
		c.reconstructActiveFormattingElements()
		if c.openElements.HasInScope("nobr") {
			c.Errors.Add(perr.New(perr.NestedFormattingElement))
			c.adoptionAgencyAlgorithm("nobr")
			c.reconstructActiveFormattingElements()
		}
		el := c.insertHTMLElementForToken(t)
		c.pushFormattingElement(t, el)
		return false, inBody, nil
	case "applet", "marquee", "object":
		c.reconstructActiveFormattingElements()
		c.insertHTMLElementForToken(t)
		c.afe.PushMarker()
		c.framesetOK = false
		return false, inBody, nil
	case "table":
		if c.Document.Document.QuirksMode != spec.Quirks {
			c.closePElementIfInButtonScope()
		}
		c.insertHTMLElementForToken(t)
		c.framesetOK = false
		return false, inTable, nil
	case "area", "br", "embed", "img", "keygen", "wbr":
		c.reconstructActiveFormattingElements()
		c.insertHTMLElementForToken(t)
		c.openElements.Pop()
		c.framesetOK = false
		return false, inBody, nil
	case "input":
		c.reconstructActiveFormattingElements()
		c.insertHTMLElementForToken(t)
		c.openElements.Pop()
		typeVal := ""
		for _, a := range t.Attributes {
			if a.Name == "type" {
				typeVal = strings.ToLower(a.Value)
			}
		}
		if typeVal != "hidden" {
			c.framesetOK = false
		}
		return false, inBody, nil
	case "param", "source", "track":
		c.insertHTMLElementForToken(t)
		c.openElements.Pop()
		return false, inBody, nil
	case "hr":
		c.closePElementIfInButtonScope()
		c.insertHTMLElementForToken(t)
		c.openElements.Pop()
		c.framesetOK = false
		return false, inBody, nil
	case "image":
		t.TagName = "img"
		return c.inBodyStartTag(t)
	case "textarea":
		c.insertHTMLElementForToken(t)
		c.switchTokenizerStateTo(rcDataState)
		c.originalInsertionMode = inBody
		c.framesetOK = false
		return false, text, nil
	case "xmp":
		c.closePElementIfInButtonScope()
		c.reconstructActiveFormattingElements()
		c.framesetOK = false
		return false, c.genericRawTextElementParsing(t), nil
	case "iframe":
		c.framesetOK = false
		return false, c.genericRawTextElementParsing(t), nil
	case "noembed":
		return false, c.genericRawTextElementParsing(t), nil
	case "noscript":
		if c.scriptingEnabled {
			return false, c.genericRawTextElementParsing(t), nil
		}
	case "select":
		c.reconstructActiveFormattingElements()
		c.insertHTMLElementForToken(t)
		c.framesetOK = false
		switch c.insertionMode {
		case inTable, inCaption, inTableBody, inRow, inCell:
			return false, inSelectInTable, nil
		}
		return false, inSelect, nil
	case "optgroup", "option":
		if c.currentNode() != nil && c.currentNode().NodeName == "option" {
			c.openElements.Pop()
		}
		c.reconstructActiveFormattingElements()
		c.insertHTMLElementForToken(t)
		return false, inBody, nil
	case "rb", "rtc":
		if c.openElements.HasInScope("ruby") {
			c.generateImpliedEndTags("")
		}
		c.insertHTMLElementForToken(t)
		return false, inBody, nil
	case "rp", "rt":
		if c.openElements.HasInScope("ruby") {
			c.generateImpliedEndTags("rtc")
		}
		c.insertHTMLElementForToken(t)
		return false, inBody, nil
	case "math":
		c.reconstructActiveFormattingElements()
		c.insertForeignAnnotatedElement(t, spec.Mathmlns)
		return false, inBody, nil
	case "svg":
		c.reconstructActiveFormattingElements()
		c.insertForeignAnnotatedElement(t, spec.Svgns)
		return false, inBody, nil
	case "caption", "col", "colgroup", "frame", "head", "tbody", "td", "tfoot", "th",
		"thead", "tr":
		return false, inBody, perr.New(perr.UnexpectedStartTagIgnored)
	}

	c.reconstructActiveFormattingElements()
	c.insertHTMLElementForToken(t)
	return false, inBody, nil
}

// insertForeignAnnotatedElement implements the shared math/svg start-tag
// steps: adjust attributes into their foreign namespaces, create the
// element in ns, and push it (acknowledging self-closing immediately
// for void-like foreign elements the Standard pops right back off).
func (c *HTMLTreeConstructor) insertForeignAnnotatedElement(t *Token, ns spec.Namespace) {
	el := c.createElementForToken(t, ns)
	c.insertAtPlace(el)
	c.openElements.Push(el)
	if t.SelfClosing {
		c.openElements.Pop()
	}
}

func (c *HTMLTreeConstructor) findActiveFormattingElementByName(name string) *spec.Node {
	for i := len(c.afe.NodeList) - 1; i >= 0; i-- {
		entry := c.afe.NodeList[i]
		if entry.NodeType == spec.ScopeMarkerNode {
			return nil
		}
		if string(entry.NodeName) == name {
			return entry
		}
	}
	return nil
}

func (c *HTMLTreeConstructor) inBodyEndTag(t *Token) (bool, insertionMode, *perr.Error) {
	switch t.TagName {
	case "template":
		return c.useRulesFor(t, inBody, inHead)
	case "body":
		if !c.openElements.HasInScope("body") {
			return false, inBody, perr.New(perr.EndTagWithoutMatchingOpenElement)
		}
		var err *perr.Error
		for _, n := range c.openElements.NodeList {
			switch n.NodeName {
			case "dd", "dt", "li", "optgroup", "option", "p", "rb", "rp", "rt", "rtc",
				"tbody", "td", "tfoot", "th", "thead", "tr", "body", "html":
			default:
				err = perr.New(perr.UnexpectedImplicitlyClosedElement)
			}
		}
		return false, afterBody, err
	case "html":
		if !c.openElements.HasInScope("body") {
			return false, inBody, perr.New(perr.EndTagWithoutMatchingOpenElement)
		}
		return true, afterBody, nil
	case "address", "article", "aside", "blockquote", "button", "center", "details",
		"dialog", "dir", "div", "dl", "fieldset", "figcaption", "figure", "footer", "header",
		"hgroup", "listing", "main", "menu", "nav", "ol", "pre", "section", "summary", "ul":
		if !c.openElements.HasInScope(t.TagName) {
			return false, inBody, perr.New(perr.EndTagWithoutMatchingOpenElement)
		}
		c.generateImpliedEndTags("")
		if c.currentNode() != nil && string(c.currentNode().NodeName) != t.TagName {
			c.Errors.Add(perr.New(perr.UnexpectedEndTag))
		}
		c.openElements.PopUntil(t.TagName)
		return false, inBody, nil
	case "form":
		if c.hasOpenTemplate() {
			if !c.openElements.HasInScope("form") {
				return false, inBody, perr.New(perr.EndTagWithoutMatchingOpenElement)
			}
			c.generateImpliedEndTags("")
			if c.currentNode() != nil && c.currentNode().NodeName != "form" {
				c.Errors.Add(perr.New(perr.UnexpectedEndTag))
			}
			c.openElements.PopUntil("form")
			return false, inBody, nil
		}
		node := c.formElementPointer
		c.formElementPointer = nil
		if node == nil || c.openElements.Contains(node) == -1 {
			return false, inBody, perr.New(perr.EndTagWithoutMatchingOpenElement)
		}
		c.generateImpliedEndTags("")
		if c.currentNode() != node {
			c.Errors.Add(perr.New(perr.UnexpectedEndTag))
		}
		c.openElements.Remove(c.openElements.Contains(node))
		return false, inBody, nil
	case "p":
		if !c.openElements.HasInButtonScope("p") {
			c.Errors.Add(perr.New(perr.EndTagWithoutMatchingOpenElement))
			c.insertHTMLElementForToken(&Token{TokenType: startTagToken, TagName: "p"})
		}
		c.closePElement()
		return false, inBody, nil
	case "li":
		if !c.openElements.HasInListItemScope("li") {
			return false, inBody, perr.New(perr.EndTagWithoutMatchingOpenElement)
		}
		c.generateImpliedEndTags("li")
		if c.currentNode() != nil && c.currentNode().NodeName != "li" {
			c.Errors.Add(perr.New(perr.UnexpectedEndTag))
		}
		c.openElements.PopUntil("li")
		return false, inBody, nil
	case "dd", "dt":
		if !c.openElements.HasInScope(t.TagName) {
			return false, inBody, perr.New(perr.EndTagWithoutMatchingOpenElement)
		}
		c.generateImpliedEndTags(t.TagName)
		if c.currentNode() != nil && string(c.currentNode().NodeName) != t.TagName {
			c.Errors.Add(perr.New(perr.UnexpectedEndTag))
		}
		c.openElements.PopUntil(t.TagName)
		return false, inBody, nil
	case "h1", "h2", "h3", "h4", "h5", "h6":
		if !c.openElements.HasAnyInScope("h1", "h2", "h3", "h4", "h5", "h6") {
			return false, inBody, perr.New(perr.EndTagWithoutMatchingOpenElement)
		}
		c.generateImpliedEndTags("")
		if c.currentNode() != nil && string(c.currentNode().NodeName) != t.TagName {
			c.Errors.Add(perr.New(perr.UnexpectedEndTag))
		}
		c.openElements.PopUntil("h1", "h2", "h3", "h4", "h5", "h6")
		return false, inBody, nil
	case "a", "b", "big", "code", "em", "font", "i", "nobr", "s", "small", "strike",
		"strong", "tt", "u":
		err := c.adoptionAgencyAlgorithm(webidl.DOMString(t.TagName))
		return false, inBody, err
	case "applet", "marquee", "object":
		if !c.openElements.HasInScope(t.TagName) {
			return false, inBody, perr.New(perr.EndTagWithoutMatchingOpenElement)
		}
		c.generateImpliedEndTags("")
		if c.currentNode() != nil && string(c.currentNode().NodeName) != t.TagName {
			c.Errors.Add(perr.New(perr.UnexpectedEndTag))
		}
		c.openElements.PopUntil(t.TagName)
		c.afe.ClearToLastMarker()
		return false, inBody, nil
	case "br":
		c.reconstructActiveFormattingElements()
		c.insertHTMLElementForToken(&Token{TokenType: startTagToken, TagName: "br"})
		c.openElements.Pop()
		c.framesetOK = false
		return false, inBody, perr.New(perr.UnexpectedEndTag)
	case "caption", "col", "colgroup", "frame", "head", "tbody", "td", "tfoot", "th",
		"thead", "tr":
		return false, inBody, perr.New(perr.UnexpectedEndTag)
	}

	for i := len(c.openElements.NodeList) - 1; i >= 0; i-- {
		node := c.openElements.NodeList[i]
		if string(node.NodeName) == t.TagName {
			c.generateImpliedEndTags(t.TagName)
			if c.currentNode() != node {
				c.Errors.Add(perr.New(perr.UnexpectedEndTag))
			}
			for len(c.openElements.NodeList) > i {
				c.openElements.Pop()
			}
			return false, inBody, nil
		}
		if isSpecial(node.NodeName) {
			return false, inBody, perr.New(perr.StrayEndTag)
		}
	}
	return false, inBody, nil
}

// textModeHandler implements
// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-incdata
func (c *HTMLTreeConstructor) textModeHandler(t *Token) (bool, insertionMode, *perr.Error) {
	switch t.TokenType {
	case characterToken:
		c.insertCharacter(t.Data)
		return false, text, nil
	case endOfFileToken:
		c.Errors.Add(perr.New(perr.EOFInTag))
		c.openElements.Pop()
		return true, c.originalInsertionMode, nil
	case endTagToken:
		if t.TagName == "script" {
			c.openElements.Pop()
			return false, c.originalInsertionMode, nil
		}
		c.openElements.Pop()
		return false, c.originalInsertionMode, nil
	}
	return false, text, nil
}

// clearStackBackTo pops elements until the current node's name is one
// of names, per the several "clear the stack back to a table context"
// style steps in the table modes.
func (c *HTMLTreeConstructor) clearStackBackTo(names ...string) {
	for {
		cur := c.currentNode()
		if cur == nil {
			return
		}
		for _, n := range names {
			if string(cur.NodeName) == n {
				return
			}
		}
		c.openElements.Pop()
	}
}

// inTableModeHandler implements
// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-intable
func (c *HTMLTreeConstructor) inTableModeHandler(t *Token) (bool, insertionMode, *perr.Error) {
	switch t.TokenType {
	case characterToken:
		switch c.currentNode().NodeName {
		case "table", "tbody", "tfoot", "thead", "tr":
			c.pendingTableCharacters = nil
			c.pendingTableNonWS = false
			c.originalInsertionMode = inTable
			return c.inTableTextModeHandler(t)
		}
	case commentToken:
		c.insertComment(t)
		return false, inTable, nil
	case docTypeToken:
		return false, inTable, perr.New(perr.UnexpectedDOCTYPE)
	case startTagToken:
		switch t.TagName {
		case "caption":
			c.clearStackBackTo("table", "template", "html")
			c.afe.PushMarker()
			c.insertHTMLElementForToken(t)
			return false, inCaption, nil
		case "colgroup":
			c.clearStackBackTo("table", "template", "html")
			c.insertHTMLElementForToken(t)
			return false, inColumnGroup, nil
		case "col":
			c.clearStackBackTo("table", "template", "html")
			c.insertHTMLElementForToken(&Token{TokenType: startTagToken, TagName: "colgroup"})
			return true, inColumnGroup, nil
		case "tbody", "tfoot", "thead":
			c.clearStackBackTo("table", "template", "html")
			c.insertHTMLElementForToken(t)
			return false, inTableBody, nil
		case "td", "th", "tr":
			c.clearStackBackTo("table", "template", "html")
			c.insertHTMLElementForToken(&Token{TokenType: startTagToken, TagName: "tbody"})
			return true, inTableBody, nil
		case "table":
			if !c.openElements.HasInTableScope("table") {
				return false, inTable, perr.New(perr.UnexpectedTableElement)
			}
			c.openElements.PopUntil("table")
			return true, c.resetInsertionModeAndReturn(), perr.New(perr.UnexpectedTableElement)
		case "style", "script", "template":
			return c.useRulesFor(t, inTable, inHead)
		case "input":
			typeVal := ""
			for _, a := range t.Attributes {
				if a.Name == "type" {
					typeVal = strings.ToLower(a.Value)
				}
			}
			if typeVal != "hidden" {
				break
			}
			c.Errors.Add(perr.New(perr.UnexpectedTableElement))
			c.insertHTMLElementForToken(t)
			c.openElements.Pop()
			return false, inTable, nil
		case "form":
			if c.hasOpenTemplate() || c.formElementPointer != nil {
				return false, inTable, perr.New(perr.UnexpectedStartTagIgnored)
			}
			el := c.insertHTMLElementForToken(t)
			c.formElementPointer = el
			c.openElements.Pop()
			return false, inTable, nil
		}
	case endTagToken:
		switch t.TagName {
		case "table":
			if !c.openElements.HasInTableScope("table") {
				return false, inTable, perr.New(perr.EndTagWithoutMatchingOpenElement)
			}
			c.openElements.PopUntil("table")
			return false, c.resetInsertionModeAndReturn(), nil
		case "body", "caption", "col", "colgroup", "html", "tbody", "td", "tfoot", "th",
			"thead", "tr":
			return false, inTable, perr.New(perr.UnexpectedEndTag)
		case "template":
			return c.useRulesFor(t, inTable, inHead)
		}
	case endOfFileToken:
		return c.useRulesFor(t, inTable, inBody)
	}

	c.Errors.Add(perr.New(perr.UnexpectedTableElement))
	c.fosterParenting = true
	again, next, err := c.inBodyModeHandler(t)
	c.fosterParenting = false
	return again, next, err
}

// inTableTextModeHandler implements
// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-intabletext
func (c *HTMLTreeConstructor) inTableTextModeHandler(t *Token) (bool, insertionMode, *perr.Error) {
	if t.TokenType == characterToken {
		if t.Data == "\x00" {
			return false, inTableText, perr.New(perr.UnexpectedNullCharacter)
		}
		c.pendingTableCharacters = append(c.pendingTableCharacters, *t)
		if !isWhitespaceChar(t.Data) {
			c.pendingTableNonWS = true
		}
		return false, inTableText, nil
	}

	if c.pendingTableNonWS {
		c.Errors.Add(perr.New(perr.UnexpectedTableElement))
		c.fosterParenting = true
		for _, ch := range c.pendingTableCharacters {
			c.reconstructActiveFormattingElements()
			c.insertCharacter(ch.Data)
			c.framesetOK = false
		}
		c.fosterParenting = false
	} else {
		for _, ch := range c.pendingTableCharacters {
			c.insertCharacter(ch.Data)
		}
	}
	c.pendingTableCharacters = nil
	c.pendingTableNonWS = false
	return true, c.originalInsertionMode, nil
}

// inCaptionModeHandler implements
// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-incaption
func (c *HTMLTreeConstructor) inCaptionModeHandler(t *Token) (bool, insertionMode, *perr.Error) {
	closeCaption := func() (bool, *perr.Error) {
		if !c.openElements.HasInTableScope("caption") {
			return false, perr.New(perr.EndTagWithoutMatchingOpenElement)
		}
		c.generateImpliedEndTags("")
		var err *perr.Error
		if c.currentNode() != nil && c.currentNode().NodeName != "caption" {
			err = perr.New(perr.UnexpectedEndTag)
		}
		c.openElements.PopUntil("caption")
		c.afe.ClearToLastMarker()
		return true, err
	}

	switch t.TokenType {
	case startTagToken:
		switch t.TagName {
		case "caption", "col", "colgroup", "tbody", "td", "tfoot", "th", "thead", "tr":
			ok, err := closeCaption()
			if !ok {
				return false, inCaption, err
			}
			return true, inTable, err
		}
	case endTagToken:
		switch t.TagName {
		case "caption":
			ok, err := closeCaption()
			if !ok {
				return false, inCaption, err
			}
			return false, inTable, err
		case "table":
			ok, err := closeCaption()
			if !ok {
				return false, inCaption, err
			}
			return true, inTable, err
		case "body", "col", "colgroup", "html", "tbody", "td", "tfoot", "th", "thead", "tr":
			return false, inCaption, perr.New(perr.UnexpectedEndTag)
		}
	}
	return c.useRulesFor(t, inCaption, inBody)
}

// inColumnGroupModeHandler implements
// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-incolgroup
func (c *HTMLTreeConstructor) inColumnGroupModeHandler(t *Token) (bool, insertionMode, *perr.Error) {
	switch t.TokenType {
	case characterToken:
		if isWhitespaceChar(t.Data) {
			c.insertCharacter(t.Data)
			return false, inColumnGroup, nil
		}
	case commentToken:
		c.insertComment(t)
		return false, inColumnGroup, nil
	case docTypeToken:
		return false, inColumnGroup, perr.New(perr.UnexpectedDOCTYPE)
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, inColumnGroup, inBody)
		case "col":
			c.insertHTMLElementForToken(t)
			c.openElements.Pop()
			return false, inColumnGroup, nil
		case "template":
			return c.useRulesFor(t, inColumnGroup, inHead)
		}
	case endTagToken:
		switch t.TagName {
		case "colgroup":
			if c.currentNode() == nil || c.currentNode().NodeName != "colgroup" {
				return false, inColumnGroup, perr.New(perr.EndTagWithoutMatchingOpenElement)
			}
			c.openElements.Pop()
			return false, inTable, nil
		case "col":
			return false, inColumnGroup, perr.New(perr.UnexpectedEndTag)
		case "template":
			return c.useRulesFor(t, inColumnGroup, inHead)
		}
	case endOfFileToken:
		return c.useRulesFor(t, inColumnGroup, inBody)
	}

	if c.currentNode() == nil || c.currentNode().NodeName != "colgroup" {
		return false, inColumnGroup, perr.New(perr.UnexpectedStartTagIgnored)
	}
	c.openElements.Pop()
	return true, inTable, nil
}

// inTableBodyModeHandler implements
// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-intbody
func (c *HTMLTreeConstructor) inTableBodyModeHandler(t *Token) (bool, insertionMode, *perr.Error) {
	switch t.TokenType {
	case startTagToken:
		switch t.TagName {
		case "tr":
			c.clearStackBackTo("tbody", "tfoot", "thead", "template", "html")
			c.insertHTMLElementForToken(t)
			return false, inRow, nil
		case "th", "td":
			c.Errors.Add(perr.New(perr.UnexpectedTableElement))
			c.clearStackBackTo("tbody", "tfoot", "thead", "template", "html")
			c.insertHTMLElementForToken(&Token{TokenType: startTagToken, TagName: "tr"})
			return true, inRow, nil
		case "caption", "col", "colgroup", "tbody", "tfoot", "thead":
			if !c.openElements.HasAnyInScope("tbody", "tfoot", "thead") {
				return false, inTableBody, perr.New(perr.UnexpectedEndTag)
			}
			c.clearStackBackTo("tbody", "tfoot", "thead", "template", "html")
			c.openElements.Pop()
			return true, inTable, nil
		}
	case endTagToken:
		switch t.TagName {
		case "tbody", "tfoot", "thead":
			if !c.openElements.HasInTableScope(t.TagName) {
				return false, inTableBody, perr.New(perr.EndTagWithoutMatchingOpenElement)
			}
			c.clearStackBackTo("tbody", "tfoot", "thead", "template", "html")
			c.openElements.Pop()
			return false, inTable, nil
		case "table":
			if !c.openElements.HasAnyInScope("tbody", "tfoot", "thead") {
				return false, inTableBody, perr.New(perr.UnexpectedEndTag)
			}
			c.clearStackBackTo("tbody", "tfoot", "thead", "template", "html")
			c.openElements.Pop()
			return true, inTable, nil
		case "body", "caption", "col", "colgroup", "html", "td", "th", "tr":
			return false, inTableBody, perr.New(perr.UnexpectedEndTag)
		}
	}
	return c.useRulesFor(t, inTableBody, inTable)
}

// inRowModeHandler implements
// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-intr
func (c *HTMLTreeConstructor) inRowModeHandler(t *Token) (bool, insertionMode, *perr.Error) {
	switch t.TokenType {
	case startTagToken:
		switch t.TagName {
		case "th", "td":
			c.clearStackBackTo("tr", "template", "html")
			c.insertHTMLElementForToken(t)
			c.afe.PushMarker()
			return false, inCell, nil
		case "caption", "col", "colgroup", "tbody", "tfoot", "thead", "tr":
			if !c.openElements.HasInTableScope("tr") {
				return false, inRow, perr.New(perr.UnexpectedEndTag)
			}
			c.clearStackBackTo("tr", "template", "html")
			c.openElements.Pop()
			return true, inTableBody, nil
		}
	case endTagToken:
		switch t.TagName {
		case "tr":
			if !c.openElements.HasInTableScope("tr") {
				return false, inRow, perr.New(perr.EndTagWithoutMatchingOpenElement)
			}
			c.clearStackBackTo("tr", "template", "html")
			c.openElements.Pop()
			return false, inTableBody, nil
		case "table":
			if !c.openElements.HasInTableScope("tr") {
				return false, inRow, perr.New(perr.UnexpectedEndTag)
			}
			c.clearStackBackTo("tr", "template", "html")
			c.openElements.Pop()
			return true, inTableBody, nil
		case "tbody", "tfoot", "thead":
			if !c.openElements.HasInTableScope(t.TagName) || !c.openElements.HasInTableScope("tr") {
				return false, inRow, perr.New(perr.UnexpectedEndTag)
			}
			c.clearStackBackTo("tr", "template", "html")
			c.openElements.Pop()
			return true, inTableBody, nil
		case "body", "caption", "col", "colgroup", "html", "td", "th":
			return false, inRow, perr.New(perr.UnexpectedEndTag)
		}
	}
	return c.useRulesFor(t, inRow, inTable)
}

// inCellModeHandler implements
// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-intd
func (c *HTMLTreeConstructor) inCellModeHandler(t *Token) (bool, insertionMode, *perr.Error) {
	closeCell := func() {
		c.generateImpliedEndTags("")
		c.openElements.PopUntil("td", "th")
		c.afe.ClearToLastMarker()
	}

	switch t.TokenType {
	case startTagToken:
		switch t.TagName {
		case "caption", "col", "colgroup", "tbody", "td", "tfoot", "th", "thead", "tr":
			if !c.openElements.HasAnyInScope("td", "th") {
				return false, inCell, perr.New(perr.UnexpectedTableElement)
			}
			closeCell()
			return true, inRow, nil
		}
	case endTagToken:
		switch t.TagName {
		case "td", "th":
			if !c.openElements.HasInTableScope(t.TagName) {
				return false, inCell, perr.New(perr.EndTagWithoutMatchingOpenElement)
			}
			c.generateImpliedEndTags("")
			if c.currentNode() != nil && string(c.currentNode().NodeName) != t.TagName {
				c.Errors.Add(perr.New(perr.UnexpectedEndTag))
			}
			c.openElements.PopUntil(t.TagName)
			c.afe.ClearToLastMarker()
			return false, inRow, nil
		case "body", "caption", "col", "colgroup", "html":
			return false, inCell, perr.New(perr.UnexpectedEndTag)
		case "table", "tbody", "tfoot", "thead", "tr":
			if !c.openElements.HasInTableScope(t.TagName) {
				return false, inCell, perr.New(perr.UnexpectedEndTag)
			}
			closeCell()
			return true, inRow, nil
		}
	}
	return c.useRulesFor(t, inCell, inBody)
}

// inSelectModeHandler implements
// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-inselect
func (c *HTMLTreeConstructor) inSelectModeHandler(t *Token) (bool, insertionMode, *perr.Error) {
	switch t.TokenType {
	case characterToken:
		if t.Data == "\x00" {
			return false, inSelect, perr.New(perr.UnexpectedNullCharacter)
		}
		c.insertCharacter(t.Data)
		return false, inSelect, nil
	case commentToken:
		c.insertComment(t)
		return false, inSelect, nil
	case docTypeToken:
		return false, inSelect, perr.New(perr.UnexpectedDOCTYPE)
	case endOfFileToken:
		return c.useRulesFor(t, inSelect, inBody)
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, inSelect, inBody)
		case "option":
			if c.currentNode() != nil && c.currentNode().NodeName == "option" {
				c.openElements.Pop()
			}
			c.insertHTMLElementForToken(t)
			return false, inSelect, nil
		case "optgroup":
			if c.currentNode() != nil && c.currentNode().NodeName == "option" {
				c.openElements.Pop()
			}
			if c.currentNode() != nil && c.currentNode().NodeName == "optgroup" {
				c.openElements.Pop()
			}
			c.insertHTMLElementForToken(t)
			return false, inSelect, nil
		case "select":
			if !c.openElements.HasInSelectScope("select") {
				return false, inSelect, perr.New(perr.UnexpectedStartTagIgnored)
			}
			c.openElements.PopUntil("select")
			return false, c.resetInsertionModeAndReturn(), perr.New(perr.UnexpectedTableElement)
		case "input", "keygen", "textarea":
			if !c.openElements.HasInSelectScope("select") {
				return false, inSelect, perr.New(perr.UnexpectedStartTagIgnored)
			}
			c.openElements.PopUntil("select")
			return true, c.resetInsertionModeAndReturn(), nil
		case "script", "template":
			return c.useRulesFor(t, inSelect, inHead)
		}
	case endTagToken:
		switch t.TagName {
		case "optgroup":
			if c.currentNode() != nil && c.currentNode().NodeName == "option" &&
				len(c.openElements.NodeList) > 1 &&
				c.openElements.NodeList[len(c.openElements.NodeList)-2].NodeName == "optgroup" {
				c.openElements.Pop()
			}
			if c.currentNode() != nil && c.currentNode().NodeName == "optgroup" {
				c.openElements.Pop()
			} else {
				return false, inSelect, perr.New(perr.EndTagWithoutMatchingOpenElement)
			}
			return false, inSelect, nil
		case "option":
			if c.currentNode() != nil && c.currentNode().NodeName == "option" {
				c.openElements.Pop()
			} else {
				return false, inSelect, perr.New(perr.EndTagWithoutMatchingOpenElement)
			}
			return false, inSelect, nil
		case "select":
			if !c.openElements.HasInSelectScope("select") {
				return false, inSelect, perr.New(perr.EndTagWithoutMatchingOpenElement)
			}
			c.openElements.PopUntil("select")
			return false, c.resetInsertionModeAndReturn(), nil
		case "template":
			return c.useRulesFor(t, inSelect, inHead)
		}
	}
	return false, inSelect, perr.New(perr.UnexpectedStartTagIgnored)
}

// inSelectInTableModeHandler implements
// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-inselectintable
func (c *HTMLTreeConstructor) inSelectInTableModeHandler(t *Token) (bool, insertionMode, *perr.Error) {
	switch t.TokenType {
	case startTagToken:
		switch t.TagName {
		case "caption", "table", "tbody", "tfoot", "thead", "tr", "td", "th":
			c.Errors.Add(perr.New(perr.UnexpectedTableElement))
			c.openElements.PopUntil("select")
			return true, c.resetInsertionModeAndReturn(), nil
		}
	case endTagToken:
		switch t.TagName {
		case "caption", "table", "tbody", "tfoot", "thead", "tr", "td", "th":
			if !c.openElements.HasInTableScope(t.TagName) {
				return false, inSelectInTable, perr.New(perr.EndTagWithoutMatchingOpenElement)
			}
			c.openElements.PopUntil("select")
			return true, c.resetInsertionModeAndReturn(), nil
		}
	}
	return c.useRulesFor(t, inSelectInTable, inSelect)
}

// inTemplateModeHandler implements
// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-intemplate
func (c *HTMLTreeConstructor) inTemplateModeHandler(t *Token) (bool, insertionMode, *perr.Error) {
	switch t.TokenType {
	case characterToken, commentToken, docTypeToken:
		return c.useRulesFor(t, inTemplate, inBody)
	case startTagToken:
		switch t.TagName {
		case "base", "basefont", "bgsound", "link", "meta", "noframes", "script", "style",
			"template", "title":
			return c.useRulesFor(t, inTemplate, inHead)
		case "caption", "colgroup", "tbody", "tfoot", "thead":
			c.popTemplateInsertionMode()
			c.stackOfTemplateInsertionModes = append(c.stackOfTemplateInsertionModes, inTable)
			return true, inTable, nil
		case "col":
			c.popTemplateInsertionMode()
			c.stackOfTemplateInsertionModes = append(c.stackOfTemplateInsertionModes, inColumnGroup)
			return true, inColumnGroup, nil
		case "tr":
			c.popTemplateInsertionMode()
			c.stackOfTemplateInsertionModes = append(c.stackOfTemplateInsertionModes, inTableBody)
			return true, inTableBody, nil
		case "td", "th":
			c.popTemplateInsertionMode()
			c.stackOfTemplateInsertionModes = append(c.stackOfTemplateInsertionModes, inRow)
			return true, inRow, nil
		default:
			c.popTemplateInsertionMode()
			c.stackOfTemplateInsertionModes = append(c.stackOfTemplateInsertionModes, inBody)
			return true, inBody, nil
		}
	case endTagToken:
		if t.TagName == "template" {
			return c.useRulesFor(t, inTemplate, inHead)
		}
		return false, inTemplate, perr.New(perr.UnexpectedEndTag)
	case endOfFileToken:
		if !c.hasOpenTemplate() {
			c.stopParsing()
			return false, inTemplate, nil
		}
		c.Errors.Add(perr.New(perr.EOFInTag))
		c.openElements.PopUntil("template")
		c.afe.ClearToLastMarker()
		c.popTemplateInsertionMode()
		return true, c.resetInsertionModeAndReturn(), nil
	}
	return false, inTemplate, nil
}

// afterBodyModeHandler implements
// https://html.spec.whatwg.org/multipage/parsing.html#the-after-body-insertion-mode
func (c *HTMLTreeConstructor) afterBodyModeHandler(t *Token) (bool, insertionMode, *perr.Error) {
	switch t.TokenType {
	case characterToken:
		if isWhitespaceChar(t.Data) {
			return c.useRulesFor(t, afterBody, inBody)
		}
	case commentToken:
		c.insertCommentAsLastChildOfDocument(t)
		return false, afterBody, nil
	case docTypeToken:
		return false, afterBody, perr.New(perr.UnexpectedDOCTYPE)
	case startTagToken:
		if t.TagName == "html" {
			return c.useRulesFor(t, afterBody, inBody)
		}
	case endTagToken:
		if t.TagName == "html" {
			return false, afterAfterBody, nil
		}
	case endOfFileToken:
		c.stopParsing()
		return false, afterBody, nil
	}
	return true, inBody, perr.New(perr.UnexpectedStartTagIgnored)
}

// inFramesetModeHandler implements
// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-inframeset
func (c *HTMLTreeConstructor) inFramesetModeHandler(t *Token) (bool, insertionMode, *perr.Error) {
	switch t.TokenType {
	case characterToken:
		if isWhitespaceChar(t.Data) {
			c.insertCharacter(t.Data)
			return false, inFrameset, nil
		}
	case commentToken:
		c.insertComment(t)
		return false, inFrameset, nil
	case docTypeToken:
		return false, inFrameset, perr.New(perr.UnexpectedDOCTYPE)
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, inFrameset, inBody)
		case "frameset":
			c.insertHTMLElementForToken(t)
			return false, inFrameset, nil
		case "frame":
			c.insertHTMLElementForToken(t)
			c.openElements.Pop()
			return false, inFrameset, nil
		case "noframes":
			return c.useRulesFor(t, inFrameset, inHead)
		}
	case endTagToken:
		if t.TagName == "frameset" {
			if len(c.openElements.NodeList) == 1 {
				return false, inFrameset, perr.New(perr.UnexpectedEndTag)
			}
			c.openElements.Pop()
			if c.currentNode() != nil && c.currentNode().NodeName != "frameset" {
				return false, afterFrameset, nil
			}
			return false, inFrameset, nil
		}
	case endOfFileToken:
		c.stopParsing()
		return false, inFrameset, nil
	}
	return false, inFrameset, perr.New(perr.UnexpectedStartTagIgnored)
}

// afterFramesetModeHandler implements
// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-afterframeset
func (c *HTMLTreeConstructor) afterFramesetModeHandler(t *Token) (bool, insertionMode, *perr.Error) {
	switch t.TokenType {
	case characterToken:
		if isWhitespaceChar(t.Data) {
			c.insertCharacter(t.Data)
			return false, afterFrameset, nil
		}
	case commentToken:
		c.insertComment(t)
		return false, afterFrameset, nil
	case docTypeToken:
		return false, afterFrameset, perr.New(perr.UnexpectedDOCTYPE)
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, afterFrameset, inBody)
		case "noframes":
			return c.useRulesFor(t, afterFrameset, inHead)
		}
	case endTagToken:
		if t.TagName == "html" {
			return false, afterAfterFrameset, nil
		}
	case endOfFileToken:
		c.stopParsing()
		return false, afterFrameset, nil
	}
	return false, afterFrameset, perr.New(perr.UnexpectedStartTagIgnored)
}

// afterAfterBodyModeHandler implements
// https://html.spec.whatwg.org/multipage/parsing.html#the-after-after-body-insertion-mode
func (c *HTMLTreeConstructor) afterAfterBodyModeHandler(t *Token) (bool, insertionMode, *perr.Error) {
	switch t.TokenType {
	case commentToken:
		c.insertCommentAsLastChildOfDocument(t)
		return false, afterAfterBody, nil
	case docTypeToken:
		return c.useRulesFor(t, afterAfterBody, inBody)
	case characterToken:
		if isWhitespaceChar(t.Data) {
			return c.useRulesFor(t, afterAfterBody, inBody)
		}
	case startTagToken:
		if t.TagName == "html" {
			return c.useRulesFor(t, afterAfterBody, inBody)
		}
	case endOfFileToken:
		c.stopParsing()
		return false, afterAfterBody, nil
	}
	return true, inBody, perr.New(perr.UnexpectedStartTagIgnored)
}

// afterAfterFramesetModeHandler implements
// https://html.spec.whatwg.org/multipage/parsing.html#the-after-after-frameset-insertion-mode
func (c *HTMLTreeConstructor) afterAfterFramesetModeHandler(t *Token) (bool, insertionMode, *perr.Error) {
	switch t.TokenType {
	case commentToken:
		c.insertCommentAsLastChildOfDocument(t)
		return false, afterAfterFrameset, nil
	case docTypeToken:
		return c.useRulesFor(t, afterAfterFrameset, inBody)
	case characterToken:
		if isWhitespaceChar(t.Data) {
			return c.useRulesFor(t, afterAfterFrameset, inBody)
		}
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, afterAfterFrameset, inBody)
		case "noframes":
			return c.useRulesFor(t, afterAfterFrameset, inHead)
		}
	case endOfFileToken:
		c.stopParsing()
		return false, afterAfterFrameset, nil
	}
	return false, afterAfterFrameset, perr.New(perr.UnexpectedStartTagIgnored)
}
