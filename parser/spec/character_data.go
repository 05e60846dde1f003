package spec

import "github.com/oakmoss/html5parse/parser/webidl"

// CharacterData backs Text and Comment nodes.
// https://dom.spec.whatwg.org/#characterdata
type CharacterData struct {
	Data webidl.DOMString
}

func (c *CharacterData) Append(s webidl.DOMString) {
	c.Data += s
}
