package spec

import "github.com/oakmoss/html5parse/parser/webidl"

// Text is https://dom.spec.whatwg.org/#text
type Text struct {
	*CharacterData
}

func NewText(data webidl.DOMString) *Text {
	return &Text{
		CharacterData: &CharacterData{
			Data: data,
		},
	}
}
