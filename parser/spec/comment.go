package spec

import "github.com/oakmoss/html5parse/parser/webidl"

// Comment is https://dom.spec.whatwg.org/#interface-comment
type Comment struct {
	*CharacterData
}

// NewComment returns a comment node with its Data section filled.
func NewComment(data webidl.DOMString) *Comment {
	return &Comment{
		CharacterData: &CharacterData{
			Data: data,
		},
	}
}
