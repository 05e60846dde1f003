package parser

import (
	"strings"
)

//go:generate stringer -type=tokenType
type tokenType uint

const (
	characterToken tokenType = iota
	startTagToken
	endTagToken
	endOfFileToken
	commentToken
	docTypeToken
)

const missing string = "MISSING"

type tagType uint

const (
	startTag tagType = iota
	endTag
)

// Attribute is a single name/value pair in source order, as read off a
// start or end tag. Duplicate names are resolved at write time by
// TokenBuilder.CommitAttribute, never here, so by the time a Token
// reaches the tree constructor Attributes already holds at most one
// entry per name, first occurrence wins.
type Attribute struct {
	Name  string
	Value string
}

// Token is a concrete token that is ready to be emitted.
type Token struct {
	TokenType        tokenType
	Attributes       []Attribute
	TagName          string
	PublicIdentifier string
	SystemIdentifier string
	ForceQuirks      bool
	SelfClosing      bool
	Data             string
}

// TokenBuilder accumulates the pieces of whatever token the tokenizer
// is currently assembling. One builder is reused for the lifetime of
// the tokenizer; Reset clears it between tokens.
type TokenBuilder struct {
	attributes     []Attribute
	attributeIndex map[string]int

	attributeKey   strings.Builder
	attributeValue strings.Builder
	name           strings.Builder
	data           strings.Builder
	tempBuffer     strings.Builder
	publicID       strings.Builder
	systemID       strings.Builder

	selfClosing            bool
	forceQuirks            bool
	removeNextAttr         bool
	curTagType             tagType
	characterReferenceCode int
}

// MakeTokenBuilder returns a freshly reset TokenBuilder.
func MakeTokenBuilder() *TokenBuilder {
	t := &TokenBuilder{}
	t.Reset()
	return t
}

// Reset clears every field a new token starts with empty, per the
// HTML Standard's "create a new X token" steps. The temp buffer is
// left alone since it's scoped to the character-reference states, not
// to individual tokens.
func (t *TokenBuilder) Reset() {
	t.attributes = nil
	t.attributeIndex = make(map[string]int)
	t.attributeKey.Reset()
	t.attributeValue.Reset()
	t.publicID.Reset()
	t.systemID.Reset()
	t.publicID.WriteString(missing)
	t.systemID.WriteString(missing)
	t.data.Reset()
	t.name.Reset()
	t.selfClosing = false
	t.forceQuirks = false
	t.removeNextAttr = false
}

// EnableSelfClosing sets the self-closing flag.
func (t *TokenBuilder) EnableSelfClosing() {
	t.selfClosing = true
}

// EnableForceQuirks sets the force-quirks flag.
func (t *TokenBuilder) EnableForceQuirks() {
	t.forceQuirks = true
}

// WritePublicIdentifier appends a rune to the public identifier. The
// "MISSING" sentinel is not cleared here: the tokenizer calls
// WritePublicIdentifierEmpty before entering the quoted identifier states.
func (t *TokenBuilder) WritePublicIdentifier(r rune) {
	t.publicID.WriteRune(r)
}

// WritePublicIdentifierEmpty sets the public identifier to the empty
// string, per the "set the doctype token's public identifier to the
// empty string" steps (as opposed to leaving it MISSING).
func (t *TokenBuilder) WritePublicIdentifierEmpty() {
	t.publicID.Reset()
}

// WriteSystemIdentifier appends a rune to the system identifier.
func (t *TokenBuilder) WriteSystemIdentifier(r rune) {
	t.systemID.WriteRune(r)
}

// WriteSystemIdentifierEmpty sets the system identifier to the empty string.
func (t *TokenBuilder) WriteSystemIdentifierEmpty() {
	t.systemID.Reset()
}

// WriteAttributeName appends a character to the attribute name
// currently being built.
func (t *TokenBuilder) WriteAttributeName(r rune) {
	t.attributeKey.WriteRune(r)
}

// WriteData appends a character to the current data section.
func (t *TokenBuilder) WriteData(r rune) {
	t.data.WriteRune(r)
}

// WriteAttributeValue appends a character to the attribute value
// currently being built.
func (t *TokenBuilder) WriteAttributeValue(r rune) {
	t.attributeValue.WriteRune(r)
}

// RemoveDuplicateAttributeName reports whether the attribute name
// currently being built duplicates one already committed to this tag.
// If so it marks the in-progress attribute for silent discard: per
// the Standard the first occurrence of a name wins and later ones,
// value included, are dropped entirely.
func (t *TokenBuilder) RemoveDuplicateAttributeName() bool {
	_, ok := t.attributeIndex[t.attributeKey.String()]
	if ok {
		t.removeNextAttr = true
	}
	return ok
}

// WriteName appends a character to the tag/doctype name.
func (t *TokenBuilder) WriteName(r rune) {
	t.name.WriteRune(r)
}

// CommitAttribute finishes the name/value pair currently being built,
// appending it to the ordered attribute list unless it was flagged as
// a duplicate, then clears the name/value scratch buffers.
func (t *TokenBuilder) CommitAttribute() {
	k := t.attributeKey.String()
	_, dup := t.attributeIndex[k]
	if !t.removeNextAttr && !dup && k != "" {
		t.attributeIndex[k] = len(t.attributes)
		t.attributes = append(t.attributes, Attribute{Name: k, Value: t.attributeValue.String()})
	}
	t.attributeKey.Reset()
	t.attributeValue.Reset()
	t.removeNextAttr = false
}

// WriteTempBuffer appends a character to the temporary buffer shared
// by the character-reference states.
func (t *TokenBuilder) WriteTempBuffer(r rune) {
	t.tempBuffer.WriteRune(r)
}

// ResetTempBuffer clears the temporary buffer.
func (t *TokenBuilder) ResetTempBuffer() {
	t.tempBuffer.Reset()
}

// TempBuffer returns the temporary buffer's current contents.
func (t *TokenBuilder) TempBuffer() string {
	return t.tempBuffer.String()
}

// TempBufferCharTokens flushes the temp buffer as a run of character
// tokens, one per rune, used when a character reference attempt fails
// and its consumed code points must be emitted literally.
func (t *TokenBuilder) TempBufferCharTokens() []Token {
	s := t.tempBuffer.String()
	tokens := make([]Token, 0, len(s))
	for _, r := range s {
		tokens = append(tokens, t.CharacterToken(r))
	}
	return tokens
}

// SetCharRef sets the accumulated character reference code point.
func (t *TokenBuilder) SetCharRef(i int) {
	t.characterReferenceCode = i
}

// GetCharRef returns the accumulated character reference code point.
func (t *TokenBuilder) GetCharRef() int {
	return t.characterReferenceCode
}

// AddToCharRef adds i to the accumulated character reference code point.
func (t *TokenBuilder) AddToCharRef(i int) {
	t.characterReferenceCode += i
}

// MultByCharRef multiplies the accumulated character reference code
// point by i, used to shift in a new hex/decimal digit.
func (t *TokenBuilder) MultByCharRef(i int) {
	t.characterReferenceCode *= i
}

// Cmp compares the accumulated character reference code point to n,
// returning -1, 0, or 1.
func (t *TokenBuilder) Cmp(n int) int {
	switch {
	case t.characterReferenceCode < n:
		return -1
	case t.characterReferenceCode > n:
		return 1
	default:
		return 0
	}
}

// StartTagToken creates a start tag token from the builder contents.
func (t *TokenBuilder) StartTagToken() Token {
	return Token{
		TokenType:   startTagToken,
		TagName:     t.name.String(),
		Attributes:  t.attributes,
		SelfClosing: t.selfClosing,
	}
}

// EndTagToken creates an end tag token from the builder contents.
func (t *TokenBuilder) EndTagToken() Token {
	return Token{
		TokenType:   endTagToken,
		TagName:     t.name.String(),
		Attributes:  t.attributes,
		SelfClosing: t.selfClosing,
	}
}

// CharacterToken creates a single-character character token.
func (t *TokenBuilder) CharacterToken(r rune) Token {
	return Token{
		TokenType: characterToken,
		Data:      string(r),
	}
}

// EndOfFileToken creates an end-of-file token.
func (t *TokenBuilder) EndOfFileToken() Token {
	return Token{
		TokenType: endOfFileToken,
	}
}

// CommentToken creates a comment token from the builder contents.
func (t *TokenBuilder) CommentToken() Token {
	return Token{
		TokenType: commentToken,
		Data:      t.data.String(),
	}
}

// DocTypeToken creates a doctype token from the builder contents.
func (t *TokenBuilder) DocTypeToken() Token {
	return Token{
		TokenType:        docTypeToken,
		TagName:          t.name.String(),
		ForceQuirks:      t.forceQuirks,
		PublicIdentifier: t.publicID.String(),
		SystemIdentifier: t.systemID.String(),
	}
}
