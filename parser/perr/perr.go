// Package perr defines the parse-error vocabulary the tokenizer and
// tree constructor raise while processing malformed markup. These are
// not failures: per the HTML Standard, a conforming parser recovers
// from every one of them and keeps producing a tree. Callers that
// want strict validation inspect the collected list; callers that
// just want a DOM ignore it.
package perr

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Code identifies a specific parse-error condition, named after the
// anchors the HTML Standard uses for its parse-error catalogue.
type Code string

const (
	GenericParseError                  Code = "generic-parse-error"
	UnexpectedNullCharacter             Code = "unexpected-null-character"
	UnexpectedQuestionMarkInsteadOfTag  Code = "unexpected-question-mark-instead-of-tag-name"
	EOFBeforeTagName                    Code = "eof-before-tag-name"
	InvalidFirstCharacterOfTagName      Code = "invalid-first-character-of-tag-name"
	MissingEndTagName                   Code = "missing-end-tag-name"
	EOFInTag                            Code = "eof-in-tag"
	EOFInScriptHTMLCommentLikeText      Code = "eof-in-script-html-comment-like-text"
	UnexpectedEqualsSignBeforeAttrName  Code = "unexpected-equals-sign-before-attribute-name"
	UnexpectedCharacterInAttrName       Code = "unexpected-character-in-attribute-name"
	MissingAttributeValue               Code = "missing-attribute-value"
	UnexpectedCharacterInUnquotedAttr   Code = "unexpected-character-in-unquoted-attribute-value"
	MissingWhitespaceBetweenAttrs        Code = "missing-whitespace-between-attributes"
	UnexpectedSolidusInTag               Code = "unexpected-solidus-in-tag"
	CDATAInHTMLContent                   Code = "cdata-in-html-content"
	IncorrectlyOpenedComment             Code = "incorrectly-opened-comment"
	AbruptClosingOfEmptyComment          Code = "abrupt-closing-of-empty-comment"
	EOFInComment                         Code = "eof-in-comment"
	NestedComment                        Code = "nested-comment"
	IncorrectlyClosedComment             Code = "incorrectly-closed-comment"
	EOFInDOCTYPE                         Code = "eof-in-doctype"
	MissingWhitespaceBeforeDOCTYPEName   Code = "missing-whitespace-before-doctype-name"
	MissingDOCTYPEName                   Code = "missing-doctype-name"
	InvalidCharacterSequenceAfterDOCTYPEName Code = "invalid-character-sequence-after-doctype-name"
	MissingWhitespaceAfterDOCTYPEPublicKeyword Code = "missing-whitespace-after-doctype-public-keyword"
	MissingDOCTYPEPublicIdentifier       Code = "missing-doctype-public-identifier"
	MissingQuoteBeforeDOCTYPEPublicIdentifier Code = "missing-quote-before-doctype-public-identifier"
	AbruptDOCTYPEPublicIdentifier         Code = "abrupt-doctype-public-identifier"
	MissingWhitespaceBetweenDOCTYPEPublicAndSystemIdentifiers Code = "missing-whitespace-between-doctype-public-and-system-identifiers"
	MissingWhitespaceAfterDOCTYPESystemKeyword Code = "missing-whitespace-after-doctype-system-keyword"
	MissingDOCTYPESystemIdentifier        Code = "missing-doctype-system-identifier"
	MissingQuoteBeforeDOCTYPESystemIdentifier Code = "missing-quote-before-doctype-system-identifier"
	AbruptDOCTYPESystemIdentifier          Code = "abrupt-doctype-system-identifier"
	UnexpectedCharacterAfterDOCTYPESystemIdentifier Code = "unexpected-character-after-doctype-system-identifier"
	EOFInCDATA                             Code = "eof-in-cdata"
	UnknownNamedCharacterReference          Code = "unknown-named-character-reference"
	AbsenceOfDigitsInNumericCharacterReference Code = "absence-of-digits-in-numeric-character-reference"
	NullCharacterReference                  Code = "null-character-reference"
	CharacterReferenceOutsideUnicodeRange    Code = "character-reference-outside-unicode-range"
	SurrogateCharacterReference              Code = "surrogate-character-reference"
	NoncharacterCharacterReference           Code = "noncharacter-character-reference"
	ControlCharacterReference                Code = "control-character-reference"
	MissingSemicolonAfterCharacterReference  Code = "missing-semicolon-after-character-reference"

	UnexpectedDOCTYPE                   Code = "unexpected-doctype"
	NonVoidHTMLElementStartTagWithTrailingSolidus Code = "non-void-html-element-start-tag-with-trailing-solidus"
	UnexpectedStartTagIgnored           Code = "unexpected-start-tag-ignored"
	UnexpectedEndTag                    Code = "unexpected-end-tag"
	ClosingOfElementWithOpenChildElements Code = "closing-of-element-with-open-child-elements"
	MisplacedStartTagForHeadElement     Code = "misplaced-start-tag-for-head-element"
	MisplacedDOCTYPE                    Code = "misplaced-doctype"
	UnexpectedTableElement              Code = "unexpected-table-element"
	UnexpectedCellEndTag                Code = "unexpected-cell-end-tag"
	StrayStartTag                       Code = "stray-start-tag"
	StrayEndTag                         Code = "stray-end-tag"
	EndTagWithoutMatchingOpenElement    Code = "end-tag-without-matching-open-element"
	EndTagWithAttributes                Code = "end-tag-with-attributes"
	EndTagWithTrailingSolidus           Code = "end-tag-with-trailing-solidus"
	UnexpectedImplicitlyClosedElement   Code = "unexpected-implicitly-closed-element"
	NestedFormattingElement             Code = "nested-formatting-element"
)

// Error pairs a Code with the source position the tokenizer had
// reached when the condition was detected. cause carries a stack
// trace captured at the point the error was raised, so a caller
// debugging a surprising recovery can print where in the parser it
// came from without this type threading a locator through every call
// site itself.
type Error struct {
	Code   Code
	Line   int
	Column int
	cause  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s at %d:%d", e.Code, e.Line, e.Column)
}

// Unwrap exposes the stack-trace-carrying cause to errors.Is/As and
// to github.com/pkg/errors' own introspection helpers.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// New returns an *Error with no position information attached; the
// tree constructor and tokenizer don't currently thread a locator
// through every call site, so position defaults to zero until one is
// attached by the caller.
func New(c Code) *Error {
	return &Error{Code: c, cause: errors.Errorf("%s", c)}
}

// At attaches a source position to an error.
func (e *Error) At(line, column int) *Error {
	if e == nil {
		return nil
	}
	return &Error{Code: e.Code, Line: line, Column: column, cause: e.cause}
}

// List is an ordered collection of parse errors encountered while
// parsing a single document or fragment.
type List []*Error

func (l *List) Add(e *Error) {
	if e == nil {
		return
	}
	logrus.WithFields(logrus.Fields{
		"code":   e.Code,
		"line":   e.Line,
		"column": e.Column,
	}).Debug("parse error recovered")
	*l = append(*l, e)
}
