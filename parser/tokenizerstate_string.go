package parser

import "strconv"

func (i tokenizerState) String() string {
	switch i {
	case dataState:
		return "dataState"
	case rcDataState:
		return "rcDataState"
	case rawTextState:
		return "rawTextState"
	case scriptDataState:
		return "scriptDataState"
	case plaintextState:
		return "plaintextState"
	case tagOpenState:
		return "tagOpenState"
	case endTagOpenState:
		return "endTagOpenState"
	case tagNameState:
		return "tagNameState"
	case rcDataLessThanSignState:
		return "rcDataLessThanSignState"
	case rcDataEndTagOpenState:
		return "rcDataEndTagOpenState"
	case rcDataEndTagNameState:
		return "rcDataEndTagNameState"
	case rawTextLessThanSignState:
		return "rawTextLessThanSignState"
	case rawTextEndTagOpenState:
		return "rawTextEndTagOpenState"
	case rawTextEndTagNameState:
		return "rawTextEndTagNameState"
	case scriptDataLessThanSignState:
		return "scriptDataLessThanSignState"
	case scriptDataEndTagOpenState:
		return "scriptDataEndTagOpenState"
	case scriptDataEndTagNameState:
		return "scriptDataEndTagNameState"
	case scriptDataEscapeStartState:
		return "scriptDataEscapeStartState"
	case scriptDataEscapeStartDashState:
		return "scriptDataEscapeStartDashState"
	case scriptDataEscapedState:
		return "scriptDataEscapedState"
	case scriptDataEscapedDashState:
		return "scriptDataEscapedDashState"
	case scriptDataEscapedDashDashState:
		return "scriptDataEscapedDashDashState"
	case scriptDataEscapedLessThanSignState:
		return "scriptDataEscapedLessThanSignState"
	case scriptDataEscapedEndTagOpenState:
		return "scriptDataEscapedEndTagOpenState"
	case scriptDataEscapedEndTagNameState:
		return "scriptDataEscapedEndTagNameState"
	case scriptDataDoubleEscapeStartState:
		return "scriptDataDoubleEscapeStartState"
	case scriptDataDoubleEscapedState:
		return "scriptDataDoubleEscapedState"
	case scriptDataDoubleEscapedDashState:
		return "scriptDataDoubleEscapedDashState"
	case scriptDataDoubleEscapedDashDashState:
		return "scriptDataDoubleEscapedDashDashState"
	case scriptDataDoubleEscapedLessThanSignState:
		return "scriptDataDoubleEscapedLessThanSignState"
	case scriptDataDoubleEscapeEndState:
		return "scriptDataDoubleEscapeEndState"
	case beforeAttributeNameState:
		return "beforeAttributeNameState"
	case attributeNameState:
		return "attributeNameState"
	case afterAttributeNameState:
		return "afterAttributeNameState"
	case beforeAttributeValueState:
		return "beforeAttributeValueState"
	case attributeValueDoubleQuotedState:
		return "attributeValueDoubleQuotedState"
	case attributeValueSingleQuotedState:
		return "attributeValueSingleQuotedState"
	case attributeValueUnquotedState:
		return "attributeValueUnquotedState"
	case afterAttributeValueQuotedState:
		return "afterAttributeValueQuotedState"
	case selfClosingStartTagState:
		return "selfClosingStartTagState"
	case bogusCommentState:
		return "bogusCommentState"
	case markupDeclarationOpenState:
		return "markupDeclarationOpenState"
	case commentStartState:
		return "commentStartState"
	case commentStartDashState:
		return "commentStartDashState"
	case commentState:
		return "commentState"
	case commentLessThanSignState:
		return "commentLessThanSignState"
	case commentLessThanSignBangState:
		return "commentLessThanSignBangState"
	case commentLessThanSignBangDashState:
		return "commentLessThanSignBangDashState"
	case commentLessThanSignBangDashDashState:
		return "commentLessThanSignBangDashDashState"
	case commentEndDashState:
		return "commentEndDashState"
	case commentEndState:
		return "commentEndState"
	case commentEndBangState:
		return "commentEndBangState"
	case doctypeState:
		return "doctypeState"
	case beforeDoctypeNameState:
		return "beforeDoctypeNameState"
	case doctypeNameState:
		return "doctypeNameState"
	case afterDoctypeNameState:
		return "afterDoctypeNameState"
	case afterDoctypePublicKeywordState:
		return "afterDoctypePublicKeywordState"
	case beforeDoctypePublicIdentifierState:
		return "beforeDoctypePublicIdentifierState"
	case doctypePublicIdentifierDoubleQuotedState:
		return "doctypePublicIdentifierDoubleQuotedState"
	case doctypePublicIdentifierSingleQuotedState:
		return "doctypePublicIdentifierSingleQuotedState"
	case afterDoctypePublicIdentifierState:
		return "afterDoctypePublicIdentifierState"
	case betweenDoctypePublicAndSystemIdentifiersState:
		return "betweenDoctypePublicAndSystemIdentifiersState"
	case afterDoctypeSystemKeywordState:
		return "afterDoctypeSystemKeywordState"
	case beforeDoctypeSystemIdentifierState:
		return "beforeDoctypeSystemIdentifierState"
	case doctypeSystemIdentifierDoubleQuotedState:
		return "doctypeSystemIdentifierDoubleQuotedState"
	case doctypeSystemIdentifierSingleQuotedState:
		return "doctypeSystemIdentifierSingleQuotedState"
	case afterDoctypeSystemIdentifierState:
		return "afterDoctypeSystemIdentifierState"
	case bogusDoctypeState:
		return "bogusDoctypeState"
	case cdataSectionState:
		return "cdataSectionState"
	case cdataSectionBracketState:
		return "cdataSectionBracketState"
	case cdataSectionEndState:
		return "cdataSectionEndState"
	case characterReferenceState:
		return "characterReferenceState"
	case namedCharacterReferenceState:
		return "namedCharacterReferenceState"
	case ambiguousAmpersandState:
		return "ambiguousAmpersandState"
	case numericCharacterReferenceState:
		return "numericCharacterReferenceState"
	case hexadecimalCharacterReferenceStartState:
		return "hexadecimalCharacterReferenceStartState"
	case decimalCharacterReferenceStartState:
		return "decimalCharacterReferenceStartState"
	case hexadecimalCharacterReferenceState:
		return "hexadecimalCharacterReferenceState"
	case decimalCharacterReferenceState:
		return "decimalCharacterReferenceState"
	case numericCharacterReferenceEndState:
		return "numericCharacterReferenceEndState"
	default:
		return "tokenizerState(" + strconv.FormatInt(int64(i), 10) + ")"
	}
}
