package parser

import (
	"strings"
	"testing"

	"github.com/oakmoss/html5parse/parser/perr"
	"github.com/oakmoss/html5parse/parser/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReturnsDocumentAndErrors(t *testing.T) {
	res, err := Parse(strings.NewReader("<p>a\x00b</p>"), DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, res.Document)

	found := false
	for _, e := range res.Errors {
		if e.Code == perr.UnexpectedNullCharacter {
			found = true
			assert.NotZero(t, e.Line)
			assert.NotZero(t, e.Column)
		}
	}
	assert.True(t, found, "expected an unexpected-null-character error to be collected")
}

func TestParseNilReaderIsCallerError(t *testing.T) {
	_, err := Parse(nil, DefaultOptions())
	assert.Error(t, err)
}

func TestParseWithoutErrorLocationsLeavesPositionsZero(t *testing.T) {
	res, err := Parse(strings.NewReader("<p>a\x00b</p>"), Options{})
	require.NoError(t, err)
	for _, e := range res.Errors {
		if e.Code == perr.UnexpectedNullCharacter {
			assert.Zero(t, e.Line)
			assert.Zero(t, e.Column)
		}
	}
}

func TestParseFragmentRejectsNonElementContext(t *testing.T) {
	_, err := ParseFragment("<tr></tr>", nil, DefaultOptions())
	assert.Error(t, err)
}

func TestParseFragmentReturnsContextChildren(t *testing.T) {
	tableCtx := spec.NewDOMElement(nil, "table", spec.Htmlns)
	res, err := ParseFragment("<tr><td>x</td></tr>", tableCtx, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.Nodes, 1)
	assert.Equal(t, "tbody", string(res.Nodes[0].NodeName))
}
