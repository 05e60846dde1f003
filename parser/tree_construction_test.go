package parser

import (
	"strings"
	"testing"

	"github.com/oakmoss/html5parse/parser/spec"
	"github.com/stretchr/testify/assert"
)

// These cases are the worked end-to-end scenarios and boundary
// behaviors that ground the tree constructor's design: each expected
// dump is hand-derived from the insertion-mode algorithm rather than
// drawn from a fixture file, since this module doesn't vendor the
// upstream tree-construction test corpus.
func TestTreeConstructorScenarios(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{
			name: "nested formatting elements split by adoption agency",
			in:   "<p>1<b>2<i>3</b>4</i>5</p>",
			expected: "#document\n" +
				"  html\n" +
				"    head\n" +
				"    body\n" +
				"      p\n" +
				"        \"1\"\n" +
				"        b\n" +
				"          \"2\"\n" +
				"          i\n" +
				"            \"3\"\n" +
				"        i\n" +
				"          \"4\"\n" +
				"        \"5\"",
		},
		{
			name: "empty input still yields html/head/body",
			in:   "",
			expected: "#document\n" +
				"  html\n" +
				"    head\n" +
				"    body",
		},
		{
			name: "a lone less-than at EOF is a text node plus a parse error",
			in:   "<",
			expected: "#document\n" +
				"  html\n" +
				"    head\n" +
				"    body\n" +
				"      \"<\"",
		},
		{
			name: "comments land on the document, html, and body in turn",
			in:   "<!--x--><html><!--y--><body><!--z-->",
			expected: "#document\n" +
				"  <!-- x -->\n" +
				"  html\n" +
				"    <!-- y -->\n" +
				"    head\n" +
				"    body\n" +
				"      <!-- z -->",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := NewParser(strings.NewReader(tt.in))
			doc, err := p.Start()
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, doc.String())
		})
	}
}

func TestTreeConstructorTrailingTextAfterBodyReentersInBody(t *testing.T) {
	p := NewParser(strings.NewReader("<!DOCTYPE html><html><body></body></html>after"))
	doc, err := p.Start()
	assert.NoError(t, err)
	assert.Equal(t,
		"#document\n"+
			"  <!DOCTYPE html>\n"+
			"  html\n"+
			"    head\n"+
			"    body\n"+
			"      \"after\"",
		doc.String(),
	)
}

func TestParseHTMLFragmentReturnsContextChildren(t *testing.T) {
	tableCtx := spec.NewDOMElement(nil, "table", spec.Htmlns)
	nodes := ParseHTMLFragment(tableCtx, "<tr><td>x</td></tr>", spec.NoQuirks, false)
	assert.Len(t, nodes, 1)
	assert.Equal(t, "tbody", string(nodes[0].NodeName))
}
