package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bardo84/combygo/pkg/scanner"
)

func TestScanBasicNested(t *testing.T) {
	end, captured, ok := scanner.Scan("((a + b)*(c + d)) + 1", 0, '(', ')', false)
	require.True(t, ok)
	assert.Equal(t, "((a + b)*(c + d))", captured)
	assert.Equal(t, len(captured), end)
}

func TestScanInnerOnlyStripsDelimiters(t *testing.T) {
	_, captured, ok := scanner.Scan("(hello)", 0, '(', ')', true)
	require.True(t, ok)
	assert.Equal(t, "hello", captured)
}

func TestScanIgnoresDelimitersInsideStrings(t *testing.T) {
	text := `(a + "()" + b)`
	_, captured, ok := scanner.Scan(text, 0, '(', ')', false)
	require.True(t, ok)
	assert.Equal(t, text, captured)
}

func TestScanIgnoresDelimitersInsideSingleQuoteString(t *testing.T) {
	text := `(a + '(' + b)`
	_, captured, ok := scanner.Scan(text, 0, '(', ')', false)
	require.True(t, ok)
	assert.Equal(t, text, captured)
}

func TestScanIgnoresDelimitersInLineComment(t *testing.T) {
	text := "(a // ( comment\n + b)"
	_, captured, ok := scanner.Scan(text, 0, '(', ')', false)
	require.True(t, ok)
	assert.Equal(t, text, captured)
}

func TestScanIgnoresDelimitersInBlockComment(t *testing.T) {
	text := "(a /* ( nested */ + b)"
	_, captured, ok := scanner.Scan(text, 0, '(', ')', false)
	require.True(t, ok)
	assert.Equal(t, text, captured)
}

func TestScanEscapedQuoteInsideString(t *testing.T) {
	text := `("a\"b" + c)`
	_, captured, ok := scanner.Scan(text, 0, '(', ')', false)
	require.True(t, ok)
	assert.Equal(t, text, captured)
}

func TestScanUnterminatedFails(t *testing.T) {
	_, _, ok := scanner.Scan("(a + b", 0, '(', ')', false)
	assert.False(t, ok)
}

func TestScanUnterminatedStringFails(t *testing.T) {
	_, _, ok := scanner.Scan(`(a + "b)`, 0, '(', ')', false)
	assert.False(t, ok)
}

func TestScanRequiresOpenAtPosition(t *testing.T) {
	_, _, ok := scanner.Scan("a(b)", 0, '(', ')', false)
	assert.False(t, ok)
}

func TestScanDifferentDelimiters(t *testing.T) {
	end, captured, ok := scanner.Scan("[a, [b], c]", 0, '[', ']', false)
	require.True(t, ok)
	assert.Equal(t, "[a, [b], c]", captured)
	assert.Equal(t, len("[a, [b], c]"), end)
}
