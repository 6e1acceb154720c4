package comby_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bardo84/combygo/pkg/comby"
)

func TestFindFirstScenario1_GreetingAgeCapture(t *testing.T) {
	text := "Hello, world! My name is John and I am 30 years old."
	pattern := "Hello, :[greeting:word]! My name is :[name] and I am :[age:digit] years old."

	result, err := comby.FindFirst(text, pattern, nil)
	require.NoError(t, err)
	require.Len(t, result.Matches, 1)

	b := result.Matches[0]
	greeting, ok := b.Get("greeting")
	require.True(t, ok)
	assert.Equal(t, "world", *greeting)

	name, ok := b.Get("name")
	require.True(t, ok)
	assert.Equal(t, "John", *name)

	age, ok := b.Get("age")
	require.True(t, ok)
	assert.Equal(t, "30", *age)
}

func TestFindFirstScenario2_NumWithoutExtension(t *testing.T) {
	result, err := comby.FindFirst("-1.4e-3", ":[x:num]:[ext:word?]", nil)
	require.NoError(t, err)
	require.Len(t, result.Matches, 1)

	x, ok := result.Matches[0].Get("x")
	require.True(t, ok)
	assert.Equal(t, "-1.4e-3", *x)

	ext, ok := result.Matches[0].Get("ext")
	require.True(t, ok)
	assert.Nil(t, ext)
}

func TestFindFirstScenario3_NumWithExtension(t *testing.T) {
	result, err := comby.FindFirst("-1.4k", ":[x:num]:[ext:word?]", nil)
	require.NoError(t, err)
	require.Len(t, result.Matches, 1)

	x, ok := result.Matches[0].Get("x")
	require.True(t, ok)
	assert.Equal(t, "-1.4", *x)

	ext, ok := result.Matches[0].Get("ext")
	require.True(t, ok)
	require.NotNil(t, ext)
	assert.Equal(t, "k", *ext)
}

func TestFindFirstScenario4_FilenameAndIncOp(t *testing.T) {
	text := "file is /path/to/some_file.txt and number is 99"
	pattern := "file is :[filepath] and number is :[num:digit]"
	replacement := "File is :[filepath.filename], number is now :[num.inc]"

	result, err := comby.FindFirst(text, pattern, &replacement)
	require.NoError(t, err)
	assert.Equal(t, "File is some_file.txt, number is now 100", result.Text)
}

func TestFindFirstScenario5_StructuralHoleThenUserRegex(t *testing.T) {
	text := "y = ((a + b)*(c + d)) + 1"
	pattern := ":[term1:()]:[rest~.*]"

	result, err := comby.FindFirst(text, pattern, nil)
	require.NoError(t, err)
	require.Len(t, result.Matches, 1)

	term1, ok := result.Matches[0].Get("term1")
	require.True(t, ok)
	assert.Equal(t, "((a + b)*(c + d))", *term1)

	rest, ok := result.Matches[0].Get("rest")
	require.True(t, ok)
	assert.Equal(t, " + 1", *rest)
}

func TestFindFirstScenario6_StructuralHoleWithStringInside(t *testing.T) {
	text := `x = (a + "()" + b)`
	pattern := ":[var] = :[expr:()]"

	result, err := comby.FindFirst(text, pattern, nil)
	require.NoError(t, err)
	require.Len(t, result.Matches, 1)

	v, ok := result.Matches[0].Get("var")
	require.True(t, ok)
	assert.Equal(t, "x", *v)

	expr, ok := result.Matches[0].Get("expr")
	require.True(t, ok)
	assert.Equal(t, `(a + "()" + b)`, *expr)
}

func TestFindAllScenario7_UpperOpAcrossMatches(t *testing.T) {
	text := "John is 30. Jane is 25."
	pattern := ":[name:word] is :[age:digit]"
	replacement := "NAME: :[name.upper]"

	result, err := comby.FindAll(text, pattern, &replacement)
	require.NoError(t, err)
	assert.Equal(t, "NAME: JOHN. NAME: JANE.", result.Text)
}

func TestFindAllQueryMode(t *testing.T) {
	text := "John is 30. Jane is 25."
	pattern := ":[name:word] is :[age:digit]"

	result, err := comby.FindAll(text, pattern, nil)
	require.NoError(t, err)
	require.Len(t, result.Matches, 2)

	n0, _ := result.Matches[0].Get("name")
	n1, _ := result.Matches[1].Get("name")
	assert.Equal(t, "John", *n0)
	assert.Equal(t, "Jane", *n1)
}

func TestUnknownMacroIsCompileError(t *testing.T) {
	_, err := comby.FindFirst("anything", ":[x:unknown_macro]", nil)
	require.Error(t, err)
}

func TestInvalidRegexIsCompileError(t *testing.T) {
	_, err := comby.FindFirst("anything", ":[x~[invalid]", nil)
	require.Error(t, err)
}

func TestUnknownOperationLeavesPlaceholderVerbatim(t *testing.T) {
	text := "number is 99"
	pattern := ":[num:digit]"
	replacement := ":[num.invalid_op]"

	result, err := comby.FindFirst(text, pattern, &replacement)
	require.NoError(t, err)
	assert.Equal(t, "number is :[num.invalid_op]", result.Text)
}

func TestEmptyPatternIsNoOpForAllFourModes(t *testing.T) {
	text := "anything at all"

	queryAll, err := comby.FindAll(text, "", nil)
	require.NoError(t, err)
	assert.Empty(t, queryAll.Matches)

	queryFirst, err := comby.FindFirst(text, "", nil)
	require.NoError(t, err)
	assert.Empty(t, queryFirst.Matches)

	repl := "replacement"
	replaceAll, err := comby.FindAll(text, "", &repl)
	require.NoError(t, err)
	assert.Equal(t, text, replaceAll.Text)

	replaceFirst, err := comby.FindFirst(text, "", &repl)
	require.NoError(t, err)
	assert.Equal(t, text, replaceFirst.Text)
}

func TestZeroWidthMatchGuardTerminates(t *testing.T) {
	// A lone wildcard hole matches empty at every position (non-greedy
	// enumeration tries the empty candidate first, with no constraint
	// to reject it). Without the zero-width guard this would spin
	// forever re-matching at the same offset.
	result, err := comby.FindAll("abc", ":[x]", nil)
	require.NoError(t, err)
	assert.Len(t, result.Matches, 4) // one zero-width match per position 0..3
}

func TestBindingDisciplineLastOccurrenceWins(t *testing.T) {
	result, err := comby.FindFirst("a-b", ":[x]-:[x]", nil)
	require.NoError(t, err)
	require.Len(t, result.Matches, 1)

	// The first x binds "a"; the second, non-greedy with nothing after
	// it, succeeds on its empty candidate first, and that later capture
	// overwrites "a".
	x, ok := result.Matches[0].Get("x")
	require.True(t, ok)
	assert.Equal(t, "", *x)
}

func TestStructuralHoleFollowedByStructuralHoleNoSeparator(t *testing.T) {
	text := "(a)(b)"
	pattern := ":[first:()]:[second:()]"

	result, err := comby.FindFirst(text, pattern, nil)
	require.NoError(t, err)
	require.Len(t, result.Matches, 1)

	first, _ := result.Matches[0].Get("first")
	second, _ := result.Matches[0].Get("second")
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, "(a)", *first)
	assert.Equal(t, "(b)", *second)
}

func TestReplacementFirstModeNoMatchReturnsInputUnchanged(t *testing.T) {
	repl := "REPL"
	result, err := comby.FindFirst("no holes here", ":[x:digit]", &repl)
	require.NoError(t, err)
	assert.Equal(t, "no holes here", result.Text)
}
