package rule_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GrGLeo/dataguard/rule"
)

func TestLengthKernels(t *testing.T) {
	col := stringColumn([]string{"a", "ab", "abc", "abcd"}, []bool{true, true, true, true})

	min := rule.NewWithMinLength(5, 2)
	min.ApplyBatch(col, 0)
	require.Equal(t, 3, min.Finalize().Passed) // ab,abc,abcd

	max := rule.NewWithMaxLength(5, 2)
	max.ApplyBatch(col, 0)
	require.Equal(t, 2, max.Finalize().Passed) // a,ab

	between := rule.NewWithLengthBetween(5, 2, 3)
	between.ApplyBatch(col, 0)
	require.Equal(t, 2, between.Finalize().Passed) // ab,abc

	exact := rule.NewIsExactLength(5, 3)
	exact.ApplyBatch(col, 0)
	require.Equal(t, 1, exact.Finalize().Passed) // abc
}

func TestLength_CountsRunesNotBytes(t *testing.T) {
	col := stringColumn([]string{"héllo"}, []bool{true})
	exact := rule.NewIsExactLength(5, 5)
	exact.ApplyBatch(col, 0)
	require.Equal(t, 1, exact.Finalize().Passed)
}

func TestCharClassKernels(t *testing.T) {
	col := stringColumn([]string{"123", "abc", "", "abc123", "ABC", "abc"}, []bool{true, true, true, true, true, true})

	numeric := rule.NewIsNumeric(5)
	numeric.ApplyBatch(col, 0)
	require.Equal(t, 1, numeric.Finalize().Passed) // "123"

	alpha := rule.NewIsAlpha(5)
	alpha.ApplyBatch(col, 0)
	require.Equal(t, 3, alpha.Finalize().Passed) // "abc","ABC","abc"

	alnum := rule.NewIsAlphanumeric(5)
	alnum.ApplyBatch(col, 0)
	require.Equal(t, 5, alnum.Finalize().Passed) // all but ""
}

func TestCaseKernels(t *testing.T) {
	col := stringColumn([]string{"abc", "ABC", "AbC", "123"}, []bool{true, true, true, true})

	lower := rule.NewIsLowercase(5)
	lower.ApplyBatch(col, 0)
	require.Equal(t, 1, lower.Finalize().Passed) // "abc"

	upper := rule.NewIsUppercase(5)
	upper.ApplyBatch(col, 0)
	require.Equal(t, 1, upper.Finalize().Passed) // "ABC"
}

func TestIsUrl(t *testing.T) {
	col := stringColumn(
		[]string{"https://example.com", "https://example.com/path", "not a url", "ftp://host with space"},
		[]bool{true, true, true, true},
	)
	k := rule.NewIsUrl(5)
	k.ApplyBatch(col, 0)
	require.Equal(t, 2, k.Finalize().Passed)
}

func TestIsEmail(t *testing.T) {
	col := stringColumn(
		[]string{"a@bc.co", "bad", "a@@b.co", "a@b..co", "@b.co", "a@b"},
		[]bool{true, true, true, true, true, true},
	)
	k := rule.NewIsEmail(5)
	k.ApplyBatch(col, 0)
	require.Equal(t, 1, k.Finalize().Passed)
}

func TestIsUuid(t *testing.T) {
	col := stringColumn(
		[]string{"550e8400-e29b-41d4-a716-446655440000", "not-a-uuid"},
		[]bool{true, true},
	)
	k := rule.NewIsUuid(5)
	k.ApplyBatch(col, 0)
	require.Equal(t, 1, k.Finalize().Passed)
}

func TestRegex_FullMatchSemantics(t *testing.T) {
	col := stringColumn([]string{"abc123", "abc", "Xabc123"}, []bool{true, true, true})
	k, err := rule.NewRegex(5, `[a-z]+[0-9]+`, false)
	require.NoError(t, err)
	k.ApplyBatch(col, 0)
	require.Equal(t, 1, k.Finalize().Passed) // only "abc123" fully matches
}

func TestRegex_CaseInsensitive(t *testing.T) {
	col := stringColumn([]string{"ABC", "abc", "AbC"}, []bool{true, true, true})
	k, err := rule.NewRegex(5, `abc`, true)
	require.NoError(t, err)
	k.ApplyBatch(col, 0)
	require.Equal(t, 3, k.Finalize().Passed)
}

func TestIn(t *testing.T) {
	col := stringColumn([]string{"red", "green", "blue"}, []bool{true, true, true})
	k := rule.NewIn(5, []string{"red", "blue"})
	k.ApplyBatch(col, 0)
	require.Equal(t, 2, k.Finalize().Passed)
}
