package rule_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GrGLeo/dataguard/batch"
	"github.com/GrGLeo/dataguard/dgtype"
	"github.com/GrGLeo/dataguard/rule"
)

func intColumn(vals []int64, valid []bool) *batch.Column {
	c := batch.NewColumn(dgtype.Integer, len(vals))
	for i, v := range vals {
		c.AppendInt(v, valid[i])
	}
	return c
}

func allValid(n int) []bool {
	v := make([]bool, n)
	for i := range v {
		v[i] = true
	}
	return v
}

func TestMonotonic_NullPassesWithoutUpdatingState(t *testing.T) {
	vals := []int64{1, 2, 2, 4, 3, 0, 5}
	valid := []bool{true, true, true, true, true, false, true}
	col := intColumn(vals, valid)

	k := rule.NewMonotonicIncreasing(5)
	k.ApplyBatch(col, 0)
	res := k.Finalize()

	require.Equal(t, 7, res.Considered)
	require.Equal(t, 6, res.Passed)
	require.Len(t, res.Samples, 1)
	require.Equal(t, 4, res.Samples[0].Row)
}

func TestMonotonic_SingleViolationIsBatchSizeInvariant(t *testing.T) {
	vals := []int64{1, 3, 2, 5, 6}
	col := intColumn(vals, allValid(len(vals)))

	k := rule.NewMonotonicIncreasing(5)
	k.ApplyBatch(col, 0)
	res := k.Finalize()

	require.Equal(t, 5, res.Considered)
	require.Equal(t, 4, res.Passed)
	require.Len(t, res.Samples, 1)
	require.Equal(t, 2, res.Samples[0].Row)

	// Splitting the same sequence across two batches must not change the
	// verdict: the last value is carried across the batch boundary.
	col1 := intColumn(vals[:2], allValid(2))
	col2 := intColumn(vals[2:], allValid(3))
	k2 := rule.NewMonotonicIncreasing(5)
	k2.ApplyBatch(col1, 0)
	k2.ApplyBatch(col2, 2)
	res2 := k2.Finalize()
	require.Equal(t, res, res2)
}

func TestMonotonicDecreasing(t *testing.T) {
	vals := []int64{9, 7, 7, 3}
	col := intColumn(vals, allValid(len(vals)))
	k := rule.NewMonotonicDecreasing(5)
	k.ApplyBatch(col, 0)
	res := k.Finalize()
	require.Equal(t, 4, res.Passed)
	require.Equal(t, 4, res.Considered)
}

func TestBetween_MinMaxAndBothBounds(t *testing.T) {
	lo, hi := 2.0, 4.0
	col := intColumn([]int64{1, 2, 3, 4, 5}, allValid(5))

	between := rule.NewBetween(5, &lo, &hi)
	between.ApplyBatch(col, 0)
	res := between.Finalize()
	require.Equal(t, 3, res.Passed) // 2,3,4
	require.Equal(t, "Between", between.Name())

	min := rule.NewBetween(5, &lo, nil)
	min.ApplyBatch(col, 0)
	resMin := min.Finalize()
	require.Equal(t, 4, resMin.Passed) // 2,3,4,5
	require.Equal(t, "Min", min.Name())

	max := rule.NewBetween(5, nil, &hi)
	max.ApplyBatch(col, 0)
	resMax := max.Finalize()
	require.Equal(t, 4, resMax.Passed) // 1,2,3,4
	require.Equal(t, "Max", max.Name())
}

func TestSignKernels(t *testing.T) {
	col := intColumn([]int64{-2, -1, 0, 1, 2}, allValid(5))

	pos := rule.NewIsPositive(5)
	pos.ApplyBatch(col, 0)
	require.Equal(t, 2, pos.Finalize().Passed)

	neg := rule.NewIsNegative(5)
	neg.ApplyBatch(col, 0)
	require.Equal(t, 2, neg.Finalize().Passed)

	nonNeg := rule.NewIsNonNegative(5)
	nonNeg.ApplyBatch(col, 0)
	require.Equal(t, 3, nonNeg.Finalize().Passed)

	nonPos := rule.NewIsNonPositive(5)
	nonPos.ApplyBatch(col, 0)
	require.Equal(t, 3, nonPos.Finalize().Passed)
}
