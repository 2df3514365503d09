package rule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/GrGLeo/dataguard/batch"
	"github.com/GrGLeo/dataguard/dgtype"
	"github.com/GrGLeo/dataguard/rule"
)

func timeColumn(vals []time.Time, valid []bool) *batch.Column {
	c := batch.NewColumn(dgtype.Date, len(vals))
	for i, v := range vals {
		c.AppendTime(v, valid[i])
	}
	return c
}

func TestTemporalKernels(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)
	col := timeColumn([]time.Time{past, future}, []bool{true, true})

	inPast := rule.NewIsInPast(5, now)
	inPast.ApplyBatch(col, 0)
	require.Equal(t, 1, inPast.Finalize().Passed)

	inFuture := rule.NewIsInFuture(5, now)
	inFuture.ApplyBatch(col, 0)
	require.Equal(t, 1, inFuture.Finalize().Passed)

	notPast := rule.NewIsNotInPast(5, now)
	notPast.ApplyBatch(col, 0)
	require.Equal(t, 1, notPast.Finalize().Passed)

	notFuture := rule.NewIsNotInFuture(5, now)
	notFuture.ApplyBatch(col, 0)
	require.Equal(t, 1, notFuture.Finalize().Passed)
}

func TestTemporal_NullFails(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	col := timeColumn([]time.Time{{}}, []bool{false})
	k := rule.NewIsInPast(5, now)
	k.ApplyBatch(col, 0)
	res := k.Finalize()
	require.Equal(t, 0, res.Passed)
	require.Equal(t, 1, res.Considered)
}
