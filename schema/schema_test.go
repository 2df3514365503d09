package schema_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/GrGLeo/dataguard/dgtype"
	"github.com/GrGLeo/dataguard/schema"
)

func TestBuilder_DuplicateColumnRejected(t *testing.T) {
	b := schema.NewBuilder()
	require.NoError(t, b.AddColumn(schema.ColumnSpec{Name: "id", Type: dgtype.Integer}))
	err := b.AddColumn(schema.ColumnSpec{Name: "id", Type: dgtype.String})
	require.Error(t, err)
}

func TestFinalize_RejectsIllegalRuleForType(t *testing.T) {
	b := schema.NewBuilder()
	require.NoError(t, b.AddColumn(schema.ColumnSpec{
		Name: "name",
		Type: dgtype.String,
		Rules: []schema.RuleSpec{
			{Kind: schema.RuleIsPositive},
		},
	}))
	_, err := schema.Finalize(b, schema.Options{})
	require.Error(t, err)
}

func TestFinalize_DateColumnRequiresFormat(t *testing.T) {
	b := schema.NewBuilder()
	require.NoError(t, b.AddColumn(schema.ColumnSpec{Name: "d", Type: dgtype.Date}))
	_, err := schema.Finalize(b, schema.Options{})
	require.Error(t, err)
}

func TestFinalize_UnresolvedRelationTargetFails(t *testing.T) {
	b := schema.NewBuilder()
	require.NoError(t, b.AddColumn(schema.ColumnSpec{
		Name: "child",
		Type: dgtype.String,
		Rules: []schema.RuleSpec{
			{Kind: schema.RuleRelation, Params: schema.RelationParams{TargetColumn: "missing"}},
		},
	}))
	_, err := schema.Finalize(b, schema.Options{})
	require.Error(t, err)
}

func TestFinalize_ResolvedRelationSetsTwoPass(t *testing.T) {
	b := schema.NewBuilder()
	require.NoError(t, b.AddColumn(schema.ColumnSpec{Name: "parent", Type: dgtype.String}))
	require.NoError(t, b.AddColumn(schema.ColumnSpec{
		Name: "child",
		Type: dgtype.String,
		Rules: []schema.RuleSpec{
			{Kind: schema.RuleRelation, Params: schema.RelationParams{TargetColumn: "parent"}},
		},
	}))
	plan, err := schema.Finalize(b, schema.Options{})
	require.NoError(t, err)
	require.True(t, plan.NeedsTwoPass)
	require.Len(t, plan.RelationsFor("parent"), 1)
	require.Len(t, plan.RelationsForAll(), 1)
}

func TestFinalize_AlreadyFinalizedRejectsFurtherMutation(t *testing.T) {
	b := schema.NewBuilder()
	require.NoError(t, b.AddColumn(schema.ColumnSpec{Name: "id", Type: dgtype.Integer}))
	_, err := schema.Finalize(b, schema.Options{})
	require.NoError(t, err)

	err = b.AddColumn(schema.ColumnSpec{Name: "other", Type: dgtype.String})
	require.ErrorIs(t, err, schema.ErrPlanAlreadyFinalized)

	_, err = schema.Finalize(b, schema.Options{})
	require.ErrorIs(t, err, schema.ErrPlanAlreadyFinalized)
}

func TestFinalize_DefaultsAndOverrides(t *testing.T) {
	b := schema.NewBuilder()
	require.NoError(t, b.AddColumn(schema.ColumnSpec{Name: "id", Type: dgtype.Integer}))

	plan, err := schema.Finalize(b, schema.Options{})
	require.NoError(t, err)
	require.Equal(t, 65536, plan.BatchSize)

	b2 := schema.NewBuilder()
	require.NoError(t, b2.AddColumn(schema.ColumnSpec{Name: "id", Type: dgtype.Integer}))
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	plan2, err := schema.Finalize(b2, schema.Options{BatchSize: 10, SampleCap: 2, Now: now})
	require.NoError(t, err)
	require.Equal(t, 10, plan2.BatchSize)
	require.Equal(t, 2, plan2.SampleCap)
	require.True(t, plan2.Now.Equal(now))
}

func TestLegalFor(t *testing.T) {
	require.True(t, schema.LegalFor(schema.RuleIsPositive, dgtype.Integer))
	require.False(t, schema.LegalFor(schema.RuleIsPositive, dgtype.String))
	require.True(t, schema.LegalFor(schema.RuleWithRegex, dgtype.String))
	require.True(t, schema.LegalFor(schema.RuleIsNotNull, dgtype.Date))
}

func TestColumnIndex(t *testing.T) {
	b := schema.NewBuilder()
	require.NoError(t, b.AddColumn(schema.ColumnSpec{Name: "a", Type: dgtype.Integer}))
	require.NoError(t, b.AddColumn(schema.ColumnSpec{Name: "b", Type: dgtype.String}))
	plan, err := schema.Finalize(b, schema.Options{})
	require.NoError(t, err)
	require.Equal(t, 0, plan.ColumnIndex("a"))
	require.Equal(t, 1, plan.ColumnIndex("b"))
	require.Equal(t, -1, plan.ColumnIndex("missing"))
}
