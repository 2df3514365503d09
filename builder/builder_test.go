package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GrGLeo/dataguard/builder"
	"github.com/GrGLeo/dataguard/dgtype"
	"github.com/GrGLeo/dataguard/schema"
)

func TestStringColumn_ChainIsImmutablePerStep(t *testing.T) {
	base := builder.StringCol("name")
	withNotNull := base.IsNotNull()
	withBoth := withNotNull.WithMinLength(2)

	// base itself carries no rules; each chain step returns a new value
	// rather than mutating a shared one.
	g := builder.New()
	require.NoError(t, g.AddColumn(base))
	plan, err := g.Prepare(schema.Options{})
	require.NoError(t, err)
	require.Empty(t, plan.Columns[0].Kernels)

	g2 := builder.New()
	require.NoError(t, g2.AddColumn(withBoth))
	plan2, err := g2.Prepare(schema.Options{})
	require.NoError(t, err)
	require.Len(t, plan2.Columns[0].Kernels, 2)
}

func TestGuard_AddColumns_StopsAtFirstFailure(t *testing.T) {
	g := builder.New()
	err := g.AddColumns(
		builder.IntegerCol("id"),
		builder.StringCol("id"), // duplicate name
		builder.StringCol("name"),
	)
	require.Error(t, err)
}

func TestGuard_Prepare_BuildsPlanAcrossColumnTypes(t *testing.T) {
	g := builder.New()
	require.NoError(t, g.AddColumns(
		builder.IntegerCol("id").IsNotNull().IsUnique(false),
		builder.StringCol("email").IsEmail(),
		builder.FloatCol("amount").Min(0).Max(1000),
		builder.DateCol("created_at", "%Y-%m-%d").IsNotInFuture(),
	))
	plan, err := g.Prepare(schema.Options{})
	require.NoError(t, err)
	require.Len(t, plan.Columns, 4)
	require.Equal(t, dgtype.Integer, plan.Columns[0].Type)
	require.Equal(t, dgtype.String, plan.Columns[1].Type)
	require.Equal(t, dgtype.Float, plan.Columns[2].Type)
	require.Equal(t, dgtype.Date, plan.Columns[3].Type)
}

func TestGuard_Prepare_AcceptsColumnsWithoutRules(t *testing.T) {
	g := builder.New()
	require.NoError(t, g.AddColumn(builder.StringCol("name")))
	_, err := g.Prepare(schema.Options{})
	require.NoError(t, err) // no rules at all is legal

	g2 := builder.New()
	col := builder.DateCol("d", "%Y-%m-%d")
	require.NoError(t, g2.AddColumn(col))
	plan, err := g2.Prepare(schema.Options{})
	require.NoError(t, err)
	require.Equal(t, "d", plan.Columns[0].Name)
}

func TestNumericColumn_SharedAcrossIntegerAndFloat(t *testing.T) {
	ic := builder.IntegerCol("a").Between(ptr(1.0), ptr(5.0))
	fc := builder.FloatCol("b").Between(ptr(1.0), ptr(5.0))

	g := builder.New()
	require.NoError(t, g.AddColumns(ic, fc))
	plan, err := g.Prepare(schema.Options{})
	require.NoError(t, err)
	require.Equal(t, dgtype.Integer, plan.Columns[0].Type)
	require.Equal(t, dgtype.Float, plan.Columns[1].Type)
}

func ptr(f float64) *float64 { return &f }
