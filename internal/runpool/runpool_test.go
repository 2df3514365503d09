package runpool_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GrGLeo/dataguard/builder"
	"github.com/GrGLeo/dataguard/internal/runpool"
	"github.com/GrGLeo/dataguard/reader/csv"
	"github.com/GrGLeo/dataguard/schema"
)

func writeCSV(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func preparedPlan(t *testing.T) *schema.Plan {
	t.Helper()
	g := builder.New()
	require.NoError(t, g.AddColumn(builder.IntegerCol("id").IsNotNull()))
	require.NoError(t, g.AddColumn(builder.StringCol("other")))
	plan, err := g.Prepare(schema.Options{})
	require.NoError(t, err)
	return plan
}

func TestRunAll_MultipleJobs(t *testing.T) {
	pathA := writeCSV(t, "a.csv", "id,other\n1,x\n2,y\n")
	pathB := writeCSV(t, "b.csv", "id,other\n3,x\n,y\n")

	readerA := csv.New(pathA)
	readerA.HasHeader = true
	readerB := csv.New(pathB)
	readerB.HasHeader = true

	jobs := []runpool.Job{
		{TableName: "a", Plan: preparedPlan(t), Reader: readerA},
		{TableName: "b", Plan: preparedPlan(t), Reader: readerB},
	}

	reports, err := runpool.RunAll(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	require.Equal(t, "a", reports[0].TableName)
	require.True(t, reports[0].FullyPassed())
	require.Equal(t, "b", reports[1].TableName)
	require.False(t, reports[1].FullyPassed())
}
