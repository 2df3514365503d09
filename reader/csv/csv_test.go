package csv_test

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GrGLeo/dataguard/reader/csv"
)

func writeTempCSV(t *testing.T, body string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "dataguard-*.csv")
	require.NoError(t, err)
	_, err = f.WriteString(body)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func TestReader_BatchesAllRows(t *testing.T) {
	path := writeTempCSV(t, "id,name\n1,alice\n2,bob\n3,carol\n")
	r := csv.New(path)
	r.HasHeader = true
	r.BatchSize = 2
	ctx := context.Background()

	require.NoError(t, r.Open(ctx))
	defer r.Close()

	rb, err := r.Next(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, rb.Len)
	require.Equal(t, [][]byte{[]byte("1"), []byte("2")}, rb.Cells[0])
	require.Equal(t, [][]byte{[]byte("alice"), []byte("bob")}, rb.Cells[1])

	rb, err = r.Next(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, rb.Len)
	require.Equal(t, [][]byte{[]byte("carol")}, rb.Cells[1])

	_, err = r.Next(ctx)
	require.ErrorIs(t, err, io.EOF)
}

func TestReader_Reopen(t *testing.T) {
	path := writeTempCSV(t, "id\n1\n2\n")
	r := csv.New(path)
	r.HasHeader = true
	ctx := context.Background()

	require.NoError(t, r.Open(ctx))
	defer r.Close()

	rb, err := r.Next(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, rb.Len)

	require.NoError(t, r.Reopen(ctx))
	rb, err = r.Next(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, rb.Len)
	require.Equal(t, [][]byte{[]byte("1"), []byte("2")}, rb.Cells[0])
}
