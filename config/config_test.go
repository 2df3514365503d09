package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GrGLeo/dataguard/config"
	"github.com/GrGLeo/dataguard/schema"
)

const sampleTOML = `
table = "orders"

[[column]]
name = "id"
type = "integer"

  [[column.rule]]
  kind = "is_not_null"

  [[column.rule]]
  kind = "is_unique"

[[column]]
name = "amount"
type = "float"

  [[column.rule]]
  kind = "min"
  min = 0.0

[[column]]
name = "email"
type = "string"

  [[column.rule]]
  kind = "is_email"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schema.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAndBuild(t *testing.T) {
	path := writeConfig(t, sampleTOML)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "orders", cfg.Table)
	require.Len(t, cfg.Columns, 3)

	plan, err := config.Build(cfg, schema.Options{})
	require.NoError(t, err)
	require.Equal(t, 3, len(plan.Columns))
	require.Equal(t, 0, plan.ColumnIndex("id"))
	require.Equal(t, -1, plan.ColumnIndex("missing"))
}

func TestLoad_MissingTable(t *testing.T) {
	path := writeConfig(t, "[[column]]\nname = \"id\"\ntype = \"integer\"\n")
	_, err := config.Load(path)
	require.Error(t, err)
}

func TestBuild_UnknownRuleKind(t *testing.T) {
	path := writeConfig(t, "table = \"t\"\n[[column]]\nname = \"id\"\ntype = \"integer\"\n  [[column.rule]]\n  kind = \"not_a_rule\"\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	_, err = config.Build(cfg, schema.Options{})
	require.Error(t, err)
}
