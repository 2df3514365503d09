// Package config loads a table's column and rule declarations from a
// TOML file and compiles them into a schema.Plan. It replaces the
// teacher's placeholder config package (a single flag and a no-op
// Run) with the concern that package's name actually promises here:
// turning a user-authored file into validator state.
package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Config is the root of a table's TOML declaration.
//
//	table = "orders"
//
//	[[column]]
//	name = "id"
//	type = "integer"
//	rule = [{ kind = "is_not_null" }, { kind = "is_unique" }]
type Config struct {
	Table   string         `toml:"table"`
	Columns []ColumnConfig `toml:"column"`
}

// ColumnConfig declares one column: its name, logical type (one of
// "string", "integer", "float", "date"), an optional strftime-like
// format (Date columns only), and its ordered rule list.
type ColumnConfig struct {
	Name   string       `toml:"name"`
	Type   string       `toml:"type"`
	Format string       `toml:"format"`
	Rules  []RuleConfig `toml:"rule"`
}

// RuleConfig declares one rule attached to a column. Only the fields
// relevant to Kind need be set; the rest are ignored.
type RuleConfig struct {
	Kind string `toml:"kind"`

	Min *float64 `toml:"min"`
	Max *float64 `toml:"max"`

	MinLength   *int `toml:"min_length"`
	MaxLength   *int `toml:"max_length"`
	ExactLength *int `toml:"exact_length"`

	Pattern         string `toml:"pattern"`
	CaseInsensitive bool   `toml:"case_insensitive"`

	Values []string `toml:"values"`

	NullsUnique bool `toml:"nulls_unique"`

	TargetColumn string `toml:"target_column"`
}

// Load reads and parses the TOML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config: read file")
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "config: parse toml")
	}
	if cfg.Table == "" {
		return nil, errors.New("config: missing table name")
	}
	return &cfg, nil
}
