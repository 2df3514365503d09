package builder

import "github.com/GrGLeo/dataguard/schema"

// column is satisfied by every staged column type in this package; it
// lets Guard.AddColumn accept any of them without exposing the
// underlying schema.ColumnSpec construction to callers.
type column interface {
	spec() schema.ColumnSpec
}

// Guard accumulates column declarations and compiles them into a
// schema.Plan, mirroring the Python binding's Guard.add_column /
// Guard.commit pair — renamed Prepare here since "commit" in this
// codebase's idiom names a storage write, not a schema freeze.
type Guard struct {
	b *schema.Builder
}

// New returns an empty Guard.
func New() *Guard {
	return &Guard{b: schema.NewBuilder()}
}

// AddColumn appends one staged column declaration. It fails if the
// column name is already declared or Prepare has already run.
func (g *Guard) AddColumn(c column) error {
	return g.b.AddColumn(c.spec())
}

// AddColumns appends several staged column declarations in order,
// stopping at the first failure.
func (g *Guard) AddColumns(cols ...column) error {
	for _, c := range cols {
		if err := g.AddColumn(c); err != nil {
			return err
		}
	}
	return nil
}

// Prepare finalizes every declared column into an immutable Plan ready
// for engine.New. opts is passed through to schema.Finalize unchanged;
// a zero Options uses the spec's defaults.
func (g *Guard) Prepare(opts schema.Options) (*schema.Plan, error) {
	return schema.Finalize(g.b, opts)
}
