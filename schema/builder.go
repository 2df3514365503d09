package schema

// Builder accumulates ColumnSpecs append-only until Finalize is called.
// The fluent, type-staged surface in package builder is a thin veneer
// over this: it is this package that enforces that every rule is legal
// for its column's declared type.
type Builder struct {
	columns    []ColumnSpec
	finalized  bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddColumn appends a column spec. It fails if the builder is already
// finalized or the column name is a duplicate.
func (b *Builder) AddColumn(spec ColumnSpec) error {
	if b.finalized {
		return ErrPlanAlreadyFinalized
	}
	for _, existing := range b.columns {
		if existing.Name == spec.Name {
			return planErrorf("schema: duplicate column name %q", spec.Name)
		}
	}
	b.columns = append(b.columns, spec)
	return nil
}
