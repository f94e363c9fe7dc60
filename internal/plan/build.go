package plan

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"property-generator/internal/analyze"
)

// Build synthesizes the accessors of a validated container.
func Build(def *ContainerDef) *Plan {
	p := &Plan{
		Container:  def.Name(),
		ID:         def.ID,
		TypeParams: def.TypeParams,
		Def:        def,
	}

	for _, f := range def.Fields {
		methods, skipped := synthesizeField(def, f)
		p.Methods = append(p.Methods, methods...)
		p.Skipped = append(p.Skipped, skipped...)
	}

	return p
}

// BuildRecord validates r and builds its plan.
func BuildRecord(r *analyze.Record, opts Options) (*Plan, error) {
	def, err := NewContainer(r, opts)
	if err != nil {
		return nil, err
	}

	return Build(def), nil
}

// BuildAll plans every record concurrently. Records are independent: the
// result at index i belongs to records[i] and holds either its plan or its
// error.
func BuildAll(ctx context.Context, records []*analyze.Record, opts Options) []Result {
	results := make([]Result, len(records))

	limit := opts.Parallelism
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, r := range records {
		g.Go(func() error {
			results[i].Record = r

			if err := ctx.Err(); err != nil {
				results[i].Err = err

				return nil
			}

			results[i].Plan, results[i].Err = BuildRecord(r, opts)

			return nil
		})
	}

	// Workers never fail, errors are reported per record.
	_ = g.Wait()

	return results
}
