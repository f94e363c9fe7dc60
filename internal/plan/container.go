package plan

import (
	"fmt"

	"property-generator/internal/analyze"
	"property-generator/internal/attr"
	"property-generator/internal/conf"
	"property-generator/internal/diagnostic"
)

// Options controls planning.
type Options struct {
	// Defaults replaces the built-in configuration all records start from.
	Defaults *conf.FieldConf
	// Parallelism bounds BuildAll. Zero means GOMAXPROCS.
	Parallelism int
}

func (o Options) defaults() conf.FieldConf {
	if o.Defaults != nil {
		return *o.Defaults
	}

	return conf.Default()
}

// NewContainer validates a record and resolves the configuration of every
// field through the cascade: defaults, then container directives, then the
// field tag. Any error rejects the whole record.
func NewContainer(r *analyze.Record, opts Options) (*ContainerDef, error) {
	if r.Err != nil {
		return nil, fmt.Errorf("%s: %w", r.Name(), withFileSet(r.Err, r))
	}

	if r.Shape != analyze.ShapeStruct {
		err := diagnostic.Errorf(diagnostic.CodeUnsupportedShape, r.Pos, r.Pos, -1,
			"only struct types are supported, `%s` is %s", r.Name(), shapeName(r.Shape))

		return nil, withFileSet(err, r)
	}

	if len(r.Fields) == 0 {
		err := diagnostic.Errorf(diagnostic.CodeUnsupportedShape, r.Pos, r.Pos, -1,
			"`%s` has no fields to generate accessors for", r.Name())

		return nil, withFileSet(err, r)
	}

	containerConf, err := parseDirectives(opts.defaults(), r.Directives)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.Name(), withFileSet(err, r))
	}

	def := &ContainerDef{
		ID:         r.ID,
		PkgName:    r.PkgName,
		File:       r.File,
		TypeParams: r.TypeParams,
		Imports:    r.Imports,
		Pos:        r.Pos,
		Fset:       r.Fset,
		Fields:     make([]FieldDef, 0, len(r.Fields)),
	}

	for _, f := range r.Fields {
		fc := containerConf

		if f.Tag != nil {
			fc, err = parseSource(containerConf, *f.Tag)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", r.Name(), f.Name, withFileSet(err, r))
			}
		}

		def.Fields = append(def.Fields, FieldDef{
			Name:      f.Name,
			Type:      f.Type,
			Conf:      fc,
			Pos:       f.Pos,
			Cloneable: f.Cloneable,
		})
	}

	return def, nil
}

func parseDirectives(base conf.FieldConf, directives []attr.Source) (conf.FieldConf, error) {
	if len(directives) == 0 {
		return base, nil
	}

	var entries []attr.Entry

	for _, d := range directives {
		e, err := d.Scan()
		if err != nil {
			return conf.FieldConf{}, err
		}

		entries = append(entries, e...)
	}

	return conf.Parse(base, entries, conf.LevelContainer)
}

func parseSource(base conf.FieldConf, src attr.Source) (conf.FieldConf, error) {
	entries, err := src.Scan()
	if err != nil {
		return conf.FieldConf{}, err
	}

	return conf.Parse(base, entries, conf.LevelField)
}

func withFileSet(err error, r *analyze.Record) error {
	if derr, ok := diagnostic.AsError(err); ok && derr.Fset == nil {
		derr.WithFileSet(r.Fset)
	}

	return err
}

func shapeName(s analyze.Shape) string {
	switch s {
	case analyze.ShapeAlias:
		return "an alias"
	case analyze.ShapeDefined:
		return "not a struct"
	default:
		return "of unknown shape"
	}
}
