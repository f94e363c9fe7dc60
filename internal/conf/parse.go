package conf

import (
	"go/token"
	"slices"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"property-generator/internal/attr"
	"property-generator/internal/diagnostic"
	"property-generator/internal/ident"
)

const (
	keySkip       = "skip"
	keyName       = "name"
	keyPrefix     = "prefix"
	keySuffix     = "suffix"
	keyType       = "type"
	keyScope      = "scope"
	keyFullOption = "full_option"
)

const (
	scopeGet = "get"
	scopeSet = "set"
	scopeMut = "mut"
	scopeClr = "clr"
)

var scopeNames = []string{scopeGet, scopeSet, scopeMut, scopeClr}

// scopeKeys lists the options each scope accepts besides the visibility flags.
var scopeKeys = map[string]struct{ flags, values []string }{
	scopeGet: {values: []string{keyName, keyPrefix, keySuffix, keyType}},
	scopeSet: {flags: []string{keyFullOption}, values: []string{keyName, keyPrefix, keySuffix, keyType}},
	scopeMut: {values: []string{keyName, keyPrefix, keySuffix}},
	scopeClr: {values: []string{keyName, keyPrefix, keySuffix, keyScope}},
}

// ParseText scans text and parses it with Parse. pos is the position of the
// first byte of text, or token.NoPos.
func ParseText(base FieldConf, text string, pos token.Pos, level Level) (FieldConf, error) {
	entries, err := attr.Scan(text, pos)
	if err != nil {
		return FieldConf{}, err
	}

	return Parse(base, entries, level)
}

// Parse applies the entries of one level on top of base and returns the
// result.
func Parse(base FieldConf, entries []attr.Entry, level Level) (FieldConf, error) {
	if level == LevelField {
		for _, e := range entries {
			if e.IsFlag(keySkip) {
				base.Skip = true

				return base, nil
			}
		}
	}

	scopes, err := collect(entries, level)
	if err != nil {
		return FieldConf{}, err
	}

	out := base

	it := scopes.Iterator()
	for it.Next() {
		name, _ := it.Key().(string)
		opts, _ := it.Value().(*options)

		if err := apply(&out, name, opts); err != nil {
			return FieldConf{}, err
		}
	}

	return out, nil
}

// options holds the entries of one scope, merged over every list of that
// scope at one level. Flags and key/value entries are separate namespaces.
type options struct {
	flags  *linkedhashmap.Map
	values *linkedhashmap.Map
}

func newOptions() *options {
	return &options{flags: linkedhashmap.New(), values: linkedhashmap.New()}
}

func (o *options) add(e attr.Entry) error {
	target := o.flags
	if e.Kind == attr.KindValue {
		target = o.values
	}

	if _, dup := target.Get(e.Name); dup {
		return located(diagnostic.CodeDuplicateOption, e, "`%s` is set more than once", e.Name)
	}

	target.Put(e.Name, e)

	return nil
}

func collect(entries []attr.Entry, level Level) (*linkedhashmap.Map, error) {
	scopes := linkedhashmap.New()

	for _, e := range entries {
		switch e.Kind {
		case attr.KindValue:
			return nil, located(diagnostic.CodeMalformed, e, "`%s` should not be a key/value pair at top level", e.Name)

		case attr.KindFlag:
			if e.Name == keySkip {
				return nil, located(diagnostic.CodeUnknownOption, e, "`skip` is only allowed on fields, not on the %s", level)
			}

			candidates := scopeNames
			if level == LevelField {
				candidates = append(slices.Clone(scopeNames), keySkip)
			}

			return nil, located(diagnostic.CodeUnknownOption, e, "unknown option `%s`", e.Name).
				WithSuggestions(ident.Suggest(e.Name, candidates)...)

		case attr.KindList:
			if !slices.Contains(scopeNames, e.Name) {
				return nil, located(diagnostic.CodeUnknownOption, e, "unknown scope `%s`", e.Name).
					WithSuggestions(ident.Suggest(e.Name, scopeNames)...)
			}

			if len(e.Items) == 0 {
				return nil, located(diagnostic.CodeMalformed, e, "`%s()` should not be empty", e.Name)
			}

			var opts *options
			if v, ok := scopes.Get(e.Name); ok {
				opts, _ = v.(*options)
			} else {
				opts = newOptions()
				scopes.Put(e.Name, opts)
			}

			for _, item := range e.Items {
				if item.Kind == attr.KindList {
					return nil, located(diagnostic.CodeMalformed, item, "`%s(...)` cannot be nested in `%s`", item.Name, e.Name)
				}

				if err := opts.add(item); err != nil {
					return nil, err
				}
			}
		}
	}

	return scopes, nil
}

// settings is the part shared by every operation config.
type settings struct {
	visibility *Visibility
	naming     *Naming
}

func apply(fc *FieldConf, scope string, opts *options) error {
	var s settings

	switch scope {
	case scopeGet:
		s = settings{&fc.Get.Visibility, &fc.Get.Naming}
	case scopeSet:
		s = settings{&fc.Set.Visibility, &fc.Set.Naming}
	case scopeMut:
		s = settings{&fc.Mut.Visibility, &fc.Mut.Naming}
	case scopeClr:
		s = settings{&fc.Clr.Visibility, &fc.Clr.Naming}
	}

	keys := scopeKeys[scope]
	visSet := false

	it := opts.flags.Iterator()
	for it.Next() {
		e, _ := it.Value().(attr.Entry)

		if idx := slices.Index(visibilityNames, e.Name); idx >= 0 {
			if visSet {
				return located(diagnostic.CodeDuplicateOption, e, "visibility of `%s` is set more than once", scope)
			}

			visSet = true
			*s.visibility = Visibility(idx)

			continue
		}

		switch {
		case e.Name == keyFullOption && scope == scopeSet:
			fc.Set.FullOption = true
		case slices.Contains(keys.values, e.Name):
			return located(diagnostic.CodeMissingValue, e, "`%s` expects a string literal value", e.Name)
		default:
			return unknownKey(scope, e)
		}
	}

	var naming struct {
		name, prefix, suffix *attr.Entry
	}

	it = opts.values.Iterator()
	for it.Next() {
		e, _ := it.Value().(attr.Entry)

		if !slices.Contains(keys.values, e.Name) {
			if slices.Contains(visibilityNames, e.Name) || slices.Contains(keys.flags, e.Name) {
				return located(diagnostic.CodeUnexpectedValue, e, "`%s` does not take a value", e.Name)
			}

			return unknownKey(scope, e)
		}

		switch e.Name {
		case keyName:
			if naming.prefix != nil || naming.suffix != nil {
				return located(diagnostic.CodeConflictingNaming, e, "`name` cannot be combined with `prefix` or `suffix`")
			}

			naming.name = &e
		case keyPrefix, keySuffix:
			if naming.name != nil {
				return located(diagnostic.CodeConflictingNaming, e, "`%s` cannot be combined with `name`", e.Name)
			}

			if e.Name == keyPrefix {
				naming.prefix = &e
			} else {
				naming.suffix = &e
			}
		case keyType:
			if err := applyType(fc, scope, e); err != nil {
				return err
			}
		case keyScope:
			idx, err := lookupValue(clrScopeNames, scope, e)
			if err != nil {
				return err
			}

			fc.Clr.Scope = ClrScope(idx)
		}
	}

	switch {
	case naming.name != nil:
		*s.naming = Named(naming.name.Value)
	case naming.prefix != nil || naming.suffix != nil:
		var prefix, suffix string
		if naming.prefix != nil {
			prefix = naming.prefix.Value
		}

		if naming.suffix != nil {
			suffix = naming.suffix.Value
		}

		*s.naming = Format(prefix, suffix)
	}

	return nil
}

func applyType(fc *FieldConf, scope string, e attr.Entry) error {
	switch scope {
	case scopeGet:
		idx, err := lookupValue(getTypeNames, scope, e)
		if err != nil {
			return err
		}

		fc.Get.Type = GetType(idx)
	case scopeSet:
		idx, err := lookupValue(setTypeNames, scope, e)
		if err != nil {
			return err
		}

		fc.Set.Type = SetType(idx)
	}

	return nil
}

func lookupValue(names []string, scope string, e attr.Entry) (int, error) {
	if idx := slices.Index(names, e.Value); idx >= 0 {
		return idx, nil
	}

	err := diagnostic.Errorf(diagnostic.CodeUnknownOption, e.ValuePos, e.End, e.ValueOffset,
		"unknown `%s` %s %q", scope, e.Name, e.Value).
		WithSuggestions(ident.Suggest(e.Value, names)...)

	return 0, err
}

func unknownKey(scope string, e attr.Entry) error {
	keys := scopeKeys[scope]
	candidates := slices.Concat(visibilityNames, keys.flags, keys.values)

	return located(diagnostic.CodeUnknownOption, e, "unknown option `%s` in `%s`", e.Name, scope).
		WithSuggestions(ident.Suggest(e.Name, candidates)...)
}

func located(code diagnostic.Code, e attr.Entry, format string, args ...any) *diagnostic.Error {
	return diagnostic.Errorf(code, e.Pos, e.End, e.Offset, format, args...)
}
