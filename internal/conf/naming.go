package conf

import "strconv"

// Naming derives a method name from a field name. It is either an explicit
// name or a prefix/suffix pair around the field name, never both.
type Naming struct {
	Explicit bool
	Name     string
	Prefix   string
	Suffix   string
}

// Named returns a Naming that always yields name.
func Named(name string) Naming {
	return Naming{Explicit: true, Name: name}
}

// Format returns a Naming that wraps the field name.
func Format(prefix, suffix string) Naming {
	return Naming{Prefix: prefix, Suffix: suffix}
}

// Apply returns the raw method name for field.
func (n Naming) Apply(field string) string {
	if n.Explicit {
		return n.Name
	}

	return n.Prefix + field + n.Suffix
}

func (n Naming) String() string {
	if n.Explicit {
		return "name=" + strconv.Quote(n.Name)
	}

	return "prefix=" + strconv.Quote(n.Prefix) + ",suffix=" + strconv.Quote(n.Suffix)
}
