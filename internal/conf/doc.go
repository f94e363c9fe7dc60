// Package conf turns raw attribute entries into a validated FieldConf.
//
// Configuration cascades over two levels. The built-in Default is refined by
// the container directives, and the result seeds every field, which may refine
// it again through its struct tag:
//
//	base := conf.Default()
//	container, err := conf.Parse(base, directives, conf.LevelContainer)
//	field, err := conf.Parse(container, tag, conf.LevelField)
//
// FieldConf is a plain value. Parse never modifies its input and returns the
// zero FieldConf together with any error.
package conf
