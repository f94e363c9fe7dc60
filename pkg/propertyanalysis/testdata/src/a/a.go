package a

//property:generate
type Celsius float64 // want `\[unsupported_shape\] only struct types are supported, .Celsius. is not a struct`

//property:generate
type Empty struct{} // want "has no fields to generate accessors for"

type Misspelled struct {
	A int `property:"get(publc)"` // want "unknown option `publc` in `get` \\(did you mean `public`\\?\\)"
}

type Duplicated struct {
	B int `property:"get(public, public)"` // want `\[duplicate_option\]`
}

type Conflicting struct {
	C int `property:"set(name=\"x\", prefix=\"y\")"` // want `\[conflicting_naming\]`
}

type Valued struct {
	D int `property:"get(public=\"yes\")"` // want `\[unexpected_value\]`
}

//property:generate
type Clash struct {
	count int // want "get method `count` of field `count` has the same name as field `count`"
}

//property:get(public),clr(public)
type Fine struct {
	count int
	items []string
	name  string `property:"skip"`
}

type Untouched struct {
	value int
}
