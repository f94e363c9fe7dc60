package common

// UnknownStr is printed for enum values outside their declared range.
const UnknownStr = "unknown"

// DefaultKey is the struct tag key and directive name property attributes
// are read from unless configured otherwise.
const DefaultKey = "property"

// GeneratorName appears in the header of generated files.
const GeneratorName = "property-generator"

// DefaultOutput is the name of the generated file in each package directory.
const DefaultOutput = "property_gen.go"
