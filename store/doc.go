// Package store is a sample catalog model. Its accessors live in
// property_gen.go and are regenerated with go generate.
package store

//go:generate go run property-generator/cmd/property-generator gen .
