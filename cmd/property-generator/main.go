// Command property-generator generates accessor methods for Go struct types
// annotated with property attributes.
//
// Usage:
//
//	property-generator gen      [packages...]
//	property-generator check    [packages...]
//	property-generator describe [--format yaml|dump] [packages...]
//
// Packages default to the one in the working directory. Add
//
//	//go:generate go run property-generator/cmd/property-generator gen .
//
// to a package to regenerate its property_gen.go with go generate.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := createRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
