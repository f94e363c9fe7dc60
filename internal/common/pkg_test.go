package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPkgAlias(t *testing.T) {
	tests := map[string]string{
		"":                                       "",
		"time":                                   "time",
		"database/sql":                           "sql",
		"gopkg.in/yaml.v3":                       "yaml",
		"github.com/davecgh/go-spew/spew":        "spew",
		"github.com/org/go-thing":                "thing",
		"github.com/go-playground/validator/v10": "validator",
		"github.com/emirpasic/gods/maps/treemap": "treemap",
	}

	for in, want := range tests {
		assert.Equal(t, want, PkgAlias(in), in)
	}
}
