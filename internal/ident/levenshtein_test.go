package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"get", "get", 0},
		{"gte", "get", 2},
		{"publc", "public", 1},
		{"kitten", "sitting", 3},
		{"prefix", "suffix", 3},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.want, Levenshtein(tt.b, tt.a), "symmetric")
		})
	}
}

func TestSuggest(t *testing.T) {
	scopes := []string{"get", "set", "mut", "clr"}

	assert.Equal(t, []string{"get"}, Suggest("gte", scopes))
	assert.Equal(t, []string{"set", "get"}, Suggest("sett", scopes))
	assert.Equal(t, []string{"public"}, Suggest("Publc", []string{"disable", "public", "crate", "private"}))
	assert.Empty(t, Suggest("completely", scopes))
	assert.Empty(t, Suggest("x", []string{"y"}))
}
