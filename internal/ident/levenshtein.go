package ident

import (
	"slices"
	"strings"
)

// Levenshtein returns the edit distance between a and b.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Suggest returns the candidates close enough to word to be offered as a
// "did you mean" hint, nearest first. Comparison ignores case.
func Suggest(word string, candidates []string) []string {
	type scored struct {
		name string
		dist int
	}

	word = strings.ToLower(word)
	limit := max(2, len(word)/3)

	var found []scored

	for _, c := range candidates {
		d := Levenshtein(word, strings.ToLower(c))
		if d <= limit && d < max(len(word), len(c)) {
			found = append(found, scored{c, d})
		}
	}

	slices.SortStableFunc(found, func(a, b scored) int {
		return a.dist - b.dist
	})

	out := make([]string, 0, len(found))
	for _, f := range found {
		out = append(out, f.name)
	}

	return out
}
