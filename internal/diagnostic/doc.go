// Package diagnostic provides the coded, position-aware errors raised while
// turning property attributes into accessor plans, and an aggregate used by
// the check and gen commands to report per-record results.
//
// Every failure is a *Error carrying a Code. Codes are comparable with
// errors.Is:
//
//	if errors.Is(err, diagnostic.CodeDuplicateOption) { ... }
package diagnostic
