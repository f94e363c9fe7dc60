package diagnostic

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"property-generator/internal/common"
)

// Code classifies a diagnostic. It implements error so that a *Error can be
// matched with errors.Is against one of the Code constants.
type Code string

const (
	// CodeUnknownOption - unrecognized key, scope or value.
	CodeUnknownOption Code = "unknown_option"
	// CodeDuplicateOption - a key set twice within one scope.
	CodeDuplicateOption Code = "duplicate_option"
	// CodeConflictingNaming - explicit name combined with prefix/suffix.
	CodeConflictingNaming Code = "conflicting_naming"
	// CodeMissingValue - a key expecting a literal value has none.
	CodeMissingValue Code = "missing_value"
	// CodeUnexpectedValue - a flag was given a value.
	CodeUnexpectedValue Code = "unexpected_value"
	// CodeUnsupportedShape - the record is not a struct or has no fields.
	CodeUnsupportedShape Code = "unsupported_shape"
	// CodeMalformed - the attribute text could not be scanned.
	CodeMalformed Code = "malformed"
	// CodeNameCollision - two generated identifiers, or a generated identifier
	// and a field, share a name.
	CodeNameCollision Code = "name_collision"
)

func (c Code) Error() string { return string(c) }

// Error is a configuration error located at the offending syntax.
type Error struct {
	Code    Code
	Message string
	// Pos and End delimit the offending span in the loaded file set. Both are
	// token.NoPos when the attribute text did not come from a file.
	Pos token.Pos
	End token.Pos
	// Offset is the byte offset of the span inside the attribute text.
	Offset int
	// Suggestions are close matches for unknown names.
	Suggestions []string
	// Fset resolves Pos for printing. Optional.
	Fset *token.FileSet
}

// Errorf creates an error with the given code located at pos.
func Errorf(code Code, pos, end token.Pos, offset int, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
		End:     end,
		Offset:  offset,
	}
}

// WithSuggestions returns e with suggestions attached.
func (e *Error) WithSuggestions(s ...string) *Error {
	e.Suggestions = append(e.Suggestions, s...)
	return e
}

// WithFileSet returns e with a file set used to print its position.
func (e *Error) WithFileSet(fset *token.FileSet) *Error {
	e.Fset = fset
	return e
}

// Unwrap returns the error code.
func (e *Error) Unwrap() error { return e.Code }

// Position resolves the start of the span, or returns an invalid position.
func (e *Error) Position() token.Position {
	if e.Fset == nil || !e.Pos.IsValid() {
		return token.Position{}
	}

	return e.Fset.Position(e.Pos)
}

// Text returns the message with its code and suggestions, without position.
func (e *Error) Text() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", quoteJoin(e.Suggestions))
	}

	return msg
}

func (e *Error) Error() string {
	msg := e.Text()

	if p := e.Position(); p.IsValid() {
		return p.String() + ": " + msg
	}

	if !e.Pos.IsValid() && e.Offset >= 0 {
		return fmt.Sprintf("col %d: %s", e.Offset+1, msg)
	}

	return msg
}

func quoteJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "`" + n + "`"
	}

	return strings.Join(quoted, " or ")
}

// AsError extracts a *Error from err.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}

	return nil, false
}

// Diagnostics holds all diagnostic information from one run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code Code
	// Message is the human-readable description.
	Message string
	// Record names the struct this relates to (if any).
	Record string
	// Field names the field this relates to (if any).
	Field string
	// Position is the resolved source position (may be invalid).
	Position token.Position
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code Code, message, record, field string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Record:   record,
		Field:    field,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code Code, message, record, field string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Record:   record,
		Field:    field,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code Code, message, record, field string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Record:   record,
		Field:    field,
	})
}

// AddErr records err for record. A *Error keeps its code and position; any
// other error is filed under CodeMalformed.
func (d *Diagnostics) AddErr(record string, err error) {
	if err == nil {
		return
	}

	diag := Diagnostic{
		Severity: SeverityError,
		Code:     CodeMalformed,
		Message:  err.Error(),
		Record:   record,
	}

	if e, ok := AsError(err); ok {
		diag.Code = e.Code
		diag.Message = e.Message
		diag.Position = e.Position()

		if len(e.Suggestions) > 0 {
			diag.Message += fmt.Sprintf(" (did you mean %s?)", quoteJoin(e.Suggestions))
		}
	}

	d.Errors = append(d.Errors, diag)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Position.IsValid() {
		prefix = append(prefix, d.Position.String()+":")
	}

	if d.Record != "" {
		name := d.Record
		if d.Field != "" {
			name += "." + d.Field
		}

		prefix = append(prefix, name+":")
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + " " + msg
	}

	return msg
}
