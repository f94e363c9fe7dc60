package config

import (
	"go/token"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// attrKeyPattern matches struct tag keys.
var attrKeyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

// directiveKeyPattern matches the names gofmt keeps as //name: directives.
var directiveKeyPattern = regexp.MustCompile(`^[a-z0-9]+$`)

// RegisterCustomValidators registers custom validation functions.
func RegisterCustomValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("attrkey", validateAttrKey); err != nil {
		return err
	}

	if err := v.RegisterValidation("directivekey", validateDirectiveKey); err != nil {
		return err
	}

	return v.RegisterValidation("goident", validateGoIdent)
}

// validateAttrKey accepts names usable as a struct tag key.
func validateAttrKey(fl validator.FieldLevel) bool {
	return attrKeyPattern.MatchString(fl.Field().String())
}

// validateDirectiveKey accepts lower-case alphanumeric names. Any other
// //key: comment is rewritten by gofmt into prose.
func validateDirectiveKey(fl validator.FieldLevel) bool {
	return directiveKeyPattern.MatchString(fl.Field().String())
}

func validateGoIdent(fl validator.FieldLevel) bool {
	return token.IsIdentifier(fl.Field().String())
}
