package lireddit

import "strings"

// validateRegister checks registration input and returns the first failing
// field. Messages are part of the API contract and rendered verbatim by
// client forms.
func validateRegister(input RegisterInput) []FieldError {
	if !strings.Contains(input.Email, "@") {
		return fieldError("email", "invalid email")
	}
	if len(input.Username) <= 2 {
		return fieldError("username", "length must be greater than 2")
	}
	if strings.Contains(input.Username, "@") {
		return fieldError("username", "cannot include an @")
	}
	if len(input.Password) <= 3 {
		return fieldError("password", "length must be greater than 3")
	}
	return nil
}
