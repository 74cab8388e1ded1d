package auth

import (
	"fmt"
	"net/mail"
	"strings"
)

// Validator provides input validation for the sign-in surface. Only
// presence and email shape are checked locally; the provider validates
// the credentials themselves.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSignIn validates a sign-in request body.
func (v *Validator) ValidateSignIn(email, password string) error {
	if err := v.ValidateEmail(email); err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password must not be empty")
	}
	return nil
}

// ValidateEmail checks that email is present and syntactically valid.
func (v *Validator) ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email must not be empty")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("email format is invalid")
	}
	return nil
}
