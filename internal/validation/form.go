package validation

import (
	"time"

	"github.com/go-playground/validator"
)

var required = validator.New()

// Registration is the sign-up form as typed by the user.
type Registration struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Phone           string `json:"phone" validate:"required"`
	BirthDate       string `json:"birthDate" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Validate runs every rule in order and returns the first failure as *Error.
// Order: required fields, name, email, phone, birth date, password match,
// password length.
func (r Registration) Validate(now time.Time) error {
	if err := required.Struct(r); err != nil {
		return fail(FieldRequired, MsgRequiredFields)
	}
	if !FullName(r.Name) {
		return fail(FieldName, MsgFullName)
	}
	if !Email(r.Email) {
		return fail(FieldEmail, MsgEmail)
	}
	if !Phone(r.Phone) {
		return fail(FieldPhone, MsgPhone)
	}
	if !BirthDate(r.BirthDate, now) {
		return fail(FieldBirthDate, MsgBirthDate)
	}
	if !PasswordConfirmation(r.Password, r.ConfirmPassword) {
		return fail(FieldConfirmPassword, MsgPasswordMismatch)
	}
	if !Password(r.Password) {
		return fail(FieldPassword, MsgPasswordLength)
	}
	return nil
}

// Login is the sign-in form.
type Login struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Validate only checks that both fields were filled in.
func (l Login) Validate() error {
	if err := required.Struct(l); err != nil {
		return fail(FieldRequired, MsgLoginRequired)
	}
	return nil
}

// Profile is the editable part of a user's profile.
type Profile struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

// Validate applies the registration rules for name and phone.
func (p Profile) Validate() error {
	if err := required.Struct(p); err != nil {
		return fail(FieldRequired, MsgRequiredFields)
	}
	if !FullName(p.Name) {
		return fail(FieldName, MsgFullName)
	}
	if !Phone(p.Phone) {
		return fail(FieldPhone, MsgPhone)
	}
	return nil
}
