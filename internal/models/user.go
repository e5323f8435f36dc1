// Package models defines core domain types
package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// MemberSince is the date membership time is counted from on the profile.
var MemberSince = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// User is a registered supporter as seen outside the session store.
// It never carries the password and is the only shape that gets persisted.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birthDate"`
}

// Account is a directory entry: the user plus its credential.
type Account struct {
	User
	Password string `json:"-"` // Never serialize
}

// NewAccount creates an account with a generated, time-ordered ID
func NewAccount(name, email, phone, birthDate, password string) *Account {
	return &Account{
		User: User{
			ID:        NewID(),
			Name:      name,
			Email:     email,
			Phone:     phone,
			BirthDate: birthDate,
		},
		Password: password,
	}
}

// NewID returns a UUIDv7 string. IDs created later sort after earlier ones.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Strip returns a copy of the account without its password
func (a *Account) Strip() *User {
	u := a.User
	return &u
}

// Valid reports whether a decoded user has the fields a session needs
func (u *User) Valid() bool {
	return u != nil && u.ID != "" && u.Email != ""
}

// MembershipDays returns how many days, rounded up, have passed since MemberSince
func MembershipDays(now time.Time) int {
	diff := now.Sub(MemberSince)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}
