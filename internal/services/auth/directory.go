package auth

import (
	"github.com/educlima/vasco-app/internal/models"
)

// SeedAccount returns the fixture supporter every directory starts with
func SeedAccount() *models.Account {
	return &models.Account{
		User: models.User{
			ID:        "1",
			Name:      "João Vascaíno Silva",
			Email:     "joao@vasco.com",
			Phone:     "(21) 99999-9999",
			BirthDate: "1990-01-01",
		},
		Password: "123456",
	}
}

// Directory is the ordered list of registered accounts, unique by email.
// It is not safe for concurrent use; Service serializes access to it.
type Directory struct {
	accounts []*models.Account
	byEmail  map[string]*models.Account
	byID     map[string]*models.Account
}

// NewDirectory creates a directory holding seed in order. Seed accounts
// whose email is already taken are skipped.
func NewDirectory(seed ...*models.Account) *Directory {
	d := &Directory{
		byEmail: make(map[string]*models.Account),
		byID:    make(map[string]*models.Account),
	}
	for _, a := range seed {
		_ = d.Add(a)
	}
	return d
}

// Add appends an account. Emails are compared exactly, case included.
func (d *Directory) Add(a *models.Account) error {
	if d.Exists(a.Email) {
		return ErrEmailExists
	}
	d.accounts = append(d.accounts, a)
	d.byEmail[a.Email] = a
	d.byID[a.ID] = a
	return nil
}

// Exists reports whether email is registered
func (d *Directory) Exists(email string) bool {
	_, ok := d.byEmail[email]
	return ok
}

// FindByCredentials returns the account matching both email and password, or nil
func (d *Directory) FindByCredentials(email, password string) *models.Account {
	a, ok := d.byEmail[email]
	if !ok || a.Password != password {
		return nil
	}
	return a
}

// FindByID returns the account with id, or nil
func (d *Directory) FindByID(id string) *models.Account {
	return d.byID[id]
}

// UpdateProfile changes the editable fields of an account
func (d *Directory) UpdateProfile(id, name, phone string) bool {
	a, ok := d.byID[id]
	if !ok {
		return false
	}
	a.Name = name
	a.Phone = phone
	return true
}

// Len returns the number of accounts
func (d *Directory) Len() int {
	return len(d.accounts)
}

// Users returns every account, stripped, in insertion order
func (d *Directory) Users() []models.User {
	users := make([]models.User, 0, len(d.accounts))
	for _, a := range d.accounts {
		users = append(users, *a.Strip())
	}
	return users
}
