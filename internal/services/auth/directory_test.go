package auth

import (
	"testing"

	"github.com/educlima/vasco-app/internal/models"
)

func TestNewDirectory_Seed(t *testing.T) {
	d := NewDirectory(SeedAccount())

	if d.Len() != 1 {
		t.Fatalf("Expected 1 seeded account, got %d", d.Len())
	}
	if a := d.FindByCredentials("joao@vasco.com", "123456"); a == nil || a.ID != "1" {
		t.Errorf("Expected fixture to be found by credentials, got %+v", a)
	}
}

func TestNewDirectory_SkipsDuplicateSeed(t *testing.T) {
	d := NewDirectory(SeedAccount(), SeedAccount())
	if d.Len() != 1 {
		t.Errorf("Expected duplicate seed to be skipped, got %d accounts", d.Len())
	}
}

func TestDirectory_Add(t *testing.T) {
	d := NewDirectory(SeedAccount())

	a := models.NewAccount("Ana Maria", "ana@vasco.com", "(21) 95555-4444", "2000-01-01", "123456")
	if err := d.Add(a); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := d.Add(models.NewAccount("Outra Ana", "ana@vasco.com", "", "", "x")); err != ErrEmailExists {
		t.Errorf("Expected ErrEmailExists, got %v", err)
	}
	if d.FindByID(a.ID) != a {
		t.Error("Expected account to be found by id")
	}
	if d.Len() != 2 {
		t.Errorf("Expected 2 accounts, got %d", d.Len())
	}
}

func TestDirectory_FindByCredentials(t *testing.T) {
	d := NewDirectory(SeedAccount())

	if d.FindByCredentials("joao@vasco.com", "1234567") != nil {
		t.Error("Expected wrong password to miss")
	}
	if d.FindByCredentials("JOAO@VASCO.COM", "123456") != nil {
		t.Error("Expected email match to be case sensitive")
	}
	if d.FindByCredentials("", "") != nil {
		t.Error("Expected empty credentials to miss")
	}
}

func TestDirectory_UsersPreservesOrderAndStrips(t *testing.T) {
	d := NewDirectory(SeedAccount())
	_ = d.Add(models.NewAccount("Ana Maria", "ana@vasco.com", "", "", "segredo"))
	_ = d.Add(models.NewAccount("Bia Souza", "bia@vasco.com", "", "", "segredo"))

	users := d.Users()
	want := []string{"joao@vasco.com", "ana@vasco.com", "bia@vasco.com"}
	for i, email := range want {
		if users[i].Email != email {
			t.Errorf("users[%d] = %s, want %s", i, users[i].Email, email)
		}
	}
}

func TestDirectory_UpdateProfile(t *testing.T) {
	d := NewDirectory(SeedAccount())

	if !d.UpdateProfile("1", "João Silva", "(21) 90000-0000") {
		t.Fatal("Expected fixture to be updated")
	}
	a := d.FindByID("1")
	if a.Name != "João Silva" || a.Phone != "(21) 90000-0000" {
		t.Errorf("Unexpected account after update: %+v", a.User)
	}
	if a.Email != "joao@vasco.com" {
		t.Error("Expected email to be unchanged")
	}
	if d.UpdateProfile("missing", "x", "y") {
		t.Error("Expected unknown id to report false")
	}
}
