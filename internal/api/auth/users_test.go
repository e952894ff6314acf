package auth

import (
	"testing"

	"santix-backoffice/internal/domain/users"
)

// fakeUserStore is an in-memory userStore that counts inserts.
type fakeUserStore struct {
	rows    []*users.User
	nextID  uint
	creates int
}

func (f *fakeUserStore) BySub(sub string) (*users.User, error) {
	for _, u := range f.rows {
		if u.GoogleSub != nil && *u.GoogleSub == sub {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) ByEmail(email string) (*users.User, error) {
	for _, u := range f.rows {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Create(u *users.User) error {
	f.nextID++
	f.creates++
	u.ID = f.nextID
	f.rows = append(f.rows, u)
	return nil
}

func (f *fakeUserStore) LinkSub(id uint, sub string) (*users.User, error) {
	for _, u := range f.rows {
		if u.ID == id {
			s := sub
			u.GoogleSub = &s
			return u, nil
		}
	}
	return nil, nil
}

func TestEnsureGoogleUserIsIdempotent(t *testing.T) {
	store := &fakeUserStore{}
	p := googleProfile{Sub: "sub-1", Email: "ana@example.com", Name: "Ana"}

	first, err := ensureGoogleUser(store, p)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := ensureGoogleUser(store, p)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("ids differ: %d != %d", first.ID, second.ID)
	}
	if store.creates != 1 {
		t.Fatalf("creates = %d, want 1", store.creates)
	}
	if first.Role != users.RoleCustomer || first.Status != users.StatusActive {
		t.Fatalf("unexpected defaults: role=%s status=%s", first.Role, first.Status)
	}
}

func TestEnsureGoogleUserLinksExistingEmail(t *testing.T) {
	name := "Pre-existing"
	store := &fakeUserStore{}
	store.Create(&users.User{Name: &name, Email: "staff@example.com", Role: users.RoleStaff, Status: users.StatusActive})
	store.creates = 0

	got, err := ensureGoogleUser(store, googleProfile{Sub: "sub-9", Email: "staff@example.com", Name: "Staff"})
	if err != nil {
		t.Fatalf("ensureGoogleUser: %v", err)
	}
	if store.creates != 0 {
		t.Fatalf("creates = %d, want 0", store.creates)
	}
	if got.GoogleSub == nil || *got.GoogleSub != "sub-9" {
		t.Fatal("sub not linked to existing email row")
	}
	if got.Role != users.RoleStaff {
		t.Errorf("role changed to %s", got.Role)
	}
}

func TestEnsureGoogleUserNeverOverwritesSub(t *testing.T) {
	sub := "original-sub"
	name := "Ana"
	store := &fakeUserStore{}
	store.Create(&users.User{Name: &name, Email: "ana@example.com", Role: users.RoleCustomer, Status: users.StatusActive, GoogleSub: &sub})

	// Same email arriving with a different subject must not relink.
	got, err := ensureGoogleUser(store, googleProfile{Sub: "other-sub", Email: "ana@example.com", Name: "Ana"})
	if err != nil {
		t.Fatalf("ensureGoogleUser: %v", err)
	}
	if *got.GoogleSub != "original-sub" {
		t.Fatalf("sub overwritten: %s", *got.GoogleSub)
	}
}

func TestEnsureGoogleUserNameFallback(t *testing.T) {
	store := &fakeUserStore{}
	got, err := ensureGoogleUser(store, googleProfile{Sub: "s", Email: "budi@example.com"})
	if err != nil {
		t.Fatalf("ensureGoogleUser: %v", err)
	}
	if got.Name == nil || *got.Name != "budi" {
		t.Fatalf("name fallback = %v, want email local part", got.Name)
	}
}
