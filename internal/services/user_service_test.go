package services

import (
	"fmt"
	"testing"

	"momentum/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("alice@example.com", "supersecret", "Alice", "")
		testutil.AssertNoError(t, err)

		if user.ID == "" {
			t.Fatal("expected non-empty user ID")
		}
		if user.Password == "supersecret" {
			t.Error("expected password to be hashed")
		}
		if !user.IsActive {
			t.Error("expected user to be active")
		}
	})

	t.Run("email_normalized_to_lowercase", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("Bob@Example.COM", "supersecret", "Bob", "")
		testutil.AssertNoError(t, err)

		if user.Email != "bob@example.com" {
			t.Errorf("expected lowercased email, got %s", user.Email)
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("carol@example.com", "supersecret", "Carol", "")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("Carol@example.com", "supersecret", "Carol", "")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("missing_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("", "supersecret", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateUser("dave@example.com", "", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestVerifyPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)

	user, err := svc.CreateUser("erin@example.com", "correct-horse", "Erin", "")
	testutil.AssertNoError(t, err)

	if !svc.VerifyPassword(user, "correct-horse") {
		t.Error("expected correct password to verify")
	}
	if svc.VerifyPassword(user, "wrong-horse") {
		t.Error("expected wrong password to fail")
	}
}

func TestUpdateProfile(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)

		newEmail := fmt.Sprintf("renamed-%s@example.com", user.ID[:8])
		updated, err := svc.UpdateProfile(user.ID, "New Name", newEmail, "12345678")
		testutil.AssertNoError(t, err)

		if updated.Name != "New Name" {
			t.Errorf("expected updated name, got %s", updated.Name)
		}
		if updated.Email != newEmail {
			t.Errorf("expected updated email, got %s", updated.Email)
		}
	})

	t.Run("email_taken_by_other_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		_, err := svc.UpdateProfile(user1.ID, "Name", user2.Email, "")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("keeping_own_email_is_fine", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpdateProfile(user.ID, "Name", user.Email, "")
		testutil.AssertNoError(t, err)
	})
}

func TestRefreshTokenHash(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)
	user := testutil.CreateTestUser(t, db)

	testutil.AssertNoError(t, svc.StoreRefreshTokenHash(user.ID, "abc123"))

	hash, err := svc.GetRefreshTokenHash(user.ID)
	testutil.AssertNoError(t, err)
	if hash != "abc123" {
		t.Errorf("expected stored hash abc123, got %s", hash)
	}

	reloaded, err := svc.GetUserByID(user.ID)
	testutil.AssertNoError(t, err)
	if reloaded.LastLoginAt == nil {
		t.Error("expected last login stamped")
	}
}
