package integration

import (
	"net/http"
	"testing"
)

func TestAuthFlow_RegisterLoginProfile(t *testing.T) {
	app := setupApp(t)

	token, _, userID := app.registerUser(t, "auth@test.com", "password123")

	// Access the profile with the registration token
	rec := app.request("GET", "/api/v1/profile", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	user := parseJSON(t, rec)["user"].(map[string]interface{})
	if user["id"] != userID {
		t.Errorf("expected user id %s, got %v", userID, user["id"])
	}
	if user["email"] != "auth@test.com" {
		t.Errorf("expected email preserved, got %v", user["email"])
	}

	// Log in again and reuse the fresh token
	loginToken, _ := app.loginUser(t, "auth@test.com", "password123")
	rec = app.request("GET", "/api/v1/profile", "", loginToken)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 with login token, got %d", rec.Code)
	}
}

func TestAuthFlow_EmailIsCaseInsensitive(t *testing.T) {
	app := setupApp(t)
	app.registerUser(t, "Mixed@Test.com", "password123")

	// Login with a differently-cased address resolves the same user
	token, _ := app.loginUser(t, "mixed@test.com", "password123")
	rec := app.request("GET", "/api/v1/profile", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	// Second registration with different casing conflicts
	rec = app.request("POST", "/api/v1/auth/register",
		`{"email":"MIXED@test.com","password":"password123"}`, "")
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 on duplicate email, got %d", rec.Code)
	}
}

func TestAuthFlow_RefreshRotatesTokens(t *testing.T) {
	app := setupApp(t)
	_, refreshToken, _ := app.registerUser(t, "refresh@test.com", "password123")

	rec := app.request("POST", "/api/v1/auth/refresh",
		`{"refresh_token":"`+refreshToken+`"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("refresh failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	newToken := result["token"].(string)
	newRefresh := result["refresh_token"].(string)

	// New access token is usable
	rec = app.request("GET", "/api/v1/profile", "", newToken)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 with refreshed token, got %d", rec.Code)
	}

	// Old refresh token was rotated out. Tokens minted within the same
	// second are byte-identical, so only assert when they differ.
	if newRefresh != refreshToken {
		rec = app.request("POST", "/api/v1/auth/refresh",
			`{"refresh_token":"`+refreshToken+`"}`, "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 reusing rotated refresh token, got %d", rec.Code)
		}
	}

	// The rotated-in refresh token still works
	rec = app.request("POST", "/api/v1/auth/refresh",
		`{"refresh_token":"`+newRefresh+`"}`, "")
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 with current refresh token, got %d", rec.Code)
	}
}

func TestAuthFlow_ProtectedRoutesRequireToken(t *testing.T) {
	app := setupApp(t)
	_, refreshToken, _ := app.registerUser(t, "guard@test.com", "password123")

	rec := app.request("GET", "/api/v1/profile", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", rec.Code)
	}

	rec = app.request("GET", "/api/v1/tasks", "", "garbage-token")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with garbage token, got %d", rec.Code)
	}

	// A refresh token is not an access token
	rec = app.request("GET", "/api/v1/profile", "", refreshToken)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 using refresh token for access, got %d", rec.Code)
	}
}

func TestAuthFlow_UpdateProfile(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "update@test.com", "password123")

	rec := app.request("PUT", "/api/v1/profile",
		`{"name":"Renamed","mobile":"+60123456789"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	user := parseJSON(t, rec)["user"].(map[string]interface{})
	if user["name"] != "Renamed" {
		t.Errorf("expected updated name, got %v", user["name"])
	}
	if user["email"] != "update@test.com" {
		t.Errorf("expected email untouched, got %v", user["email"])
	}
}
