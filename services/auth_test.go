package services

import (
	"errors"
	"testing"

	"patidestek/inout"
	"patidestek/model"
	"patidestek/pkg/apperr"
	"patidestek/pkg/jwt"
)

func TestRegisterAndLogin(t *testing.T) {
	setupTestDB(t)
	svc := &AuthService{}

	resp, err := svc.Register(inout.RegisterReq{
		Name:     "Ayşe",
		Email:    "ayse@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}
	if resp.User.Role != model.RoleUser {
		t.Errorf("expected default role USER, got %s", resp.User.Role)
	}

	// second registration with the same email must conflict
	_, err = svc.Register(inout.RegisterReq{
		Name:     "Ayşe 2",
		Email:    "ayse@example.com",
		Password: "secret123",
	})
	if !errors.Is(err, apperr.ErrConflict) {
		t.Errorf("expected conflict on duplicate email, got %v", err)
	}

	// the original password still works and resolves to the same account
	login, err := svc.Login(inout.LoginReq{Email: "ayse@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if login.User.Id != resp.User.Id {
		t.Errorf("login resolved to user %d, want %d", login.User.Id, resp.User.Id)
	}

	claims, err := jwt.ParseToken(login.Token)
	if err != nil {
		t.Fatalf("parsing issued token: %v", err)
	}
	if claims.UID != resp.User.Id {
		t.Errorf("token carries uid %d, want %d", claims.UID, resp.User.Id)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	setupTestDB(t)
	svc := &AuthService{}

	if _, err := svc.Register(inout.RegisterReq{
		Name:     "Mehmet",
		Email:    "mehmet@example.com",
		Password: "secret123",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := svc.Login(inout.LoginReq{Email: "mehmet@example.com", Password: "wrong"})
	if !errors.Is(err, apperr.ErrUnauthorized) {
		t.Errorf("expected unauthorized on wrong password, got %v", err)
	}

	_, err = svc.Login(inout.LoginReq{Email: "nobody@example.com", Password: "secret123"})
	if !errors.Is(err, apperr.ErrUnauthorized) {
		t.Errorf("expected unauthorized on unknown email, got %v", err)
	}
}

func TestMe(t *testing.T) {
	setupTestDB(t)
	svc := &AuthService{}

	user := createUser(t, "Zeynep", "zeynep@example.com", model.RoleUser)

	view, err := svc.Me(user.Id)
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if view.Email != "zeynep@example.com" {
		t.Errorf("unexpected email %s", view.Email)
	}

	if _, err := svc.Me(9999); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected not found for unknown id, got %v", err)
	}
}
