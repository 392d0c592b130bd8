package service

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hourlog/timetracking-system/internal/core/domain"
)

type stubAuthRepo struct {
	users map[string]*domain.User // keyed by username
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) error {
	if _, exists := r.users[user.Username]; exists {
		return domain.ErrUserExists
	}
	r.users[user.Username] = cloneUser(user)
	return nil
}

func (r *stubAuthRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.users[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAuthRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func newAuthService(repo *stubAuthRepo) (*AuthService, *TokenIssuer) {
	tokens := NewTokenIssuer("secret", time.Hour)
	return NewAuthService(repo, tokens), tokens
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc, tokens := newAuthService(repo)

	token, user, err := svc.Register(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if user.PasswordHash == "pw1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	subject, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if subject != user.ID {
		t.Fatalf("expected token subject %s, got %s", user.ID, subject)
	}
}

func TestAuthService_Register_HashesAreSalted(t *testing.T) {
	repo := newStubAuthRepo()
	svc, _ := newAuthService(repo)

	_, a, err := svc.Register(context.Background(), "alice", "same-password")
	if err != nil {
		t.Fatalf("register alice: %v", err)
	}
	_, b, err := svc.Register(context.Background(), "bob", "same-password")
	if err != nil {
		t.Fatalf("register bob: %v", err)
	}
	if a.PasswordHash == b.PasswordHash {
		t.Fatalf("expected distinct hashes for identical passwords")
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubAuthRepo()
	svc, _ := newAuthService(repo)

	if _, _, err := svc.Register(context.Background(), "bob", "pass"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "bob", "pass2"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(repo.users))
	}
}

func TestAuthService_Register_EmptyFields(t *testing.T) {
	repo := newStubAuthRepo()
	svc, _ := newAuthService(repo)

	if _, _, err := svc.Register(context.Background(), "", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "carol", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc, tokens := newAuthService(repo)

	_, registered, err := svc.Register(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("expected user %s, got %s", registered.ID, user.ID)
	}

	subject, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if subject != registered.ID {
		t.Fatalf("expected subject %s, got %s", registered.ID, subject)
	}
}

func TestAuthService_Login_UnicodePassword(t *testing.T) {
	repo := newStubAuthRepo()
	svc, _ := newAuthService(repo)

	password := "pässwörd→時間"
	if _, _, err := svc.Register(context.Background(), "dave", password); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "dave", password); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "dave", "passwort"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubAuthRepo()
	svc, _ := newAuthService(repo)

	_, _, _ = svc.Register(context.Background(), "erin", "goodpass")
	if _, _, err := svc.Login(context.Background(), "erin", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	repo := newStubAuthRepo()
	svc, _ := newAuthService(repo)

	// An unknown username must be indistinguishable from a wrong password.
	if _, _, err := svc.Login(context.Background(), "ghost", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
