package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/zoomarket/cashbox-system/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User // keyed by id
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		clone := *u
		r.users[u.ID] = &clone
	}
	return r
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func adminUser() *domain.User {
	return &domain.User{
		ID:       "64f000000000000000000001",
		Name:     "Анна",
		Email:    "a@b.com",
		Password: "secret",
		Role:     domain.RoleAdmin,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo(adminUser())
	svc := NewAuthService(repo, PlaintextVerifier{}, "secret-key", time.Hour, zerolog.Nop())

	token, user, err := svc.Login(context.Background(), "a@b.com", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Name != "Анна" || user.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Login_TokenClaims(t *testing.T) {
	repo := newStubUserRepo(adminUser())
	svc := NewAuthService(repo, PlaintextVerifier{}, "secret-key", time.Hour, zerolog.Nop())

	token, _, err := svc.Login(context.Background(), "a@b.com", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret-key"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["id"] != "64f000000000000000000001" {
		t.Fatalf("expected id claim, got %v", claims["id"])
	}
	if claims["role"] != domain.RoleAdmin {
		t.Fatalf("expected role claim, got %v", claims["role"])
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("expected exp claim, got %v", claims["exp"])
	}
	remaining := time.Until(time.Unix(int64(exp), 0))
	if remaining < 59*time.Minute || remaining > time.Hour {
		t.Fatalf("expected ~1h expiry, got %v", remaining)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo(adminUser())
	svc := NewAuthService(repo, PlaintextVerifier{}, "secret-key", time.Hour, zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "a@b.com", "bad"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := newStubUserRepo(adminUser())
	svc := NewAuthService(repo, PlaintextVerifier{}, "secret-key", time.Hour, zerolog.Nop())

	// A missing user is indistinguishable from a wrong password.
	if _, _, err := svc.Login(context.Background(), "ghost@b.com", "secret"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	repo := newStubUserRepo(adminUser())
	svc := NewAuthService(repo, PlaintextVerifier{}, "secret-key", time.Hour, zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "", "secret"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty email, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@b.com", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestAuthService_Login_BcryptVerifier(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := adminUser()
	user.Password = hash

	repo := newStubUserRepo(user)
	svc := NewAuthService(repo, BcryptVerifier{}, "secret-key", time.Hour, zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "a@b.com", "s3cret"); err != nil {
		t.Fatalf("login with bcrypt verifier failed: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@b.com", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Verify(t *testing.T) {
	repo := newStubUserRepo(adminUser())
	svc := NewAuthService(repo, PlaintextVerifier{}, "secret-key", time.Hour, zerolog.Nop())

	user, err := svc.Verify(context.Background(), "64f000000000000000000001")
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if user.Name != "Анна" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Verify_UserDeleted(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, PlaintextVerifier{}, "secret-key", time.Hour, zerolog.Nop())

	if _, err := svc.Verify(context.Background(), "64f000000000000000000009"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
