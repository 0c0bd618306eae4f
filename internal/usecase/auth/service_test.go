package auth

import (
	"context"
	"errors"
	"testing"

	"talento-joven/internal/domain/profile"
	"talento-joven/internal/domain/user"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	users   map[uuid.UUID]user.User
	creates int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uuid.UUID]user.User)}
}

func (r *mockUserRepo) Create(_ context.Context, u user.User) error {
	r.creates++
	r.users[u.ID] = u
	return nil
}

func (r *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *mockUserRepo) Update(_ context.Context, u user.User) error {
	r.users[u.ID] = u
	return nil
}

func TestRegister_CreatesUserWithDefaults(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)

	u, err := svc.Register(context.Background(), RegisterInput{
		Email:    "  Ana@Example.com ",
		Password: "secreta123",
		FullName: " Ana Rojas ",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Email != "ana@example.com" {
		t.Fatalf("expected normalized email, got %q", u.Email)
	}
	if u.FullName != "Ana Rojas" {
		t.Fatalf("expected trimmed full name, got %q", u.FullName)
	}
	if u.Role != user.RoleUser {
		t.Fatalf("expected role %q, got %q", user.RoleUser, u.Role)
	}
	if u.Estado != profile.EstadoSinPerfil {
		t.Fatalf("expected estado %q, got %q", profile.EstadoSinPerfil, u.Estado)
	}
	if u.PasswordHash != "" {
		t.Fatalf("expected password hash stripped from result")
	}
	stored := repo.users[u.ID]
	if stored.PasswordHash == "" || stored.PasswordHash == "secreta123" {
		t.Fatalf("expected stored bcrypt hash, got %q", stored.PasswordHash)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)

	if _, err := svc.Register(context.Background(), RegisterInput{Email: "ana@example.com", Password: "secreta123"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, err := svc.Register(context.Background(), RegisterInput{Email: "ANA@example.com", Password: "otraclave123"})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
	if repo.creates != 1 {
		t.Fatalf("expected one create, got %d", repo.creates)
	}
}

func TestRegister_ShortPassword(t *testing.T) {
	svc := NewService(newMockUserRepo())

	_, err := svc.Register(context.Background(), RegisterInput{Email: "ana@example.com", Password: "corta"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)

	if _, err := svc.Register(context.Background(), RegisterInput{Email: "ana@example.com", Password: "secreta123"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := svc.Login(context.Background(), LoginInput{Email: "ana@example.com", Password: "equivocada"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	u, err := svc.Login(context.Background(), LoginInput{Email: "ana@example.com", Password: "secreta123"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.PasswordHash != "" {
		t.Fatalf("expected sanitized user")
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewService(newMockUserRepo())

	if _, err := svc.Login(context.Background(), LoginInput{Email: "nadie@example.com", Password: "loquesea1"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
