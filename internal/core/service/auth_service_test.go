package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/cbhud/trackrig/internal/core/domain"
	"github.com/cbhud/trackrig/internal/core/token"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = strconv.Itoa(r.nextID)
	r.users[created.Email] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

type stubLimiter struct {
	allow bool
}

func (l *stubLimiter) Allow(_ context.Context, _ string) (bool, error) {
	return l.allow, nil
}

func newTestService(repo *stubUserRepo) *AuthService {
	return NewAuthService(repo, token.NewCodec("secret", time.Hour), nil)
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func TestAuthService_Register_Success(t *testing.T) {
	svc := newTestService(newStubUserRepo())

	user, err := svc.Register(context.Background(), "alice@example.com", "pass1234", "Alice A")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if user.Role != domain.RoleEmployee {
		t.Fatalf("expected default role EMPLOYEE, got %s", user.Role)
	}
	if user.PasswordHash == "pass1234" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass1234")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}
}

func TestAuthService_Register_SaltedHashes(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo)

	a, err := svc.Register(context.Background(), "a@example.com", "samepass", "A")
	if err != nil {
		t.Fatalf("register a: %v", err)
	}
	b, err := svc.Register(context.Background(), "b@example.com", "samepass", "B")
	if err != nil {
		t.Fatalf("register b: %v", err)
	}
	if a.PasswordHash == b.PasswordHash {
		t.Fatalf("identical passwords must not produce identical hashes")
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo)

	if _, err := svc.Register(context.Background(), "bob@example.com", "pass1234", "Bob"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob@example.com", "other123", "Bob 2"); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("failed registration must not leave a partial identity, have %d users", len(repo.users))
	}
}

// raceUserRepo loses the check-then-insert race on purpose: the existence
// pre-check reports free, but the insert hits the store's unique constraint.
type raceUserRepo struct {
	stubUserRepo
}

func (r *raceUserRepo) ExistsByEmail(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func TestAuthService_Register_StoreBackstop(t *testing.T) {
	repo := &raceUserRepo{stubUserRepo: *newStubUserRepo()}
	repo.users["eve@example.com"] = &domain.User{Email: "eve@example.com"}
	svc := NewAuthService(repo, token.NewCodec("secret", time.Hour), nil)

	if _, err := svc.Register(context.Background(), "eve@example.com", "pass1234", "Eve"); err != domain.ErrEmailTaken {
		t.Fatalf("expected store-level conflict to surface as ErrEmailTaken, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	codec := token.NewCodec("secret", time.Hour)
	svc := NewAuthService(repo, codec, nil)

	if _, err := svc.Register(context.Background(), "carol@example.com", "s3cret99", "Carol"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	signed, err := svc.Login(context.Background(), "carol@example.com", "s3cret99")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if signed == "" {
		t.Fatalf("expected token, got empty")
	}

	claims, err := codec.Decode(signed)
	if err != nil {
		t.Fatalf("issued token does not decode: %v", err)
	}
	if claims.Subject != "carol@example.com" {
		t.Fatalf("unexpected subject: %q", claims.Subject)
	}
	if claims.Role != domain.RoleEmployee {
		t.Fatalf("unexpected role: %q", claims.Role)
	}
}

func TestAuthService_Login_IndistinguishableFailures(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo)

	if _, err := svc.Register(context.Background(), "dave@example.com", "goodpass", "Dave"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, wrongPassword := svc.Login(context.Background(), "dave@example.com", "badpass")
	_, unknownEmail := svc.Login(context.Background(), "ghost@example.com", "whatever")

	if wrongPassword != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}
	if unknownEmail != domain.ErrInvalidCredentials {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownEmail)
	}
	if wrongPassword != unknownEmail {
		t.Fatalf("failure modes must be indistinguishable: %v vs %v", wrongPassword, unknownEmail)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, token.NewCodec("secret", time.Hour), &stubLimiter{allow: false})

	if _, err := svc.Login(context.Background(), "any@example.com", "pass"); err != ErrTooManyAttempts {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	svc := newTestService(newStubUserRepo())

	if _, err := svc.Login(context.Background(), "", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "a@example.com", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
