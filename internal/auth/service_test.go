package auth

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/cosmic-community/luxe-fashion-boutique-clone/internal/catalog"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/config"
	pkgerrors "github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/errors"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/logger"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/token"
)

type stubDirectory struct {
	byEmail      map[string]*catalog.User
	byID         map[string]*catalog.User
	created      []catalog.CreateUserInput
	lastLogins   []string
	lastLoginErr error
}

func newStubDirectory() *stubDirectory {
	return &stubDirectory{byEmail: map[string]*catalog.User{}, byID: map[string]*catalog.User{}}
}

func (d *stubDirectory) GetUserByEmail(_ context.Context, email string) (*catalog.User, error) {
	return d.byEmail[email], nil
}

func (d *stubDirectory) GetUserByID(_ context.Context, id string) (*catalog.User, error) {
	return d.byID[id], nil
}

func (d *stubDirectory) CreateUser(_ context.Context, input catalog.CreateUserInput) (*catalog.User, error) {
	d.created = append(d.created, input)
	user := &catalog.User{
		Object: catalog.Object{ID: "u1", Slug: "u1", Title: input.Name},
		Metadata: catalog.UserMetadata{
			Name:         &input.Name,
			Email:        &input.Email,
			PasswordHash: &input.PasswordHash,
		},
	}
	d.byEmail[input.Email] = user
	d.byID[user.ID] = user
	return user, nil
}

func (d *stubDirectory) UpdateUserLastLogin(_ context.Context, id string, _ time.Time) error {
	d.lastLogins = append(d.lastLogins, id)
	return d.lastLoginErr
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "test-secret", Issuer: "luxe-boutique", ExpirationMinutes: 60}
}

func testPasswordConfig() config.PasswordConfig {
	// small parameters keep the test fast
	return config.PasswordConfig{ArgonMemoryKB: 8192, ArgonTime: 1, ArgonParallelism: 1, ArgonSaltLen: 16, ArgonKeyLen: 32}
}

func newTestService(dir *stubDirectory) *Service {
	log := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	return NewService(dir, testJWTConfig(), testPasswordConfig(), log)
}

func TestSignupCreatesAccountAndMintsToken(t *testing.T) {
	dir := newStubDirectory()
	svc := newTestService(dir)

	result, err := svc.Signup(context.Background(), SignupRequest{
		Name:     "Ada Lovelace",
		Email:    "  Ada@Example.com ",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	if result.User.Email != "ada@example.com" {
		t.Errorf("expected normalized email, got %q", result.User.Email)
	}
	if len(dir.created) != 1 {
		t.Fatalf("expected one create call, got %d", len(dir.created))
	}
	if !strings.HasPrefix(dir.created[0].PasswordHash, "$argon2id$") {
		t.Errorf("expected argon2id hash, got %q", dir.created[0].PasswordHash)
	}

	claims, err := token.Parse(testJWTConfig(), result.Token)
	if err != nil {
		t.Fatalf("parse minted token: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "ada@example.com" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestSignupDuplicateEmailConflicts(t *testing.T) {
	dir := newStubDirectory()
	svc := newTestService(dir)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "correct horse"}); err != nil {
		t.Fatalf("first signup: %v", err)
	}

	_, err := svc.Signup(ctx, SignupRequest{Name: "Imposter", Email: "ADA@example.com", Password: "other password"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if len(dir.created) != 1 {
		t.Errorf("duplicate signup must not create a second record, got %d", len(dir.created))
	}
}

func TestLoginSucceedsWithCorrectPassword(t *testing.T) {
	dir := newStubDirectory()
	svc := newTestService(dir)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "correct horse"}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	result, err := svc.Login(ctx, LoginRequest{Email: "ada@example.com", Password: "correct horse"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token == "" || result.User.ID != "u1" {
		t.Errorf("unexpected login result: %+v", result)
	}
	if len(dir.lastLogins) != 1 || dir.lastLogins[0] != "u1" {
		t.Errorf("expected one last-login stamp for u1, got %v", dir.lastLogins)
	}
}

func TestLoginSurvivesLastLoginStampFailure(t *testing.T) {
	dir := newStubDirectory()
	svc := newTestService(dir)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "correct horse"}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	dir.lastLoginErr = pkgerrors.New(pkgerrors.CodeDependency, "cms down")
	result, err := svc.Login(ctx, LoginRequest{Email: "ada@example.com", Password: "correct horse"})
	if err != nil {
		t.Fatalf("login must succeed even when the stamp fails: %v", err)
	}
	if result.Token == "" {
		t.Error("expected a minted token")
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	dir := newStubDirectory()
	svc := newTestService(dir)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "correct horse"}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	_, wrongPassword := svc.Login(ctx, LoginRequest{Email: "ada@example.com", Password: "wrong"})
	_, missingAccount := svc.Login(ctx, LoginRequest{Email: "ghost@example.com", Password: "whatever"})

	for name, err := range map[string]error{"wrong password": wrongPassword, "missing account": missingAccount} {
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
			t.Fatalf("%s: expected unauthorized, got %v", name, err)
		}
		if typed.Message() != invalidCredentials {
			t.Errorf("%s: expected generic message, got %q", name, typed.Message())
		}
	}
}

func TestMe(t *testing.T) {
	dir := newStubDirectory()
	svc := newTestService(dir)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "correct horse"}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	user, err := svc.Me(ctx, "u1")
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if user.Email != "ada@example.com" || user.Name != "Ada" {
		t.Errorf("unexpected user: %+v", user)
	}

	_, err = svc.Me(ctx, "deleted")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized for vanished account, got %v", err)
	}
}
