package auth

import (
	"context"
	"strings"
	"time"

	"github.com/cosmic-community/luxe-fashion-boutique-clone/internal/catalog"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/config"
	pkgerrors "github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/errors"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/logger"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/security"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/token"
)

// invalidCredentials is deliberately the same for a missing account and a
// wrong password, so login probes cannot enumerate emails.
const invalidCredentials = "invalid email or password"

type userDirectory interface {
	GetUserByEmail(ctx context.Context, email string) (*catalog.User, error)
	GetUserByID(ctx context.Context, id string) (*catalog.User, error)
	CreateUser(ctx context.Context, input catalog.CreateUserInput) (*catalog.User, error)
	UpdateUserLastLogin(ctx context.Context, id string, at time.Time) error
}

// Service implements signup, login and identity lookup against the CMS
// user collection.
type Service struct {
	users  userDirectory
	jwtCfg config.JWTConfig
	pwCfg  config.PasswordConfig
	log    *logger.Logger
	now    func() time.Time
}

func NewService(users userDirectory, jwtCfg config.JWTConfig, pwCfg config.PasswordConfig, log *logger.Logger) *Service {
	return &Service{
		users:  users,
		jwtCfg: jwtCfg,
		pwCfg:  pwCfg,
		log:    log,
		now:    time.Now,
	}
}

// Signup creates a new account and returns a minted session token.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (*AuthResult, error) {
	email := normalizeEmail(req.Email)

	existing, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "an account with this email already exists")
	}

	hash, err := security.HashPassword(req.Password, s.pwCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user, err := s.users.CreateUser(ctx, catalog.CreateUserInput{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info(s.log.WithUserID(ctx, user.ID), "account created")
	return s.result(user)
}

// Login checks credentials and returns a minted session token. Both a
// missing account and a bad password produce the same generic error.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	email := normalizeEmail(req.Email)

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Metadata.PasswordHash == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentials)
	}

	match, err := security.VerifyPassword(req.Password, *user.Metadata.PasswordHash)
	if err != nil {
		s.log.Error(ctx, "stored password hash unreadable", err)
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentials)
	}
	if !match {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentials)
	}

	// The session is already won; a failed stamp must not fail the login.
	if err := s.users.UpdateUserLastLogin(ctx, user.ID, s.now()); err != nil {
		warnCtx := s.log.WithField(s.log.WithUserID(ctx, user.ID), "error", err.Error())
		s.log.Warn(warnCtx, "failed to record last login")
	}

	s.log.Info(s.log.WithUserID(ctx, user.ID), "login succeeded")
	return s.result(user)
}

// Me resolves the current account from verified token claims.
func (s *Service) Me(ctx context.Context, userID string) (*AuthUser, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "account no longer exists")
	}
	authUser := toAuthUser(user)
	return &authUser, nil
}

func (s *Service) result(user *catalog.User) (*AuthResult, error) {
	authUser := toAuthUser(user)
	signed, err := token.Mint(s.jwtCfg, s.now(), token.Payload{
		UserID: authUser.ID,
		Email:  authUser.Email,
		Name:   authUser.Name,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint token")
	}
	return &AuthResult{Token: signed, User: authUser}, nil
}

func toAuthUser(user *catalog.User) AuthUser {
	out := AuthUser{ID: user.ID, Name: user.Title}
	if user.Metadata.Name != nil {
		out.Name = *user.Metadata.Name
	}
	if user.Metadata.Email != nil {
		out.Email = *user.Metadata.Email
	}
	return out
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
