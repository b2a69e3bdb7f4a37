package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"business_manager/internal/i18n"
	"business_manager/internal/logging"
	"business_manager/internal/model"
	"business_manager/internal/repository"
	"business_manager/internal/utils"
)

// TokenIssuer signs and verifies access tokens
type TokenIssuer interface {
	GenerateToken(subject utils.TokenSubject) (string, error)
	ValidateToken(tokenString string) (*utils.JWTClaims, error)
}

// LoginLimiter throttles repeated failed logins per email
type LoginLimiter interface {
	Allow(ctx context.Context, email string) bool
	RegisterFailure(ctx context.Context, email string)
	Reset(ctx context.Context, email string)
}

// AuthService provides authentication related services
type AuthService interface {
	Signup(ctx context.Context, req model.SignupRequest) (*model.User, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResult, error)
	Logout(ctx context.Context, token string) error
	AuthCheck(ctx context.Context, token string) (*model.Identity, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

// AuthOptions tunes NewAuthService; zero values get defaults
type AuthOptions struct {
	SessionTTL        time.Duration // stored session lifetime, default 1h
	InitialAdminEmail string        // signup with this email gets the ADMIN role
	Limiter           LoginLimiter  // nil disables throttling
}

type authService struct {
	userRepo   repository.UserRepository
	tokens     TokenIssuer
	sessions   *SessionStore
	limiter    LoginLimiter
	sessionTTL time.Duration
	adminEmail string
	now        func() time.Time
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, tokens TokenIssuer, opts AuthOptions) AuthService {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = time.Hour
	}
	return &authService{
		userRepo:   userRepo,
		tokens:     tokens,
		sessions:   NewSessionStore(userRepo),
		limiter:    opts.Limiter,
		sessionTTL: opts.SessionTTL,
		adminEmail: opts.InitialAdminEmail,
		now:        time.Now,
	}
}

// Signup registers a new account with the default role
func (s *authService) Signup(ctx context.Context, req model.SignupRequest) (*model.User, error) {
	email := strings.TrimSpace(req.Email)
	name := strings.TrimSpace(req.Name)
	if err := requireFields([2]string{"name", name}, [2]string{"email", email}, [2]string{"password", req.Password}); err != nil {
		return nil, err
	}
	if len(req.Password) > utils.MaxPasswordBytes {
		return nil, &ValidationError{Fields: []string{"password"}, Reason: i18n.MsgPasswordTooLong}
	}

	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, ErrConflict
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := model.RoleUser
	// exact match; emails are unique case-sensitively
	if s.adminEmail != "" && email == s.adminEmail {
		role = model.RoleAdmin
		logging.FromContext(ctx).Info("registering initial admin", "email", email)
	}

	user := &model.User{
		Email:        email,
		Name:         name,
		PasswordHash: hashedPassword,
		Role:         role,
		CreatedAt:    s.now(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}
	return user, nil
}

// Login verifies credentials, issues a token and replaces the stored session.
// No token is issued or stored when verification fails.
func (s *authService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResult, error) {
	email := strings.TrimSpace(req.Email)
	if err := requireFields([2]string{"email", email}, [2]string{"password", req.Password}); err != nil {
		return nil, err
	}
	if s.limiter != nil && !s.limiter.Allow(ctx, email) {
		return nil, ErrTooManyAttempts
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil {
		s.registerFailure(ctx, email)
		return nil, ErrUserNotFound
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.registerFailure(ctx, email)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(utils.TokenSubject{ID: user.ID, Email: user.Email, Name: user.Name, Role: user.Role})
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if _, err := s.sessions.StartSession(ctx, user.ID, token, s.sessionTTL); err != nil {
		return nil, err
	}
	if s.limiter != nil {
		s.limiter.Reset(ctx, email)
	}

	return &model.LoginResult{User: user.Summary(), AccessToken: token}, nil
}

func (s *authService) registerFailure(ctx context.Context, email string) {
	if s.limiter != nil {
		s.limiter.RegisterFailure(ctx, email)
	}
}

// Logout ends the session holding token, if any. Unknown or empty tokens are not an error.
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	user, err := s.userRepo.FindByToken(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to look up session: %w", err)
	}
	if user == nil {
		return nil
	}
	return s.sessions.EndSession(ctx, user.ID)
}

// AuthCheck resolves a presented token to an identity. The token must verify,
// must equal the token stored for the claimed user, and the stored expiry
// must not have passed. Every rejection is ErrUnauthorized.
func (s *authService) AuthCheck(ctx context.Context, token string) (*model.Identity, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return nil, ErrUnauthorized
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	if user == nil || user.AccessToken == nil {
		return nil, ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(*user.AccessToken), []byte(token)) != 1 {
		return nil, ErrUnauthorized
	}
	if !user.HasLiveSession(s.now()) {
		return nil, ErrUnauthorized
	}
	return user.Identity(), nil
}

// ListUsers returns every account; callers restrict it to admins
func (s *authService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
