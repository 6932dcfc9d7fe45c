package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/healthcare24/backend/domain"
	"github.com/healthcare24/backend/repository"
)

// Config carries token signing material.
type Config struct {
	Secret     string
	Issuer     string
	SessionTTL time.Duration
}

type UseCase struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	cfg      Config
	logger   *zap.Logger
}

func New(users repository.UserRepository, sessions repository.SessionRepository, cfg Config, logger *zap.Logger) *UseCase {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:    users,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
	}
}

// LoginResult bundles the signed token with the authenticated user.
type LoginResult struct {
	Token   string          `json:"token"`
	User    *domain.User    `json:"user"`
	Session *domain.Session `json:"-"`
}

// Login verifies credentials, opens a session and signs a JWT carrying the
// user's id and role.
func (uc *UseCase) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, domain.NewError(domain.ErrCodeUnauthorized, "invalid credentials")
		}
		return nil, err
	}
	if !user.IsActive() {
		return nil, domain.NewError(domain.ErrCodeUnauthorized, "account disabled")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.NewError(domain.ErrCodeUnauthorized, "invalid credentials")
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Role:      user.Role,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(uc.cfg.SessionTTL),
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	token, err := uc.signToken(user, session)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("user logged in",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)))
	return &LoginResult{Token: token, User: user, Session: session}, nil
}

// RefreshSession extends an unexpired session and reissues the token.
func (uc *UseCase) RefreshSession(ctx context.Context, sessionID string) (*LoginResult, error) {
	session, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.IsExpired(time.Now()) {
		_ = uc.sessions.Delete(ctx, sessionID)
		return nil, domain.ErrSessionNotFound
	}

	user, err := uc.users.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	if err := uc.sessions.Extend(ctx, sessionID, int(uc.cfg.SessionTTL.Seconds())); err != nil {
		return nil, err
	}
	session.ExpiresAt = time.Now().Add(uc.cfg.SessionTTL)

	token, err := uc.signToken(user, session)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: user, Session: session}, nil
}

// RevokeSession logs the session out.
func (uc *UseCase) RevokeSession(ctx context.Context, sessionID string) error {
	return uc.sessions.Delete(ctx, sessionID)
}

func (uc *UseCase) signToken(user *domain.User, session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    user.ID,
		"role":       string(user.Role),
		"session_id": session.ID,
		"iss":        uc.cfg.Issuer,
		"exp":        session.ExpiresAt.Unix(),
		"iat":        time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(uc.cfg.Secret))
}

// HashPassword wraps bcrypt for account provisioning.
func HashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", domain.NewError(domain.ErrCodeInvalid, "password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
