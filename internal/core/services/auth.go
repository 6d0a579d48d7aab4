package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"relic-gallery-service/internal/core/domain"
	ports "relic-gallery-service/internal/core/ports/output"
)

// Session identifies a logged-in admin, extracted from a verified token.
type Session struct {
	AdminID  int64
	Username string
}

type sessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type AuthService struct {
	admins ports.AdminRepository
	secret []byte
	ttl    time.Duration
}

// NewAuthService builds the admin auth service. An empty secret gets a
// random one, which invalidates outstanding sessions on restart.
func NewAuthService(admins ports.AdminRepository, secret string, ttl time.Duration) *AuthService {
	if secret == "" {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err == nil {
			secret = hex.EncodeToString(buf)
			log.Warn("SESSION_SECRET not set, generated an ephemeral one")
		}
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{admins: admins, secret: []byte(secret), ttl: ttl}
}

// Login checks credentials and issues a signed session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Admin, error) {
	admin, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	now := time.Now()
	claims := sessionClaims{
		Username: admin.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(admin.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign session token: %w", err)
	}

	return token, admin, nil
}

// Verify parses and validates a session token.
func (s *AuthService) Verify(token string) (*Session, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrUnauthorized
	}

	adminID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	return &Session{AdminID: adminID, Username: claims.Username}, nil
}

// SessionTTL reports how long issued tokens stay valid.
func (s *AuthService) SessionTTL() time.Duration {
	return s.ttl
}

// EnsureDefaultAdmin seeds the first admin account when none exist yet.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context, username, password string) error {
	count, err := s.admins.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	if err := s.admins.Create(ctx, &domain.Admin{Username: username, PasswordHash: string(hash)}); err != nil {
		return err
	}

	log.WithField("username", username).Info("created default admin user")
	return nil
}
