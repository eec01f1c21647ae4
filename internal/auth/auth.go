package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vetrivel962969-dotcom/CricManager-Pro/internal/persist"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
)

// The single mock credential pair. The password is only ever held hashed.
const (
	mockUsername = "admin"
	mockPassword = "password"

	tokenExpiry = 72 * time.Hour
)

// Config tunes the service. Zero delays are valid (used by tests); the
// defaults simulate network latency so callers exercise their loading states.
type Config struct {
	Secret        string
	LoginDelay    time.Duration
	RegisterDelay time.Duration
	LogoutDelay   time.Duration
	VerifyDelay   time.Duration
}

func DefaultConfig(secret string) Config {
	return Config{
		Secret:        secret,
		LoginDelay:    500 * time.Millisecond,
		RegisterDelay: 500 * time.Millisecond,
		LogoutDelay:   200 * time.Millisecond,
		VerifyDelay:   300 * time.Millisecond,
	}
}

// Service is the auth gate. It is the sole owner of the authenticated flag:
// only Login, Register, Logout and VerifyToken may change it.
type Service struct {
	store        *persist.Adapter
	secret       []byte
	passwordHash []byte
	cfg          Config

	mu            sync.RWMutex
	authenticated bool
}

func NewService(store *persist.Adapter, cfg Config) (*Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(mockPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash mock credential: %w", err)
	}
	return &Service{
		store:        store,
		secret:       []byte(cfg.Secret),
		passwordHash: hash,
		cfg:          cfg,
	}, nil
}

func (s *Service) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// Login accepts only the mock credential pair. On success it persists a
// session token; on failure nothing changes.
func (s *Service) Login(ctx context.Context, username, password string) error {
	if err := wait(ctx, s.cfg.LoginDelay); err != nil {
		return err
	}
	if username != mockUsername || bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return s.establishSession(username)
}

// Register always succeeds (mock) and opens a session like Login.
func (s *Service) Register(ctx context.Context, username, email, password string) error {
	if err := wait(ctx, s.cfg.RegisterDelay); err != nil {
		return err
	}
	if username == "" {
		username = mockUsername
	}
	_ = email
	return s.establishSession(username)
}

func (s *Service) Logout(ctx context.Context) error {
	if err := wait(ctx, s.cfg.LogoutDelay); err != nil {
		return err
	}
	if err := s.store.ClearToken(); err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}
	s.setAuthenticated(false)
	return nil
}

// VerifyToken validates the persisted session token. An absent or invalid
// token clears the slot and fails.
func (s *Service) VerifyToken(ctx context.Context) error {
	if err := wait(ctx, s.cfg.VerifyDelay); err != nil {
		return err
	}
	token, ok := s.store.Token()
	if !ok || !s.tokenValid(token) {
		_ = s.store.ClearToken()
		s.setAuthenticated(false)
		return ErrInvalidToken
	}
	s.setAuthenticated(true)
	return nil
}

func (s *Service) establishSession(subject string) error {
	token, err := s.issueToken(subject)
	if err != nil {
		return fmt.Errorf("issue session token: %w", err)
	}
	if err := s.store.SetToken(token); err != nil {
		return fmt.Errorf("persist session token: %w", err)
	}
	s.setAuthenticated(true)
	return nil
}

func (s *Service) issueToken(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenExpiry)),
		ID:        uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) tokenValid(tokenString string) bool {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	return err == nil && token.Valid
}

func (s *Service) setAuthenticated(v bool) {
	s.mu.Lock()
	s.authenticated = v
	s.mu.Unlock()
}

// wait blocks for d on a timer, honouring context cancellation.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
