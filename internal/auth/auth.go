// Package auth is the minimal login gate in front of the dashboard. Users
// live in process memory; sessions are stateless JWT bearer tokens plus an
// in-memory revocation set for logout.
package auth

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"flightcool/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrEmailTaken         = errors.New("email is already registered")
)

type claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

type userRecord struct {
	user         model.User
	passwordHash []byte
}

type Service struct {
	mu      sync.Mutex
	users   map[string]*userRecord // keyed by email
	revoked map[string]struct{}    // token ids

	secret []byte
	ttl    time.Duration
}

func New(secret []byte, ttl time.Duration) *Service {
	return &Service{
		users:   make(map[string]*userRecord),
		revoked: make(map[string]struct{}),
		secret:  secret,
		ttl:     ttl,
	}
}

func (s *Service) Register(email, password, name string) (model.User, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[email]; ok {
		return model.User{}, "", ErrEmailTaken
	}
	user, err := s.createUser(email, password, name)
	if err != nil {
		return model.User{}, "", err
	}
	token, err := s.issue(user)
	return user, token, err
}

// Login authenticates a known user, or auto-provisions an account for an
// unknown email. The demo has no backing identity provider; the permissive
// policy matches the original dashboard.
func (s *Service) Login(email, password string) (model.User, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[email]
	if !ok {
		name := email
		if at := strings.IndexByte(email, '@'); at > 0 {
			name = email[:at]
		}
		user, err := s.createUser(email, password, name)
		if err != nil {
			return model.User{}, "", err
		}
		token, err := s.issue(user)
		return user, token, err
	}

	if bcrypt.CompareHashAndPassword(rec.passwordHash, []byte(password)) != nil {
		return model.User{}, "", ErrInvalidCredentials
	}
	token, err := s.issue(rec.user)
	return rec.user, token, err
}

// Logout revokes the presented token. Revocation only needs to outlive the
// token's TTL, so the set is never pruned.
func (s *Service) Logout(token string) error {
	c, err := s.parse(token)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.revoked[c.ID] = struct{}{}
	s.mu.Unlock()
	return nil
}

// Verify returns the user identified by a live, unrevoked token.
func (s *Service) Verify(token string) (model.User, error) {
	c, err := s.parse(token)
	if err != nil {
		return model.User{}, err
	}

	s.mu.Lock()
	_, revoked := s.revoked[c.ID]
	s.mu.Unlock()
	if revoked {
		return model.User{}, ErrInvalidToken
	}

	return model.User{UserID: c.Subject, Email: c.Email, Name: c.Name}, nil
}

// createUser assumes the caller holds mu and the email is free.
func (s *Service) createUser(email, password, name string) (model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, err
	}
	user := model.User{UserID: uuid.NewString(), Email: email, Name: name}
	s.users[email] = &userRecord{user: user, passwordHash: hash}
	return user, nil
}

func (s *Service) issue(user model.User) (string, error) {
	now := time.Now()
	c := claims{
		Email: user.Email,
		Name:  user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
}

func (s *Service) parse(token string) (*claims, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return &c, nil
}
