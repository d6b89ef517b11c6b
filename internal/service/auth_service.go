package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"todo_tracker/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL bounds every issued session: a token expires exactly two hours
// after issuance and there is no server-side revocation.
const tokenTTL = 2 * time.Hour

// Domain errors for auth flows.
var (
	// ErrInvalidCredentials covers both "unknown username" and "wrong
	// password". The two cases are merged on purpose so responses cannot be
	// used to probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	// ErrEmptyCredentials rejects blank usernames or passwords before any
	// hashing or storage happens.
	ErrEmptyCredentials = errors.New("username and password must not be empty")
)

// AuthService handles user auth logic: password hashing/verification against
// the user store, and stateless HS256 session tokens.
type AuthService struct {
	users      repository.Users
	signingKey []byte
}

// NewAuthService builds an AuthService around the given user store and
// signing key. The key is injected once at startup; it is never read from
// ambient globals inside the auth logic.
func NewAuthService(users repository.Users, signingKey []byte) *AuthService {
	return &AuthService{users: users, signingKey: signingKey}
}

// SignUp hashes the password and creates a new user. A taken username
// surfaces as repository.ErrDuplicateUsername.
func (s *AuthService) SignUp(username, password string) (int, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return 0, ErrEmptyCredentials
	}
	hash, err := hashPassword(password)
	if err != nil {
		return 0, err
	}
	return s.users.Create(username, hash)
}

// Claims defines JWT claims: the registered set plus the account identifier.
type Claims struct {
	jwt.RegisteredClaims
	UserID int `json:"user_id"`
}

// GenerateToken validates credentials and returns a signed JWT.
func (s *AuthService) GenerateToken(username, password string) (string, error) {
	u, err := s.users.GetByUsername(username)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrInvalidCredentials
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.issueToken(u.ID)
}

// ParseToken verifies the token's signature and expiry and returns the
// embedded user ID. No store lookup happens here: a valid unexpired token is
// the whole proof of identity. Expired tokens fail with jwt.ErrTokenExpired
// (wrapped), which callers may inspect for diagnostics; jwt/v5 rejects a
// token whose expiry equals the current instant.
func (s *AuthService) ParseToken(accessToken string) (int, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// helper: issue a signed JWT for a user
func (s *AuthService) issueToken(userID int) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	return token.SignedString(s.signingKey)
}
