package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenTTL is the embedded lifetime of an access token
const DefaultTokenTTL = 7 * 24 * time.Hour

// ErrTokenInvalid covers every verification failure: bad signature, bad format,
// unexpected algorithm and expiry are deliberately not told apart.
var ErrTokenInvalid = errors.New("invalid token")

// JWTClaims custom claims for JWT
type JWTClaims struct {
	UserID int    `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenSubject is the identity embedded into an issued token
type TokenSubject struct {
	ID    int
	Email string
	Name  string
	Role  string
}

// JWTUtil provides JWT generation and validation
type JWTUtil struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// NewJWTUtil creates a new JWTUtil. A non-positive ttl falls back to DefaultTokenTTL.
func NewJWTUtil(secretKey string, ttl time.Duration) *JWTUtil {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTUtil{secretKey: []byte(secretKey), ttl: ttl, now: time.Now}
}

// TTL returns the embedded token lifetime
func (ju *JWTUtil) TTL() time.Duration {
	return ju.ttl
}

// GenerateToken signs a new token for subject
func (ju *JWTUtil) GenerateToken(subject TokenSubject) (string, error) {
	now := ju.now()
	claims := &JWTClaims{
		UserID: subject.ID,
		Email:  subject.Email,
		Name:   subject.Name,
		Role:   subject.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ju.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   strconv.Itoa(subject.ID),
			ID:        uuid.NewString(), // two logins in the same second still get distinct tokens
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(ju.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken checks signature and embedded expiry. Any failure yields ErrTokenInvalid.
func (ju *JWTUtil) ValidateToken(tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return ju.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(ju.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
