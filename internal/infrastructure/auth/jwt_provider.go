package auth

import (
	"errors"
	"fmt"
	"time"

	"permitpro/internal/domain/entities"
	"permitpro/internal/usecase/interfaces"

	jwt "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Role  string `json:"role"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTProvider implements interfaces.IAuthProvider with bcrypt password
// hashing and HS256 JWTs. The signing secret and token TTL are injected at
// construction; the provider reads no globals.
type JWTProvider struct {
	secret []byte
	ttl    time.Duration
}

var _ interfaces.IAuthProvider = (*JWTProvider)(nil)

func NewJWTProvider(secret string, ttl time.Duration) *JWTProvider {
	return &JWTProvider{secret: []byte(secret), ttl: ttl}
}

func (p *JWTProvider) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (p *JWTProvider) VerifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func (p *JWTProvider) IssueToken(u entities.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Role:  string(u.Role),
		Email: u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

func (p *JWTProvider) ValidateToken(tokenStr string) (entities.Identity, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		return entities.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return entities.Identity{}, ErrInvalidToken
	}
	return entities.Identity{
		UserID: c.Subject,
		Email:  c.Email,
		Role:   entities.Role(c.Role),
	}, nil
}
