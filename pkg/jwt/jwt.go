package jwt

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenInvalid   = errors.New("token invalid")
)

// CustomClaims is the bearer token payload: user id and role.
type CustomClaims struct {
	UID  int    `json:"uid"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Manager signs and verifies HS256 bearer tokens.
type Manager struct {
	signingKey []byte
	expiry     time.Duration
	issuer     string
}

func NewManager(signingKey string, expiry time.Duration, issuer string) *Manager {
	if signingKey == "" {
		signingKey = os.Getenv("JWT_SIGNING_KEY")
	}
	if signingKey == "" {
		signingKey = "default-secret-key" // dev fallback, must be set in production
	}
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	if issuer == "" {
		issuer = "patidestek"
	}
	return &Manager{signingKey: []byte(signingKey), expiry: expiry, issuer: issuer}
}

// GenerateToken issues a signed token for the user.
func (m *Manager) GenerateToken(uid int, role string) (string, error) {
	now := time.Now()
	claims := CustomClaims{
		UID:  uid,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    m.issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.signingKey)
}

// ParseToken verifies the signature and expiry and returns the claims.
func (m *Manager) ParseToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.signingKey, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		default:
			return nil, ErrTokenInvalid
		}
	}
	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrTokenInvalid
}

var defaultManager = NewManager("", 0, "")

// Configure replaces the package-level manager, called once at startup.
func Configure(signingKey string, expiry time.Duration, issuer string) {
	defaultManager = NewManager(signingKey, expiry, issuer)
}

func GenerateToken(uid int, role string) (string, error) {
	return defaultManager.GenerateToken(uid, role)
}

func ParseToken(tokenString string) (*CustomClaims, error) {
	return defaultManager.ParseToken(tokenString)
}
