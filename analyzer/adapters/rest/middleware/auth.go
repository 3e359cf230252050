package middleware

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"keyword-service/analyzer/core"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenPrefix = "Token "
	// TokenCookie carries the admin token for browser sessions.
	TokenCookie  = "keywords_token"
	adminSubject = "cache-admin"
	issuer       = "keyword-service"
)

type JwtAuthenticator struct {
	adminUser     string
	adminPassword string
	jwtSecret     []byte
	ttl           time.Duration
}

func NewJwtAuthenticator(adminUser, adminPassword, jwtSecret string, ttl time.Duration) (*JwtAuthenticator, error) {
	if adminUser == "" || adminPassword == "" {
		return nil, errors.New("admin credentials must be set")
	}
	if jwtSecret == "" {
		return nil, errors.New("empty jwt secret specified")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("wrong token ttl specified: %s", ttl)
	}
	return &JwtAuthenticator{
		adminUser:     adminUser,
		adminPassword: adminPassword,
		jwtSecret:     []byte(jwtSecret),
		ttl:           ttl,
	}, nil
}

func (ja *JwtAuthenticator) CreateToken(name, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(name), []byte(ja.adminUser)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(ja.adminPassword)) == 1
	if !userOK || !passwordOK {
		return "", core.ErrInvalidCredentials
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   adminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ja.ttl)),
	})
	signed, err := token.SignedString(ja.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (ja *JwtAuthenticator) ValidateToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		return ja.jwtSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithSubject(adminSubject),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return core.ErrInvalidCredentials
	}
	return nil
}

// CheckToken lets a request through when it carries a valid admin token,
// either in the Authorization header or in the token cookie.
func (ja *JwtAuthenticator) CheckToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, found := strings.CutPrefix(r.Header.Get("Authorization"), tokenPrefix)
		if !found {
			cookie, err := r.Cookie(TokenCookie)
			if err != nil {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			token = cookie.Value
		}
		if err := ja.ValidateToken(token); err != nil {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
