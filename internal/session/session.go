package session

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"go-firestore-catalog/internal/config"
	ierr "go-firestore-catalog/internal/errors"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type Session struct {
	Id        string    `json:"id"`
	Email     string    `json:"email"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type Manager struct {
	email    string
	password string
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
}

func NewManager(cnf config.Admin) Manager {
	return Manager{
		email:    strings.TrimSpace(cnf.Email),
		password: cnf.Password,
		secret:   []byte(cnf.SessionSecret),
		ttl:      cnf.SessionTTL,
		now:      time.Now,
	}
}

// Login checks the credentials and returns a signed session token.
func (m Manager) Login(email, password string) (string, Session, error) {
	emailOk := subtle.ConstantTimeCompare([]byte(strings.ToLower(strings.TrimSpace(email))), []byte(strings.ToLower(m.email))) == 1
	passwordOk := subtle.ConstantTimeCompare([]byte(password), []byte(m.password)) == 1
	if !emailOk || !passwordOk {
		return "", Session{}, fmt.Errorf("login: %w, invalid credentials", ierr.Unauthorized)
	}

	issuedAt := m.now().UTC().Truncate(time.Second)
	s := Session{
		Id:        uuid.New().String(),
		Email:     m.email,
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.Add(m.ttl),
	}

	claims := jwt.RegisteredClaims{
		ID:        s.Id,
		Subject:   s.Email,
		IssuedAt:  jwt.NewNumericDate(s.IssuedAt),
		ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", Session{}, fmt.Errorf("sign session: %w", err)
	}
	return token, s, nil
}

// Parse validates the token signature and expiry.
func (m Manager) Parse(token string) (Session, error) {
	claims := jwt.RegisteredClaims{}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return Session{}, fmt.Errorf("parse session: %w, %s", ierr.Unauthorized, err.Error())
	}

	// jwt validates against the wall clock; re-check so an injected clock is honoured too
	if claims.ExpiresAt == nil || !m.now().Before(claims.ExpiresAt.Time) {
		return Session{}, fmt.Errorf("parse session: %w, token expired", ierr.Unauthorized)
	}

	s := Session{
		Id:        claims.ID,
		Email:     claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time.UTC(),
	}
	if claims.IssuedAt != nil {
		s.IssuedAt = claims.IssuedAt.Time.UTC()
	}
	return s, nil
}

type ctxKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}
