package session

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/anonsen/anonsen/internal/models"
)

// sessionClaims carries the session record inside a signed token. The
// registered claims double as the session timestamps: iat is the login
// time and exp, when present, the expiry.
type sessionClaims struct {
	jwt.RegisteredClaims
	Username   string `json:"username"`
	Email      string `json:"email"`
	IsLoggedIn bool   `json:"isLoggedIn"`
	RememberMe bool   `json:"rememberMe"`
}

func (m *Manager) signSession(user *models.User, rememberMe bool) (string, error) {
	now := m.clock.Now()

	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  strconv.FormatInt(user.ID, 10),
			IssuedAt: jwt.NewNumericDate(now),
			ID:       uuid.NewString(),
		},
		Username:   user.Username,
		Email:      user.Email,
		IsLoggedIn: true,
		RememberMe: rememberMe,
	}
	if !rememberMe {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(m.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// parseSession verifies the token and rebuilds the session record from
// its claims. Expiry is checked against the manager's clock, so tests can
// move time forward.
func (m *Manager) parseSession(tokenString string) (*models.Session, error) {
	claims := &sessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.clock.Now),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid session subject: %w", err)
	}

	s := &models.Session{
		ID:         id,
		Username:   claims.Username,
		Email:      claims.Email,
		IsLoggedIn: claims.IsLoggedIn,
		RememberMe: claims.RememberMe,
	}
	if claims.IssuedAt != nil {
		s.LoginTime = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		t := claims.ExpiresAt.Time
		s.ExpiresAt = &t
	}
	return s, nil
}
