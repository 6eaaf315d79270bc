package jwtPkg

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	CookieName = "token"
	ClaimsKey  = "user"
)

var (
	ErrMissingSecret = errors.New("jwt secret not configured")
	ErrEmptyToken    = errors.New("empty token")
	ErrInvalidClaims = errors.New("invalid token claims")
)

// IJWT signs caller supplied claims and verifies tokens issued with the same secret.
type IJWT interface {
	Sign(data map[string]interface{}) (string, time.Time, error)
	Verify(accessToken string) (jwt.MapClaims, error)
	TTL() time.Duration
}

type manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func New(secret string, ttl time.Duration) (IJWT, error) {
	return NewWithClock(secret, ttl, time.Now)
}

// NewWithClock is New with an injectable clock used for both issuing and
// expiry checks.
func NewWithClock(secret string, ttl time.Duration, now func() time.Time) (IJWT, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if now == nil {
		now = time.Now
	}
	return &manager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
	}, nil
}

func (m *manager) TTL() time.Duration {
	return m.ttl
}

// Sign embeds data as the token claims. exp, iat and jti are always set by the
// server and override anything the caller sent under those names.
func (m *manager) Sign(data map[string]interface{}) (string, time.Time, error) {
	issuedAt := m.now()
	expiredAt := issuedAt.Add(m.ttl)

	claims := jwt.MapClaims{}
	for i, v := range data {
		claims[i] = v
	}
	claims["iat"] = issuedAt.Unix()
	claims["exp"] = expiredAt.Unix()
	claims["jti"] = uuid.NewString()

	logrus.WithField("claim_keys", len(claims)).Debug("Creating token with claims")

	to := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := to.SignedString(m.secret)
	if err != nil {
		logrus.WithError(err).Error("Failed to sign token")
		return "", time.Time{}, err
	}

	return accessToken, time.Unix(expiredAt.Unix(), 0), nil
}

func (m *manager) Verify(accessToken string) (jwt.MapClaims, error) {
	log := logrus.WithField("func", "Verify")

	if accessToken == "" {
		return nil, ErrEmptyToken
	}

	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			log.WithField("method", token.Header["alg"]).Warn("Unexpected signing method")
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithExpirationRequired(), jwt.WithTimeFunc(m.now))
	if err != nil {
		log.WithError(err).Debug("Failed to parse JWT token")
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}

// GetClaims returns the claims the token middleware stored for this request.
func GetClaims(c *fiber.Ctx) (jwt.MapClaims, error) {
	claims, ok := c.Locals(ClaimsKey).(jwt.MapClaims)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}

	return claims, nil
}

// TokenID extracts the jti claim, empty when absent.
func TokenID(claims jwt.MapClaims) string {
	jti, _ := claims["jti"].(string)
	return jti
}

// ExpiresAt extracts the exp claim as a time.
func ExpiresAt(claims jwt.MapClaims) (time.Time, error) {
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, ErrInvalidClaims
	}
	return exp.Time, nil
}
