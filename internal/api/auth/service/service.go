package authService

import (
	"context"
	"time"

	jwtPkg "TechTalks/pkg/jwt"
	"TechTalks/pkg/redis"
	"github.com/sirupsen/logrus"
)

type AuthService interface {
	IssueToken(c context.Context, claims map[string]interface{}) (string, time.Time, error)
	RevokeToken(c context.Context, accessToken string) error
}

type authService struct {
	log     *logrus.Logger
	tokens  jwtPkg.IJWT
	revoked redis.IRedis
}

// New builds the auth service. revoked may be nil, in which case logout only
// clears the cookie and the token stays valid until it expires.
func New(log *logrus.Logger, tokens jwtPkg.IJWT, revoked redis.IRedis) AuthService {
	return &authService{
		log:     log,
		tokens:  tokens,
		revoked: revoked,
	}
}
