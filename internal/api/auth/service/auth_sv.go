package authService

import (
	"context"
	"time"

	"TechTalks/internal/api/auth"
	contextPkg "TechTalks/pkg/context"
	jwtPkg "TechTalks/pkg/jwt"
	"TechTalks/pkg/response"
	"github.com/sirupsen/logrus"
)

func (s *authService) IssueToken(c context.Context, claims map[string]interface{}) (string, time.Time, error) {
	requestID := contextPkg.GetRequestID(c)

	token, expiresAt, err := s.tokens.Sign(claims)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return "", time.Time{}, response.Wrap(auth.ErrIssueToken, err)
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"expires_at": expiresAt,
	}).Info("Token created")

	return token, expiresAt, nil
}

func (s *authService) RevokeToken(c context.Context, accessToken string) error {
	requestID := contextPkg.GetRequestID(c)

	if s.revoked == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Debug("Token revocation disabled, cookie cleared only")
		return nil
	}

	claims, err := s.tokens.Verify(accessToken)
	if err != nil {
		// invalid or expired tokens are already rejected by the gate
		return nil
	}

	expiresAt, err := jwtPkg.ExpiresAt(claims)
	if err != nil {
		return nil
	}

	tokenID := jwtPkg.TokenID(claims)
	if tokenID == "" {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Token without jti cannot be revoked")
		return nil
	}

	if err := s.revoked.RevokeToken(c, tokenID, time.Until(expiresAt)); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to revoke token")
		return response.Wrap(auth.ErrRevokeToken, err)
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Info("Token revoked")
	return nil
}
