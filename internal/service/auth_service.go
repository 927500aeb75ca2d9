package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/miner1qaz-ops/Mochi/internal/core/ports"
	"github.com/miner1qaz-ops/Mochi/pkg/apperror"
)

// AuthServiceImpl implements ports.AuthService. Admin credentials come from
// configuration: a single operator account with an Argon2id password hash.
type AuthServiceImpl struct {
	adminUsername     string
	adminPasswordHash string
	hashSvc           ports.HashService
	tokenSvc          ports.TokenService
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(adminUsername, adminPasswordHash string, hashSvc ports.HashService, tokenSvc ports.TokenService) *AuthServiceImpl {
	return &AuthServiceImpl{
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
		hashSvc:           hashSvc,
		tokenSvc:          tokenSvc,
	}
}

// Login validates admin credentials and returns a JWT token.
func (s *AuthServiceImpl) Login(_ context.Context, username, password string) (string, time.Time, error) {
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUsername)) != 1 {
		// Run the hash anyway so a wrong username costs the same as a
		// wrong password.
		_, _ = s.hashSvc.Verify(password, s.adminPasswordHash)
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(password, s.adminPasswordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.Generate(username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	return token, expiry, nil
}
