package owner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ironhorse/config"
	ownerRepo "ironhorse/database/repository/owner"
	"ironhorse/models"
	"ironhorse/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is how long an owner login stays valid.
const tokenTTL = 12 * time.Hour

var (
	// ErrInvalidCredentials means email or password did not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotSeeded means no owner account exists yet.
	ErrNotSeeded = errors.New("owner account not seeded")
)

// OwnerService handles the store owner's single account: login, token
// revocation, and password changes.
type OwnerService interface {
	Authenticate(email, password string) (string, *models.Owner, error)
	RevokeToken(ownerID string) error
	ChangePassword(ownerID, current, next string) error
	EnsureSeeded() error
}

// DefaultOwnerService implements OwnerService.
type DefaultOwnerService struct {
	Repo ownerRepo.OwnerRepository
}

// Authenticate verifies credentials and issues a JWT. The token hash
// is stored on the account and cached, so a stolen token dies with
// RevokeToken.
func (s *DefaultOwnerService) Authenticate(email, password string) (string, *models.Owner, error) {
	acct, err := s.Repo.GetByEmail(email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to fetch owner: %w", err)
	}
	if acct == nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(acct.ID, acct.Email, tokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	acct.TokenHash = utils.HashToken(token)
	if err := s.Repo.Update(acct); err != nil {
		return "", nil, fmt.Errorf("failed to persist token hash: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	cacheKey := utils.AuthCachePrefix + acct.ID
	if err := utils.GetAuthCacheClient().Set(ctx, cacheKey, acct.TokenHash, tokenTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache owner token", zap.Error(err))
	}

	return token, acct, nil
}

// RevokeToken invalidates the current login.
func (s *DefaultOwnerService) RevokeToken(ownerID string) error {
	acct, err := s.Repo.Get()
	if err != nil {
		return err
	}
	if acct == nil || acct.ID != ownerID {
		return ErrNotSeeded
	}

	acct.TokenHash = ""
	if err := s.Repo.Update(acct); err != nil {
		return fmt.Errorf("failed to clear token hash: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+ownerID).Err(); err != nil {
		utils.GetLogger().Warn("failed to evict owner token from cache", zap.Error(err))
	}
	return nil
}

// ChangePassword rotates the owner password after re-verifying the
// current one, and revokes outstanding tokens.
func (s *DefaultOwnerService) ChangePassword(ownerID, current, next string) error {
	acct, err := s.Repo.Get()
	if err != nil {
		return err
	}
	if acct == nil || acct.ID != ownerID {
		return ErrNotSeeded
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(current)); err != nil {
		return ErrInvalidCredentials
	}
	if len(next) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	acct.PasswordHash = string(hash)
	acct.TokenHash = ""
	if err := s.Repo.Update(acct); err != nil {
		return fmt.Errorf("failed to update owner: %w", err)
	}
	return s.RevokeToken(ownerID)
}

// EnsureSeeded creates the owner account on first boot from
// OWNER_EMAIL / OWNER_PASSWORD config.
func (s *DefaultOwnerService) EnsureSeeded() error {
	acct, err := s.Repo.Get()
	if err != nil {
		return err
	}
	if acct != nil {
		return nil
	}
	if config.AppConfig.OwnerPassword == "" {
		utils.GetLogger().Warn("no owner account and OWNER_PASSWORD unset; admin surface is unreachable")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(config.AppConfig.OwnerPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}
	return s.Repo.Create(&models.Owner{
		ID:           uuid.New().String(),
		Email:        config.AppConfig.OwnerEmail,
		PasswordHash: string(hash),
	})
}
