package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/paylink/backend/internal/apperr"
	"github.com/paylink/backend/internal/models"
	"github.com/paylink/backend/internal/repositories"
	"github.com/paylink/backend/internal/solana"
	"go.uber.org/zap"
)

// UserService is the account registrar: one user per wallet, one user per
// username, referrer fixed at first creation.
type UserService struct {
	userRepo *repositories.UserRepo
	log      *zap.Logger
}

func NewUserService(userRepo *repositories.UserRepo, log *zap.Logger) *UserService {
	return &UserService{userRepo: userRepo, log: log}
}

type RegisterResult struct {
	User  *models.User
	IsNew bool
}

// Register looks up or creates the user bound to wallet. When the wallet is
// already registered the existing record is returned untouched and any newly
// supplied referrer is ignored.
func (s *UserService) Register(ctx context.Context, username, wallet, referrer string) (*RegisterResult, error) {
	if username == "" || wallet == "" {
		return nil, apperr.Validation("Missing required fields")
	}
	if !models.IsValidUsername(username) {
		return nil, apperr.Validation("Invalid username format. Use 3-20 alphanumeric characters or underscore")
	}
	if !solana.IsValidAddress(wallet) {
		return nil, apperr.Validation("Invalid wallet address")
	}

	var referrerLower *string
	if referrer != "" {
		if !models.IsValidUsername(referrer) {
			return nil, apperr.Validation("Invalid referrer username format")
		}
		if models.IsSelfReferral(username, referrer) {
			return nil, apperr.Validation("You cannot refer yourself")
		}
		lower := strings.ToLower(referrer)
		if _, err := s.userRepo.GetByUsername(ctx, lower); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperr.Validation("Referrer username not found")
			}
			return nil, apperr.Internal("Failed to create user", err)
		}
		referrerLower = &lower
	}

	existing, err := s.userRepo.GetByWallet(ctx, wallet)
	if err == nil {
		return &RegisterResult{User: existing, IsNew: false}, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.Internal("Failed to create user", err)
	}

	usernameLower := strings.ToLower(username)
	if _, err := s.userRepo.GetByUsername(ctx, usernameLower); err == nil {
		return nil, apperr.Validation("Username already taken")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.Internal("Failed to create user", err)
	}

	u := &models.User{
		ID:               uuid.New(),
		Username:         usernameLower,
		Wallet:           wallet,
		ReferrerUsername: referrerLower,
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		// Lost a check-then-insert race; the unique constraint is the backstop.
		if repositories.IsUniqueViolation(err) {
			return nil, apperr.Conflict("Username or wallet already registered")
		}
		return nil, apperr.Internal("Failed to create user", err)
	}

	s.log.Info("user registered",
		zap.String("user_id", u.ID.String()),
		zap.String("username", u.Username),
	)
	return &RegisterResult{User: u, IsNew: true}, nil
}

func (s *UserService) GetByWallet(ctx context.Context, wallet string) (*models.User, error) {
	u, err := s.userRepo.GetByWallet(ctx, wallet)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal("Failed to fetch user", err)
	}
	return u, nil
}
