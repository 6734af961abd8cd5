package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"scef-chapters-backend/internal/domain"
	"scef-chapters-backend/internal/repository"
	"scef-chapters-backend/internal/security"
)

// Starting balances for a fresh wallet, in minor units.
const (
	seedBalanceNGN int64 = 500000 // NGN 5,000
	seedBalanceUSD int64 = 1000   // USD 10
	seedBalanceAGC int64 = 10000  // AGC 100
)

type authService struct {
	userRepo   repository.UserRepository
	walletRepo repository.WalletRepository
	tokens     security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, walletRepo repository.WalletRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo:   userRepo,
		walletRepo: walletRepo,
		tokens:     tokens,
	}
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (*domain.User, string, error) {
	if strings.TrimSpace(input.Email) == "" || !strings.Contains(input.Email, "@") {
		return nil, "", fmt.Errorf("a valid email is required: %w", domain.ErrValidation)
	}
	if len(input.Password) < 8 {
		return nil, "", fmt.Errorf("password must be at least 8 characters: %w", domain.ErrValidation)
	}
	role := input.Role
	if role == "" {
		role = domain.UserRoleMember
	}
	if !role.Valid() {
		return nil, "", fmt.Errorf("unknown role %q: %w", role, domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:           domain.NewID("u"),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        strings.ToLower(input.Email),
		Role:         role,
		Country:      input.Country,
		State:        input.State,
		City:         input.City,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	wallet := &domain.Wallet{
		ID:         domain.NewID("w"),
		UserID:     user.ID,
		BalanceNGN: seedBalanceNGN,
		BalanceUSD: seedBalanceUSD,
		BalanceAGC: seedBalanceAGC,
		KYCStatus:  "verified",
	}
	if err := s.walletRepo.Create(ctx, wallet); err != nil {
		return nil, "", fmt.Errorf("failed to create wallet: %w", err)
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", fmt.Errorf("invalid email or password: %w", domain.ErrUnauthorized)
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("invalid email or password: %w", domain.ErrUnauthorized)
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, token, nil
}
