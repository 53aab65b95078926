package services

import (
	"context"

	"go.uber.org/zap"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	mem "voyago/pkg/memcache"
	"voyago/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	Logout(tokenString string) error
	GetProfile(ctx context.Context, userID string) (*response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	revoked     mem.RevokedTokenStore
	logger      *zap.Logger
}

func NewAccountService(accountRepo repositories.AccountRepository, revoked mem.RevokedTokenStore, logger *zap.Logger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		revoked:     revoked,
		logger:      logger,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		a.logger.Error("account lookup failed", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashed,
	}

	if err := a.accountRepo.Insert(ctx, account); err != nil {
		a.logger.Error("account insert failed", zap.Error(err))
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		a.logger.Error("account lookup failed", zap.Error(err))
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID)
	if err != nil {
		a.logger.Error("token generation failed", zap.Error(err))
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}

// Logout revokes the presented token for its remaining lifetime so it cannot
// be replayed after the client discards it.
func (a *AccountService) Logout(tokenString string) error {
	claims, err := utils.ValidateToken(tokenString)
	if err != nil {
		return utils.ErrInvalidCredentials
	}
	if ttl := utils.RemainingTokenTTL(claims); ttl > 0 {
		a.revoked.Revoke(tokenString, ttl)
	}
	return nil
}

func (a *AccountService) GetProfile(ctx context.Context, userID string) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindByID(ctx, userID)
	if err != nil {
		a.logger.Error("account lookup failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	return &response_models.AccountResponse{
		ID:    account.ID.String(),
		Name:  account.Name,
		Email: account.Email,
	}, nil
}
