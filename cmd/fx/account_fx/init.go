package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"voyago/internal/repositories"
	"voyago/internal/services"
	mem "voyago/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, revoked mem.RevokedTokenStore, logger *zap.Logger) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, revoked, logger)
}
