package trip_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"voyago/internal/repositories"
	"voyago/internal/services"
	"voyago/pkg/ai"
	mem "voyago/pkg/memcache"
)

var Module = fx.Provide(
	provideTripService, provideTripRepo)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository, aiClient ai.Client, sessions mem.TripSessionStore, logger *zap.Logger) services.TripServiceInterface {
	return services.NewTripService(tripRepo, aiClient, sessions, logger)
}
