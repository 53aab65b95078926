package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"voyago/cmd/fx/account_fx"
	"voyago/cmd/fx/ai_fx"
	"voyago/cmd/fx/controllers_fx"
	"voyago/cmd/fx/db_fx"
	"voyago/cmd/fx/logger_fx"
	"voyago/cmd/fx/memcache_fx"
	"voyago/cmd/fx/trip_fx"
	"voyago/internal/api/controllers"
	"voyago/internal/infra"
	mem "voyago/pkg/memcache"
	"voyago/pkg/middleware"
	"voyago/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		logger_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		ai_fx.Module,
		account_fx.Module,
		trip_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := utils.GetEnvWithDefault("PORT", "8080")
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	aiController *controllers.AIController,
	revoked mem.RevokedTokenStore) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, tripController, aiController, revoked)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	aiController *controllers.AIController,
	revoked mem.RevokedTokenStore) {

	auth := middleware.JWTAuthMiddleware(revoked)
	aiLimiter := middleware.NewRateLimiter(rate.Limit(1), 5)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", accountController.Register)
	authGroup.POST("/login", accountController.Login)
	authGroup.POST("/logout", auth, accountController.Logout)
	authGroup.GET("/profile", auth, accountController.Profile)

	aiGroup := api.Group("/ai")
	aiGroup.Use(auth, aiLimiter.Limit())
	aiGroup.POST("/generate", aiController.Generate)

	tripsGroup := api.Group("/trips")
	tripsGroup.Use(auth)
	tripsGroup.POST("", tripController.CreateTrip)
	tripsGroup.GET("", tripController.ListTrips)
	tripsGroup.GET("/:id", tripController.GetTrip)
	tripsGroup.PUT("/:id/content", tripController.SaveContent)
	tripsGroup.DELETE("/:id/content", tripController.DeleteContent)
	tripsGroup.GET("/:id/export", tripController.ExportPDF)
}
