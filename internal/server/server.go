package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/farellandr/airport-service/config"
	"github.com/farellandr/airport-service/internal/auth"
	"github.com/farellandr/airport-service/internal/handlers"
	"github.com/farellandr/airport-service/internal/helpers"
	"github.com/farellandr/airport-service/internal/middleware"
	"github.com/farellandr/airport-service/internal/repository"
	"github.com/farellandr/airport-service/internal/service/booking"
	"github.com/farellandr/airport-service/internal/storage"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	gin.SetMode(cfg.HTTP.GinMode)

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	return NewRouter(cfg, db).Run(":" + cfg.HTTP.Port)
}

func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.Static(cfg.Upload.MediaURL, cfg.Upload.Dir)

	setupRoutes(r, cfg, db)
	return r
}

func setupRoutes(r *gin.Engine, cfg *config.Config, db *gorm.DB) {
	issuer := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	store := storage.NewLocalStore(storage.UploadConfig{
		MaxSizeBytes:   cfg.Upload.MaxSizeBytes,
		UploadBasePath: cfg.Upload.Dir,
		MediaURL:       cfg.Upload.MediaURL,
	})

	users := repository.NewUserRepository(db)
	crews := repository.NewCrewRepository(db)
	flights := repository.NewFlightRepository(db)
	orders := repository.NewOrderRepository(db)
	bookings := booking.NewService(repository.NewTxManager(db), flights, orders)
	signer := helpers.NewBoardingPassSigner(cfg.JWT.Secret)

	api := r.Group("/api", middleware.Authenticate(issuer))

	user := api.Group("/user")
	{
		handlers.NewAuthHandler(users, issuer).Register(user)
		handlers.NewProfileHandler(users).Register(user)
	}

	airport := api.Group("/airport")
	{
		handlers.NewAirportHandler(repository.NewAirportRepository(db), store).Register(airport)
		handlers.NewAirplaneTypeHandler(repository.NewAirplaneTypeRepository(db), store).Register(airport)
		handlers.NewAirplaneHandler(repository.NewAirplaneRepository(db)).Register(airport)
		handlers.NewRouteHandler(repository.NewRouteRepository(db)).Register(airport)
		handlers.NewCrewHandler(crews).Register(airport)
		handlers.NewFlightHandler(flights, crews).Register(airport)
		handlers.NewOrderHandler(bookings, orders, signer).Register(airport)
		handlers.NewBoardingPassHandler(orders, signer).Register(airport)
	}
}
