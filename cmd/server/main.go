package main

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	_ "storefront/docs" // swagger docs

	"storefront/internal/auth"
	"storefront/internal/cache"
	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/handler"
	"storefront/internal/model"
	"storefront/internal/repository"
	"storefront/internal/router"
	"storefront/internal/search"
	"storefront/internal/service"
	"storefront/internal/session"
	"storefront/pkg/logger"
)

// @title Storefront API
// @version 1.0
// @description Session-authenticated storefront API: users, products, orders, images and licence-holder search.
// @host localhost:8080
// @BasePath /
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// config failures (missing AUTH_SALT, SESSION_SECRET) are fatal
		logger.Init(logger.Options{})
		fallback := logger.Get()
		fallback.Fatal().Err(err).Msg("configuration")
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Env == "development"})

	gormDB, err := db.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Order{},
		&model.Image{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	hasher := auth.NewHasher(cfg.AuthSalt)
	guard := session.NewGuard()
	sessions := session.FromContext

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	productRepo := repository.NewRepository[model.Product](gormDB, repository.Mapping{
		UpdateColumns: []string{"name", "price"},
	})
	orderRepo := repository.NewRepository[model.Order](gormDB, repository.Mapping{
		UpdateColumns: []string{"name"},
	})
	imageRepo := repository.NewRepository[model.Image](gormDB, repository.Mapping{
		UpdateColumns: []string{"name", "path", "product_id"},
	})

	// Services
	authService := auth.NewService(userRepo, hasher)
	userService := service.NewUserService(userRepo, hasher)
	productService := service.NewResourceService[model.Product]("products", productRepo)
	orderService := service.NewResourceService[model.Order]("orders", orderRepo)
	imageService := service.NewResourceService[model.Image]("images", imageRepo)
	searcher := search.NewMeilisearch(cfg.Meili.Host, cfg.Meili.APIKey, cfg.Meili.Index)
	searchService := service.NewSearchService(searcher, cacheClient)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, guard, sessions)
	userHandler := handler.NewUserHandler(userService, guard, sessions)
	productHandler := handler.NewProductHandler(productService, guard, sessions)
	orderHandler := handler.NewOrderHandler(orderService, guard, sessions)
	imageHandler := handler.NewImageHandler(imageService, guard, sessions)
	searchHandler := handler.NewSearchHandler(searchService)

	e := echo.New()
	e.HideBanner = true

	router.Register(e, cfg, authHandler, userHandler, productHandler, orderHandler, imageHandler, searchHandler)

	log.Info().Str("addr", cfg.Addr()).Msg("starting server")
	if err := e.Start(cfg.Addr()); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
