package router

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/model"
	"storefront/internal/session"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	productHandler *handler.ResourceHandler[model.Product],
	orderHandler *handler.ResourceHandler[model.Order],
	imageHandler *handler.ResourceHandler[model.Image],
	searchHandler *handler.SearchHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(echoprometheus.NewMiddleware("storefront"))
	e.Use(session.Middleware(cfg.SessionSecret))

	e.Validator = handler.NewValidator()

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Welcome to API.")
	})

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/api-docs/*", echoSwagger.WrapHandler)

	// login is mounted twice to keep both historical paths working
	e.POST("/login", authHandler.Login)
	e.POST("/auth/login", authHandler.Login)

	e.GET("/search/:query", searchHandler.Search)

	v1 := e.Group("/api/v1")

	v1.GET("/users", userHandler.FindAll)
	v1.POST("/users", userHandler.Create)
	v1.GET("/users/:id", userHandler.FindByID)
	v1.PUT("/users/:id", userHandler.Update)
	v1.DELETE("/users/:id", userHandler.Delete)

	registerResource(v1, "/products", productHandler)
	registerResource(v1, "/orders", orderHandler)
	registerResource(v1, "/images", imageHandler)

	e.Static("/static", "static")
}

// registerResource mounts the uniform CRUD routes for one resource type.
func registerResource[T any](g *echo.Group, prefix string, h *handler.ResourceHandler[T]) {
	g.GET(prefix, h.FindAll)
	g.POST(prefix, h.Create)
	g.GET(prefix+"/:id", h.FindByID)
	g.PUT(prefix+"/:id", h.Update)
	g.DELETE(prefix+"/:id", h.Delete)
}
