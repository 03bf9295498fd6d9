package router

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"vidlib/internal/auth"
	"vidlib/internal/config"
	"vidlib/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	genreHandler *handler.GenreHandler,
	movieHandler *handler.MovieHandler,
	customerHandler *handler.CustomerHandler,
	rentalHandler *handler.RentalHandler,
	returnHandler *handler.ReturnHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(20),
				Burst:     40,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
		},
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	requireAuth := auth.Middleware(jwtService)

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/users", userHandler.Register)

	api.GET("/genres", genreHandler.List)
	api.GET("/genres/:id", genreHandler.Get)
	api.GET("/movies", movieHandler.List)
	api.GET("/movies/:id", movieHandler.Get)
	api.GET("/customers", customerHandler.List)
	api.GET("/customers/:id", customerHandler.Get)
	api.GET("/rentals", rentalHandler.List)
	api.GET("/rentals/:id", rentalHandler.Get)

	// Authenticated routes
	api.GET("/users/me", userHandler.Me, requireAuth)

	api.POST("/genres", genreHandler.Create, requireAuth)
	api.PUT("/genres/:id", genreHandler.Update, requireAuth)
	api.POST("/movies", movieHandler.Create, requireAuth)
	api.PUT("/movies/:id", movieHandler.Update, requireAuth)
	api.POST("/customers", customerHandler.Create, requireAuth)
	api.PUT("/customers/:id", customerHandler.Update, requireAuth)

	api.POST("/rentals", rentalHandler.Create, requireAuth)
	api.POST("/returns", returnHandler.Process, requireAuth)

	// Destructive routes require the admin claim across the board.
	api.DELETE("/genres/:id", genreHandler.Delete, requireAuth, auth.RequireAdmin)
	api.DELETE("/movies/:id", movieHandler.Delete, requireAuth, auth.RequireAdmin)
	api.DELETE("/customers/:id", customerHandler.Delete, requireAuth, auth.RequireAdmin)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
