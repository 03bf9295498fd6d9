package auth

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// contextKey is the echo context key the JWT middleware stores claims
// under.
const contextKey = "user"

// Middleware returns the echo-jwt middleware configured to validate
// tokens through the JWTService and store *Claims on the context.
// Requests without a valid bearer credential are rejected with 401
// before any handler or persistence code runs.
func Middleware(jwtService *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: contextKey,
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.ValidateToken(tokenString)
		},
	})
}

// ClaimsFrom extracts validated claims from the request context. It
// returns nil when the request did not pass through Middleware.
func ClaimsFrom(c echo.Context) *Claims {
	claims, _ := c.Get(contextKey).(*Claims)
	return claims
}

// RequireAdmin gates a route behind the admin claim. It must be
// registered after Middleware.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := ClaimsFrom(c)
		if claims == nil || !claims.IsAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "access denied")
		}
		return next(c)
	}
}
