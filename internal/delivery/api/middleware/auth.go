package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/LudwingValecillos/VentaCarniceria/internal/delivery/api/response"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	domainerrors "github.com/LudwingValecillos/VentaCarniceria/internal/domain/errors"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/service"
)

const (
	keySubject = "subject"
	keyRoles   = "roles"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokens service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokens service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate validates the Bearer access token and stores its subject and roles on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Falta el token de acceso")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "El token debe enviarse como Bearer")
		}

		claims, err := m.tokens.ValidateToken(tokenString)
		if err != nil || claims.Subject == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "El token es inválido o expiró")
		}

		c.Set(keySubject, claims.Subject)
		c.Set(keyRoles, claims.Roles)

		return next(c)
	}
}

// RequireRole must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(required entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := c.Get(keyRoles).([]string)
			if !ok || !entity.RolesFromStrings(roles).Contains(required) {
				return response.AppError(c, domainerrors.ErrForbidden)
			}

			return next(c)
		}
	}
}

// GetSubject returns the authenticated admin username.
func GetSubject(c echo.Context) (string, bool) {
	subject, ok := c.Get(keySubject).(string)

	return subject, ok && subject != ""
}
