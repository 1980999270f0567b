package middleware

import (
	"errors"
	"fmt"
	"strings"

	"jobghar/internal/domain/user"
	"jobghar/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const ctxClaimsKey = "auth_claims"

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

// Middleware rejects requests without a valid bearer token before any
// business logic runs; on success the claims land in the request locals.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		c.Locals(ctxClaimsKey, claims)
		return c.Next()
	}
}

// RequireRole gates a route on the token's role claim; the rejection
// names the role the route needs.
func RequireRole(role user.Role) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := ClaimsFromCtx(c)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}
		if claims.Role != role {
			return NewAppError(fiber.StatusForbidden, fmt.Sprintf("This action requires the %s role", role), nil, nil)
		}
		return c.Next()
	}
}

func ClaimsFromCtx(c fiber.Ctx) (jwt.Claims, bool) {
	claims, ok := c.Locals(ctxClaimsKey).(jwt.Claims)
	return claims, ok
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
