package serverutils

import (
	"strings"

	"wiccapedia-api/internal/config"
	"wiccapedia-api/internal/pkg/apperror"
	"wiccapedia-api/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// NewJwtMiddleware validates HS256 bearer tokens against the configured
// issuer and audience and stores the subject in ctx.Locals("subject").
// With no secret configured every request passes.
func NewJwtMiddleware(cfg config.AuthConfig, log logger.ILogger) fiber.Handler {
	if cfg.Secret == "" {
		log.Warn("AUTH", "JWT_SECRET is empty, bearer authentication is disabled", nil)
		return func(ctx *fiber.Ctx) error {
			return ctx.Next()
		}
	}

	options := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if cfg.Authority != "" {
		options = append(options, jwt.WithIssuer(cfg.Authority))
	}
	if cfg.Audience != "" {
		options = append(options, jwt.WithAudience(cfg.Audience))
	}
	parser := jwt.NewParser(options...)
	secret := []byte(cfg.Secret)

	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get(fiber.HeaderAuthorization)
		tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenStr == "" {
			return apperror.Unauthorized("missing bearer token")
		}

		claims := jwt.MapClaims{}
		token, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return secret, nil
		})
		if err != nil || !token.Valid {
			return apperror.Unauthorized("invalid token")
		}

		if sub, err := claims.GetSubject(); err == nil {
			ctx.Locals("subject", sub)
		}
		return ctx.Next()
	}
}
