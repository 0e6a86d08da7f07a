package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	authutils "hr-admin-backend/lib/utils/auth-utils"
	apimodels "hr-admin-backend/models/api"
)

func AuthorizationRequired() fiber.Handler {
	return JWTProtected(authutils.JWTSecret())
}

// WsAuthorizationRequired браузер не передает заголовки при подключении websocket, токен допускается в query
func WsAuthorizationRequired() fiber.Handler {
	return newJWT(authutils.JWTSecret(), "header:Authorization,query:token")
}

// JWTProtected проверка HS256 токена, данные пользователя сохраняются в Locals для журналирования
func JWTProtected(secret string) fiber.Handler {
	return newJWT(secret, "header:Authorization")
}

func newJWT(secret, tokenLookup string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		Claims:      jwt.MapClaims{},
		TokenLookup: tokenLookup,
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(secret),
		},
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("требуется авторизация"))
		},
		SuccessHandler: func(ctx *fiber.Ctx) error {
			if GetUserID(ctx) == "" {
				return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("требуется авторизация"))
			}
			ctx.Locals("userID", GetUserID(ctx))
			ctx.Locals("companyID", GetCompanyID(ctx))
			return ctx.Next()
		},
	})
}
