package authutils

import (
	"crypto/md5"
	"encoding/hex"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"hr-admin-backend/config"
	"hr-admin-backend/models"
)

const tokenTTL = 12 * time.Hour

// GetToken токен выпускает внешний сервис авторизации, здесь - для служебных нужд и тестов
func GetToken(principal models.Principal, secret string) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"sub":         principal.UserID,
		"company":     principal.CompanyID,
		"role":        string(principal.Role),
		"employee_id": principal.EmployeeID,
		"exp":         time.Now().Add(tokenTTL).Unix(),
		"iat":         time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.MapClaims{}
	}
	return claims
}

func GetStringClaim(ctx *fiber.Ctx, name string) string {
	claims := GetClaims(ctx)
	if value, exist := claims[name]; exist {
		if str, ok := value.(string); ok {
			return str
		}
	}
	return ""
}

func GetMD5Hash(text string) string {
	hash := md5.Sum([]byte(text))
	return hex.EncodeToString(hash[:])
}

func JWTSecret() string {
	return config.Conf.Auth.JWTSecret
}
