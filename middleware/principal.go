package middleware

import (
	"github.com/gofiber/fiber/v2"
	authutils "hr-admin-backend/lib/utils/auth-utils"
	"hr-admin-backend/models"
	apimodels "hr-admin-backend/models/api"
)

func GetUserID(ctx *fiber.Ctx) string {
	return authutils.GetStringClaim(ctx, "sub")
}

func GetCompanyID(ctx *fiber.Ctx) string {
	return authutils.GetStringClaim(ctx, "company")
}

func GetEmployeeID(ctx *fiber.Ctx) string {
	return authutils.GetStringClaim(ctx, "employee_id")
}

func GetRole(ctx *fiber.Ctx) models.UserRole {
	return models.ParseUserRole(authutils.GetStringClaim(ctx, "role"))
}

func GetPrincipal(ctx *fiber.Ctx) models.Principal {
	return models.Principal{
		UserID:     GetUserID(ctx),
		CompanyID:  GetCompanyID(ctx),
		EmployeeID: GetEmployeeID(ctx),
		Role:       GetRole(ctx),
	}
}

// RolesRequired 401 для ролей не из списка
func RolesRequired(roles ...models.UserRole) fiber.Handler {
	allowed := map[models.UserRole]bool{}
	for _, role := range roles {
		allowed[role] = true
	}
	return func(ctx *fiber.Ctx) error {
		if !allowed[GetRole(ctx)] {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("операция недоступна для роли пользователя"))
		}
		return ctx.Next()
	}
}
