package middleware

import (
	"github.com/gofiber/fiber/v2"
	"hr-admin-backend/lib/rbac"
	apimodels "hr-admin-backend/models/api"
)

const rbacForbidden = "RBAC_FORBIDDEN"

func RbacMiddleware(provider rbac.Provider) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID := GetUserID(ctx)
		role := GetRole(ctx)
		if userID == "" || !role.IsKnown() {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(rbacForbidden))
		}

		handler, found := provider.GetRuleFunc(ctx.Method(), ctx.Path())
		if !found {
			return ctx.Next()
		}
		if !handler(GetCompanyID(ctx), userID, role, ctx.Path()) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(rbacForbidden))
		}
		return ctx.Next()
	}
}
