package auth

import (
	"github.com/gofiber/fiber/v2"

	"coursehub_backend/internals/constants"
)

// RoleMiddlewareWithCustomError validates the role claim + custom message
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: missing role information",
			})
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": customForbiddenMessage,
		})
	}
}

// OnlyRoles is the short form
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}

// OnlyTeachers gates course/lecture authoring endpoints.
func OnlyTeachers(feature string) fiber.Handler {
	return OnlyRoles(constants.RoleErrorTeacher(feature), constants.RoleTeacher)
}

// OnlyStaff gates admin delete endpoints. Staff is a claim flag, not a role.
func OnlyStaff(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		staff, ok := c.Locals("is_staff").(bool)
		if !ok || !staff {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": constants.RoleErrorStaff(feature),
			})
		}
		return c.Next()
	}
}
