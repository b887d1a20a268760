package serverutils

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	localUserId       = "user_id"
	localDepartmentId = "department_id"
)

// NewJwtMiddleware validates an HS256 bearer token and stores the user_id
// (and department_id, when present) claims in ctx.Locals.
func NewJwtMiddleware(secret string) fiber.Handler {
	key := []byte(secret)
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Missing token"))
		}
		tokenStr := authHeader[7:]

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid claims"))
		}
		userId, ok := claims["user_id"].(string)
		if !ok || userId == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid claims"))
		}

		ctx.Locals(localUserId, userId)
		if dept, ok := claims["department_id"].(string); ok {
			ctx.Locals(localDepartmentId, dept)
		}
		return ctx.Next()
	}
}

// GetUserId reads the authenticated user set by NewJwtMiddleware.
func GetUserId(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := ctx.Locals(localUserId).(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user in token")
	}
	return id, nil
}

// GetDepartmentId returns nil when the token carries no department.
func GetDepartmentId(ctx *fiber.Ctx) *uuid.UUID {
	raw, _ := ctx.Locals(localDepartmentId).(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}
