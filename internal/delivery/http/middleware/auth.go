package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/railway-booking/internal/pkg/errors"
	"github.com/railway-booking/internal/pkg/utils"
)

const (
	// Locals-ключи, под которыми auth складывает личность запроса
	UserIDKey  = "user_id"
	IsAdminKey = "is_admin"
)

// JWTAuth - middleware аутентификации. Ожидает Bearer-токен, подписанный
// HS256, с user id в sub и ролью в role. Пользователи заводятся внешним
// сервисом аутентификации, здесь токен только проверяется.
func JWTAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(auth, "Bearer ") {
			return utils.SendError(c, errors.ErrUnauthorized)
		}
		raw := strings.TrimPrefix(auth, "Bearer ")

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.ErrUnauthorized
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		// json-числа приходят как float64
		sub, ok := claims["sub"].(float64)
		if !ok || sub <= 0 {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		role, _ := claims["role"].(string)

		c.Locals(UserIDKey, int64(sub))
		c.Locals(IsAdminKey, role == "admin")

		return c.Next()
	}
}

// RequireAdmin - middleware, пропускающий только администраторов.
// Ставится после JWTAuth.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isAdmin, ok := c.Locals(IsAdminKey).(bool)
		if !ok || !isAdmin {
			return utils.SendError(c, errors.ErrForbidden)
		}
		return c.Next()
	}
}

// UserID возвращает идентификатор аутентифицированного пользователя
func UserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(UserIDKey).(int64)
	return id
}
