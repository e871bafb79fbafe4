package handler

import (
	"github.com/gofiber/fiber/v2"

	"examapi/internal/service"
)

// CheckThis evaluates the kill-switch directive for the identified client.
// All query parameters are optional.
func CheckThis(svc service.CheckService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := c.Query("code")
		hwid := c.Query("hwid")
		name := c.Query("name")

		return c.JSON(svc.Evaluate(c.UserContext(), code, hwid, name))
	}
}
