package handlers

import (
	"time"

	"relay/internal/utils"

	"github.com/gofiber/fiber/v2"
)

func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": utils.ISOTime(time.Now()),
	})
}
