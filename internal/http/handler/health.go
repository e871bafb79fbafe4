package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	apiName    = "Backend API Server"
	apiVersion = "1.0.0"
)

// endpoints enumerates the public API surface for the index response.
var endpoints = []string{
	"POST /uploadlogjson?name=<name>&exam=<exam>",
	"POST /askgemini",
	"GET /checkthis?code=<code>&hwid=<hwid>&name=<name>",
	"GET /downloadproxy",
	"GET /health",
}

// HealthCheck reports process liveness. Nothing else is probed; this service
// has no backing dependencies that can go unhealthy.
func HealthCheck() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339Nano),
		})
	}
}

// Index returns API metadata describing the available endpoints.
func Index() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"name":      apiName,
			"version":   apiVersion,
			"endpoints": endpoints,
			"timestamp": time.Now().Format(time.RFC3339Nano),
		})
	}
}
