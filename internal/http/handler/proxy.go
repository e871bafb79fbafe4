package handler

import (
	"github.com/gofiber/fiber/v2"

	"examapi/internal/service"
)

// PACContentType is the MIME type browsers expect for proxy auto-config scripts.
const PACContentType = "application/x-ns-proxy-autoconfig"

// DownloadProxy serves the PAC script for browser auto-configuration.
func DownloadProxy(svc service.ProxyConfigService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, PACContentType)
		c.Set(fiber.HeaderContentDisposition, `inline; filename="proxy.pac"`)
		return c.Send(svc.PACFile())
	}
}
