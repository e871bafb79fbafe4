package handler

import (
	"github.com/gofiber/fiber/v2"

	"examapi/internal/service"
)

// RegisterRoutes attaches the HTTP routes to the provided Fiber app.
// Handlers stay free of business logic; each delegates to its injected service.
func RegisterRoutes(app *fiber.App, logs service.LogService, answers service.AnswerService, checks service.CheckService, proxy service.ProxyConfigService) {
	app.Get("/", Index())
	app.Get("/health", HealthCheck())

	app.Post("/uploadlogjson", UploadLogJSON(logs))
	app.Post("/askgemini", AskGemini(answers))
	app.Get("/checkthis", CheckThis(checks))
	app.Get("/downloadproxy", DownloadProxy(proxy))

	// Serve the static OpenAPI spec and a Swagger UI page referencing it.
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})
}
