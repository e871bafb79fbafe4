package handler

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"examapi/internal/service"
)

// UploadLogJSON accepts an arbitrary JSON body and persists it as a log
// document tagged with the name and exam query parameters. Absent parameters
// default to "unknown".
func UploadLogJSON(svc service.LogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Query("name", "unknown")
		exam := c.Query("exam", "unknown")

		body := bytes.TrimSpace(c.Body())
		if len(body) == 0 || string(body) == "null" || !json.Valid(body) {
			return writeError(c, fiber.StatusBadRequest, "NO_JSON_DATA", "no JSON data provided")
		}

		receipt, err := svc.Store(c.UserContext(), name, exam, json.RawMessage(body))
		if err != nil {
			if errors.Is(err, service.ErrEmptyPayload) {
				return writeError(c, fiber.StatusBadRequest, "NO_JSON_DATA", "no JSON data provided")
			}
			return writeError(c, fiber.StatusInternalServerError, "UPLOAD_FAILED", "failed to upload data")
		}
		return c.JSON(receipt)
	}
}
