package handler

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"examapi/internal/model"
	"examapi/internal/service"
)

var validate = validator.New()

// AskGemini answers an exam question. The request body must carry a
// non-empty question; the rest of the fields are forwarded as-is to the
// answer service.
func AskGemini(svc service.AnswerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := bytes.TrimSpace(c.Body())
		if len(body) == 0 || string(body) == "null" {
			return writeError(c, fiber.StatusBadRequest, "NO_JSON_DATA", "no JSON data provided")
		}

		var req model.QuestionRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "NO_JSON_DATA", "no JSON data provided")
		}
		if err := validate.Struct(req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "QUESTION_REQUIRED", "question is required")
		}

		ans, err := svc.Answer(c.UserContext(), req)
		if err != nil {
			if errors.Is(err, service.ErrQuestionRequired) {
				return writeError(c, fiber.StatusBadRequest, "QUESTION_REQUIRED", "question is required")
			}
			return writeError(c, fiber.StatusInternalServerError, "ANSWER_FAILED", "failed to process question")
		}
		return c.JSON(ans)
	}
}
