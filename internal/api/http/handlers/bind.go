package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/resty-service/internal/api/dto"
)

// parseBody decodes the request body into req and validates it.
func parseBody(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	return dto.Validate(req)
}

func applied(c *fiber.Ctx, ok bool) error {
	return c.JSON(fiber.Map{"data": dto.AppliedResponse{Applied: ok}})
}
