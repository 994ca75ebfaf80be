package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler keeps uncaught failures in the same JSON envelope the
// handlers use: unknown routes, wrong methods and anything unexpected.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	msg := "Internal server error"
	switch code {
	case fiber.StatusNotFound:
		msg = "Resource not found"
	case fiber.StatusMethodNotAllowed:
		msg = "Method not allowed"
	case fiber.StatusInternalServerError:
		// keep the generic message
	default:
		if e != nil && e.Message != "" {
			msg = e.Message
		}
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   msg,
	})
}
