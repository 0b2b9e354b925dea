package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sachin-027/Personal-Expense-Tracker/internal/ownership"
)

// Envelope is the JSON shape shared by every non-download endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

func OK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{Success: true, Data: data})
}

func OKCount(c *fiber.Ctx, data any, count int) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{Success: true, Data: data, Count: &count})
}

func Created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(Envelope{Success: true, Data: data})
}

// ErrorHandler renders every error through the envelope. Ownership guard
// errors keep their distinct statuses; anything unrecognized is a 500 with
// the error's message.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	switch {
	case errors.Is(err, ownership.ErrNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, ownership.ErrNotOwner):
		code = fiber.StatusUnauthorized
	default:
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		}
	}

	return c.Status(code).JSON(Envelope{Success: false, Message: message})
}
