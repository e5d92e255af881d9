package presenters

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"local-chef-bazaar/domain"
)

type Response struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, statusCode int) error {
	return c.Status(statusCode).JSON(data)
}

// ErrorResponse writes a client error. Server errors go through
// InternalErrorResponse so their cause never reaches the client.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	if statusCode >= fiber.StatusInternalServerError {
		return InternalErrorResponse(c, err)
	}
	res := Response{Message: message}
	if err != nil {
		res.Error = err.Error()
	}
	return c.Status(statusCode).JSON(res)
}

func InternalErrorResponse(c *fiber.Ctx, err error) error {
	log.Errorw("request failed",
		"request_id", c.Locals(requestid.ConfigDefault.ContextKey),
		"method", c.Method(),
		"path", c.Path(),
		"error", err,
	)
	return c.Status(fiber.StatusInternalServerError).JSON(Response{Message: domain.MessageInternalServerError})
}

// StoreErrorResponse maps service errors onto the status codes the API
// promises and falls back to a masked 500.
func StoreErrorResponse(c *fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmailRequired):
		return c.Status(fiber.StatusBadRequest).JSON(Response{Message: domain.MessageEmailRequired})
	case errors.Is(err, domain.ErrUserAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(Response{Message: domain.MessageUserAlreadyExists})
	case errors.Is(err, domain.ErrMealNotFound):
		return c.Status(fiber.StatusNotFound).JSON(Response{Message: domain.MessageMealNotFound})
	case errors.Is(err, domain.ErrNothingToUpdate):
		return ErrorResponse(c, fiber.StatusBadRequest, message, err)
	default:
		return InternalErrorResponse(c, err)
	}
}

// ErrorHandler is the app level fallback for errors handlers return without
// writing a response, including recovered panics.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
		return c.Status(fiberErr.Code).JSON(Response{Message: fiberErr.Message})
	}
	return InternalErrorResponse(c, err)
}
