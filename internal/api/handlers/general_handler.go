package handlers

import (
	"github.com/gofiber/fiber/v2"

	"local-chef-bazaar/domain"
	"local-chef-bazaar/internal/api/presenters"
)

type (
	GeneralHandler interface {
		Root(c *fiber.Ctx) error
		EchoData(c *fiber.Ctx) error
	}

	generalHandler struct{}
)

func NewGeneralHandler() GeneralHandler {
	return &generalHandler{}
}

func (h *generalHandler) Root(c *fiber.Ctx) error {
	return c.SendString(domain.MessageServerRunning)
}

// EchoData sends the submitted JSON back unchanged. Clients use it to check
// their payloads reach the server.
func (h *generalHandler) EchoData(c *fiber.Ctx) error {
	var data interface{}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&data); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	}
	if data == nil {
		data = fiber.Map{}
	}

	return presenters.SuccessResponse(c, domain.DataEchoResponse{
		Message: domain.MessageDataReceived,
		Data:    data,
	}, fiber.StatusOK)
}
