package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"local-chef-bazaar/domain"
	"local-chef-bazaar/internal/api/presenters"
	"local-chef-bazaar/pkg/order"
)

type (
	OrderHandler interface {
		CreateOrder(c *fiber.Ctx) error
		GetOrders(c *fiber.Ctx) error
		GetOrdersByEmail(c *fiber.Ctx) error
		GetChefOrders(c *fiber.Ctx) error
		UpdateOrderStatus(c *fiber.Ctx) error
	}

	orderHandler struct {
		orderService order.OrderService
		validator    *validator.Validate
	}
)

func NewOrderHandler(orderService order.OrderService, validator *validator.Validate) OrderHandler {
	return &orderHandler{
		orderService: orderService,
		validator:    validator,
	}
}

func (h *orderHandler) CreateOrder(c *fiber.Ctx) error {
	doc, err := parseDocument(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.orderService.CreateOrder(c.UserContext(), doc)
	if err != nil {
		return presenters.InternalErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *orderHandler) GetOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.GetOrders(c.UserContext())
	if err != nil {
		return presenters.InternalErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, orders, fiber.StatusOK)
}

func (h *orderHandler) GetOrdersByEmail(c *fiber.Ctx) error {
	orders, err := h.orderService.GetOrdersByUserEmail(c.UserContext(), c.Params("email"))
	if err != nil {
		return presenters.InternalErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, orders, fiber.StatusOK)
}

func (h *orderHandler) GetChefOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.GetOrdersByChefID(c.UserContext(), c.Params("chefId"))
	if err != nil {
		return presenters.InternalErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, orders, fiber.StatusOK)
}

func (h *orderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	req := new(domain.UpdateOrderRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateOrder, err)
	}

	res, err := h.orderService.UpdateOrderStatus(c.UserContext(), c.Params("id"), *req)
	if err != nil {
		return presenters.StoreErrorResponse(c, domain.MessageFailedUpdateOrder, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
