package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"local-chef-bazaar/domain"
	"local-chef-bazaar/entities"
	"local-chef-bazaar/internal/api/presenters"
	"local-chef-bazaar/pkg/user"
)

type (
	UserHandler interface {
		CreateUser(c *fiber.Ctx) error
		GetUsers(c *fiber.Ctx) error
		GetUserByID(c *fiber.Ctx) error
		UpdateUser(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		validator   *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *userHandler) CreateUser(c *fiber.Ctx) error {
	doc, err := parseDocument(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	email, _ := doc[entities.FieldEmail].(string)
	if err := h.validator.Var(email, "required"); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageEmailRequired, err)
	}

	res, err := h.userService.CreateUser(c.UserContext(), doc)
	if err != nil {
		return presenters.StoreErrorResponse(c, domain.MessageFailedCreateUser, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *userHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetUsers(c.UserContext())
	if err != nil {
		return presenters.InternalErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, users, fiber.StatusOK)
}

// GetUserByID answers 200 with a null body for an unknown id.
func (h *userHandler) GetUserByID(c *fiber.Ctx) error {
	res, err := h.userService.GetUserByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return presenters.InternalErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *userHandler) UpdateUser(c *fiber.Ctx) error {
	req := new(domain.UpdateUserRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateUser, err)
	}

	res, err := h.userService.UpdateUser(c.UserContext(), c.Params("id"), *req)
	if err != nil {
		return presenters.StoreErrorResponse(c, domain.MessageFailedUpdateUser, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
