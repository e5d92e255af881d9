package handlers

import (
	"github.com/gofiber/fiber/v2"

	"local-chef-bazaar/domain"
	"local-chef-bazaar/internal/api/presenters"
	"local-chef-bazaar/pkg/favorite"
)

type (
	FavoriteHandler interface {
		CreateFavorite(c *fiber.Ctx) error
		GetFavorites(c *fiber.Ctx) error
		DeleteFavorite(c *fiber.Ctx) error
	}

	favoriteHandler struct {
		favoriteService favorite.FavoriteService
	}
)

func NewFavoriteHandler(favoriteService favorite.FavoriteService) FavoriteHandler {
	return &favoriteHandler{favoriteService: favoriteService}
}

func (h *favoriteHandler) CreateFavorite(c *fiber.Ctx) error {
	doc, err := parseDocument(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.favoriteService.CreateFavorite(c.UserContext(), doc)
	if err != nil {
		return presenters.InternalErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *favoriteHandler) GetFavorites(c *fiber.Ctx) error {
	favorites, err := h.favoriteService.GetFavorites(c.UserContext())
	if err != nil {
		return presenters.InternalErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, favorites, fiber.StatusOK)
}

func (h *favoriteHandler) DeleteFavorite(c *fiber.Ctx) error {
	res, err := h.favoriteService.DeleteFavorite(c.UserContext(), c.Params("id"))
	if err != nil {
		return presenters.InternalErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
