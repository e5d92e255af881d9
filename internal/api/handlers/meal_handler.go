package handlers

import (
	"github.com/gofiber/fiber/v2"

	"local-chef-bazaar/domain"
	"local-chef-bazaar/internal/api/presenters"
	"local-chef-bazaar/pkg/meal"
)

type (
	MealHandler interface {
		CreateMeal(c *fiber.Ctx) error
		GetMeals(c *fiber.Ctx) error
		GetMealByID(c *fiber.Ctx) error
		GetMyMeals(c *fiber.Ctx) error
		DeleteMeal(c *fiber.Ctx) error
	}

	mealHandler struct {
		mealService meal.MealService
	}
)

func NewMealHandler(mealService meal.MealService) MealHandler {
	return &mealHandler{mealService: mealService}
}

func (h *mealHandler) CreateMeal(c *fiber.Ctx) error {
	doc, err := parseDocument(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.mealService.CreateMeal(c.UserContext(), doc)
	if err != nil {
		return presenters.InternalErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *mealHandler) GetMeals(c *fiber.Ctx) error {
	meals, err := h.mealService.GetMeals(c.UserContext())
	if err != nil {
		return presenters.InternalErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, meals, fiber.StatusOK)
}

func (h *mealHandler) GetMealByID(c *fiber.Ctx) error {
	res, err := h.mealService.GetMealByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return presenters.StoreErrorResponse(c, domain.MessageMealNotFound, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *mealHandler) GetMyMeals(c *fiber.Ctx) error {
	meals, err := h.mealService.GetMealsByUserEmail(c.UserContext(), c.Query("email"))
	if err != nil {
		return presenters.InternalErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, meals, fiber.StatusOK)
}

func (h *mealHandler) DeleteMeal(c *fiber.Ctx) error {
	res, err := h.mealService.DeleteMeal(c.UserContext(), c.Params("id"))
	if err != nil {
		return presenters.InternalErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
