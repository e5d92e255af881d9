package handlers

import (
	"github.com/gofiber/fiber/v2"

	"local-chef-bazaar/domain"
	"local-chef-bazaar/internal/api/presenters"
	"local-chef-bazaar/pkg/review"
)

type (
	ReviewHandler interface {
		CreateReview(c *fiber.Ctx) error
		GetReviews(c *fiber.Ctx) error
		GetReviewsByFoodID(c *fiber.Ctx) error
		UpdateReview(c *fiber.Ctx) error
		DeleteReview(c *fiber.Ctx) error
	}

	reviewHandler struct {
		reviewService review.ReviewService
	}
)

func NewReviewHandler(reviewService review.ReviewService) ReviewHandler {
	return &reviewHandler{reviewService: reviewService}
}

func (h *reviewHandler) CreateReview(c *fiber.Ctx) error {
	doc, err := parseDocument(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.reviewService.CreateReview(c.UserContext(), doc)
	if err != nil {
		return presenters.InternalErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *reviewHandler) GetReviews(c *fiber.Ctx) error {
	reviews, err := h.reviewService.GetReviews(c.UserContext())
	if err != nil {
		return presenters.InternalErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, reviews, fiber.StatusOK)
}

func (h *reviewHandler) GetReviewsByFoodID(c *fiber.Ctx) error {
	reviews, err := h.reviewService.GetReviewsByFoodID(c.UserContext(), c.Params("foodId"))
	if err != nil {
		return presenters.InternalErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, reviews, fiber.StatusOK)
}

func (h *reviewHandler) UpdateReview(c *fiber.Ctx) error {
	doc, err := parseDocument(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.reviewService.UpdateReview(c.UserContext(), c.Params("id"), doc)
	if err != nil {
		return presenters.StoreErrorResponse(c, domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *reviewHandler) DeleteReview(c *fiber.Ctx) error {
	res, err := h.reviewService.DeleteReview(c.UserContext(), c.Params("id"))
	if err != nil {
		return presenters.InternalErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
