package review

import (
	"context"

	"local-chef-bazaar/domain"
	"local-chef-bazaar/entities"
	"local-chef-bazaar/pkg/store"
)

type (
	ReviewService interface {
		CreateReview(ctx context.Context, review entities.Document) (store.InsertAck, error)
		GetReviews(ctx context.Context) ([]entities.Document, error)
		GetReviewsByFoodID(ctx context.Context, foodID string) ([]entities.Document, error)
		UpdateReview(ctx context.Context, id string, fields entities.Document) (store.UpdateAck, error)
		DeleteReview(ctx context.Context, id string) (store.DeleteAck, error)
	}

	reviewService struct {
		reviewRepository ReviewRepository
	}
)

func NewReviewService(reviewRepository ReviewRepository) ReviewService {
	return &reviewService{reviewRepository: reviewRepository}
}

func (s *reviewService) CreateReview(ctx context.Context, review entities.Document) (store.InsertAck, error) {
	return s.reviewRepository.CreateReview(ctx, entities.Sanitize(review))
}

func (s *reviewService) GetReviews(ctx context.Context) ([]entities.Document, error) {
	return s.reviewRepository.GetReviews(ctx)
}

func (s *reviewService) GetReviewsByFoodID(ctx context.Context, foodID string) ([]entities.Document, error) {
	return s.reviewRepository.GetReviewsByFoodID(ctx, foodID)
}

// UpdateReview merges every submitted field into the stored review.
func (s *reviewService) UpdateReview(ctx context.Context, id string, fields entities.Document) (store.UpdateAck, error) {
	fields = entities.Sanitize(fields)
	if len(fields) == 0 {
		return store.UpdateAck{}, domain.ErrNothingToUpdate
	}

	objectID, err := store.ParseID(id)
	if err != nil {
		return store.UpdateAck{}, err
	}
	return s.reviewRepository.UpdateReview(ctx, objectID, fields)
}

func (s *reviewService) DeleteReview(ctx context.Context, id string) (store.DeleteAck, error) {
	objectID, err := store.ParseID(id)
	if err != nil {
		return store.DeleteAck{}, err
	}
	return s.reviewRepository.DeleteReview(ctx, objectID)
}
