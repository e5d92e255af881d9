package meal

import (
	"context"
	"errors"

	"local-chef-bazaar/domain"
	"local-chef-bazaar/entities"
	"local-chef-bazaar/pkg/store"
)

type (
	MealService interface {
		CreateMeal(ctx context.Context, meal entities.Document) (store.InsertAck, error)
		GetMeals(ctx context.Context) ([]entities.Document, error)
		GetMealByID(ctx context.Context, id string) (entities.Document, error)
		GetMealsByUserEmail(ctx context.Context, email string) ([]entities.Document, error)
		DeleteMeal(ctx context.Context, id string) (store.DeleteAck, error)
	}

	mealService struct {
		mealRepository MealRepository
		feedLimit      int64
	}
)

// NewMealService builds the meal service. A positive feedLimit turns the meal
// list into a feed of the feedLimit earliest meals by date; zero lists every
// meal in natural order.
func NewMealService(mealRepository MealRepository, feedLimit int64) MealService {
	if feedLimit < 0 {
		feedLimit = 0
	}
	return &mealService{
		mealRepository: mealRepository,
		feedLimit:      feedLimit,
	}
}

func (s *mealService) CreateMeal(ctx context.Context, meal entities.Document) (store.InsertAck, error) {
	return s.mealRepository.CreateMeal(ctx, entities.Sanitize(meal))
}

func (s *mealService) GetMeals(ctx context.Context) ([]entities.Document, error) {
	var opts store.FindOptions
	if s.feedLimit > 0 {
		opts.Limit = s.feedLimit
		opts.SortField = entities.FieldDate
	}
	return s.mealRepository.GetMeals(ctx, opts)
}

func (s *mealService) GetMealByID(ctx context.Context, id string) (entities.Document, error) {
	objectID, err := store.ParseID(id)
	if err != nil {
		return nil, err
	}

	meal, err := s.mealRepository.GetMealByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.ErrMealNotFound
		}
		return nil, err
	}
	return meal, nil
}

func (s *mealService) GetMealsByUserEmail(ctx context.Context, email string) ([]entities.Document, error) {
	return s.mealRepository.GetMealsByUserEmail(ctx, email)
}

func (s *mealService) DeleteMeal(ctx context.Context, id string) (store.DeleteAck, error) {
	objectID, err := store.ParseID(id)
	if err != nil {
		return store.DeleteAck{}, err
	}
	return s.mealRepository.DeleteMeal(ctx, objectID)
}
