package favorite

import (
	"context"

	"local-chef-bazaar/entities"
	"local-chef-bazaar/pkg/store"
)

type (
	FavoriteService interface {
		CreateFavorite(ctx context.Context, favorite entities.Document) (store.InsertAck, error)
		GetFavorites(ctx context.Context) ([]entities.Document, error)
		DeleteFavorite(ctx context.Context, id string) (store.DeleteAck, error)
	}

	favoriteService struct {
		favoriteRepository FavoriteRepository
	}
)

// NewFavoriteService builds the favorite service. Favorites are not
// deduplicated; posting the same meal twice stores two documents.
func NewFavoriteService(favoriteRepository FavoriteRepository) FavoriteService {
	return &favoriteService{favoriteRepository: favoriteRepository}
}

func (s *favoriteService) CreateFavorite(ctx context.Context, favorite entities.Document) (store.InsertAck, error) {
	return s.favoriteRepository.CreateFavorite(ctx, entities.Sanitize(favorite))
}

func (s *favoriteService) GetFavorites(ctx context.Context) ([]entities.Document, error) {
	return s.favoriteRepository.GetFavorites(ctx)
}

func (s *favoriteService) DeleteFavorite(ctx context.Context, id string) (store.DeleteAck, error) {
	objectID, err := store.ParseID(id)
	if err != nil {
		return store.DeleteAck{}, err
	}
	return s.favoriteRepository.DeleteFavorite(ctx, objectID)
}
