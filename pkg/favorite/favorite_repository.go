package favorite

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"local-chef-bazaar/entities"
	"local-chef-bazaar/pkg/store"
)

type (
	FavoriteRepository interface {
		CreateFavorite(ctx context.Context, favorite entities.Document) (store.InsertAck, error)
		GetFavorites(ctx context.Context) ([]entities.Document, error)
		DeleteFavorite(ctx context.Context, id primitive.ObjectID) (store.DeleteAck, error)
	}

	favoriteRepository struct {
		favorites store.Collection
	}
)

func NewFavoriteRepository(db store.Database) FavoriteRepository {
	return &favoriteRepository{favorites: db.Collection(entities.FavoritesCollection)}
}

func (r *favoriteRepository) CreateFavorite(ctx context.Context, favorite entities.Document) (store.InsertAck, error) {
	return r.favorites.InsertOne(ctx, favorite)
}

func (r *favoriteRepository) GetFavorites(ctx context.Context) ([]entities.Document, error) {
	return store.FindDocuments(ctx, r.favorites, bson.M{}, store.FindOptions{})
}

func (r *favoriteRepository) DeleteFavorite(ctx context.Context, id primitive.ObjectID) (store.DeleteAck, error) {
	return r.favorites.DeleteOne(ctx, store.ByID(id))
}
