package review

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"local-chef-bazaar/entities"
	"local-chef-bazaar/pkg/store"
)

type (
	ReviewRepository interface {
		CreateReview(ctx context.Context, review entities.Document) (store.InsertAck, error)
		GetReviews(ctx context.Context) ([]entities.Document, error)
		GetReviewsByFoodID(ctx context.Context, foodID string) ([]entities.Document, error)
		UpdateReview(ctx context.Context, id primitive.ObjectID, fields entities.Document) (store.UpdateAck, error)
		DeleteReview(ctx context.Context, id primitive.ObjectID) (store.DeleteAck, error)
	}

	reviewRepository struct {
		reviews store.Collection
	}
)

func NewReviewRepository(db store.Database) ReviewRepository {
	return &reviewRepository{reviews: db.Collection(entities.ReviewsCollection)}
}

func (r *reviewRepository) CreateReview(ctx context.Context, review entities.Document) (store.InsertAck, error) {
	return r.reviews.InsertOne(ctx, review)
}

func (r *reviewRepository) GetReviews(ctx context.Context) ([]entities.Document, error) {
	return store.FindDocuments(ctx, r.reviews, bson.M{}, store.FindOptions{})
}

func (r *reviewRepository) GetReviewsByFoodID(ctx context.Context, foodID string) ([]entities.Document, error) {
	return store.FindDocuments(ctx, r.reviews, bson.M{entities.FieldFoodID: foodID}, store.FindOptions{})
}

func (r *reviewRepository) UpdateReview(ctx context.Context, id primitive.ObjectID, fields entities.Document) (store.UpdateAck, error) {
	return r.reviews.UpdateOne(ctx, store.ByID(id), fields)
}

func (r *reviewRepository) DeleteReview(ctx context.Context, id primitive.ObjectID) (store.DeleteAck, error) {
	return r.reviews.DeleteOne(ctx, store.ByID(id))
}
