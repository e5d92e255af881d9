package meal

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"local-chef-bazaar/entities"
	"local-chef-bazaar/pkg/store"
)

type (
	MealRepository interface {
		CreateMeal(ctx context.Context, meal entities.Document) (store.InsertAck, error)
		GetMeals(ctx context.Context, opts store.FindOptions) ([]entities.Document, error)
		GetMealByID(ctx context.Context, id primitive.ObjectID) (entities.Document, error)
		GetMealsByUserEmail(ctx context.Context, email string) ([]entities.Document, error)
		DeleteMeal(ctx context.Context, id primitive.ObjectID) (store.DeleteAck, error)
	}

	mealRepository struct {
		meals store.Collection
	}
)

func NewMealRepository(db store.Database) MealRepository {
	return &mealRepository{meals: db.Collection(entities.MealsCollection)}
}

func (r *mealRepository) CreateMeal(ctx context.Context, meal entities.Document) (store.InsertAck, error) {
	return r.meals.InsertOne(ctx, meal)
}

func (r *mealRepository) GetMeals(ctx context.Context, opts store.FindOptions) ([]entities.Document, error) {
	return store.FindDocuments(ctx, r.meals, bson.M{}, opts)
}

func (r *mealRepository) GetMealByID(ctx context.Context, id primitive.ObjectID) (entities.Document, error) {
	var meal entities.Document
	if err := r.meals.FindOne(ctx, store.ByID(id), &meal); err != nil {
		return nil, err
	}
	return meal, nil
}

func (r *mealRepository) GetMealsByUserEmail(ctx context.Context, email string) ([]entities.Document, error) {
	return store.FindDocuments(ctx, r.meals, bson.M{entities.FieldUserEmail: email}, store.FindOptions{})
}

func (r *mealRepository) DeleteMeal(ctx context.Context, id primitive.ObjectID) (store.DeleteAck, error) {
	return r.meals.DeleteOne(ctx, store.ByID(id))
}
