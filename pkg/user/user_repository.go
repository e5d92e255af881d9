package user

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"local-chef-bazaar/entities"
	"local-chef-bazaar/pkg/store"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user entities.Document) (store.InsertAck, error)
		GetUsers(ctx context.Context) ([]entities.Document, error)
		GetUserByID(ctx context.Context, id primitive.ObjectID) (entities.Document, error)
		GetUserByEmail(ctx context.Context, email string) (entities.Document, error)
		UpdateUser(ctx context.Context, id primitive.ObjectID, fields bson.M) (store.UpdateAck, error)
	}

	userRepository struct {
		users store.Collection
	}
)

func NewUserRepository(db store.Database) UserRepository {
	return &userRepository{users: db.Collection(entities.UsersCollection)}
}

func (r *userRepository) CreateUser(ctx context.Context, user entities.Document) (store.InsertAck, error) {
	return r.users.InsertOne(ctx, user)
}

func (r *userRepository) GetUsers(ctx context.Context) ([]entities.Document, error) {
	return store.FindDocuments(ctx, r.users, bson.M{}, store.FindOptions{})
}

func (r *userRepository) GetUserByID(ctx context.Context, id primitive.ObjectID) (entities.Document, error) {
	return r.findOne(ctx, store.ByID(id))
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (entities.Document, error) {
	return r.findOne(ctx, bson.M{entities.FieldEmail: email})
}

func (r *userRepository) UpdateUser(ctx context.Context, id primitive.ObjectID, fields bson.M) (store.UpdateAck, error) {
	return r.users.UpdateOne(ctx, store.ByID(id), fields)
}

// findOne returns nil without an error when nothing matches.
func (r *userRepository) findOne(ctx context.Context, filter bson.M) (entities.Document, error) {
	var user entities.Document
	if err := r.users.FindOne(ctx, filter, &user); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}
