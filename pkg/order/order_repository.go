package order

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"local-chef-bazaar/entities"
	"local-chef-bazaar/pkg/store"
)

type (
	OrderRepository interface {
		CreateOrder(ctx context.Context, order entities.Document) (store.InsertAck, error)
		GetOrders(ctx context.Context) ([]entities.Document, error)
		GetOrdersByUserEmail(ctx context.Context, email string) ([]entities.Document, error)
		GetOrdersByChefID(ctx context.Context, chefID string) ([]entities.Document, error)
		UpdateOrder(ctx context.Context, id primitive.ObjectID, fields bson.M) (store.UpdateAck, error)
	}

	orderRepository struct {
		orders store.Collection
	}
)

func NewOrderRepository(db store.Database) OrderRepository {
	return &orderRepository{orders: db.Collection(entities.OrdersCollection)}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order entities.Document) (store.InsertAck, error) {
	return r.orders.InsertOne(ctx, order)
}

func (r *orderRepository) GetOrders(ctx context.Context) ([]entities.Document, error) {
	return store.FindDocuments(ctx, r.orders, bson.M{}, store.FindOptions{})
}

func (r *orderRepository) GetOrdersByUserEmail(ctx context.Context, email string) ([]entities.Document, error) {
	return store.FindDocuments(ctx, r.orders, bson.M{entities.FieldUserEmail: email}, store.FindOptions{})
}

func (r *orderRepository) GetOrdersByChefID(ctx context.Context, chefID string) ([]entities.Document, error) {
	return store.FindDocuments(ctx, r.orders, bson.M{entities.FieldChefID: chefID}, store.FindOptions{})
}

func (r *orderRepository) UpdateOrder(ctx context.Context, id primitive.ObjectID, fields bson.M) (store.UpdateAck, error) {
	return r.orders.UpdateOne(ctx, store.ByID(id), fields)
}
