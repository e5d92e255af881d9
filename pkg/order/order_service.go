package order

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"local-chef-bazaar/domain"
	"local-chef-bazaar/entities"
	"local-chef-bazaar/pkg/store"
)

type (
	OrderService interface {
		CreateOrder(ctx context.Context, order entities.Document) (store.InsertAck, error)
		GetOrders(ctx context.Context) ([]entities.Document, error)
		GetOrdersByUserEmail(ctx context.Context, email string) ([]entities.Document, error)
		GetOrdersByChefID(ctx context.Context, chefID string) ([]entities.Document, error)
		UpdateOrderStatus(ctx context.Context, id string, req domain.UpdateOrderRequest) (store.UpdateAck, error)
	}

	orderService struct {
		orderRepository OrderRepository
	}
)

func NewOrderService(orderRepository OrderRepository) OrderService {
	return &orderService{orderRepository: orderRepository}
}

func (s *orderService) CreateOrder(ctx context.Context, order entities.Document) (store.InsertAck, error) {
	return s.orderRepository.CreateOrder(ctx, entities.Sanitize(order))
}

func (s *orderService) GetOrders(ctx context.Context) ([]entities.Document, error) {
	return s.orderRepository.GetOrders(ctx)
}

func (s *orderService) GetOrdersByUserEmail(ctx context.Context, email string) ([]entities.Document, error) {
	return s.orderRepository.GetOrdersByUserEmail(ctx, email)
}

func (s *orderService) GetOrdersByChefID(ctx context.Context, chefID string) ([]entities.Document, error) {
	return s.orderRepository.GetOrdersByChefID(ctx, chefID)
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, id string, req domain.UpdateOrderRequest) (store.UpdateAck, error) {
	if req.Status == nil {
		return store.UpdateAck{}, domain.ErrNothingToUpdate
	}

	objectID, err := store.ParseID(id)
	if err != nil {
		return store.UpdateAck{}, err
	}
	return s.orderRepository.UpdateOrder(ctx, objectID, bson.M{entities.FieldStatus: *req.Status})
}
