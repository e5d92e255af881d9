package user

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"local-chef-bazaar/domain"
	"local-chef-bazaar/entities"
	"local-chef-bazaar/pkg/store"
)

type (
	UserService interface {
		CreateUser(ctx context.Context, user entities.Document) (store.InsertAck, error)
		GetUsers(ctx context.Context) ([]entities.Document, error)
		GetUserByID(ctx context.Context, id string) (entities.Document, error)
		UpdateUser(ctx context.Context, id string, req domain.UpdateUserRequest) (store.UpdateAck, error)
	}

	userService struct {
		userRepository UserRepository
		now            func() time.Time
	}
)

func NewUserService(userRepository UserRepository) UserService {
	return &userService{
		userRepository: userRepository,
		now:            time.Now,
	}
}

// CreateUser stores the submitted document unless its email is already
// taken. The lookup and the insert are separate round trips; the unique index
// on email created at startup closes the window between them.
func (s *userService) CreateUser(ctx context.Context, user entities.Document) (store.InsertAck, error) {
	user = entities.Sanitize(user)
	email, _ := user[entities.FieldEmail].(string)
	email = strings.TrimSpace(email)
	if email == "" {
		return store.InsertAck{}, domain.ErrEmailRequired
	}
	user[entities.FieldEmail] = email

	existing, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		return store.InsertAck{}, err
	}
	if existing != nil {
		return store.InsertAck{}, domain.ErrUserAlreadyExists
	}

	user = entities.ApplyUserDefaults(user, s.now().UTC())

	ack, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		if store.IsDuplicateKey(err) {
			return store.InsertAck{}, domain.ErrUserAlreadyExists
		}
		return store.InsertAck{}, err
	}
	return ack, nil
}

func (s *userService) GetUsers(ctx context.Context) ([]entities.Document, error) {
	return s.userRepository.GetUsers(ctx)
}

// GetUserByID returns nil, nil for an unknown id.
func (s *userService) GetUserByID(ctx context.Context, id string) (entities.Document, error) {
	objectID, err := store.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.userRepository.GetUserByID(ctx, objectID)
}

func (s *userService) UpdateUser(ctx context.Context, id string, req domain.UpdateUserRequest) (store.UpdateAck, error) {
	fields := bson.M{}
	if req.Role != nil {
		fields[entities.FieldRole] = *req.Role
	}
	if req.Status != nil {
		fields[entities.FieldStatus] = *req.Status
	}
	if len(fields) == 0 {
		return store.UpdateAck{}, domain.ErrNothingToUpdate
	}

	objectID, err := store.ParseID(id)
	if err != nil {
		return store.UpdateAck{}, err
	}
	return s.userRepository.UpdateUser(ctx, objectID, fields)
}
