package user

import (
	"context"
	"errors"
	"time"

	"PlateShare-Backend/domain"
	"PlateShare-Backend/entities"

	"go.mongodb.org/mongo-driver/mongo"
)

type (
	UserService interface {
		AddUser(ctx context.Context, req domain.AddUserRequest) (domain.InsertResult, error)
		GetAllUsers(ctx context.Context) ([]entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		DeleteUserByEmail(ctx context.Context, email string) (domain.DeleteResult, error)
	}

	userService struct {
		userRepository UserRepository
	}
)

func NewUserService(userRepository UserRepository) UserService {
	return &userService{userRepository: userRepository}
}

// AddUser keeps the original check-then-insert so a duplicate signup
// still gets the informational conflict answer, and additionally leans
// on the unique email index: a concurrent insert that slips past the
// check surfaces as a duplicate-key error and is reported the same way.
func (s *userService) AddUser(ctx context.Context, req domain.AddUserRequest) (domain.InsertResult, error) {
	existing, err := s.userRepository.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return domain.InsertResult{}, err
	}
	if existing != nil {
		return domain.InsertResult{}, domain.ErrUserAlreadyExists
	}

	user := &entities.User{
		Email:     req.Email,
		Name:      req.Name,
		PhotoURL:  req.PhotoURL,
		CreatedAt: time.Now().UTC(),
	}

	res, err := s.userRepository.Insert(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.InsertResult{}, domain.ErrUserAlreadyExists
		}
		return domain.InsertResult{}, err
	}
	return domain.NewInsertResult(res), nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]entities.User, error) {
	return s.userRepository.FindAll(ctx)
}

// GetUserByEmail returns (nil, nil) for an unknown email; the route
// answers 200 with a null body in that case.
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	user, err := s.userRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUserByEmail(ctx context.Context, email string) (domain.DeleteResult, error) {
	res, err := s.userRepository.DeleteByEmail(ctx, email)
	if err != nil {
		return domain.DeleteResult{}, err
	}
	return domain.NewDeleteResult(res), nil
}
