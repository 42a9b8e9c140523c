package user

import (
	"context"
	"testing"

	"PlateShare-Backend/domain"
	"PlateShare-Backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mockUserRepo struct {
	users []*entities.User

	// forceDuplicateKey makes Insert fail the way the unique index does
	// when a concurrent signup wins the race after the existence check.
	forceDuplicateKey bool
}

func (m *mockUserRepo) EnsureIndexes(_ context.Context) error {
	return nil
}

func (m *mockUserRepo) Insert(_ context.Context, user *entities.User) (*mongo.InsertOneResult, error) {
	if m.forceDuplicateKey {
		return nil, mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	stored := *user
	m.users = append(m.users, &stored)
	return &mongo.InsertOneResult{InsertedID: user.ID}, nil
}

func (m *mockUserRepo) FindAll(_ context.Context) ([]entities.User, error) {
	result := make([]entities.User, 0)
	for _, u := range m.users {
		result = append(result, *u)
	}
	return result, nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			result := *u
			return &result, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockUserRepo) DeleteByEmail(_ context.Context, email string) (*mongo.DeleteResult, error) {
	for i, u := range m.users {
		if u.Email == email {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func TestAddUser(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewUserService(repo)

	res, err := svc.AddUser(context.Background(), domain.AddUserRequest{
		Email: "a@x.com",
		Name:  "Ana",
	})
	require.NoError(t, err)
	assert.True(t, res.Acknowledged)
	assert.NotEmpty(t, res.InsertedID)

	require.Len(t, repo.users, 1)
	assert.Equal(t, "a@x.com", repo.users[0].Email)
	assert.False(t, repo.users[0].CreatedAt.IsZero())
}

func TestAddUserDuplicateEmail(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewUserService(repo)

	_, err := svc.AddUser(context.Background(), domain.AddUserRequest{Email: "a@x.com"})
	require.NoError(t, err)

	_, err = svc.AddUser(context.Background(), domain.AddUserRequest{Email: "a@x.com"})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	assert.Len(t, repo.users, 1)
}

func TestAddUserDuplicateKeyRace(t *testing.T) {
	// existence check passes (empty repo) but the insert loses the race
	// against a concurrent signup; the unique index reports it
	repo := &mockUserRepo{forceDuplicateKey: true}
	svc := NewUserService(repo)

	_, err := svc.AddUser(context.Background(), domain.AddUserRequest{Email: "a@x.com"})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestGetUserByEmailMissingReturnsNil(t *testing.T) {
	svc := NewUserService(&mockUserRepo{})

	u, err := svc.GetUserByEmail(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestGetAllUsers(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewUserService(repo)

	repo.users = append(repo.users,
		&entities.User{ID: primitive.NewObjectID(), Email: "a@x.com"},
		&entities.User{ID: primitive.NewObjectID(), Email: "b@x.com"},
	)

	users, err := svc.GetAllUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestDeleteUserByEmail(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewUserService(repo)

	repo.users = append(repo.users, &entities.User{ID: primitive.NewObjectID(), Email: "a@x.com"})

	res, err := svc.DeleteUserByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.DeletedCount)

	res, err = svc.DeleteUserByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Zero(t, res.DeletedCount)
}
