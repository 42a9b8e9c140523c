package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"PlateShare-Backend/domain"
	"PlateShare-Backend/entities"
	"PlateShare-Backend/internal/api/handlers"
	"PlateShare-Backend/internal/api/routes"
	"PlateShare-Backend/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockFoodService struct {
	foods map[string]*entities.Food
}

func (m *mockFoodService) GetAvailableFoods(_ context.Context) ([]entities.Food, error) {
	result := make([]entities.Food, 0)
	for _, f := range m.foods {
		if f.FoodStatus == entities.FoodStatusAvailable {
			result = append(result, *f)
		}
	}
	return result, nil
}

func (m *mockFoodService) GetFeaturedFoods(_ context.Context) ([]entities.Food, error) {
	return m.GetAvailableFoods(context.Background())
}

func (m *mockFoodService) AddFood(_ context.Context, req domain.AddFoodRequest) (domain.InsertResult, error) {
	id := primitive.NewObjectID()
	m.foods[id.Hex()] = &entities.Food{
		ID:         id,
		FoodName:   req.FoodName,
		FoodStatus: entities.FoodStatusAvailable,
	}
	return domain.InsertResult{Acknowledged: true, InsertedID: id.Hex()}, nil
}

func (m *mockFoodService) GetFoodByID(_ context.Context, id string) (*entities.Food, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, domain.ErrInvalidObjectID
	}
	food, ok := m.foods[id]
	if !ok {
		return nil, nil
	}
	return food, nil
}

func (m *mockFoodService) UpdateFood(_ context.Context, id string, _ domain.UpdateFoodRequest) (domain.UpdateResult, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return domain.UpdateResult{}, domain.ErrInvalidObjectID
	}
	return domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *mockFoodService) DeleteFood(_ context.Context, id string) (domain.DeleteResult, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return domain.DeleteResult{}, domain.ErrInvalidObjectID
	}
	return domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func (m *mockFoodService) UploadFoodImage(_ context.Context, id string, _ *multipart.FileHeader) (domain.UploadFoodImageResponse, error) {
	return domain.UploadFoodImageResponse{FoodID: id, ImageURL: "https://img"}, nil
}

type mockRequestService struct {
	requests []entities.FoodRequest
}

func (m *mockRequestService) AddRequest(_ context.Context, req domain.AddFoodRequestRequest) (domain.InsertResult, error) {
	id := primitive.NewObjectID()
	m.requests = append(m.requests, entities.FoodRequest{
		ID:             id,
		FoodID:         req.FoodID,
		RequesterEmail: req.RequesterEmail,
		Status:         entities.RequestStatusPending,
	})
	return domain.InsertResult{Acknowledged: true, InsertedID: id.Hex()}, nil
}

func (m *mockRequestService) GetRequestsForFood(_ context.Context, foodID string) ([]entities.FoodRequest, error) {
	result := make([]entities.FoodRequest, 0)
	for _, r := range m.requests {
		if r.FoodID == foodID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockRequestService) GetRequestsForRequester(_ context.Context, email string) ([]entities.FoodRequest, error) {
	result := make([]entities.FoodRequest, 0)
	for _, r := range m.requests {
		if r.RequesterEmail == email {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockRequestService) AcceptRequest(_ context.Context, id string) (domain.AcceptRequestResult, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return domain.AcceptRequestResult{}, domain.ErrInvalidObjectID
	}
	return domain.AcceptRequestResult{
		UpdateRequest: domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1},
		UpdateFood:    domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1},
	}, nil
}

func (m *mockRequestService) RejectRequest(_ context.Context, id string) (domain.UpdateResult, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return domain.UpdateResult{}, domain.ErrInvalidObjectID
	}
	return domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *mockRequestService) CancelRequest(_ context.Context, id string) (domain.DeleteResult, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return domain.DeleteResult{}, domain.ErrInvalidObjectID
	}
	return domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

type mockUserService struct {
	users map[string]*entities.User
}

func (m *mockUserService) AddUser(_ context.Context, req domain.AddUserRequest) (domain.InsertResult, error) {
	if _, ok := m.users[req.Email]; ok {
		return domain.InsertResult{}, domain.ErrUserAlreadyExists
	}
	id := primitive.NewObjectID()
	m.users[req.Email] = &entities.User{ID: id, Email: req.Email, Name: req.Name}
	return domain.InsertResult{Acknowledged: true, InsertedID: id.Hex()}, nil
}

func (m *mockUserService) GetAllUsers(_ context.Context) ([]entities.User, error) {
	result := make([]entities.User, 0)
	for _, u := range m.users {
		result = append(result, *u)
	}
	return result, nil
}

func (m *mockUserService) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (m *mockUserService) DeleteUserByEmail(_ context.Context, _ string) (domain.DeleteResult, error) {
	return domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func newTestApp() (*fiber.App, *mockFoodService, *mockRequestService, *mockUserService) {
	foodSvc := &mockFoodService{foods: make(map[string]*entities.Food)}
	requestSvc := &mockRequestService{}
	userSvc := &mockUserService{users: make(map[string]*entities.User)}

	app := fiber.New()
	validate := validator.New()
	routesConfig := routes.Config{
		App:            app,
		FoodHandler:    handlers.NewFoodHandler(foodSvc, validate),
		RequestHandler: handlers.NewRequestHandler(requestSvc, validate),
		UserHandler:    handlers.NewUserHandler(userSvc, validate),
		Middleware:     middleware.NewMiddleware(),
	}
	routesConfig.Setup()
	return app, foodSvc, requestSvc, userSvc
}

func TestLiveness(t *testing.T) {
	app, _, _, _ := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "PlateShare server is running", string(body))
}

func TestAddFoodReturnsInsertAcknowledgment(t *testing.T) {
	app, _, _, _ := newTestApp()

	req := httptest.NewRequest("POST", "/foods",
		strings.NewReader(`{"food_name":"Rice","food_quantity":5,"food_status":"Donated"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var ack map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ack))
	assert.Equal(t, true, ack["acknowledged"])
	assert.NotEmpty(t, ack["insertedId"])
}

func TestGetFoodByIDMalformedID(t *testing.T) {
	app, _, _, _ := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/foods/not-an-id", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetFoodByIDMissingAnswersNull(t *testing.T) {
	app, _, _, _ := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/foods/"+primitive.NewObjectID().Hex(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "null", string(body))
}

func TestAcceptRequestReturnsBothAcknowledgments(t *testing.T) {
	app, _, _, _ := newTestApp()

	req := httptest.NewRequest("PATCH", "/requests/accept/"+primitive.NewObjectID().Hex(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Contains(t, result, "updateRequest")
	assert.Contains(t, result, "updateFood")
}

func TestAddRequestRequiresFoodID(t *testing.T) {
	app, _, _, _ := newTestApp()

	req := httptest.NewRequest("POST", "/requests",
		strings.NewReader(`{"requesterEmail":"a@x.com"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAddUserConflictAnswersMessage(t *testing.T) {
	app, _, _, _ := newTestApp()

	body := `{"email":"a@x.com","name":"Ana"}`

	first := httptest.NewRequest("POST", "/users", strings.NewReader(body))
	first.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(first)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	second := httptest.NewRequest("POST", "/users", strings.NewReader(body))
	second.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(second)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var conflict map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&conflict))
	assert.Equal(t, "user already exists", conflict["message"])
	assert.Nil(t, conflict["insertedId"])
}

func TestGetMyRequestsFiltersByEmail(t *testing.T) {
	app, _, requestSvc, _ := newTestApp()

	requestSvc.requests = append(requestSvc.requests,
		entities.FoodRequest{ID: primitive.NewObjectID(), FoodID: "f1", RequesterEmail: "a@x.com", Status: entities.RequestStatusPending},
		entities.FoodRequest{ID: primitive.NewObjectID(), FoodID: "f2", RequesterEmail: "b@x.com", Status: entities.RequestStatusPending},
	)

	resp, err := app.Test(httptest.NewRequest("GET", "/my-requests/a@x.com", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var requests []entities.FoodRequest
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&requests))
	require.Len(t, requests, 1)
	assert.Equal(t, "a@x.com", requests[0].RequesterEmail)
}
