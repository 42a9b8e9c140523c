package request

import (
	"context"
	"errors"
	"fmt"

	"PlateShare-Backend/domain"
	"PlateShare-Backend/entities"
	"PlateShare-Backend/internal/utils/mailing"
	"PlateShare-Backend/pkg/food"

	"github.com/gofiber/fiber/v2/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type (
	RequestService interface {
		AddRequest(ctx context.Context, req domain.AddFoodRequestRequest) (domain.InsertResult, error)
		GetRequestsForFood(ctx context.Context, foodID string) ([]entities.FoodRequest, error)
		GetRequestsForRequester(ctx context.Context, email string) ([]entities.FoodRequest, error)
		AcceptRequest(ctx context.Context, id string) (domain.AcceptRequestResult, error)
		RejectRequest(ctx context.Context, id string) (domain.UpdateResult, error)
		CancelRequest(ctx context.Context, id string) (domain.DeleteResult, error)
	}

	requestService struct {
		requestRepository RequestRepository
		foodRepository    food.FoodRepository
	}
)

func NewRequestService(requestRepository RequestRepository, foodRepository food.FoodRepository) RequestService {
	return &requestService{
		requestRepository: requestRepository,
		foodRepository:    foodRepository,
	}
}

func (s *requestService) AddRequest(ctx context.Context, req domain.AddFoodRequestRequest) (domain.InsertResult, error) {
	request := &entities.FoodRequest{
		FoodID:         req.FoodID,
		FoodName:       req.FoodName,
		FoodImage:      req.FoodImage,
		RequesterEmail: req.RequesterEmail,
		RequesterName:  req.RequesterName,
		DonatorEmail:   req.DonatorEmail,
		RequestDate:    req.RequestDate,
		PickupLocation: req.PickupLocation,
		ExpireDate:     req.ExpireDate,
		Notes:          req.Notes,
		// every request starts out pending, whatever the caller sent
		Status: entities.RequestStatusPending,
	}

	res, err := s.requestRepository.Insert(ctx, request)
	if err != nil {
		return domain.InsertResult{}, err
	}
	return domain.NewInsertResult(res), nil
}

func (s *requestService) GetRequestsForFood(ctx context.Context, foodID string) ([]entities.FoodRequest, error) {
	return s.requestRepository.FindByFood(ctx, foodID)
}

func (s *requestService) GetRequestsForRequester(ctx context.Context, email string) ([]entities.FoodRequest, error) {
	return s.requestRepository.FindByRequester(ctx, email)
}

// AcceptRequest is a two-step transition without a surrounding
// transaction: the request flips to "accepted" first, then the
// referenced food flips to "Donated". There is no rollback; if the
// referenced food is gone, the food-side acknowledgment simply reports
// zero matches and the request stays accepted. Callers reconcile from
// the two acknowledgments.
func (s *requestService) AcceptRequest(ctx context.Context, id string) (domain.AcceptRequestResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.AcceptRequestResult{}, domain.ErrInvalidObjectID
	}

	requestRes, err := s.requestRepository.UpdateStatus(ctx, objectID, entities.RequestStatusAccepted)
	if err != nil {
		return domain.AcceptRequestResult{}, err
	}

	request, err := s.requestRepository.FindByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.AcceptRequestResult{}, domain.ErrRequestNotFound
		}
		return domain.AcceptRequestResult{}, err
	}

	foodID, err := primitive.ObjectIDFromHex(request.FoodID)
	if err != nil {
		return domain.AcceptRequestResult{}, domain.ErrInvalidObjectID
	}

	foodRes, err := s.foodRepository.UpdateByID(ctx, foodID, bson.M{"food_status": entities.FoodStatusDonated})
	if err != nil {
		return domain.AcceptRequestResult{}, err
	}

	s.notifyRequester(request, "Your PlateShare request was accepted",
		fmt.Sprintf("Good news! Your request for %q has been accepted by the donor.", request.FoodName))

	return domain.AcceptRequestResult{
		UpdateRequest: domain.NewUpdateResult(requestRes),
		UpdateFood:    domain.NewUpdateResult(foodRes),
	}, nil
}

func (s *requestService) RejectRequest(ctx context.Context, id string) (domain.UpdateResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.UpdateResult{}, domain.ErrInvalidObjectID
	}

	res, err := s.requestRepository.UpdateStatus(ctx, objectID, entities.RequestStatusRejected)
	if err != nil {
		return domain.UpdateResult{}, err
	}

	if request, findErr := s.requestRepository.FindByID(ctx, objectID); findErr == nil {
		s.notifyRequester(request, "Your PlateShare request was rejected",
			fmt.Sprintf("Unfortunately your request for %q has been rejected by the donor.", request.FoodName))
	}

	return domain.NewUpdateResult(res), nil
}

func (s *requestService) CancelRequest(ctx context.Context, id string) (domain.DeleteResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.DeleteResult{}, domain.ErrInvalidObjectID
	}

	res, err := s.requestRepository.DeleteByID(ctx, objectID)
	if err != nil {
		return domain.DeleteResult{}, err
	}
	return domain.NewDeleteResult(res), nil
}

// notifyRequester sends a best-effort status mail. Failures are logged
// and never fail the transition.
func (s *requestService) notifyRequester(request *entities.FoodRequest, subject, body string) {
	if !mailing.Configured() || request.RequesterEmail == "" {
		return
	}

	go func() {
		if err := mailing.SendMail(request.RequesterEmail, subject, body); err != nil {
			log.Errorf("failed to send request notification to %s: %v", request.RequesterEmail, err)
		}
	}()
}
