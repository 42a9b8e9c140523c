package handlers

import (
	"errors"

	"PlateShare-Backend/domain"
	"PlateShare-Backend/internal/api/presenters"
	"PlateShare-Backend/pkg/request"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RequestHandler interface {
		AddRequest(c *fiber.Ctx) error
		GetRequestsForFood(c *fiber.Ctx) error
		GetMyRequests(c *fiber.Ctx) error
		AcceptRequest(c *fiber.Ctx) error
		RejectRequest(c *fiber.Ctx) error
		CancelRequest(c *fiber.Ctx) error
	}

	requestHandler struct {
		requestService request.RequestService
		validator      *validator.Validate
	}
)

func NewRequestHandler(requestService request.RequestService, validator *validator.Validate) RequestHandler {
	return &requestHandler{
		requestService: requestService,
		validator:      validator,
	}
}

func (h *requestHandler) AddRequest(c *fiber.Ctx) error {
	req := new(domain.AddFoodRequestRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddRequest, err)
	}

	res, err := h.requestService.AddRequest(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddRequest, err)
	}
	return c.JSON(res)
}

func (h *requestHandler) GetRequestsForFood(c *fiber.Ctx) error {
	requests, err := h.requestService.GetRequestsForFood(c.Context(), c.Params("foodId"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRequests, err)
	}
	return c.JSON(requests)
}

func (h *requestHandler) GetMyRequests(c *fiber.Ctx) error {
	requests, err := h.requestService.GetRequestsForRequester(c.Context(), c.Params("email"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRequests, err)
	}
	return c.JSON(requests)
}

func (h *requestHandler) AcceptRequest(c *fiber.Ctx) error {
	res, err := h.requestService.AcceptRequest(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidObjectID) || errors.Is(err, domain.ErrRequestNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAcceptRequest, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAcceptRequest, err)
	}
	return c.JSON(res)
}

func (h *requestHandler) RejectRequest(c *fiber.Ctx) error {
	res, err := h.requestService.RejectRequest(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidObjectID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRejectRequest, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRejectRequest, err)
	}
	return c.JSON(res)
}

func (h *requestHandler) CancelRequest(c *fiber.Ctx) error {
	res, err := h.requestService.CancelRequest(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidObjectID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCancelRequest, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCancelRequest, err)
	}
	return c.JSON(res)
}
