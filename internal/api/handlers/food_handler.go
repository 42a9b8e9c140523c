package handlers

import (
	"errors"

	"PlateShare-Backend/domain"
	"PlateShare-Backend/internal/api/presenters"
	"PlateShare-Backend/pkg/food"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		GetFoods(c *fiber.Ctx) error
		GetFeaturedFoods(c *fiber.Ctx) error
		AddFood(c *fiber.Ctx) error
		GetFoodByID(c *fiber.Ctx) error
		UpdateFood(c *fiber.Ctx) error
		DeleteFood(c *fiber.Ctx) error
		UploadFoodImage(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

func (h *foodHandler) GetFoods(c *fiber.Ctx) error {
	foods, err := h.foodService.GetAvailableFoods(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoods, err)
	}
	return c.JSON(foods)
}

func (h *foodHandler) GetFeaturedFoods(c *fiber.Ctx) error {
	foods, err := h.foodService.GetFeaturedFoods(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoods, err)
	}
	return c.JSON(foods)
}

func (h *foodHandler) AddFood(c *fiber.Ctx) error {
	req := new(domain.AddFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFood, err)
	}

	res, err := h.foodService.AddFood(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddFood, err)
	}
	return c.JSON(res)
}

// GetFoodByID answers 200 with a null body when nothing matches,
// preserving the original not-found contract.
func (h *foodHandler) GetFoodByID(c *fiber.Ctx) error {
	foodItem, err := h.foodService.GetFoodByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidObjectID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoods, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoods, err)
	}
	return c.JSON(foodItem)
}

func (h *foodHandler) UpdateFood(c *fiber.Ctx) error {
	req := new(domain.UpdateFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.foodService.UpdateFood(c.Context(), c.Params("id"), *req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidObjectID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFood, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateFood, err)
	}
	return c.JSON(res)
}

func (h *foodHandler) DeleteFood(c *fiber.Ctx) error {
	res, err := h.foodService.DeleteFood(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidObjectID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFood, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteFood, err)
	}
	return c.JSON(res)
}

func (h *foodHandler) UploadFoodImage(c *fiber.Ctx) error {
	req := new(domain.UploadFoodImageRequest)
	req.FoodID = c.Params("id")

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadFoodImage, err)
	}

	res, err := h.foodService.UploadFoodImage(c.Context(), req.FoodID, req.Image)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidObjectID) || errors.Is(err, domain.ErrFoodNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadFoodImage, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadFoodImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadFoodImage)
}
