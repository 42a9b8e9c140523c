package handlers

import (
	"errors"

	"PlateShare-Backend/domain"
	"PlateShare-Backend/internal/api/presenters"
	"PlateShare-Backend/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		AddUser(c *fiber.Ctx) error
		GetUsers(c *fiber.Ctx) error
		GetUserByEmail(c *fiber.Ctx) error
		DeleteUserByEmail(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		validator   *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService: userService,
		validator:   validator,
	}
}

// AddUser reports a duplicate email as an informational 200 payload
// with a null insertedId, the answer the original contract gives.
func (h *userHandler) AddUser(c *fiber.Ctx) error {
	req := new(domain.AddUserRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddUser, err)
	}

	res, err := h.userService.AddUser(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return c.JSON(domain.UserConflictResponse{Message: domain.MessageUserAlreadyExists})
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddUser, err)
	}
	return c.JSON(res)
}

func (h *userHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetAllUsers(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetUsers, err)
	}
	return c.JSON(users)
}

func (h *userHandler) GetUserByEmail(c *fiber.Ctx) error {
	u, err := h.userService.GetUserByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetUsers, err)
	}
	return c.JSON(u)
}

func (h *userHandler) DeleteUserByEmail(c *fiber.Ctx) error {
	res, err := h.userService.DeleteUserByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteUser, err)
	}
	return c.JSON(res)
}
