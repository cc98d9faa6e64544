package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"tutorboard/internal/model"
	"tutorboard/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// Register регистрирует преподавателя
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	user, token, err := h.authService.Register(c.Context(), req.Email, req.Password)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(authResponse{Token: token, User: user})
}

// Login аутентифицирует преподавателя
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	user, token, err := h.authService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(authResponse{Token: token, User: user})
}
