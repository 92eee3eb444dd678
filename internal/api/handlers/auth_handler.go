package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/viniciusflorencio2008/leilao/internal/services"
	"github.com/viniciusflorencio2008/leilao/pkg/logger"
)

type AuthHandler struct {
	auth *services.AuthService
	log  logger.Logger
}

func NewAuthHandler(auth *services.AuthService, log logger.Logger) *AuthHandler {
	return &AuthHandler{
		auth: auth,
		log:  log,
	}
}

type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

type RegisterResponse struct {
	UserID string `json:"user_id"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, err := h.auth.Register(c.Request().Context(), services.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		h.log.Error("Failed to register user", "email", req.Email, "error", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, RegisterResponse{UserID: user.ID})
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	token, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, LoginResponse{Token: token})
}
