package fiber

import (
	"context"
	"errors"
	"net/http"

	"gym-dashboard-service/internal/auth/core/domain"
	"gym-dashboard-service/internal/auth/core/ports"
	"gym-dashboard-service/internal/auth/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type LoginUseCase interface {
	Execute(ctx context.Context, in usecase.LoginInput) (*domain.Credential, error)
}

type CheckAuthUseCase interface {
	Execute(ctx context.Context, username string) (bool, string, error)
}

type AuthHandler struct {
	loginUC  LoginUseCase
	checkUC  CheckAuthUseCase
	recorder ports.ActivityRecorderPort
}

func NewAuthHandler(loginUC LoginUseCase, checkUC CheckAuthUseCase, recorder ports.ActivityRecorderPort) *AuthHandler {
	return &AuthHandler{
		loginUC:  loginUC,
		checkUC:  checkUC,
		recorder: recorder,
	}
}

// Login godoc
// @Summary Verify a username/password pair
// @Description Returns the account on success; both unknown-user and wrong-password answer the same generic 401
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Username and password are required",
		})
	}

	cred, err := h.loginUC.Execute(c.UserContext(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	switch {
	case err == nil:
	case errors.Is(err, usecase.ErrMissingCredentials):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Username and password are required",
		})
	case errors.Is(err, usecase.ErrUserNotFound), errors.Is(err, usecase.ErrInvalidPassword):
		// One message for both: the response must not leak whether the
		// username exists.
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Message: "Invalid username or password",
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Server error",
		})
	}

	return c.Status(http.StatusOK).JSON(LoginResponse{
		Success: true,
		Message: "Login successful",
		User: UserResponse{
			ID:       cred.ID,
			Username: cred.Username,
			Role:     cred.Role,
			MemberID: cred.MemberID,
		},
	})
}

// CheckAuth godoc
// @Summary Confirm a username belongs to a known account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body CheckAuthRequest true "Username to check"
// @Success 200 {object} CheckAuthResponse
// @Router /check-auth [post]
func (h *AuthHandler) CheckAuth(c *fiber.Ctx) error {
	var req CheckAuthRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusOK).JSON(CheckAuthResponse{Authenticated: false})
	}

	ok, username, err := h.checkUC.Execute(c.UserContext(), req.Username)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(CheckAuthResponse{Authenticated: false})
	}

	return c.Status(http.StatusOK).JSON(CheckAuthResponse{
		Authenticated: ok,
		Username:      username,
	})
}

// Logout godoc
// @Summary Record a logout
// @Description Stateless: appends one audit entry, nothing to invalidate server-side
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LogoutRequest true "Username logging out"
// @Success 200 {object} MessageResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req LogoutRequest
	if err := c.BodyParser(&req); err == nil {
		h.recorder.Record(c.UserContext(), req.Username, "Logged out")
	}

	return c.Status(http.StatusOK).JSON(MessageResponse{
		Success: true,
		Message: "Logged out successfully",
	})
}

// Health godoc
// @Summary Liveness probe
// @Tags Auth
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *AuthHandler) Health(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(HealthResponse{Status: "Server is running"})
}
