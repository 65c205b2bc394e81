package handler

import (
	"context"

	"careerfit/internal/domain"
	"careerfit/internal/dto"
	"careerfit/internal/util"
	"careerfit/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const oauthStateCookie = "oauth_state"

// Authenticator is the auth surface the handler depends on.
type Authenticator interface {
	SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.TokenResponse, error)
	SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.TokenResponse, error)
	GetGoogleLoginURL(state string) string
	HandleGoogleCallback(ctx context.Context, code, receivedState, expectedState string) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshTokenString string) (*dto.TokenResponse, error)
}

// AuthHandler serves signup, signin, Google OAuth and token refresh.
type AuthHandler struct {
	service Authenticator
}

func NewAuthHandler(service Authenticator) *AuthHandler {
	return &AuthHandler{service: service}
}

// SignUp godoc
// @Summary Register a new student
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignUpRequest true "Profile"
// @Success 201 {object} dto.TokenResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req dto.SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if err := validation.ValidateSignUpRequest(&req); err != nil {
		return err
	}
	tokens, err := h.service.SignUp(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(tokens)
}

// SignIn godoc
// @Summary Sign in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignInRequest true "Credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /auth/signin [post]
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req dto.SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if err := validation.ValidateSignInRequest(&req); err != nil {
		return err
	}
	tokens, err := h.service.SignIn(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(tokens)
}

// GoogleLogin godoc
// @Summary Redirect to the Google consent screen
// @Tags auth
// @Success 302
// @Router /auth/google/login [get]
func (h *AuthHandler) GoogleLogin(c *fiber.Ctx) error {
	state := util.NewULID()
	c.Cookie(&fiber.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect(h.service.GetGoogleLoginURL(state), fiber.StatusFound)
}

// GoogleCallback godoc
// @Summary Handle the Google OAuth callback
// @Tags auth
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "CSRF state"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *fiber.Ctx) error {
	expectedState := c.Cookies(oauthStateCookie)
	c.ClearCookie(oauthStateCookie)

	tokens, err := h.service.HandleGoogleCallback(c.Context(), c.Query("code"), c.Query("state"), expectedState)
	if err != nil {
		return err
	}
	return c.JSON(tokens)
}

// Refresh godoc
// @Summary Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if req.RefreshToken == "" {
		return domain.NewInvalidInputError("refresh_token is required")
	}
	tokens, err := h.service.RefreshToken(c.Context(), req.RefreshToken)
	if err != nil {
		return err
	}
	return c.JSON(tokens)
}
