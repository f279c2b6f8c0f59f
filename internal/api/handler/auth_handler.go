package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/connectcapital/investor-crm/internal/api/metrics"
	"github.com/connectcapital/investor-crm/internal/auth"
	"github.com/connectcapital/investor-crm/internal/core/domain"
	"github.com/connectcapital/investor-crm/internal/core/ports"
	"github.com/connectcapital/investor-crm/internal/session"
)

// AuthHandler exposes the session lifecycle over HTTP. It goes through the
// session provider rather than the raw service so the reactive snapshot stays
// in sync with what the API hands out.
type AuthHandler struct {
	provider *session.Provider
	tokens   *auth.TokenManager
}

func NewAuthHandler(provider *session.Provider, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{provider: provider, tokens: tokens}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"     validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=founder fundraisingPro"`

	// Founder optionals.
	CompanyName  string `json:"company_name,omitempty"`
	Industry     string `json:"industry,omitempty"`
	FundingStage string `json:"funding_stage,omitempty"`

	// Fundraising pro optionals.
	Specialties []string `json:"specialties,omitempty"`
	Experience  string   `json:"experience,omitempty"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user"`
}

type sessionResponse struct {
	User            *domain.User `json:"user"`
	IsAuthenticated bool         `json:"is_authenticated"`
	IsLoading       bool         `json:"is_loading"`
}

// Login authenticates against the credential directory and opens a session.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.provider.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	token, err := h.tokens.Generate(user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// Signup creates a new account and opens a session for it.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.provider.Signup(c.Request().Context(), ports.SignupInput{
		Email:        req.Email,
		Name:         req.Name,
		Role:         domain.Role(req.Role),
		CompanyName:  req.CompanyName,
		Industry:     req.Industry,
		FundingStage: req.FundingStage,
		Specialties:  req.Specialties,
		Experience:   req.Experience,
	}, req.Password)
	if err != nil {
		return err
	}
	metrics.SignupsTotal.WithLabelValues(string(user.Role)).Inc()

	token, err := h.tokens.Generate(user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{Token: token, User: user})
}

// Logout clears the session. Always succeeds.
//
// @Summary      Log out
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.provider.Logout(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

// Session reports the current session snapshot, rehydrated from persisted
// storage at startup. Anonymous is a normal answer, not an error.
//
// @Summary      Current session state
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	snap := h.provider.Snapshot()
	return c.JSON(http.StatusOK, sessionResponse{
		User:            snap.User,
		IsAuthenticated: snap.IsAuthenticated,
		IsLoading:       snap.IsLoading,
	})
}

// Me returns the session user. Routes using this handler sit behind the
// session guard, so reaching it implies an authenticated snapshot.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	snap := h.provider.Snapshot()
	return c.JSON(http.StatusOK, sessionResponse{
		User:            snap.User,
		IsAuthenticated: snap.IsAuthenticated,
	})
}
