package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/connectcapital/investor-crm/internal/core/ports"
)

// maxPictureBytes caps profile picture uploads at 5 MiB.
const maxPictureBytes = 5 << 20

// ProfileHandler handles extended-profile CRUD for the authenticated user.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

type updateProfileRequest struct {
	StartupName        *string  `json:"startup_name"`
	Industry           []string `json:"industry"`
	Stage              *string  `json:"stage"`
	FundingGoal        *float64 `json:"funding_goal"`
	StartupDescription *string  `json:"startup_description"`
	Website            *string  `json:"website"`
	OrganizationName   *string  `json:"organization_name"`
	Focus              *string  `json:"focus"`
	RaisingFor         *string  `json:"raising_for"`
	FundSizeGoal       *float64 `json:"fund_size_goal"`
	EmailConnected     *bool    `json:"email_connected"`
	EmailProvider      *string  `json:"email_provider"`
}

type uploadPictureResponse struct {
	URL string `json:"url"`
}

// Get handles GET /v1/profile.
//
// @Summary      Fetch the caller's extended profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.ProfileData
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	profile, err := h.service.FetchProfile(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Update handles PATCH /v1/profile. Absent fields are left untouched.
//
// @Summary      Partially update the caller's profile
// @Tags         profile
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  updateProfileRequest  true  "Fields to update"
// @Success      204
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/profile [patch]
func (h *ProfileHandler) Update(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err = h.service.UpdateProfile(c.Request().Context(), userID, ports.ProfilePatch{
		StartupName:        req.StartupName,
		Industry:           req.Industry,
		Stage:              req.Stage,
		FundingGoal:        req.FundingGoal,
		StartupDescription: req.StartupDescription,
		Website:            req.Website,
		OrganizationName:   req.OrganizationName,
		Focus:              req.Focus,
		RaisingFor:         req.RaisingFor,
		FundSizeGoal:       req.FundSizeGoal,
		EmailConnected:     req.EmailConnected,
		EmailProvider:      req.EmailProvider,
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UploadPicture handles POST /v1/profile/picture (multipart form, field "file").
//
// @Summary      Upload a profile picture
// @Tags         profile
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Image file"
// @Success      200   {object}  uploadPictureResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/profile/picture [post]
func (h *ProfileHandler) UploadPicture(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file")
	}
	if fileHeader.Size > maxPictureBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file too large")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxPictureBytes))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}

	url, err := h.service.UploadProfilePicture(c.Request().Context(), userID, fileHeader.Filename, data)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, uploadPictureResponse{URL: url})
}

// Delete handles DELETE /v1/profile.
//
// @Summary      Delete the caller's profile
// @Tags         profile
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/profile [delete]
func (h *ProfileHandler) Delete(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteProfile(c.Request().Context(), userID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
