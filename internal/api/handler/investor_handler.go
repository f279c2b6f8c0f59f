package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/connectcapital/investor-crm/internal/api/metrics"
	"github.com/connectcapital/investor-crm/internal/core/ports"
)

// InvestorHandler handles HTTP requests for the investor directory.
type InvestorHandler struct {
	service ports.InvestorService
}

func NewInvestorHandler(service ports.InvestorService) *InvestorHandler {
	return &InvestorHandler{service: service}
}

// Create handles POST /v1/investors.
//
// @Summary      Add an investor to the pipeline
// @Tags         investors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createInvestorRequest  true  "Investor details"
// @Success      201   {object}  investorResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/investors [post]
func (h *InvestorHandler) Create(c echo.Context) error {
	var req createInvestorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	inv, err := h.service.CreateInvestor(c.Request().Context(), ports.CreateInvestorInput{
		OwnerID:                userID,
		Name:                   req.Name,
		Firm:                   req.Firm,
		Email:                  req.Email,
		LinkedInURL:            req.LinkedInURL,
		InvestmentFocus:        req.InvestmentFocus,
		FundingStagePreference: req.FundingStagePreference,
		Location:               req.Location,
		MinCheckSize:           req.CheckSize.Min,
		MaxCheckSize:           req.CheckSize.Max,
		PortfolioCompanies:     req.PortfolioCompanies,
		Tags:                   req.Tags,
		Notes:                  req.Notes,
	})
	if err != nil {
		return err
	}
	metrics.InvestorsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, toInvestorResponse(inv))
}

// Get handles GET /v1/investors/:id.
//
// @Summary      Get an investor
// @Tags         investors
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Investor ID"
// @Success      200  {object}  investorResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/investors/{id} [get]
func (h *InvestorHandler) Get(c echo.Context) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	inv, err := h.service.GetInvestor(c.Request().Context(), ports.GetInvestorInput{
		InvestorID: c.Param("id"),
		Role:       role,
		OwnerID:    userID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toInvestorResponse(inv))
}

// List handles GET /v1/investors.
//
// @Summary      List investors
// @Tags         investors
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by pipeline status"
// @Param        focus   query     string  false  "Filter by investment focus"
// @Param        stage   query     string  false  "Filter by funding stage preference"
// @Param        search  query     string  false  "Case-insensitive search on name and firm"
// @Param        from    query     string  false  "Created-at lower bound (RFC 3339)"
// @Param        to      query     string  false  "Created-at upper bound (RFC 3339)"
// @Param        page    query     int     false  "Page number (1-based)"
// @Param        limit   query     int     false  "Page size (max 100)"
// @Success      200     {object}  listInvestorsResponse
// @Failure      400     {object}  map[string]string
// @Failure      401     {object}  map[string]string
// @Router       /v1/investors [get]
func (h *InvestorHandler) List(c echo.Context) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	from, err := parseTimeParam(c.QueryParam("from"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid 'from' timestamp")
	}
	to, err := parseTimeParam(c.QueryParam("to"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid 'to' timestamp")
	}

	res, err := h.service.ListInvestors(c.Request().Context(), ports.ListInvestorsInput{
		Role:    role,
		OwnerID: userID,
		Status:  c.QueryParam("status"),
		Focus:   c.QueryParam("focus"),
		Stage:   c.QueryParam("stage"),
		Search:  c.QueryParam("search"),
		From:    from,
		To:      to,
		Page:    page,
		Limit:   limit,
	})
	if err != nil {
		return err
	}

	items := make([]investorResponse, 0, len(res.Items))
	for _, inv := range res.Items {
		items = append(items, toInvestorResponse(inv))
	}

	return c.JSON(http.StatusOK, listInvestorsResponse{
		Items:      items,
		Total:      res.Total,
		Page:       res.Page,
		Limit:      res.Limit,
		TotalPages: res.TotalPages,
	})
}

func parseTimeParam(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, s)
}
