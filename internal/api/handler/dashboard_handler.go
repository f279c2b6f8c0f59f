package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/connectcapital/investor-crm/internal/core/ports"
)

// DashboardHandler serves pipeline analytics.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

type statusSliceResponse struct {
	Status     string  `json:"status"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type pipelineSummaryResponse struct {
	TotalInvestors int64                 `json:"total_investors"`
	ByStatus       []statusSliceResponse `json:"by_status"`
	Contacted      int64                 `json:"contacted"`
	ResponseRate   float64               `json:"response_rate"`
}

// Pipeline handles GET /v1/dashboard/pipeline.
//
// @Summary      Pipeline summary for the caller
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  pipelineSummaryResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/dashboard/pipeline [get]
func (h *DashboardHandler) Pipeline(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	summary, err := h.service.PipelineSummary(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	byStatus := make([]statusSliceResponse, 0, len(summary.ByStatus))
	for _, s := range summary.ByStatus {
		byStatus = append(byStatus, statusSliceResponse{
			Status:     s.Status,
			Count:      s.Count,
			Percentage: s.Percentage,
		})
	}

	return c.JSON(http.StatusOK, pipelineSummaryResponse{
		TotalInvestors: summary.TotalInvestors,
		ByStatus:       byStatus,
		Contacted:      summary.Contacted,
		ResponseRate:   summary.ResponseRate,
	})
}
