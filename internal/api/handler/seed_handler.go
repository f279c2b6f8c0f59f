package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/connectcapital/investor-crm/internal/core/domain"
	"github.com/connectcapital/investor-crm/internal/core/ports"
	"github.com/connectcapital/investor-crm/internal/infrastructure/demo"
)

// SeedHandler loads the demo investor fixtures into the caller's pipeline.
// Intended for demos and local development, not production data.
type SeedHandler struct {
	investors ports.InvestorRepository
}

func NewSeedHandler(investors ports.InvestorRepository) *SeedHandler {
	return &SeedHandler{investors: investors}
}

type seedResponse struct {
	Seeded  int `json:"seeded"`
	Skipped int `json:"skipped"`
}

// SeedDemo handles POST /v1/seed/demo. Already-present fixtures are skipped,
// so the endpoint is safe to call repeatedly.
//
// @Summary      Seed demo investors for the caller
// @Tags         seed
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  seedResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/seed/demo [post]
func (h *SeedHandler) SeedDemo(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var seeded, skipped int
	for _, inv := range demo.Investors(userID) {
		if err := h.investors.Create(c.Request().Context(), inv); err != nil {
			if errors.Is(err, domain.ErrDuplicateInvestor) {
				skipped++
				continue
			}
			return err
		}
		seeded++
	}

	return c.JSON(http.StatusOK, seedResponse{Seeded: seeded, Skipped: skipped})
}
