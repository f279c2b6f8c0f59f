package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/connectcapital/investor-crm/internal/core/ports"
)

// OutreachDispatcher is the interface the handler uses to enqueue contact events.
type OutreachDispatcher interface {
	Enqueue(event ports.ContactEventInput)
	EnqueueBatch(events []ports.ContactEventInput)
}

// OutreachHandler handles contact event ingestion.
type OutreachHandler struct {
	dispatcher OutreachDispatcher
}

// NewOutreachHandler creates an OutreachHandler backed by the given dispatcher.
func NewOutreachHandler(dispatcher OutreachDispatcher) *OutreachHandler {
	return &OutreachHandler{dispatcher: dispatcher}
}

type contactEventRequest struct {
	InvestorID string    `json:"investor_id" validate:"required"`
	Status     string    `json:"status"      validate:"required,oneof=contacted meeting following-up passed interested"`
	Type       string    `json:"type"        validate:"required,oneof=email linkedin call meeting other"`
	Timestamp  time.Time `json:"timestamp"   validate:"required"`
	Source     string    `json:"source"      validate:"required"`
	Notes      string    `json:"notes,omitempty"`
}

type acceptedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}

// Receive handles POST /v1/outreach/events; enqueues a single event, returns 202.
//
// @Summary      Ingest a single contact event
// @Tags         outreach
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      contactEventRequest  true  "Contact event"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/outreach/events [post]
func (h *OutreachHandler) Receive(c echo.Context) error {
	var req contactEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	h.dispatcher.Enqueue(toContactEventInput(req))
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "event accepted"})
}

// ReceiveBatch handles POST /v1/outreach/events/batch; enqueues a batch, returns 202.
//
// @Summary      Ingest a batch of contact events
// @Tags         outreach
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      []contactEventRequest  true  "Array of contact events"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/outreach/events/batch [post]
func (h *OutreachHandler) ReceiveBatch(c echo.Context) error {
	var reqs []contactEventRequest
	if err := c.Bind(&reqs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(reqs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "batch cannot be empty")
	}

	inputs := make([]ports.ContactEventInput, 0, len(reqs))
	for i, req := range reqs {
		if err := c.Validate(&req); err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity,
				fmt.Sprintf("event[%d]: %s", i, err.Error()))
		}
		inputs = append(inputs, toContactEventInput(req))
	}

	h.dispatcher.EnqueueBatch(inputs)
	return c.JSON(http.StatusAccepted, acceptedResponse{
		Message: "events accepted",
		Count:   len(inputs),
	})
}

// toContactEventInput maps the HTTP request to the service DTO.
func toContactEventInput(r contactEventRequest) ports.ContactEventInput {
	return ports.ContactEventInput{
		InvestorID: r.InvestorID,
		Status:     r.Status,
		Type:       r.Type,
		Timestamp:  r.Timestamp,
		Source:     r.Source,
		Notes:      r.Notes,
	}
}
