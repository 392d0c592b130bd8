package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hourlog/timetracking-system/internal/api/metrics"
	"github.com/hourlog/timetracking-system/internal/core/domain"
	"github.com/hourlog/timetracking-system/internal/core/ports"
)

// EntryHandler handles HTTP requests for time entry operations.
type EntryHandler struct {
	service ports.TrackingService
}

func NewEntryHandler(service ports.TrackingService) *EntryHandler {
	return &EntryHandler{service: service}
}

// List handles GET /clients/:id/entries.
//
// @Summary      List a client's time entries, most recent date first
// @Tags         entries
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Client id"
// @Success      200  {array}   entryResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /clients/{id}/entries [get]
func (h *EntryHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	entries, err := h.service.ListEntries(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}

	resp := make([]entryResponse, len(entries))
	for i, e := range entries {
		resp[i] = toEntryResponse(e)
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /clients/:id/entries.
//
// @Summary      Log hours against a client
// @Tags         entries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id               path      string              true   "Client id"
// @Param        Idempotency-Key  header    string              false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      createEntryRequest  true   "Entry details"
// @Success      201  {object}  entryResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /clients/{id}/entries [post]
func (h *EntryHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.service.CreateEntry(c.Request().Context(), userID, ports.CreateEntryInput{
		ClientID:       c.Param("id"),
		Date:           req.Date,
		Hours:          req.Hours,
		Note:           req.Note,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return err
	}

	metrics.EntriesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toEntryResponse(entry))
}

// Delete handles DELETE /clients/:id/entries/:entry_id.
//
// @Summary      Delete a time entry
// @Tags         entries
// @Security     BearerAuth
// @Param        id        path  string  true  "Client id"
// @Param        entry_id  path  string  true  "Entry id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /clients/{id}/entries/{entry_id} [delete]
func (h *EntryHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteEntry(c.Request().Context(), userID, c.Param("id"), c.Param("entry_id")); err != nil {
		return err
	}

	metrics.EntriesDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

func toEntryResponse(e *domain.TimeEntry) entryResponse {
	return entryResponse{
		ID:       e.ID,
		ClientID: e.ClientID,
		Date:     e.Date,
		Hours:    e.Hours,
		Note:     e.Note,
	}
}
