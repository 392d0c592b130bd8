package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hourlog/timetracking-system/internal/api/metrics"
	"github.com/hourlog/timetracking-system/internal/core/ports"
)

// ClientHandler handles HTTP requests for client operations.
type ClientHandler struct {
	service ports.TrackingService
}

func NewClientHandler(service ports.TrackingService) *ClientHandler {
	return &ClientHandler{service: service}
}

// List handles GET /clients.
//
// @Summary      List the authenticated user's clients with total hours
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   clientResponse
// @Failure      401  {object}  errorResponse
// @Router       /clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	summaries, err := h.service.ListClients(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	resp := make([]clientResponse, len(summaries))
	for i, s := range summaries {
		resp[i] = clientResponse{ID: s.ID, Name: s.Name, Rate: s.Rate, TotalHours: s.TotalHours}
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /clients.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClientRequest  true  "Client details"
// @Success      201   {object}  clientResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	summary, err := h.service.CreateClient(c.Request().Context(), userID, req.Name, req.Rate)
	if err != nil {
		return err
	}

	metrics.ClientsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, clientResponse{
		ID:         summary.ID,
		Name:       summary.Name,
		Rate:       summary.Rate,
		TotalHours: summary.TotalHours,
	})
}

// Delete handles DELETE /clients/:id.
//
// @Summary      Delete a client and all of its time entries
// @Tags         clients
// @Security     BearerAuth
// @Param        id  path  string  true  "Client id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteClient(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	metrics.ClientsDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
