package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cbhud/trackrig/internal/api/metrics"
	"github.com/cbhud/trackrig/internal/core/domain"
	"github.com/cbhud/trackrig/internal/core/ports"
)

type WorkstationHandler struct {
	workstations ports.WorkstationService
}

func NewWorkstationHandler(workstations ports.WorkstationService) *WorkstationHandler {
	return &WorkstationHandler{workstations: workstations}
}

type createWorkstationRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	Status string `json:"status" validate:"omitempty,oneof=active inactive maintenance"`
	GridX  int    `json:"grid_x"`
	GridY  int    `json:"grid_y"`
}

type updateWorkstationRequest struct {
	Name   *string `json:"name"`
	Status *string `json:"status" validate:"omitempty,oneof=active inactive maintenance"`
	GridX  *int    `json:"grid_x"`
	GridY  *int    `json:"grid_y"`
}

func (r updateWorkstationRequest) toInput() ports.UpdateWorkstationInput {
	in := ports.UpdateWorkstationInput{
		Name:  r.Name,
		GridX: r.GridX,
		GridY: r.GridY,
	}
	if r.Status != nil {
		s := domain.WorkstationStatus(*r.Status)
		in.Status = &s
	}
	return in
}

// Create registers a new workstation.
//
// @Summary      Create a workstation
// @Tags         workstations
// @Accept       json
// @Produce      json
// @Param        body  body      createWorkstationRequest  true  "Workstation details"
// @Success      201   {object}  domain.Workstation
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/workstations [post]
func (h *WorkstationHandler) Create(c echo.Context) error {
	var req createWorkstationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	w, err := h.workstations.Create(c.Request().Context(), ports.CreateWorkstationInput{
		Name:   req.Name,
		Status: domain.WorkstationStatus(req.Status),
		GridX:  req.GridX,
		GridY:  req.GridY,
	})
	if err != nil {
		return err
	}

	metrics.InventoryWritesTotal.WithLabelValues("workstation", "create").Inc()
	return c.JSON(http.StatusCreated, w)
}

// Get returns a single workstation by id.
//
// @Summary      Get a workstation
// @Tags         workstations
// @Produce      json
// @Param        id   path      string  true  "Workstation id"
// @Success      200  {object}  domain.Workstation
// @Failure      404  {object}  map[string]string
// @Router       /api/workstations/{id} [get]
func (h *WorkstationHandler) Get(c echo.Context) error {
	w, err := h.workstations.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, w)
}

// List returns all workstations.
//
// @Summary      List workstations
// @Tags         workstations
// @Produce      json
// @Success      200  {array}  domain.Workstation
// @Router       /api/workstations [get]
func (h *WorkstationHandler) List(c echo.Context) error {
	ws, err := h.workstations.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ws)
}

// Update applies a partial update to a workstation.
//
// @Summary      Update a workstation
// @Tags         workstations
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "Workstation id"
// @Param        body  body      updateWorkstationRequest  true  "Fields to update"
// @Success      200   {object}  domain.Workstation
// @Failure      404   {object}  map[string]string
// @Router       /api/workstations/{id} [patch]
func (h *WorkstationHandler) Update(c echo.Context) error {
	var req updateWorkstationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	w, err := h.workstations.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}

	metrics.InventoryWritesTotal.WithLabelValues("workstation", "update").Inc()
	return c.JSON(http.StatusOK, w)
}

// Delete removes a workstation. ADMIN only.
//
// @Summary      Delete a workstation
// @Tags         workstations
// @Param        id  path  string  true  "Workstation id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/workstations/{id} [delete]
func (h *WorkstationHandler) Delete(c echo.Context) error {
	if err := h.workstations.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.InventoryWritesTotal.WithLabelValues("workstation", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
