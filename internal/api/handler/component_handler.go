package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cbhud/trackrig/internal/api/metrics"
	"github.com/cbhud/trackrig/internal/core/domain"
	"github.com/cbhud/trackrig/internal/core/ports"
)

type ComponentHandler struct {
	components ports.ComponentService
}

func NewComponentHandler(components ports.ComponentService) *ComponentHandler {
	return &ComponentHandler{components: components}
}

// Create registers a new hardware component.
//
// @Summary      Create a component
// @Tags         components
// @Accept       json
// @Produce      json
// @Param        body  body      createComponentRequest  true  "Component details"
// @Success      201   {object}  domain.Component
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/components [post]
func (h *ComponentHandler) Create(c echo.Context) error {
	var req createComponentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in, err := req.toInput()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date format, want YYYY-MM-DD")
	}

	component, err := h.components.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}

	metrics.InventoryWritesTotal.WithLabelValues("component", "create").Inc()
	return c.JSON(http.StatusCreated, component)
}

// Get returns a single component by id.
//
// @Summary      Get a component
// @Tags         components
// @Produce      json
// @Param        id   path      string  true  "Component id"
// @Success      200  {object}  domain.Component
// @Failure      404  {object}  map[string]string
// @Router       /api/components/{id} [get]
func (h *ComponentHandler) Get(c echo.Context) error {
	component, err := h.components.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, component)
}

// List returns components, optionally filtered by category, status, or
// workstation.
//
// @Summary      List components
// @Tags         components
// @Produce      json
// @Param        category        query     string  false  "Filter by category"
// @Param        status          query     string  false  "Filter by status"
// @Param        workstation_id  query     string  false  "Filter by workstation"
// @Success      200  {array}   domain.Component
// @Router       /api/components [get]
func (h *ComponentHandler) List(c echo.Context) error {
	filter := domain.ComponentFilter{
		Category:      domain.ComponentCategory(c.QueryParam("category")),
		Status:        domain.ComponentStatus(c.QueryParam("status")),
		WorkstationID: c.QueryParam("workstation_id"),
	}

	components, err := h.components.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, components)
}

// Update applies a partial update to a component.
//
// @Summary      Update a component
// @Tags         components
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Component id"
// @Param        body  body      updateComponentRequest  true  "Fields to update"
// @Success      200   {object}  domain.Component
// @Failure      404   {object}  map[string]string
// @Router       /api/components/{id} [patch]
func (h *ComponentHandler) Update(c echo.Context) error {
	var req updateComponentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	component, err := h.components.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}

	metrics.InventoryWritesTotal.WithLabelValues("component", "update").Inc()
	return c.JSON(http.StatusOK, component)
}

// Assign mounts a component on a workstation.
//
// @Summary      Assign a component to a workstation
// @Tags         components
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Component id"
// @Param        body  body      assignComponentRequest  true  "Target workstation"
// @Success      200   {object}  domain.Component
// @Failure      404   {object}  map[string]string
// @Router       /api/components/{id}/assign [post]
func (h *ComponentHandler) Assign(c echo.Context) error {
	var req assignComponentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	component, err := h.components.Assign(c.Request().Context(), c.Param("id"), req.WorkstationID)
	if err != nil {
		return err
	}

	metrics.InventoryWritesTotal.WithLabelValues("component", "update").Inc()
	return c.JSON(http.StatusOK, component)
}

// Unassign returns a component to storage.
//
// @Summary      Unassign a component
// @Tags         components
// @Produce      json
// @Param        id   path      string  true  "Component id"
// @Success      200  {object}  domain.Component
// @Failure      404  {object}  map[string]string
// @Router       /api/components/{id}/assign [delete]
func (h *ComponentHandler) Unassign(c echo.Context) error {
	component, err := h.components.Unassign(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	metrics.InventoryWritesTotal.WithLabelValues("component", "update").Inc()
	return c.JSON(http.StatusOK, component)
}

// Delete removes a component. ADMIN only.
//
// @Summary      Delete a component
// @Tags         components
// @Param        id  path  string  true  "Component id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/components/{id} [delete]
func (h *ComponentHandler) Delete(c echo.Context) error {
	if err := h.components.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.InventoryWritesTotal.WithLabelValues("component", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
