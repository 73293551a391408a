package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cbhud/trackrig/internal/api/metrics"
	"github.com/cbhud/trackrig/internal/core/domain"
	"github.com/cbhud/trackrig/internal/core/ports"
)

type MaintenanceHandler struct {
	maintenance ports.MaintenanceService
}

func NewMaintenanceHandler(maintenance ports.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenance: maintenance}
}

type recordMaintenanceRequest struct {
	WorkstationID string `json:"workstation_id" validate:"required"`
	TypeName      string `json:"type_name" validate:"required"`
	Description   string `json:"description"`
	IntervalDays  int    `json:"interval_days" validate:"omitempty,min=1"`
	Notes         string `json:"notes"`
	PerformedAt   string `json:"performed_at" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// Record logs service work on a workstation. The performing user is the
// authenticated principal; it cannot be set through the body.
//
// @Summary      Record maintenance work
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Param        body  body      recordMaintenanceRequest  true  "Maintenance details"
// @Success      201   {object}  domain.MaintenanceLog
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/maintenance [post]
func (h *MaintenanceHandler) Record(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	var req recordMaintenanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.RecordMaintenanceInput{
		WorkstationID: req.WorkstationID,
		Type: domain.MaintenanceType{
			Name:         req.TypeName,
			Description:  req.Description,
			IntervalDays: req.IntervalDays,
			Active:       true,
		},
		PerformedBy: user.ID,
		Notes:       req.Notes,
	}
	if req.PerformedAt != "" {
		t, err := time.Parse(time.RFC3339, req.PerformedAt)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid performed_at, want RFC 3339")
		}
		in.PerformedAt = t
	}

	log, err := h.maintenance.Record(c.Request().Context(), in)
	if err != nil {
		return err
	}

	metrics.InventoryWritesTotal.WithLabelValues("maintenance_log", "create").Inc()
	return c.JSON(http.StatusCreated, log)
}

// ListByWorkstation returns the maintenance history of one workstation.
//
// @Summary      List maintenance logs for a workstation
// @Tags         maintenance
// @Produce      json
// @Param        id   path      string  true  "Workstation id"
// @Success      200  {array}   domain.MaintenanceLog
// @Failure      404  {object}  map[string]string
// @Router       /api/maintenance/workstation/{id} [get]
func (h *MaintenanceHandler) ListByWorkstation(c echo.Context) error {
	logs, err := h.maintenance.ListByWorkstation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logs)
}

// List returns all maintenance logs.
//
// @Summary      List all maintenance logs
// @Tags         maintenance
// @Produce      json
// @Success      200  {array}  domain.MaintenanceLog
// @Router       /api/maintenance [get]
func (h *MaintenanceHandler) List(c echo.Context) error {
	logs, err := h.maintenance.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logs)
}
