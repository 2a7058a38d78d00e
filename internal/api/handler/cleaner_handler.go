package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/domain"
	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/ports"
)

// CleanerHandler serves the cleaner area: assignments, history, status
// updates and attendance.
type CleanerHandler struct {
	washes ports.WashService
	log    zerolog.Logger
}

func NewCleanerHandler(washes ports.WashService, log zerolog.Logger) *CleanerHandler {
	return &CleanerHandler{washes: washes, log: log}
}

type cleanerDashboard struct {
	Assigned  []domain.WashAssignment `json:"assigned"`
	ClockedIn bool                    `json:"clockedIn"`
}

// Dashboard returns today's assignments and the clock-in state, fetched
// concurrently.
//
// @Summary      Cleaner dashboard
// @Tags         cleaner
// @Produce      json
// @Success      200  {object}  cleanerDashboard
// @Router       /cleaner/dashboard [get]
func (h *CleanerHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		assigned  []domain.WashAssignment
		clockedIn bool
	)
	err := inParallel(
		func() (err error) { assigned, err = h.washes.Assigned(ctx); return },
		func() (err error) { clockedIn, err = h.washes.ClockInStatus(ctx); return },
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cleanerDashboard{Assigned: assigned, ClockedIn: clockedIn})
}

// History lists the cleaner's past washes.
func (h *CleanerHandler) History(c echo.Context) error {
	history, err := h.washes.CleanerHistory(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, history)
}

type updateWashStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=IN_PROGRESS COMPLETED VEHICLE_NOT_AVAILABLE"`
	Notes  string `json:"notes"`
}

// UpdateWashStatus moves a wash through its lifecycle.
//
// @Summary      Update wash status
// @Tags         cleaner
// @Accept       json
// @Produce      json
// @Param        id    path      int                      true  "Wash id"
// @Param        body  body      updateWashStatusRequest  true  "New status"
// @Success      200   {object}  domain.WashAssignment
// @Router       /cleaner/washes/{id}/status [put]
func (h *CleanerHandler) UpdateWashStatus(c echo.Context) error {
	washID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid wash id")
	}

	var req updateWashStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	wash, err := h.washes.UpdateStatus(c.Request().Context(), washID, ports.UpdateWashStatusInput{
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, wash)
}

type attendanceRequest struct {
	Latitude  float64 `json:"latitude"  validate:"required"`
	Longitude float64 `json:"longitude" validate:"required"`
}

// ClockIn records the start of a shift with the cleaner's location.
func (h *CleanerHandler) ClockIn(c echo.Context) error {
	var req attendanceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.washes.ClockIn(c.Request().Context(), req.Latitude, req.Longitude); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ClockOut records the end of a shift.
func (h *CleanerHandler) ClockOut(c echo.Context) error {
	var req attendanceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.washes.ClockOut(c.Request().Context(), req.Latitude, req.Longitude); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
