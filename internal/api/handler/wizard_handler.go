package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/wizard"
)

// WizardHandler exposes the two-step subscription wizard. Every mutation
// returns the refreshed wizard state so the view can re-render from it.
type WizardHandler struct {
	wizard *wizard.Wizard
}

func NewWizardHandler(w *wizard.Wizard) *WizardHandler {
	return &WizardHandler{wizard: w}
}

// State returns the current wizard snapshot.
func (h *WizardHandler) State(c echo.Context) error {
	return c.JSON(http.StatusOK, h.wizard.Snapshot())
}

// Open resets the wizard to step one and preloads plans.
//
// @Summary      Open the subscription wizard
// @Tags         wizard
// @Produce      json
// @Success      200  {object}  wizard.State
// @Router       /admin/subscriptions/wizard/open [post]
func (h *WizardHandler) Open(c echo.Context) error {
	h.wizard.Open(c.Request().Context())
	return c.JSON(http.StatusOK, h.wizard.Snapshot())
}

// Close discards the wizard state.
func (h *WizardHandler) Close(c echo.Context) error {
	h.wizard.Close()
	return c.JSON(http.StatusOK, h.wizard.Snapshot())
}

type wizardSearchRequest struct {
	Query string `json:"query"`
}

// Search records a keystroke in the customer search box. The backend query
// fires only after the debounce window elapses with no further input, so the
// snapshot returned here reflects the query text, not yet its results.
//
// @Summary      Search customers in the wizard
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        body  body      wizardSearchRequest  true  "Search text"
// @Success      200   {object}  wizard.State
// @Router       /admin/subscriptions/wizard/search [post]
func (h *WizardHandler) Search(c echo.Context) error {
	var req wizardSearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	h.wizard.Search(req.Query)
	return c.JSON(http.StatusOK, h.wizard.Snapshot())
}

// SelectCustomer loads the chosen customer and advances to step two.
func (h *WizardHandler) SelectCustomer(c echo.Context) error {
	if err := h.wizard.SelectCustomer(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.wizard.Snapshot())
}

type wizardDetailsRequest struct {
	VehicleID string `json:"vehicleId"`
	PlanID    string `json:"planId"`
	StartDate string `json:"startDate"`
}

// Details records the step-two selection: vehicle, plan and start date.
func (h *WizardHandler) Details(c echo.Context) error {
	var req wizardDetailsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	h.wizard.Choose(req.VehicleID, req.PlanID)
	if req.StartDate != "" {
		h.wizard.SetStartDate(req.StartDate)
	}
	return c.JSON(http.StatusOK, h.wizard.Snapshot())
}

type wizardDayRequest struct {
	Day string `json:"day" validate:"required,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
}

// ToggleDay flips a scheduled weekday on or off.
func (h *WizardHandler) ToggleDay(c echo.Context) error {
	var req wizardDayRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	h.wizard.ToggleDay(req.Day)
	return c.JSON(http.StatusOK, h.wizard.Snapshot())
}

// Submit creates the subscription. On failure the wizard stays open with an
// inline error carried in the returned state.
//
// @Summary      Submit the subscription wizard
// @Tags         wizard
// @Produce      json
// @Success      201  {object}  domain.Subscription
// @Failure      422  {object}  wizard.State
// @Router       /admin/subscriptions/wizard/submit [post]
func (h *WizardHandler) Submit(c echo.Context) error {
	sub, err := h.wizard.Submit(c.Request().Context())
	if err != nil || sub == nil {
		return c.JSON(http.StatusUnprocessableEntity, h.wizard.Snapshot())
	}
	return c.JSON(http.StatusCreated, sub)
}
