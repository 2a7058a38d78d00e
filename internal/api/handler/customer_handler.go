package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/domain"
	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/ports"
)

// CustomerHandler serves the customer area: dashboard, garage and history.
type CustomerHandler struct {
	vehicles ports.VehicleService
	washes   ports.WashService
	log      zerolog.Logger
}

func NewCustomerHandler(vehicles ports.VehicleService, washes ports.WashService, log zerolog.Logger) *CustomerHandler {
	return &CustomerHandler{vehicles: vehicles, washes: washes, log: log}
}

type customerDashboard struct {
	Vehicles []domain.Vehicle                `json:"vehicles"`
	Upcoming *domain.Page[domain.WashRecord] `json:"upcoming"`
}

// Dashboard returns the customer's vehicles and upcoming washes, fetched
// concurrently.
//
// @Summary      Customer dashboard
// @Tags         customer
// @Produce      json
// @Success      200  {object}  customerDashboard
// @Router       /customer/dashboard [get]
func (h *CustomerHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		vehicles []domain.Vehicle
		upcoming *domain.Page[domain.WashRecord]
	)
	err := inParallel(
		func() (err error) { vehicles, err = h.vehicles.Mine(ctx); return },
		func() (err error) {
			upcoming, err = h.washes.MyWashes(ctx, ports.MyWashesInput{
				FilterType: ports.WashFilterUpcoming,
				Size:       5,
			})
			return
		},
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, customerDashboard{Vehicles: vehicles, Upcoming: upcoming})
}

// MyCars lists the customer's vehicles.
func (h *CustomerHandler) MyCars(c echo.Context) error {
	vehicles, err := h.vehicles.Mine(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vehicles)
}

// WashHistory pages the customer's wash history. filterType is one of TODAY,
// UPCOMING or PAST; page is 0-indexed.
//
// @Summary      Customer wash history
// @Tags         customer
// @Produce      json
// @Param        filterType  query     string  false  "TODAY, UPCOMING or PAST"
// @Param        page        query     int     false  "0-indexed page"
// @Param        size        query     int     false  "page size (default 10)"
// @Success      200         {object}  domain.Page[domain.WashRecord]
// @Router       /customer/washes [get]
func (h *CustomerHandler) WashHistory(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))

	result, err := h.washes.MyWashes(c.Request().Context(), ports.MyWashesInput{
		FilterType: c.QueryParam("filterType"),
		Page:       page,
		Size:       size,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}
