package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/domain"
	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/ports"
)

// AdminHandler serves the admin area: dashboard, customers, cleaners,
// subscriptions, plans and team.
type AdminHandler struct {
	customers     ports.CustomerService
	cleaners      ports.CleanerService
	vehicles      ports.VehicleService
	subscriptions ports.SubscriptionService
	team          ports.TeamService
	washes        ports.WashService
	log           zerolog.Logger
}

func NewAdminHandler(
	customers ports.CustomerService,
	cleaners ports.CleanerService,
	vehicles ports.VehicleService,
	subscriptions ports.SubscriptionService,
	team ports.TeamService,
	washes ports.WashService,
	log zerolog.Logger,
) *AdminHandler {
	return &AdminHandler{
		customers:     customers,
		cleaners:      cleaners,
		vehicles:      vehicles,
		subscriptions: subscriptions,
		team:          team,
		washes:        washes,
		log:           log,
	}
}

type adminDashboard struct {
	TotalCustomers int                 `json:"totalCustomers"`
	TotalWashes    int                 `json:"totalWashes"`
	Cleaners       []domain.Cleaner    `json:"cleaners"`
	TodayWashes    []domain.WashRecord `json:"todayWashes"`
}

// Dashboard aggregates the three independent dashboard resources. The fetches
// run concurrently; any failure fails the page, matching all-or-nothing batch
// semantics.
//
// @Summary      Admin dashboard
// @Tags         admin
// @Produce      json
// @Success      200  {object}  adminDashboard
// @Router       /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		cleaners  []domain.Cleaner
		washes    []domain.WashRecord
		customers []domain.Customer
	)
	err := inParallel(
		func() (err error) { cleaners, err = h.cleaners.List(ctx, ""); return },
		func() (err error) { washes, err = h.washes.Today(ctx); return },
		func() (err error) { customers, err = h.customers.List(ctx, ""); return },
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, adminDashboard{
		TotalCustomers: len(customers),
		TotalWashes:    len(washes),
		Cleaners:       cleaners,
		TodayWashes:    washes,
	})
}

// Customers lists customers, filtered by the optional query parameter.
//
// @Summary      List customers
// @Tags         admin
// @Produce      json
// @Param        query  query     string  false  "Name or mobile filter"
// @Success      200    {array}   domain.Customer
// @Router       /admin/customers [get]
func (h *AdminHandler) Customers(c echo.Context) error {
	customers, err := h.customers.List(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// CustomerDetail returns one customer with vehicles, plus payments and wash
// history fetched concurrently for the detail tabs.
func (h *AdminHandler) CustomerDetail(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	var (
		customer *domain.Customer
		payments []domain.Payment
		history  []domain.WashHistoryEntry
	)
	err := inParallel(
		func() (err error) { customer, err = h.customers.Get(ctx, id); return },
		func() (err error) { payments, err = h.customers.Payments(ctx, id); return },
		func() (err error) { history, err = h.customers.History(ctx, id); return },
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"customer": customer,
		"payments": payments,
		"history":  history,
	})
}

type createCustomerRequest struct {
	Name    string `json:"name"    validate:"required"`
	Mobile  string `json:"mobile"  validate:"required,len=10,numeric"`
	Email   string `json:"email"   validate:"omitempty,email"`
	PIN     string `json:"pin"     validate:"required,len=4,numeric"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// CreateCustomer registers a customer from the admin area.
func (h *AdminHandler) CreateCustomer(c echo.Context) error {
	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	customer, err := h.customers.Create(c.Request().Context(), ports.CreateCustomerInput{
		Name:    req.Name,
		Mobile:  req.Mobile,
		Email:   req.Email,
		PIN:     req.PIN,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		ZipCode: req.ZipCode,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, customer)
}

type addVehicleRequest struct {
	Make         string `json:"make"         validate:"required"`
	Model        string `json:"model"        validate:"required"`
	Year         int    `json:"year"         validate:"required,gt=1950"`
	Color        string `json:"color"`
	LicensePlate string `json:"licensePlate" validate:"required"`
	Type         string `json:"type"         validate:"required"`
}

// AddVehicle attaches a vehicle to the customer in the path.
func (h *AdminHandler) AddVehicle(c echo.Context) error {
	var req addVehicleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	vehicle, err := h.vehicles.Add(c.Request().Context(), c.Param("id"), ports.AddVehicleInput{
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		Color:        req.Color,
		LicensePlate: req.LicensePlate,
		Type:         req.Type,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, vehicle)
}

// DeleteVehicle removes a vehicle.
func (h *AdminHandler) DeleteVehicle(c echo.Context) error {
	if err := h.vehicles.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Cleaners lists cleaners, filtered by the optional query parameter.
func (h *AdminHandler) Cleaners(c echo.Context) error {
	cleaners, err := h.cleaners.List(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cleaners)
}

// CleanerDetail returns one cleaner.
func (h *AdminHandler) CleanerDetail(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid cleaner id")
	}
	cleaner, err := h.cleaners.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cleaner)
}

type upsertCleanerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Phone    string `json:"phone"    validate:"required,len=10,numeric"`
	Password string `json:"password" validate:"required,min=4"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
}

// CreateCleaner adds a cleaner to the roster.
func (h *AdminHandler) CreateCleaner(c echo.Context) error {
	var req upsertCleanerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	cleaner, err := h.cleaners.Create(c.Request().Context(), ports.UpsertCleanerInput{
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		Password:          req.Password,
		ServiceProviderID: sess.User.ServiceProviderID,
		Address:           req.Address,
		City:              req.City,
		State:             req.State,
		ZipCode:           req.ZipCode,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, cleaner)
}

// UpdateCleaner updates a cleaner in place.
func (h *AdminHandler) UpdateCleaner(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid cleaner id")
	}

	var req upsertCleanerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	cleaner, err := h.cleaners.Update(c.Request().Context(), id, ports.UpsertCleanerInput{
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		Password:          req.Password,
		ServiceProviderID: sess.User.ServiceProviderID,
		Address:           req.Address,
		City:              req.City,
		State:             req.State,
		ZipCode:           req.ZipCode,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cleaner)
}

// DeactivateCleaner soft-deletes a cleaner.
func (h *AdminHandler) DeactivateCleaner(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid cleaner id")
	}
	if err := h.cleaners.Deactivate(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Subscriptions lists all subscriptions for the provider.
func (h *AdminHandler) Subscriptions(c echo.Context) error {
	subs, err := h.subscriptions.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, subs)
}

type assignCleanerRequest struct {
	CleanerID int `json:"cleanerId" validate:"required,gt=0"`
}

// AssignCleaner attaches a cleaner to the subscription in the path.
func (h *AdminHandler) AssignCleaner(c echo.Context) error {
	subID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid subscription id")
	}

	var req assignCleanerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.subscriptions.AssignCleaner(c.Request().Context(), subID, req.CleanerID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Plans lists the available subscription plans.
func (h *AdminHandler) Plans(c echo.Context) error {
	plans, err := h.subscriptions.Plans(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plans)
}

type createPlanRequest struct {
	Name          string  `json:"name"          validate:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"         validate:"required,gt=0"`
	DurationDays  int     `json:"durationDays"  validate:"required,gt=0"`
	WashesPerWeek int     `json:"washesPerWeek" validate:"required,gt=0"`
	Active        bool    `json:"active"`
}

// CreatePlan adds a subscription plan.
func (h *AdminHandler) CreatePlan(c echo.Context) error {
	var req createPlanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	plan, err := h.subscriptions.CreatePlan(c.Request().Context(), ports.CreatePlanInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		DurationDays:  req.DurationDays,
		WashesPerWeek: req.WashesPerWeek,
		Active:        req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, plan)
}

// Team lists office-side team members.
func (h *AdminHandler) Team(c echo.Context) error {
	members, err := h.team.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, members)
}

type createTeamMemberRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Phone    string `json:"phone"    validate:"required,len=10,numeric"`
	Password string `json:"password" validate:"required,min=4"`
}

// AddTeamMember adds a team member.
func (h *AdminHandler) AddTeamMember(c echo.Context) error {
	var req createTeamMemberRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	member, err := h.team.Add(c.Request().Context(), ports.CreateTeamMemberInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, member)
}

// RemoveTeamMember deactivates a team member.
func (h *AdminHandler) RemoveTeamMember(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	if err := h.team.Remove(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
