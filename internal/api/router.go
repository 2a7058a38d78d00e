// Package api wires the HTTP surface: routes, role guards, validation and
// error rendering.
package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/mahenderbytebot-oss/carwash-omni-ui/docs"
	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/api/handler"
	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/api/middleware"
	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/domain"
	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/ports"
	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/wizard"
)

// Dependencies carries everything the router needs. Construction happens in
// main; the router only registers routes.
type Dependencies struct {
	Store         ports.SessionStore
	Auth          ports.AuthService
	Customers     ports.CustomerService
	Cleaners      ports.CleanerService
	Vehicles      ports.VehicleService
	Subscriptions ports.SubscriptionService
	Team          ports.TeamService
	Washes        ports.WashService
	Wizard        *wizard.Wizard

	// BackendURL and Redis feed the readiness probe. Redis is nil when the
	// session slot is file-backed.
	BackendURL string
	Redis      *redis.Client

	Log zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
// The route layout mirrors the page structure: a public auth area and three
// role-guarded areas, one per role.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("carwash_ui"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Store)
	adminHandler := handler.NewAdminHandler(
		deps.Customers, deps.Cleaners, deps.Vehicles,
		deps.Subscriptions, deps.Team, deps.Washes, deps.Log,
	)
	cleanerHandler := handler.NewCleanerHandler(deps.Washes, deps.Log)
	customerHandler := handler.NewCustomerHandler(deps.Vehicles, deps.Washes, deps.Log)
	wizardHandler := handler.NewWizardHandler(deps.Wizard)

	// --- Public routes ---
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/login")
	})
	e.POST("/login", authHandler.Login)
	e.POST("/register", authHandler.Register)
	e.POST("/logout", authHandler.Logout)
	e.GET("/session", authHandler.Session)
	e.GET("/unauthorized", func(c echo.Context) error {
		return c.JSON(http.StatusForbidden, map[string]string{
			"error": "You do not have permission to view this page.",
		})
	})

	// --- Admin area (service providers and platform admins) ---
	admin := e.Group("/admin",
		middleware.Guard(deps.Store, deps.Log, domain.RoleServiceProvider, domain.RoleAdmin))

	admin.GET("/dashboard", adminHandler.Dashboard)

	admin.GET("/customers", adminHandler.Customers)
	admin.POST("/customers", adminHandler.CreateCustomer)
	admin.GET("/customers/:id", adminHandler.CustomerDetail)
	admin.POST("/customers/:id/vehicles", adminHandler.AddVehicle)
	admin.DELETE("/vehicles/:id", adminHandler.DeleteVehicle)

	admin.GET("/cleaners", adminHandler.Cleaners)
	admin.POST("/cleaners", adminHandler.CreateCleaner)
	admin.GET("/cleaners/:id", adminHandler.CleanerDetail)
	admin.PUT("/cleaners/:id", adminHandler.UpdateCleaner)
	admin.DELETE("/cleaners/:id", adminHandler.DeactivateCleaner)

	admin.GET("/subscriptions", adminHandler.Subscriptions)
	admin.POST("/subscriptions/:id/cleaner", adminHandler.AssignCleaner)
	admin.GET("/plans", adminHandler.Plans)
	admin.POST("/plans", adminHandler.CreatePlan)

	admin.GET("/team", adminHandler.Team)
	admin.POST("/team", adminHandler.AddTeamMember)
	admin.DELETE("/team/:id", adminHandler.RemoveTeamMember)

	wiz := admin.Group("/subscriptions/wizard")
	wiz.GET("", wizardHandler.State)
	wiz.POST("/open", wizardHandler.Open)
	wiz.POST("/close", wizardHandler.Close)
	wiz.POST("/search", wizardHandler.Search)
	wiz.POST("/customer/:id", wizardHandler.SelectCustomer)
	wiz.POST("/details", wizardHandler.Details)
	wiz.POST("/days/toggle", wizardHandler.ToggleDay)
	wiz.POST("/submit", wizardHandler.Submit)

	// --- Cleaner area ---
	cleaner := e.Group("/cleaner",
		middleware.Guard(deps.Store, deps.Log, domain.RoleCleaner))

	cleaner.GET("/dashboard", cleanerHandler.Dashboard)
	cleaner.GET("/history", cleanerHandler.History)
	cleaner.PUT("/washes/:id/status", cleanerHandler.UpdateWashStatus)
	cleaner.POST("/attendance/clock-in", cleanerHandler.ClockIn)
	cleaner.POST("/attendance/clock-out", cleanerHandler.ClockOut)

	// --- Customer area ---
	customer := e.Group("/customer",
		middleware.Guard(deps.Store, deps.Log, domain.RoleCustomer))

	customer.GET("/dashboard", customerHandler.Dashboard)
	customer.GET("/vehicles", customerHandler.MyCars)
	customer.GET("/washes", customerHandler.WashHistory)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.BackendURL, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
