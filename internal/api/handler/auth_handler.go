package handler

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/domain"
	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/ports"
)

// AuthHandler serves the login, registration and logout pages.
type AuthHandler struct {
	authService ports.AuthService
	store       ports.SessionStore
}

func NewAuthHandler(authService ports.AuthService, store ports.SessionStore) *AuthHandler {
	return &AuthHandler{authService: authService, store: store}
}

type loginRequest struct {
	Mobile string `json:"mobile" validate:"required,len=10,numeric"`
	PIN    string `json:"pin"    validate:"required,len=4,numeric"`
}

type registerRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"omitempty,email"`
	PIN     string `json:"pin"     validate:"required,len=4,numeric"`
	Phone   string `json:"phone"   validate:"required,len=10,numeric"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

type authResponse struct {
	User     *domain.User `json:"user,omitempty"`
	Redirect string       `json:"redirect,omitempty"`
	Error    string       `json:"error,omitempty"`
}

// Login authenticates a mobile/pin pair and opens the session.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  authResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		// Malformed mobile or PIN never reaches the gateway.
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	h.store.SetLoading(true)
	defer h.store.SetLoading(false)

	result := h.authService.Login(c.Request().Context(), ports.LoginInput{
		Mobile: req.Mobile,
		PIN:    req.PIN,
	})
	if !result.Success {
		h.store.SetError(result.Error)
		return c.JSON(http.StatusUnauthorized, authResponse{Error: result.Error})
	}

	h.store.Login(*result.User, result.Token)

	return c.JSON(http.StatusOK, authResponse{
		User:     result.User,
		Redirect: postLoginTarget(c.QueryParam("from"), result.User.Role),
	})
}

// Register creates a customer account and opens the session.
//
// @Summary      Register a new customer
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Customer profile"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  authResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	h.store.SetLoading(true)
	defer h.store.SetLoading(false)

	result := h.authService.RegisterCustomer(c.Request().Context(), ports.RegisterCustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		PIN:     req.PIN,
		Phone:   req.Phone,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		ZipCode: req.ZipCode,
	})
	if !result.Success {
		h.store.SetError(result.Error)
		return c.JSON(http.StatusUnprocessableEntity, authResponse{Error: result.Error})
	}

	h.store.Login(*result.User, result.Token)

	return c.JSON(http.StatusCreated, authResponse{
		User:     result.User,
		Redirect: roleHome(result.User.Role),
	})
}

// Logout ends the session. Safe to call when already logged out.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.store.Logout()
	return c.JSON(http.StatusOK, authResponse{Redirect: "/login"})
}

type sessionView struct {
	User            *domain.User `json:"user"`
	IsAuthenticated bool         `json:"isAuthenticated"`
	Error           *string      `json:"error,omitempty"`
	// TokenExpiresAt is decoded from the JWT for display only. The client
	// never enforces expiry; an expired token is detected reactively on the
	// next rejected request.
	TokenExpiresAt string `json:"tokenExpiresAt,omitempty"`
}

// Session returns the current session state for the account view.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionView
// @Router       /session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	snap := h.store.Snapshot()

	view := sessionView{
		User:            snap.User,
		IsAuthenticated: snap.IsAuthenticated,
		Error:           snap.Error,
	}
	if exp, ok := tokenExpiry(snap.Token); ok {
		view.TokenExpiresAt = exp.UTC().Format(time.RFC3339)
	}
	return c.JSON(http.StatusOK, view)
}

// tokenExpiry decodes the exp claim without verifying the signature. The
// backend owns verification; this is display metadata only.
func tokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// postLoginTarget honours the path preserved by the guard when present,
// otherwise lands on the role's home page.
func postLoginTarget(from string, role domain.Role) string {
	if from != "" {
		return from
	}
	return roleHome(role)
}

func roleHome(role domain.Role) string {
	switch role {
	case domain.RoleCleaner:
		return "/cleaner/dashboard"
	case domain.RoleCustomer:
		return "/customer/dashboard"
	case domain.RoleAdmin, domain.RoleServiceProvider:
		return "/admin/dashboard"
	default:
		return "/login"
	}
}
