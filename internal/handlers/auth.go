package handlers

import (
	"net/http"

	"github.com/anonto42/connectly/web/internal/apiclient"
	"github.com/anonto42/connectly/web/internal/models"
	"github.com/anonto42/connectly/web/internal/session"
	"github.com/anonto42/connectly/web/internal/views"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthHandler handles the login and logout pages
type AuthHandler struct {
	pages
	api         apiclient.API
	sessions    *session.Store
	loginAlerts bool
}

// NewAuthHandler creates a new AuthHandler. With loginAlerts a failed login
// shows the API's message to the user; otherwise it is only logged.
func NewAuthHandler(api apiclient.API, sessions *session.Store, header views.HeaderOptions, loginAlerts bool, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		pages:       pages{header: header, logger: logger},
		api:         api,
		sessions:    sessions,
		loginAlerts: loginAlerts,
	}
}

// RegisterAuthRoutes registers the login page on public and logout on the
// session-gated group
func (h *AuthHandler) RegisterAuthRoutes(public, protected *echo.Group) {
	public.GET(LoginPath, h.LoginPage)
	public.POST(LoginPath, h.Login)
	protected.POST(views.PathLogout, h.Logout)
}

// LoginPage renders the login form
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return h.renderLogin(c, http.StatusOK, "", "")
}

// Login forwards the submitted credentials to the API and stores the
// resulting token in the session
func (h *AuthHandler) Login(c echo.Context) error {
	var creds models.Credentials
	if err := c.Bind(&creds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid login form")
	}

	if err := c.Validate(creds); err != nil {
		return h.renderLogin(c, http.StatusBadRequest, creds.Email, "Email and password are required.")
	}

	profile, err := h.api.LoginUser(c.Request().Context(), creds)
	if err != nil {
		h.logger.Warn("Login failed", zap.String("email", creds.Email), zap.Error(err))
		status := http.StatusBadGateway
		if isUnauthorized(err) {
			status = http.StatusUnauthorized
		}
		alert := ""
		if h.loginAlerts {
			alert = userMessage(err, "Login failed. Please try again.")
		}
		return h.renderLogin(c, status, creds.Email, alert)
	}

	sess, err := h.sessions.Load(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	sess.Token = profile.AccessToken
	sess.Name = profile.Name
	if err := h.sessions.Save(c, sess); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.logger.Info("User logged in", zap.String("user", profile.Name))
	return c.Redirect(http.StatusSeeOther, ProfilePath)
}

// Logout destroys the session once the user has confirmed
func (h *AuthHandler) Logout(c echo.Context) error {
	if !confirmed(c) {
		return c.NoContent(http.StatusNoContent)
	}

	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	if err := h.sessions.Clear(c, sess); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Redirect(http.StatusSeeOther, LoginPath)
}

func (h *AuthHandler) renderLogin(c echo.Context, status int, email, alert string) error {
	layout := h.layout(c, nil, "Login")
	if alert != "" {
		layout.Alerts = append(layout.Alerts, alert)
	}
	return c.Render(status, views.PageLogin, views.Page[views.LoginContent]{
		Layout:  layout,
		Content: views.LoginContent{Email: email},
	})
}
