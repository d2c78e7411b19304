package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GoogleHandler serves the Google OAuth login flow. The flow is a placeholder:
// the start endpoint reports that OAuth is not enabled rather than redirecting
// to a consent screen.
type GoogleHandler struct{}

func NewGoogleHandler() *GoogleHandler {
	return &GoogleHandler{}
}

func (h *GoogleHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/auth/google/start", h.Start)
}

// Start begins the Google OAuth flow.
func (h *GoogleHandler) Start(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "placeholder",
		"message": "Google OAuth flow not enabled in this demo.",
	})
}
