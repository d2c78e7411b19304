package invoice

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/clinic/clinic/internal/platform/auth"
)

func newTestServer(role string) *echo.Echo {
	h := NewHandler(NewService(&mockRepo{}))
	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(auth.UserRoleKey, role)
			return next(c)
		}
	})
	h.RegisterRoutes(e.Group("/api"))
	return e
}

const invoiceBody = `{
	"patient_email": "jane@example.com",
	"items": [{"name": "consultation", "price": 80, "quantity": 1}],
	"subtotal": 80,
	"tax": 8,
	"total": 88
}`

func TestHandler_CreateAsAdmin(t *testing.T) {
	e := newTestServer("admin")

	req := httptest.NewRequest(http.MethodPost, "/api/invoices", strings.NewReader(invoiceBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHandler_CreateForbiddenForPatient(t *testing.T) {
	e := newTestServer("patient")

	req := httptest.NewRequest(http.MethodPost, "/api/invoices", strings.NewReader(invoiceBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestHandler_CreateRejectsBadArithmetic(t *testing.T) {
	e := newTestServer("admin")

	body := strings.Replace(invoiceBody, `"total": 88`, `"total": 90`, 1)
	req := httptest.NewRequest(http.MethodPost, "/api/invoices", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHandler_ListOpenToPatients(t *testing.T) {
	e := newTestServer("patient")

	req := httptest.NewRequest(http.MethodGet, "/api/invoices", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
