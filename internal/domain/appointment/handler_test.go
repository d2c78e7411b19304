package appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/clinic/clinic/internal/platform/auth"
)

func newTestServer() (*echo.Echo, *mockRepo) {
	repo := newMockRepo()
	h := NewHandler(NewService(repo))

	e := echo.New()
	e.Use(auth.DevAuthMiddleware())
	h.RegisterRoutes(e.Group("/api"))
	return e, repo
}

func TestHandler_CreateAndGet(t *testing.T) {
	e, _ := newTestServer()

	body := `{"patient_email":"jane@example.com","patient_name":"Jane Doe","date":"2025-11-20","time":"14:30","reason":"initial consult"}`
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"status":"pending"`) {
		t.Errorf("expected pending status in response: %s", rec.Body.String())
	}
}

func TestHandler_CreateRejectsBadPayload(t *testing.T) {
	e, _ := newTestServer()

	body := `{"patient_email":"jane@example.com","patient_name":"Jane","date":"tomorrow","time":"14:30"}`
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_GetUnknownID(t *testing.T) {
	e, _ := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/appointments/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/appointments/6dd25688-20b2-4af7-b44c-d2a5b6d0f9a1", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", rec.Code)
	}
}

func TestHandler_ListPaginated(t *testing.T) {
	e, repo := newTestServer()
	svc := NewService(repo)
	for i := 0; i < 3; i++ {
		a := validAppointment()
		if err := svc.Create(context.Background(), a); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/appointments?patient_email=jane@example.com", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"total":3`) {
		t.Errorf("expected total 3 in response: %s", rec.Body.String())
	}
}

func TestHandler_UpdateStatusRequiresAdmin(t *testing.T) {
	repo := newMockRepo()
	h := NewHandler(NewService(repo))

	// Patient-role middleware instead of the dev admin grant.
	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(auth.UserRoleKey, "patient")
			return next(c)
		}
	})
	h.RegisterRoutes(e.Group("/api"))

	req := httptest.NewRequest(http.MethodPatch,
		"/api/appointments/6dd25688-20b2-4af7-b44c-d2a5b6d0f9a1/status",
		strings.NewReader(`{"status":"confirmed"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for patient role, got %d", rec.Code)
	}
}
