package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func paramsFor(t *testing.T, query string) Params {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	return FromContext(e.NewContext(req, rec))
}

func TestFromContext_Defaults(t *testing.T) {
	pg := paramsFor(t, "")
	if pg.Limit != DefaultLimit {
		t.Errorf("expected default limit %d, got %d", DefaultLimit, pg.Limit)
	}
	if pg.Offset != 0 {
		t.Errorf("expected offset 0, got %d", pg.Offset)
	}
}

func TestFromContext_Explicit(t *testing.T) {
	pg := paramsFor(t, "limit=25&offset=75")
	if pg.Limit != 25 || pg.Offset != 75 {
		t.Errorf("expected 25/75, got %d/%d", pg.Limit, pg.Offset)
	}
}

func TestFromContext_ClampsLimit(t *testing.T) {
	pg := paramsFor(t, "limit=99999")
	if pg.Limit != MaxLimit {
		t.Errorf("expected limit clamped to %d, got %d", MaxLimit, pg.Limit)
	}
}

func TestFromContext_NegativeValues(t *testing.T) {
	pg := paramsFor(t, "limit=-5&offset=-10")
	if pg.Limit != DefaultLimit {
		t.Errorf("expected default limit for negative input, got %d", pg.Limit)
	}
	if pg.Offset != 0 {
		t.Errorf("expected offset 0 for negative input, got %d", pg.Offset)
	}
}

func TestNewResponse_HasMore(t *testing.T) {
	r := NewResponse([]string{"a"}, 100, 50, 0)
	if !r.HasMore {
		t.Error("expected has_more=true at offset 0 of 100")
	}
	r = NewResponse([]string{"a"}, 100, 50, 50)
	if r.HasMore {
		t.Error("expected has_more=false on last page")
	}
}
