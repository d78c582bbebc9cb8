package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"forecast-api/pkg/apperror"
)

func serve(t *testing.T, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	SetupRequestID(e)
	SetupRequestLogger(e)
	e.POST("/probe", handler, YieldStatusCode())

	req := httptest.NewRequest(http.MethodPost, "/probe", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestStatusCodeErrorBecomesBareStatus(t *testing.T) {
	rec := serve(t, func(c echo.Context) error {
		return apperror.BadRequest("Invalid request count")
	})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", rec.Body.String())
	}
	if rec.Header().Get(echo.HeaderXRequestID) == "" {
		t.Error("expected a generated request id")
	}
}

func TestWrappedStatusCodeError(t *testing.T) {
	rec := serve(t, func(c echo.Context) error {
		return fmt.Errorf("validate: %w", apperror.New(http.StatusConflict, "busy"))
	})

	if rec.Code != http.StatusConflict || rec.Body.Len() != 0 {
		t.Errorf("expected bare 409, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestOtherErrorsPassThrough(t *testing.T) {
	boom := errors.New("boom")

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
	err := YieldStatusCode()(func(c echo.Context) error { return boom })(c)
	if !errors.Is(err, boom) {
		t.Fatalf("expected error to pass through, got %v", err)
	}

	rec := serve(t, func(c echo.Context) error { return boom })
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected framework default 500, got %d", rec.Code)
	}
}

func TestSuccessIsUntouched(t *testing.T) {
	rec := serve(t, func(c echo.Context) error {
		return c.JSON(http.StatusOK, []int{1, 2})
	})

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "[1,2]\n" {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}

func TestIncomingRequestIDIsKept(t *testing.T) {
	e := echo.New()
	SetupRequestID(e)
	e.GET("/probe", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(echo.HeaderXRequestID, "abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if got := rec.Header().Get(echo.HeaderXRequestID); got != "abc-123" {
		t.Errorf("expected incoming request id, got %q", got)
	}
}
