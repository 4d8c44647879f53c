package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskcase/task-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	e.HTTPErrorHandler(err, c)

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, resp["error"]
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		{domain.ErrEmailTaken, http.StatusBadRequest, "email already registered"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{domain.ErrInvalidToken, http.StatusUnauthorized, "invalid token"},
		{domain.ErrInvalidTaskID, http.StatusBadRequest, "invalid task id"},
		{domain.ErrTaskNotFound, http.StatusNotFound, "task not found"},
	}

	for _, tc := range cases {
		code, msg := renderError(t, tc.err)
		if code != tc.wantCode || msg != tc.wantMsg {
			t.Fatalf("%v: got (%d, %q), want (%d, %q)", tc.err, code, msg, tc.wantCode, tc.wantMsg)
		}
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	code, msg := renderError(t, errors.Join(errors.New("update task"), domain.ErrTaskNotFound))
	if code != http.StatusNotFound || msg != "task not found" {
		t.Fatalf("wrapped error not unwrapped: (%d, %q)", code, msg)
	}
}

func TestHTTPErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	code, msg := renderError(t, errors.New("mongo: connection reset by peer"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"))
	if code != http.StatusUnauthorized || msg != "missing authorization header" {
		t.Fatalf("got (%d, %q)", code, msg)
	}
}
