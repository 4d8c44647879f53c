package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/taskcase/task-api/internal/core/domain"
	"github.com/taskcase/task-api/internal/core/ports"
)

type stubTaskService struct {
	createFn func(ctx context.Context, owner *domain.User, in ports.CreateTaskInput) (*domain.Task, error)
	listFn   func(ctx context.Context, owner *domain.User) ([]*domain.Task, error)
	getFn    func(ctx context.Context, owner *domain.User, id string) (*domain.Task, error)
	updateFn func(ctx context.Context, owner *domain.User, id string, in ports.UpdateTaskInput) (*domain.Task, error)
	deleteFn func(ctx context.Context, owner *domain.User, id string) error
}

func (s *stubTaskService) Create(ctx context.Context, owner *domain.User, in ports.CreateTaskInput) (*domain.Task, error) {
	return s.createFn(ctx, owner, in)
}

func (s *stubTaskService) ListOwned(ctx context.Context, owner *domain.User) ([]*domain.Task, error) {
	return s.listFn(ctx, owner)
}

func (s *stubTaskService) Get(ctx context.Context, owner *domain.User, id string) (*domain.Task, error) {
	return s.getFn(ctx, owner, id)
}

func (s *stubTaskService) Update(ctx context.Context, owner *domain.User, id string, in ports.UpdateTaskInput) (*domain.Task, error) {
	return s.updateFn(ctx, owner, id, in)
}

func (s *stubTaskService) Delete(ctx context.Context, owner *domain.User, id string) error {
	return s.deleteFn(ctx, owner, id)
}

var testOwner = &domain.User{ID: "u1", Name: "Ana", Email: "ana@x.com"}

// taskContext builds an echo context carrying the resolved user, the way the
// Auth middleware would.
func taskContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", testOwner)
	return c, rec
}

func TestTaskHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubTaskService{
		createFn: func(ctx context.Context, owner *domain.User, in ports.CreateTaskInput) (*domain.Task, error) {
			if owner.ID != "u1" {
				t.Fatalf("unexpected owner: %s", owner.ID)
			}
			return &domain.Task{ID: "t1", Title: in.Title, Description: in.Description, OwnerID: owner.ID}, nil
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := taskContext(e, http.MethodPost, "/tasks", `{"title":"groceries","description":"milk"}`)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "t1" || resp["title"] != "groceries" || resp["owner_id"] != "u1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestTaskHandler_Create_MissingTitle(t *testing.T) {
	e := newTestEcho()
	stub := &stubTaskService{
		createFn: func(ctx context.Context, owner *domain.User, in ports.CreateTaskInput) (*domain.Task, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := taskContext(e, http.MethodPost, "/tasks", `{"description":"no title"}`)
	_ = handler.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTaskHandler_Create_NoUserInContext(t *testing.T) {
	e := newTestEcho()
	handler := NewTaskHandler(&stubTaskService{})

	req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(`{"title":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestTaskHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubTaskService{
		listFn: func(ctx context.Context, owner *domain.User) ([]*domain.Task, error) {
			return []*domain.Task{
				{ID: "t1", Title: "a", OwnerID: owner.ID},
				{ID: "t2", Title: "b", OwnerID: owner.ID},
				{ID: "t3", Title: "c", OwnerID: owner.ID},
			}, nil
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := taskContext(e, http.MethodGet, "/tasks", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(resp))
	}
	for _, item := range resp {
		if item["owner_id"] != "u1" {
			t.Fatalf("foreign task in response: %+v", item)
		}
	}
}

func TestTaskHandler_List_Empty(t *testing.T) {
	e := newTestEcho()
	stub := &stubTaskService{
		listFn: func(ctx context.Context, owner *domain.User) ([]*domain.Task, error) {
			return []*domain.Task{}, nil
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := taskContext(e, http.MethodGet, "/tasks", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty array, got %s", body)
	}
}

func TestTaskHandler_Update_NotOwnedIs404(t *testing.T) {
	e := newTestEcho()
	stub := &stubTaskService{
		updateFn: func(ctx context.Context, owner *domain.User, id string, in ports.UpdateTaskInput) (*domain.Task, error) {
			// The service reports a foreign-owned task exactly like a
			// missing one.
			return nil, domain.ErrTaskNotFound
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := taskContext(e, http.MethodPut, "/tasks/507f1f77bcf86cd799439011", `{"title":"x"}`)
	c.SetParamNames("id")
	c.SetParamValues("507f1f77bcf86cd799439011")

	_ = handler.Update(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestTaskHandler_Update_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubTaskService{
		updateFn: func(ctx context.Context, owner *domain.User, id string, in ports.UpdateTaskInput) (*domain.Task, error) {
			return &domain.Task{ID: id, Title: in.Title, Description: in.Description, OwnerID: owner.ID}, nil
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := taskContext(e, http.MethodPut, "/tasks/507f1f77bcf86cd799439011", `{"title":"new","description":"desc"}`)
	c.SetParamNames("id")
	c.SetParamValues("507f1f77bcf86cd799439011")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["title"] != "new" || resp["owner_id"] != "u1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestTaskHandler_Delete_Statuses(t *testing.T) {
	cases := []struct {
		name       string
		id         string
		serviceErr error
		wantCode   int
	}{
		{"success", "507f1f77bcf86cd799439011", nil, http.StatusNoContent},
		{"malformed id", "not-an-id", domain.ErrInvalidTaskID, http.StatusBadRequest},
		{"missing or foreign", "507f1f77bcf86cd799439011", domain.ErrTaskNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEcho()
			stub := &stubTaskService{
				deleteFn: func(ctx context.Context, owner *domain.User, id string) error {
					return tc.serviceErr
				},
			}
			handler := NewTaskHandler(stub)

			c, rec := taskContext(e, http.MethodDelete, "/tasks/"+tc.id, "")
			c.SetParamNames("id")
			c.SetParamValues(tc.id)

			_ = handler.Delete(c)

			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}
		})
	}
}

func TestTaskHandler_Get_MalformedID(t *testing.T) {
	e := newTestEcho()
	stub := &stubTaskService{
		getFn: func(ctx context.Context, owner *domain.User, id string) (*domain.Task, error) {
			return nil, domain.ErrInvalidTaskID
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := taskContext(e, http.MethodGet, "/tasks/garbage", "")
	c.SetParamNames("id")
	c.SetParamValues("garbage")

	_ = handler.Get(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
