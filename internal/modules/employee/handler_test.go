package employee

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	created *Employee
	err     error
}

func (f *fakeService) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.created, nil
}

func (f *fakeService) ListEmployees(ctx context.Context) ([]*Employee, error) {
	return nil, nil
}

func newTestRouter(svc Service) *chi.Mux {
	r := chi.NewRouter()
	NewHandler(svc).RegisterRoutes(r)
	return r
}

func TestCreateEmployeeEndpoint(t *testing.T) {
	router := newTestRouter(&fakeService{created: &Employee{ID: "e1", Name: "Ana", Role: RoleBaker}})

	body := `{"name":"Ana","role":"baker"}`
	req := httptest.NewRequest(http.MethodPost, "/api/employees/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var got Employee
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "e1", got.ID)
}

func TestCreateEmployeeEndpointValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"missing name", fmt.Errorf("name is required"), http.StatusBadRequest},
		{"bad role", fmt.Errorf("invalid role: janitor"), http.StatusBadRequest},
		{"bad wage", fmt.Errorf("hourly_wage must be positive"), http.StatusBadRequest},
		{"storage failure", fmt.Errorf("connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(&fakeService{err: tc.err})

			req := httptest.NewRequest(http.MethodPost, "/api/employees/", strings.NewReader(`{"name":"x"}`))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestListEmployeesEndpointEmpty(t *testing.T) {
	router := newTestRouter(&fakeService{})

	req := httptest.NewRequest(http.MethodGet, "/api/employees/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}
