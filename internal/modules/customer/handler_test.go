package customer

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
	created *Customer
	err     error
}

func (f *fakeService) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.created, nil
}

func (f *fakeService) ListCustomers(ctx context.Context) ([]*Customer, error) {
	return nil, nil
}

func newTestRouter(svc Service) *chi.Mux {
	r := chi.NewRouter()
	NewHandler(svc).RegisterRoutes(r)
	return r
}

func TestCreateCustomerEndpoint(t *testing.T) {
	router := newTestRouter(&fakeService{created: &Customer{ID: "c1", Name: "Maria"}})

	req := httptest.NewRequest(http.MethodPost, "/api/customers/", strings.NewReader(`{"name":"Maria"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var got Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "c1", got.ID)
}

func TestCreateCustomerEndpointValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"missing name", fmt.Errorf("name is required"), http.StatusBadRequest},
		{"bad email", fmt.Errorf("invalid email"), http.StatusBadRequest},
		{"storage failure", fmt.Errorf("connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(&fakeService{err: tc.err})

			req := httptest.NewRequest(http.MethodPost, "/api/customers/", strings.NewReader(`{"name":"x"}`))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestListCustomersEndpointEmpty(t *testing.T) {
	router := newTestRouter(&fakeService{})

	req := httptest.NewRequest(http.MethodGet, "/api/customers/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}
