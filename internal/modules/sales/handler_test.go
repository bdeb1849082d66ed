package sales

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	created *Sale
	err     error
}

func (f *fakeService) CreateSale(ctx context.Context, req CreateSaleRequest) (*Sale, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.created, nil
}

func (f *fakeService) ListSales(ctx context.Context, limit int64) ([]*Sale, error) {
	return nil, nil
}

func (f *fakeService) DailyAnalytics(ctx context.Context) (*DailyAnalytics, error) {
	return &DailyAnalytics{PopularItems: []PopularItem{}}, nil
}

func (f *fakeService) CategoryAnalytics(ctx context.Context) (map[string]*CategoryStats, error) {
	return map[string]*CategoryStats{}, nil
}

func newTestRouter(svc Service) *chi.Mux {
	r := chi.NewRouter()
	NewHandler(svc).RegisterRoutes(r)
	return r
}

func TestCreateSaleEndpoint(t *testing.T) {
	router := newTestRouter(&fakeService{created: &Sale{ID: "s1", TotalAmount: 7.5}})

	body := `{"items":[{"product_id":"p1","quantity":3,"price":2.5}],"total_amount":7.5}`
	req := httptest.NewRequest(http.MethodPost, "/api/sales/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var got Sale
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "s1", got.ID)
}

func TestCreateSaleEndpointRejectsMalformedBody(t *testing.T) {
	router := newTestRouter(&fakeService{})

	req := httptest.NewRequest(http.MethodPost, "/api/sales/", strings.NewReader(`{"items":`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListSalesEndpointRejectsBadLimit(t *testing.T) {
	router := newTestRouter(&fakeService{})

	req := httptest.NewRequest(http.MethodGet, "/api/sales/?limit=abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListSalesEndpointEmpty(t *testing.T) {
	router := newTestRouter(&fakeService{})

	req := httptest.NewRequest(http.MethodGet, "/api/sales/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestDailyAnalyticsEndpoint(t *testing.T) {
	router := newTestRouter(&fakeService{})

	req := httptest.NewRequest(http.MethodGet, "/api/sales/analytics/daily", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "popular_items")
}
