package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/top_products/internal/domain"
	"github.com/Gunvolt24/top_products/internal/ports/mocks"
	rest "github.com/Gunvolt24/top_products/internal/transport/http"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

type envelope struct {
	Success bool              `json:"success"`
	Data    []json.RawMessage `json:"data"`
	Message string            `json:"message"`
	Error   string            `json:"error"`
}

func init() { gin.SetMode(gin.TestMode) }

func newRouter(t *testing.T, svc *mocks.MockTopProductsReader) *gin.Engine {
	t.Helper()
	h := rest.NewHandler(svc, noopLogger{}, time.Second, time.Hour).
		WithClock(clockwork.NewFakeClockAt(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)))
	return rest.NewRouter(h, "")
}

func serve(r http.Handler, method, path string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, path, http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestGetTopProducts_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockTopProductsReader(ctrl)

	stamp := time.Date(2025, 3, 1, 11, 30, 0, 0, time.UTC)
	svc.EXPECT().GetTopProducts(gomock.Any()).Return(domain.TopProducts{
		Entries: []domain.CacheEntry{
			{ProductID: 7, Name: "Kettle", Price: decimal.RequireFromString("49.90"), ImageURL: "k.png", SalesCount: 12, RankOrder: 1, UpdatedAt: stamp},
			{ProductID: 3, Name: "Mug", Price: decimal.RequireFromString("5.00"), ImageURL: "m.png", SalesCount: 9, RankOrder: 2, UpdatedAt: stamp},
		},
		Generation: stamp,
		Freshness:  domain.FreshnessFresh,
		Message:    domain.MessageFresh,
	}, nil)

	w, env := serve(newRouter(t, svc), http.MethodGet, rest.TopProductsPath)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	if !env.Success || env.Message != "Top products retrieved successfully" || len(env.Data) != 2 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if got := w.Header().Get("Cache-Control"); got != "public, max-age=3600" {
		t.Fatalf("Cache-Control: %q", got)
	}
	if got := w.Header().Get("Expires"); got != "Sat, 01 Mar 2025 13:00:00 GMT" {
		t.Fatalf("Expires: %q", got)
	}

	var first map[string]any
	if err := json.Unmarshal(env.Data[0], &first); err != nil {
		t.Fatalf("invalid entry json: %v", err)
	}
	if first["price"] != "49.9" || first["rank_order"] != float64(1) || first["product_id"] != float64(7) {
		t.Fatalf("unexpected entry: %v", first)
	}
	if _, ok := first["updated_at"]; ok {
		t.Fatalf("updated_at must not be exposed per entry")
	}
}

func TestGetTopProducts_Stale_Still200(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockTopProductsReader(ctrl)
	svc.EXPECT().GetTopProducts(gomock.Any()).Return(domain.TopProducts{
		Entries:   []domain.CacheEntry{{ProductID: 1, RankOrder: 1}},
		Freshness: domain.FreshnessStale,
		Message:   domain.MessageStale,
	}, nil)

	w, env := serve(newRouter(t, svc), http.MethodGet, rest.TopProductsPath)
	if w.Code != http.StatusOK || env.Message != "Top products data may be outdated" {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestGetTopProducts_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockTopProductsReader(ctrl)
	svc.EXPECT().GetTopProducts(gomock.Any()).Return(domain.TopProducts{
		Entries:   []domain.CacheEntry{},
		Freshness: domain.FreshnessEmpty,
		Message:   domain.MessageEmpty,
	}, nil)

	w, env := serve(newRouter(t, svc), http.MethodGet, rest.TopProductsPath)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if !env.Success || env.Message != "No top products available" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if env.Data == nil || len(env.Data) != 0 {
		t.Fatalf("data must be [] , body=%s", w.Body.String())
	}
}

func TestGetTopProducts_StoreError_500(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockTopProductsReader(ctrl)
	storeErr := domain.NewStoreError(domain.KindConnection, "select ranking", errors.New("dial tcp 10.0.0.5:5432: password=secret123"))
	svc.EXPECT().GetTopProducts(gomock.Any()).Return(domain.TopProducts{}, storeErr)

	w, env := serve(newRouter(t, svc), http.MethodGet, rest.TopProductsPath)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", w.Code)
	}
	if env.Success || env.Error != "Server error" || env.Message != "Database connection or query failed" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if w.Header().Get("Cache-Control") != "no-store" {
		t.Fatalf("error responses must not be cached")
	}
	if len(env.Data) != 0 {
		t.Fatalf("no data on error")
	}
}

func TestGetTopProducts_UnexpectedError_500(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockTopProductsReader(ctrl)
	svc.EXPECT().GetTopProducts(gomock.Any()).Return(domain.TopProducts{}, errors.New("boom"))

	w, env := serve(newRouter(t, svc), http.MethodGet, rest.TopProductsPath)
	if w.Code != http.StatusInternalServerError || env.Message != "An unexpected error occurred" {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestGetTopProducts_Panic_500(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockTopProductsReader(ctrl)
	svc.EXPECT().GetTopProducts(gomock.Any()).DoAndReturn(func(context.Context) (domain.TopProducts, error) {
		panic("nil map")
	})

	w, env := serve(newRouter(t, svc), http.MethodGet, rest.TopProductsPath)
	if w.Code != http.StatusInternalServerError || env.Error != "Server error" || env.Message != "An unexpected error occurred" {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

// Любой другой путь или метод — 404 с телом ошибки; сервис не вызывается.
func TestRouting_404(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockTopProductsReader(ctrl)
	r := newRouter(t, svc)

	cases := []struct{ method, path string }{
		{http.MethodGet, "/no-such-route"},
		{http.MethodGet, "/api/v1/top-products/"},
		{http.MethodGet, "/api/v1/top-products/extra"},
		{http.MethodGet, "/api/v2/top-products"},
		{http.MethodGet, "/"},
		{http.MethodPost, rest.TopProductsPath},
		{http.MethodPut, rest.TopProductsPath},
		{http.MethodDelete, rest.TopProductsPath},
		{http.MethodPatch, rest.TopProductsPath},
	}
	for _, tc := range cases {
		w, env := serve(r, tc.method, tc.path)
		if w.Code != http.StatusNotFound {
			t.Fatalf("%s %s: want 404, got %d", tc.method, tc.path, w.Code)
		}
		if env.Success || env.Error != "Not Found" || env.Message != "The requested resource was not found" {
			t.Fatalf("%s %s: unexpected body %s", tc.method, tc.path, w.Body.String())
		}
	}
}

func TestPing(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newRouter(t, mocks.NewMockTopProductsReader(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || w.Body.String() != "pong" {
		t.Fatalf("unexpected ping response %d %q", w.Code, w.Body.String())
	}
}
