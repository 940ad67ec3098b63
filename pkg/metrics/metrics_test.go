package metrics_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/Gunvolt24/top_products/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestRefreshCounters_ByResult(t *testing.T) {
	metrics.MustRegister()

	okBefore := testutil.ToFloat64(metrics.RefreshTotal.WithLabelValues(metrics.ResultSuccess))
	failBefore := testutil.ToFloat64(metrics.RefreshTotal.WithLabelValues(metrics.ResultFailure))

	metrics.RefreshTotal.WithLabelValues(metrics.ResultSuccess).Inc()

	if got := testutil.ToFloat64(metrics.RefreshTotal.WithLabelValues(metrics.ResultSuccess)); got != okBefore+1 {
		t.Fatalf("RefreshTotal(success): got=%v want=%v", got, okBefore+1)
	}
	if got := testutil.ToFloat64(metrics.RefreshTotal.WithLabelValues(metrics.ResultFailure)); got != failBefore {
		t.Fatalf("RefreshTotal(failure): got=%v want=%v", got, failBefore)
	}
}

func TestReadsTotal_ByFreshness(t *testing.T) {
	metrics.MustRegister()

	before := testutil.ToFloat64(metrics.ReadsTotal.WithLabelValues("stale"))
	metrics.ReadsTotal.WithLabelValues("stale").Inc()
	metrics.ReadsTotal.WithLabelValues("stale").Inc()

	if got := testutil.ToFloat64(metrics.ReadsTotal.WithLabelValues("stale")); got != before+2 {
		t.Fatalf("ReadsTotal(stale): got=%v want=%v", got, before+2)
	}
}

func TestGauges_Set(t *testing.T) {
	metrics.MustRegister()

	cur := testutil.ToFloat64(metrics.CacheEntries)
	metrics.CacheEntries.Set(10)
	if got := testutil.ToFloat64(metrics.CacheEntries); got != 10 {
		t.Fatalf("CacheEntries: got=%v want=10", got)
	}
	metrics.CacheEntries.Set(cur) // вернуть как было
}

func TestPushRefresh(t *testing.T) {
	t.Run("empty url is noop", func(t *testing.T) {
		if err := metrics.PushRefresh(context.Background(), "", "job"); err != nil {
			t.Fatalf("want nil, got %v", err)
		}
	})

	t.Run("pushes to gateway", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			if r.Method != http.MethodPut {
				t.Errorf("want PUT, got %s", r.Method)
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		if err := metrics.PushRefresh(context.Background(), srv.URL, "top_products_refresh"); err != nil {
			t.Fatalf("PushRefresh: %v", err)
		}
		if atomic.LoadInt32(&calls) != 1 {
			t.Fatalf("want 1 push, got %d", calls)
		}
	})

	t.Run("gateway error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		if err := metrics.PushRefresh(context.Background(), srv.URL, "job"); err == nil {
			t.Fatal("want error on 500 from gateway")
		}
	})
}
