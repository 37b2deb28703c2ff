package middlewares

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

// El handler de /metrics tiene que leer del mismo registry donde se
// registraron los collectors, no del gatherer global.
func TestRegisterMetrics_SirveElRegistryPropio(t *testing.T) {
	reg := prometheus.NewRegistry()
	handler, err := RegisterMetrics(reg)
	if err != nil {
		t.Fatalf("RegisterMetrics: %v", err)
	}

	// Un request instrumentado para que los contadores tengan al menos una serie.
	mw := WithMetrics()
	instrumented := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	rr := httptest.NewRecorder()
	instrumented.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/finanza/read", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}

	scrape := httptest.NewRecorder()
	handler.ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(scrape.Result().Body)
	for _, metric := range []string{"http_requests_total", "http_request_duration_seconds"} {
		if !strings.Contains(string(body), metric) {
			t.Errorf("falta %s en el scrape:\n%s", metric, body)
		}
	}
}

func TestNormalizePath(t *testing.T) {
	cases := map[string]string{
		"":              "/",
		"/usuario/read": "/usuario/read",
		"/finanza/read/64f1a2b3c4d5e6f7a8b9c0d1": "/finanza/read/:param",
		"/tag/delete/1234":     "/tag/delete/:param",
		"/usuario/read?full=1": "/usuario/read",
	}
	for in, want := range cases {
		if got := normalizePath(in); got != want {
			t.Errorf("normalizePath(%q) = %q, want %q", in, got, want)
		}
	}
}
