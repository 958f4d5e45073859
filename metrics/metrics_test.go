package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func scrape(t *testing.T, m *Metrics, update func()) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler(update).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(body)
}

func TestCounters(t *testing.T) {
	m := New()
	m.IncEffect("grond")
	m.IncEffect("grond")
	m.IncEffect("party")
	m.IncButton("horn", "remote")
	m.IncMotion()

	out := scrape(t, m, nil)
	for _, want := range []string{
		`orchead_effects_triggered_total{effect="grond"} 2`,
		`orchead_effects_triggered_total{effect="party"} 1`,
		`orchead_button_presses_total{button="horn",source="remote"} 1`,
		`orchead_motion_samples_total 1`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("scrape missing %q", want)
		}
	}
}

func TestHandlerRefreshesGauges(t *testing.T) {
	m := New()
	out := scrape(t, m, func() { m.SetCounts(42, 7) })
	for _, want := range []string{"orchead_kills 42", "orchead_visitors 7"} {
		if !strings.Contains(out, want) {
			t.Errorf("scrape missing %q", want)
		}
	}
}

func TestRequestMiddleware(t *testing.T) {
	m := New()
	mw := RequestMiddleware(m)

	ok := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	bad := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	ok.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	bad.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	out := scrape(t, m, nil)
	if !strings.Contains(out, "orchead_http_requests_total 2") || !strings.Contains(out, "orchead_http_errors_total 1") {
		t.Errorf("unexpected request counters:\n%s", out)
	}
}
