package prometheus

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	lireddit "github.com/VivianLin61/lireddit-backend"
)

type fakeSource struct {
	snapshot lireddit.MetricsSnapshot
	dropped  uint64
}

func (f *fakeSource) MetricsSnapshot() lireddit.MetricsSnapshot { return f.snapshot }
func (f *fakeSource) AuditDropped() uint64                      { return f.dropped }

func TestRenderEmptyWhenIdle(t *testing.T) {
	exp := NewPrometheusExporterFromSource(&fakeSource{
		snapshot: lireddit.MetricsSnapshot{Counters: map[lireddit.MetricID]uint64{}},
	})
	if got := exp.Render(); got != "" {
		t.Fatalf("Render() = %q, want empty", got)
	}
}

func TestRenderCounters(t *testing.T) {
	exp := NewPrometheusExporterFromSource(&fakeSource{
		snapshot: lireddit.MetricsSnapshot{Counters: map[lireddit.MetricID]uint64{
			lireddit.MetricLoginSuccess:    3,
			lireddit.MetricSessionCreated:  4,
			lireddit.MetricRegisterInvalid: 1,
		}},
		dropped: 2,
	})

	out := exp.Render()
	for _, want := range []string{
		"# TYPE lireddit_login_success_total counter",
		"lireddit_login_success_total 3",
		"lireddit_session_created_total 4",
		"lireddit_register_invalid_total 1",
		"lireddit_login_failure_total 0",
		"lireddit_audit_dropped_total 2",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("Render() missing %q in:\n%s", want, out)
		}
	}
}

func TestHandlerContentType(t *testing.T) {
	exp := NewPrometheusExporterFromSource(&fakeSource{
		snapshot: lireddit.MetricsSnapshot{Counters: map[lireddit.MetricID]uint64{
			lireddit.MetricLogout: 1,
		}},
	})

	srv := httptest.NewServer(exp.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	if err != nil {
		t.Fatalf("get metrics: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("Content-Type = %q", ct)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "lireddit_logout_total 1") {
		t.Fatalf("unexpected body:\n%s", body)
	}
}

func TestNilExporterRendersEmpty(t *testing.T) {
	var exp *PrometheusExporter
	if got := exp.Render(); got != "" {
		t.Fatalf("Render() on nil = %q", got)
	}
}
