package observability

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveAPI("GET", "/x", "200", time.Millisecond)
	m.ApiInflightInc()
	m.ApiInflightDec()
	m.IncPrediction("ok")
	m.IncBooking("created")
	m.IncCacheInvalidation()
	if err := m.WritePrometheus(&bytes.Buffer{}); err != nil {
		t.Fatalf("WritePrometheus on nil: %v", err)
	}
}

func TestWritePrometheus(t *testing.T) {
	m := NewMetrics()
	m.ObserveAPI("POST", "/api/advisory-submit", "409", 30*time.Millisecond)
	m.IncBooking("conflict")
	m.IncBooking("conflict")
	m.IncPrediction("ok")

	if got := m.bookings.Value("conflict"); got != 2 {
		t.Fatalf("bookings{conflict}=%v, want 2", got)
	}

	var buf bytes.Buffer
	if err := m.WritePrometheus(&buf); err != nil {
		t.Fatalf("WritePrometheus: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`cp_api_requests_total{method="POST",route="/api/advisory-submit",status="409"} 1.000000`,
		`cp_api_request_duration_seconds_bucket{method="POST",route="/api/advisory-submit",le="0.05"} 1`,
		`cp_api_request_duration_seconds_bucket{method="POST",route="/api/advisory-submit",le="0.025"} 0`,
		`cp_bookings_total{outcome="conflict"} 2.000000`,
		`cp_predictions_total{outcome="ok"} 1.000000`,
		"# TYPE cp_api_inflight_requests gauge",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLabelString(t *testing.T) {
	cases := []struct {
		names  []string
		values []string
		want   string
	}{
		{names: nil, values: nil, want: ""},
		{names: []string{"a"}, values: nil, want: `{a="unknown"}`},
		{names: []string{"a", "b"}, values: []string{"x\"y", "z"}, want: `{a="x\"y",b="z"}`},
	}
	for _, tc := range cases {
		if got := labelString(tc.names, tc.values); got != tc.want {
			t.Fatalf("labelString(%v,%v)=%q, want %q", tc.names, tc.values, got, tc.want)
		}
	}
}

func TestParseHeaders(t *testing.T) {
	got := ParseHeaders(" api-key = abc , broken, =x,team=core")
	want := map[string]string{"api-key": "abc", "team": "core"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseHeaders=%v, want %v", got, want)
	}
	if ParseHeaders("") != nil {
		t.Fatalf("ParseHeaders(\"\") should be nil")
	}
}
