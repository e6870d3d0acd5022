package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerpath-backend/internal/platform/ctxutil"
)

func TestAttachTraceContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated", incoming: "", keep: false},
		{name: "client_id_kept", incoming: "req-123", keep: true},
		{name: "too_long_replaced", incoming: strings.Repeat("a", maxRequestIDLen+1), keep: false},
		{name: "unprintable_replaced", incoming: "bad\tid", keep: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var seen ctxutil.Trace
			r := gin.New()
			r.Use(AttachTraceContext())
			r.GET("/x", func(c *gin.Context) {
				seen, _ = ctxutil.TraceFrom(c.Request.Context())
				c.Status(http.StatusNoContent)
			})
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tc.incoming != "" {
				req.Header.Set(headerRequestID, tc.incoming)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			got := rec.Header().Get(headerRequestID)
			if got == "" || got != seen.RequestID {
				t.Fatalf("header=%q context=%q, want matching non-empty ids", got, seen.RequestID)
			}
			if (got == tc.incoming) != tc.keep {
				t.Fatalf("request id %q, keep client id=%v", got, tc.keep)
			}
			if seen.TraceID == "" || rec.Header().Get(headerTraceID) != seen.TraceID {
				t.Fatalf("trace id header=%q context=%q", rec.Header().Get(headerTraceID), seen.TraceID)
			}
		})
	}
}
