package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		ping     func() error
		path     string
		want     int
		wantBody string
	}{
		{name: "healthz ok", ping: nil, path: "/healthz", want: 200, wantBody: `"status":"ok"`},
		{name: "readyz ok", ping: func() error { return nil }, path: "/readyz", want: 200, wantBody: `"status":"ready"`},
		{name: "readyz degraded", ping: func() error { return errors.New("conn refused") }, path: "/readyz", want: 503, wantBody: `"status":"degraded"`},
		{name: "readyz nil ping", ping: nil, path: "/readyz", want: 200, wantBody: `"status":"ready"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			NewHealthHandler(tc.ping).Register(r)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			r.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Fatalf("want %d got %d", tc.want, w.Code)
			}
			if !strings.Contains(w.Body.String(), tc.wantBody) {
				t.Fatalf("body %q missing %q", w.Body.String(), tc.wantBody)
			}
			if !strings.Contains(w.Body.String(), serviceName) {
				t.Fatalf("body %q missing service name", w.Body.String())
			}
		})
	}
}
