package engine

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bffd/bffd/pkg/route"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
}

func TestCORSMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("preflight is answered directly", func(t *testing.T) {
		t.Parallel()
		m := NewCORSMiddleware(okHandler(), nil)

		req := httptest.NewRequest(http.MethodOptions, "/anything", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", "POST")
		req.Header.Set("Access-Control-Request-Headers", "content-type")
		rec := httptest.NewRecorder()
		m.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Headers"))
		assert.Empty(t, rec.Body.String())
	})

	t.Run("simple request gets allow origin", func(t *testing.T) {
		t.Parallel()
		m := NewCORSMiddleware(okHandler(), nil)

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "http://example.com")
		rec := httptest.NewRecorder()
		m.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Expose-Headers"))
	})

	t.Run("plain OPTIONS passes through", func(t *testing.T) {
		t.Parallel()
		m := NewCORSMiddleware(okHandler(), nil)

		rec := httptest.NewRecorder()
		m.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/x", nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("registered OPTIONS route wins over preflight", func(t *testing.T) {
		t.Parallel()
		srv, ts := newTestServer(t, unreachableURL(t), frontendDir(t, ""))
		srv.app.Routes.AddOrUpdate(route.Route{ID: 1, Path: "/opts", Method: "OPTIONS"})

		req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/opts", nil)
		req.Header.Set("Origin", "http://example.com")
		req.Header.Set("Access-Control-Request-Method", "GET")
		resp, err := http.DefaultClient.Do(req)
		if !assert.NoError(t, err) {
			return
		}
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		assert.Len(t, srv.app.Logs.List(), 1)
	})
}

func TestServer_ResponsesCarryCORSHeaders(t *testing.T) {
	t.Parallel()

	up := newFakeUpstream(t, http.StatusOK, "{}")
	srv, ts := newTestServer(t, up.URL, frontendDir(t, ""))
	srv.app.Routes.AddOrUpdate(route.Route{ID: 1, Path: "/p", Method: "GET", Mode: route.ModeProxy})

	for _, path := range []string{"/api/routes", "/p", "/missing"} {
		resp, _ := doRequest(t, http.MethodGet, ts.URL+path, "")
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"), path)
	}
}
