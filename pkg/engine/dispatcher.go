package engine

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/bffd/bffd/pkg/httputil"
	"github.com/bffd/bffd/pkg/requestlog"
	"github.com/bffd/bffd/pkg/route"
	"github.com/bffd/bffd/pkg/upstream"
)

// notFoundBody is returned when no route, asset, or SPA shell applies.
var notFoundBody = []byte(`{"error":"Not Found"}`)

// HandledResponse is the local acknowledgment for routes in handled mode.
type HandledResponse struct {
	Message string `json:"message"`
	Path    string `json:"path"`
	Method  string `json:"method"`
	RouteID int    `json:"route_id"`
	Handled bool   `json:"handled"`
}

// Dispatcher decides, per request, between local handling, forwarding
// upstream, static assets, and the SPA shell.
type Dispatcher struct {
	app *App
}

// NewDispatcher creates a Dispatcher over app.
func NewDispatcher(app *App) *Dispatcher {
	return &Dispatcher{app: app}
}

// exchange carries the per-request state needed to write the log entry.
type exchange struct {
	start   time.Time
	method  string
	path    string
	reqBody *string
}

// ServeHTTP implements http.Handler.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ex := &exchange{
		start:  time.Now(),
		method: r.Method,
		path:   r.URL.EscapedPath(),
	}

	// The body is read to completion before any decision is made.
	body, err := io.ReadAll(r.Body)
	if err != nil {
		msg := "Failed to read request body: " + err.Error()
		d.app.Logger.Warn("reading request body", "method", ex.method, "path", ex.path, "error", err)
		httputil.WriteText(w, http.StatusBadRequest, msg)
		d.record(ex, http.StatusBadRequest, requestlog.Text(msg))
		return
	}
	ex.reqBody = requestlog.BodyText(body)

	if rt, ok := d.app.Routes.Find(ex.method, ex.path); ok {
		if rt.Mode == route.ModeProxy {
			d.proxy(w, r, ex, &rt, body)
		} else {
			d.handled(w, ex, &rt)
		}
		return
	}

	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		if file, ok := d.app.Assets.Lookup(r.URL.Path); ok {
			sw := newStatusResponseWriter(w)
			d.app.Assets.ServeFile(sw, r, file)
			d.record(ex, sw.statusCode, nil)
			return
		}
	}

	d.spaShell(w, ex)
}

// proxy forwards the request upstream and relays the response verbatim.
func (d *Dispatcher) proxy(w http.ResponseWriter, r *http.Request, ex *exchange, rt *route.Route, body []byte) {
	target := rt.Upstream(ex.path)
	// The query string travels with the forwarded path.
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	resp, err := d.app.Forwarder.Forward(r.Context(), upstream.Request{
		Method: r.Method,
		Path:   target,
		Header: r.Header,
		Body:   body,
	})
	if err != nil {
		msg := upstream.DiagnosticMessage(err)
		d.app.Logger.Error("proxy error", "method", ex.method, "path", ex.path, "routeId", rt.ID, "error", err)
		// The client sees 502 while the log records the failure as 500.
		httputil.WriteText(w, http.StatusBadGateway, msg)
		d.record(ex, http.StatusInternalServerError, requestlog.Text(msg))
		return
	}

	d.app.Logger.Debug("upstream responded", "method", ex.method, "target", target, "status", resp.StatusCode, "upstreamLatency", resp.Duration)

	upstream.CopyHeaders(w.Header(), resp.Header)
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write(resp.Body)

	d.record(ex, resp.StatusCode, requestlog.BodyText(resp.Body))
}

// handled answers locally with a fixed acknowledgment.
func (d *Dispatcher) handled(w http.ResponseWriter, ex *exchange, rt *route.Route) {
	payload, _ := json.Marshal(HandledResponse{
		Message: "Dynamic route matched",
		Path:    ex.path,
		Method:  ex.method,
		RouteID: rt.ID,
		Handled: true,
	})
	httputil.WriteRawJSON(w, http.StatusOK, payload)
	d.record(ex, http.StatusOK, requestlog.BodyText(payload))
}

// spaShell serves index.html, or a JSON 404 when it cannot be read.
func (d *Dispatcher) spaShell(w http.ResponseWriter, ex *exchange) {
	html, err := d.app.Assets.Index()
	if err != nil {
		d.app.Logger.Debug("no SPA shell", "path", ex.path, "error", err)
		httputil.WriteRawJSON(w, http.StatusNotFound, notFoundBody)
		d.record(ex, http.StatusNotFound, requestlog.BodyText(notFoundBody))
		return
	}

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(html)
	d.record(ex, http.StatusOK, requestlog.BodyText(html))
}

// record appends the single log entry for this request.
func (d *Dispatcher) record(ex *exchange, status int, respBody *string) {
	latency := time.Since(ex.start)
	d.app.Logs.Log(&requestlog.Entry{
		Method:       ex.method,
		Path:         ex.path,
		Status:       status,
		LatencyMs:    latency.Milliseconds(),
		RequestBody:  ex.reqBody,
		ResponseBody: respBody,
	})
	d.app.Logger.Debug("request handled", "method", ex.method, "path", ex.path, "status", status, "latency", latency)
}

// HasMatch reports whether a registered route matches the request.
func (d *Dispatcher) HasMatch(r *http.Request) bool {
	_, ok := d.app.Routes.Find(r.Method, r.URL.EscapedPath())
	return ok
}
