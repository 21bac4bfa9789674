package server

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/showcase/internal/shared"
	"github.com/google/uuid"
)

type routesHandler struct {
	routes []string
}

func (h routesHandler) Routes() []string { return h.routes }

func (h routesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(w, "custom %s", r.Method)
}

func okHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, body)
	})
}

func TestBasicRouter(t *testing.T) {
	t.Run("method patterns", func(t *testing.T) {
		r := NewBasicRouter()
		r.Handle(http.MethodGet, "/admin", okHandler("form"))
		r.Handle(http.MethodPost, "/admin", okHandler("submitted"))

		tt := []struct {
			method     string
			wantStatus int
			wantBody   string
		}{
			{method: http.MethodGet, wantStatus: http.StatusOK, wantBody: "form"},
			{method: http.MethodPost, wantStatus: http.StatusOK, wantBody: "submitted"},
			{method: http.MethodDelete, wantStatus: http.StatusMethodNotAllowed},
		}

		for _, tc := range tt {
			t.Run(tc.method, func(t *testing.T) {
				rec := httptest.NewRecorder()
				r.ServeHTTP(rec, httptest.NewRequest(tc.method, "/admin", nil))

				if rec.Code != tc.wantStatus {
					t.Errorf("expected status %d, got %d", tc.wantStatus, rec.Code)
				}
				if tc.wantBody != "" && rec.Body.String() != tc.wantBody {
					t.Errorf("expected body %q, got %q", tc.wantBody, rec.Body.String())
				}
			})
		}
	})

	t.Run("Handler registers all routes", func(t *testing.T) {
		r := NewBasicRouter()
		r.Handler(routesHandler{routes: []string{"GET /a", "POST /b"}})

		for _, req := range []*http.Request{
			httptest.NewRequest(http.MethodGet, "/a", nil),
			httptest.NewRequest(http.MethodPost, "/b", nil),
		} {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			if rec.Code != http.StatusOK || !strings.HasPrefix(rec.Body.String(), "custom") {
				t.Errorf("%s %s: unexpected response %d %q", req.Method, req.URL.Path, rec.Code, rec.Body.String())
			}
		}
	})

	t.Run("middleware order", func(t *testing.T) {
		var order []string
		tag := func(name string) Middleware {
			return func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					order = append(order, name)
					next.ServeHTTP(w, r)
				})
			}
		}

		r := NewBasicRouter()
		r.Use(tag("first"), tag("second"))
		r.Handle(http.MethodGet, "/", okHandler("ok"))

		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		if strings.Join(order, ",") != "first,second" {
			t.Errorf("expected first,second, got %v", order)
		}
	})
}

func TestMiddleware(t *testing.T) {
	t.Run("RequestID generates an ID", func(t *testing.T) {
		var seen string
		h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = RequestIDFrom(r.Context())
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if _, err := uuid.Parse(seen); err != nil {
			t.Errorf("expected generated UUID, got %q", seen)
		}
		if rec.Header().Get(RequestIDHeader) != seen {
			t.Errorf("expected response header %q, got %q", seen, rec.Header().Get(RequestIDHeader))
		}
	})

	t.Run("RequestID reuses client ID", func(t *testing.T) {
		h := RequestID()(okHandler("ok"))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "client-id")

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Header().Get(RequestIDHeader) != "client-id" {
			t.Errorf("expected client-id, got %q", rec.Header().Get(RequestIDHeader))
		}
	})

	t.Run("RequestIDFrom outside middleware", func(t *testing.T) {
		if id := RequestIDFrom(context.Background()); id != "" {
			t.Errorf("expected empty ID, got %q", id)
		}
	})

	t.Run("Logging records status", func(t *testing.T) {
		var buf bytes.Buffer
		h := Logging(shared.NewLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/brew", nil))

		out := buf.String()
		if !strings.Contains(out, "status=418") || !strings.Contains(out, "path=/brew") {
			t.Errorf("unexpected log output: %q", out)
		}
	})

	t.Run("RateLimit throttles mutating requests", func(t *testing.T) {
		h := RateLimit(NewLimiter(0.001, 1))(okHandler("ok"))

		statuses := make([]int, 3)
		for i := range statuses {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
			statuses[i] = rec.Code
		}

		if statuses[0] != http.StatusOK || statuses[1] != http.StatusTooManyRequests || statuses[2] != http.StatusTooManyRequests {
			t.Errorf("unexpected statuses: %v", statuses)
		}
	})

	t.Run("RateLimit ignores reads", func(t *testing.T) {
		h := RateLimit(NewLimiter(0.001, 1))(okHandler("ok"))

		for range 5 {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			if rec.Code != http.StatusOK {
				t.Fatalf("GET should not be throttled, got %d", rec.Code)
			}
		}
	})

	t.Run("NewLimiter disabled", func(t *testing.T) {
		limiter := NewLimiter(0, 0)
		for range 100 {
			if !limiter.Allow() {
				t.Fatal("disabled limiter should always allow")
			}
		}
	})

	t.Run("Recover", func(t *testing.T) {
		var buf bytes.Buffer
		h := Recover(shared.NewLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", rec.Code)
		}
		if !strings.Contains(buf.String(), "boom") {
			t.Errorf("expected panic to be logged, got %q", buf.String())
		}
	})
}

func TestServer(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}

	srv := NewServer(ln.Addr().String(), okHandler("pong"), shared.NewLogger(io.Discard))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	if err != nil {
		cancel()
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if string(body) != "pong" {
		t.Errorf("expected pong, got %q", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
