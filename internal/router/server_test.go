package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/jwalitptl/woundcare-api/internal/handler"
	deviceHandler "github.com/jwalitptl/woundcare-api/internal/handler/device"
	woundHandler "github.com/jwalitptl/woundcare-api/internal/handler/wound"
	"github.com/jwalitptl/woundcare-api/internal/llm"
	"github.com/jwalitptl/woundcare-api/internal/middleware"
	"github.com/jwalitptl/woundcare-api/internal/repository/memory"
	deviceService "github.com/jwalitptl/woundcare-api/internal/service/device"
	noteService "github.com/jwalitptl/woundcare-api/internal/service/note"
	sessionService "github.com/jwalitptl/woundcare-api/internal/service/session"
	woundService "github.com/jwalitptl/woundcare-api/internal/service/wound"
	"github.com/jwalitptl/woundcare-api/pkg/auth"
	"github.com/jwalitptl/woundcare-api/pkg/httputil"
	"github.com/jwalitptl/woundcare-api/pkg/metrics"
	"github.com/jwalitptl/woundcare-api/pkg/validator"
)

// fakeGenerator records every call and replies with reply, or fails with err.
type fakeGenerator struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeGenerator) set(reply string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reply, f.err = reply, err
}

func (f *fakeGenerator) lastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}

var _ llm.Generator = (*fakeGenerator)(nil)

// testServer is the full HTTP stack over an in-memory store. It behaves like
// one browser: the session token from the first response is replayed.
type testServer struct {
	engine    *gin.Engine
	generator *fakeGenerator
	token     string
}

func newTestServer() *testServer {
	gin.SetMode(gin.TestMode)

	registry := prometheus.NewRegistry()
	m := metrics.NewMetrics(registry, "test", "")
	logger := zerolog.Nop()

	store := memory.NewSessionRepository(time.Hour, time.Hour)
	sessions := sessionService.NewService(store, m, logger)
	generator := &fakeGenerator{reply: "Nota generada."}
	notes := noteService.NewService(sessions, generator, validator.New(), noteService.Config{}, m, logger)

	h := handler.NewHandler(sessions, registry)
	woundH := woundHandler.NewHandler(woundService.NewService(sessions, m), notes)
	deviceH := deviceHandler.NewHandler(deviceService.NewService(sessions, m), notes)

	r := NewRouter(h, woundH, deviceH, auth.NewJWTService("test-secret", "woundcare-test", time.Hour), RouterConfig{
		Mode:       gin.TestMode,
		CORSConfig: middleware.DefaultCORSConfig(),
		Security:   middleware.DefaultSecurityConfig(),
		SizeLimit:  middleware.DefaultSizeLimitConfig(),
		Session: middleware.SessionConfig{
			CookieName: "woundcare_session",
			MaxAge:     3600,
		},
		Registerer: registry,
	})
	r.Setup()

	return &testServer{engine: r.Engine(), generator: generator}
}

func (s *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	return s.raw(method, path, reader)
}

func (s *testServer) raw(method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	if tok := w.Header().Get(middleware.HeaderSessionToken); tok != "" {
		s.token = tok
	}
	return w
}

// decodeEnvelope unmarshals the response envelope, placing its data into out when given.
func decodeEnvelope(body []byte, out any) (httputil.Response, error) {
	var raw struct {
		Status  string          `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return httputil.Response{}, fmt.Errorf("invalid JSON body %q: %w", body, err)
	}
	if out != nil && len(raw.Data) > 0 {
		if err := json.Unmarshal(raw.Data, out); err != nil {
			return httputil.Response{}, fmt.Errorf("invalid data %s: %w", raw.Data, err)
		}
	}
	return httputil.Response{Status: raw.Status, Message: raw.Message}, nil
}
