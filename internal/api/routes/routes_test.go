package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tshrrx/chatty-bot/internal/api/handlers"
	"github.com/tshrrx/chatty-bot/internal/api/middleware"
	"github.com/tshrrx/chatty-bot/internal/metrics"
	"github.com/tshrrx/chatty-bot/internal/services"
)

type stubProvider struct {
	chunks []string
	err    error
}

func (s *stubProvider) StreamAnswer(ctx context.Context, prompt string) (<-chan string, <-chan error) {
	out := make(chan string, len(s.chunks)+1)
	errs := make(chan error, 1)
	for _, c := range s.chunks {
		out <- c
	}
	if s.err != nil {
		errs <- s.err
	}
	close(out)
	close(errs)
	return out, errs
}

func (s *stubProvider) Close() error { return nil }

func TestMain(m *testing.M) {
	metrics.Register(prometheus.DefaultRegisterer)
	metrics.SetBuildInfo("test", "", "")
	m.Run()
}

func newTestServer(t *testing.T, p *stubProvider) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := logrus.New()
	l.SetOutput(io.Discard)

	r := gin.New()
	r.Use(middleware.RequestLogger(l))
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}))

	RegisterRoutes(r, Deps{
		Chat:   handlers.NewChatHandler(services.NewChatService(p, l), l),
		Health: handlers.NewHealthHandler("chatty-bot", "gemini-2.5-flash", "gemini"),
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestChatStreamOverHTTP(t *testing.T) {
	srv := newTestServer(t, &stubProvider{chunks: []string{"Hi", " there"}})

	resp, err := http.Post(srv.URL+"/chat", "application/json", strings.NewReader(`{"newMessage":"Hi"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	want := "data: {\"text\":\"Hi\"}\n\n" +
		"data: {\"text\":\" there\"}\n\n" +
		"data: {\"done\":true}\n\n"
	assert.Equal(t, want, string(body))
}

func TestChatStreamSurfacesUpstreamError(t *testing.T) {
	srv := newTestServer(t, &stubProvider{err: assert.AnError})

	resp, err := http.Post(srv.URL+"/chat", "application/json", strings.NewReader(`{"newMessage":"Hi"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, "data: {\"error\":\"Backend streaming error: "+assert.AnError.Error()+"\"}\n\n", string(body))
}

func TestChatRejectsMissingMessageOverHTTP(t *testing.T) {
	srv := newTestServer(t, &stubProvider{})

	resp, err := http.Post(srv.URL+"/chat", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
}

func TestHealthOverHTTP(t *testing.T) {
	srv := newTestServer(t, &stubProvider{})

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "gemini-2.5-flash", body["model"])
}

func TestMetricsExposed(t *testing.T) {
	srv := newTestServer(t, &stubProvider{})

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "chatty_bot_build_info")
	assert.Contains(t, string(body), "chatty_bot_stream_fragments_total")
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, &stubProvider{})

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/chat", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
