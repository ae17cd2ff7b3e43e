package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shandysiswandi/goblog/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/goblog/internal/pkg/pkguid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapConfig map[string]any

func (m mapConfig) GetInt(key string) int64 {
	v, _ := m[key].(int64)
	return v
}

func (m mapConfig) GetBool(key string) bool {
	v, _ := m[key].(bool)
	return v
}

func (m mapConfig) GetFloat(key string) float64 {
	v, _ := m[key].(float64)
	return v
}

func (m mapConfig) GetString(key string) string {
	v, _ := m[key].(string)
	return v
}

func (m mapConfig) GetArray(key string) []string {
	v, _ := m[key].([]string)
	return v
}

func (m mapConfig) Close() error { return nil }

func newTestApp(cfg mapConfig) *App {
	ctx, cancel := context.WithCancel(context.Background())
	a := &App{
		ctx:       ctx,
		cancel:    cancel,
		config:    cfg,
		uid:       pkguid.NewUUID(),
		goroutine: pkgroutine.NewManager(2),
	}
	a.initHTTPServer()
	a.initModules()
	a.initClosers()
	return a
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestModulesAreSeparateServices(t *testing.T) {
	a := newTestApp(mapConfig{
		"modules.blog.enabled": true,
		"modules.home.enabled": true,
		"modules.home.address": ":9001",
		"modules.home.name":    "my blog",
	})

	require.Len(t, a.services, 2)

	blogSvc, homeSvc := a.services[0], a.services[1]
	assert.Equal(t, "blog", blogSvc.name)
	assert.Equal(t, defaultBlogAddress, blogSvc.httpServer.Addr)
	assert.Equal(t, "home", homeSvc.name)
	assert.Equal(t, ":9001", homeSvc.httpServer.Addr)

	assert.JSONEq(t, `{"data":"blog list"}`, get(blogSvc.httpServer.Handler, "/").Body.String())
	assert.JSONEq(t, `{"data":{"name":"my blog"}}`, get(homeSvc.httpServer.Handler, "/").Body.String())
	assert.Equal(t, http.StatusNotFound, get(blogSvc.httpServer.Handler, "/about").Code)
	assert.Equal(t, http.StatusNotFound, get(homeSvc.httpServer.Handler, "/blog").Code)
}

func TestDisabledModulesAreNotServed(t *testing.T) {
	a := newTestApp(mapConfig{"modules.home.enabled": true})

	require.Len(t, a.services, 1)
	assert.Equal(t, "home", a.services[0].name)
	assert.JSONEq(t, `{"data":{"name":"goblog"}}`, get(a.services[0].router, "/").Body.String())
}

func TestRateLimitAppliesToServices(t *testing.T) {
	a := newTestApp(mapConfig{
		"modules.blog.enabled":        true,
		"server.rate_limit.rps":       float64(1),
		"server.rate_limit.burst":     int64(1),
		"server.cors.allowed_origins": []string{"http://example.com"},
	})

	h := a.services[0].httpServer.Handler
	assert.Equal(t, http.StatusOK, get(h, "/blog").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(h, "/blog").Code)
	assert.Equal(t, []string{"http://example.com"}, a.corsOrigins)
}

func preflight(h http.Handler, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, "/blog", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCORSWildcardDoesNotAllowCredentials(t *testing.T) {
	a := newTestApp(mapConfig{"modules.blog.enabled": true})

	rec := preflight(a.services[0].httpServer.Handler, "http://evil.example")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSListedOriginsAllowCredentials(t *testing.T) {
	a := newTestApp(mapConfig{
		"modules.blog.enabled":        true,
		"server.cors.allowed_origins": []string{"http://example.com"},
	})
	h := a.services[0].httpServer.Handler

	rec := preflight(h, "http://example.com")
	assert.Equal(t, "http://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	rec = preflight(h, "http://evil.example")
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestNewIDGenerator(t *testing.T) {
	assert.IsType(t, &pkguid.UUID{}, newIDGenerator("uuid"))
	assert.IsType(t, &pkguid.UUID{}, newIDGenerator(""))
	assert.IsType(t, &pkguid.SnowflakeString{}, newIDGenerator("snowflake"))
}

func TestStopShutsDownServices(t *testing.T) {
	a := newTestApp(mapConfig{
		"modules.blog.enabled": true,
		"modules.blog.address": "127.0.0.1:0",
	})

	a.Stop(context.Background())

	assert.ErrorIs(t, a.services[0].httpServer.ListenAndServe(), http.ErrServerClosed)
}
