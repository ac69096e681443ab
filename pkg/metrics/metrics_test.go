package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Upload()
		m.Reaction("like")
		m.Subscription("subscribe")
		m.Comment()
		m.Cache(true)
	})
}

func TestMiddlewareAndHandler(t *testing.T) {
	m := New()
	m.Upload()
	m.Reaction("like")
	m.Cache(false)

	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/video/get/:videoId", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/metrics", m.Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/video/get/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	text := string(body)
	assert.Contains(t, text, "video_service_uploads_total 1")
	assert.Contains(t, text, `video_service_reactions_total{kind="like"} 1`)
	assert.Contains(t, text, "video_service_name_cache_misses_total 1")
	assert.Contains(t, text, `route="/video/get/:videoId"`)
}
