package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"law_landing_go/config"
	"law_landing_go/content"
	"law_landing_go/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLandingHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/", nil)

	err := LandingHandler(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, `id="navbar"`)
	assert.Contains(t, body, `id="services"`)
	assert.Contains(t, body, `id="trust-indicators"`)
	assert.Contains(t, body, `data-target="500"`)
	assert.Contains(t, body, `href="https://example.com/"`)
	// Test environment is not indexable
	assert.Contains(t, body, "noindex, nofollow")
}

func TestLandingSEO(t *testing.T) {
	_, c, _ := setupEcho(http.MethodGet, "/", nil)
	cfg := c.Get("config").(*config.Config)
	cfg.Environment = "production"

	seo := LandingSEO(content.Current(), cfg)
	assert.Equal(t, "https://example.com/", seo.Canonical)
	assert.Equal(t, "index, follow", seo.Robots())
}

func TestMetricKeyframesHandler(t *testing.T) {
	t.Run("Default FPS", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/metrics/1/keyframes", nil)
		c.SetParamNames("index")
		c.SetParamValues("1")

		require.NoError(t, MetricKeyframesHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var track services.KeyframeTrack
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &track))
		assert.Equal(t, 1, track.Index)
		assert.Equal(t, 500, track.Target)
		assert.Equal(t, 60, track.FPS)
		assert.Equal(t, int64(2000), track.DurationMS)
		require.NotEmpty(t, track.Frames)
		assert.Equal(t, 500, track.Frames[len(track.Frames)-1])
		for i := 1; i < len(track.Frames); i++ {
			assert.GreaterOrEqual(t, track.Frames[i], track.Frames[i-1])
		}
	})

	t.Run("Custom FPS", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/metrics/0/keyframes?fps=10", nil)
		c.SetParamNames("index")
		c.SetParamValues("0")

		require.NoError(t, MetricKeyframesHandler(c))
		var track services.KeyframeTrack
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &track))
		assert.Equal(t, 10, track.FPS)
		assert.LessOrEqual(t, len(track.Frames), 20)
	})

	tests := []struct {
		name   string
		index  string
		query  string
		status int
	}{
		{"Bad index", "abc", "", http.StatusBadRequest},
		{"Unknown metric", "9", "", http.StatusNotFound},
		{"Negative metric", "-1", "", http.StatusNotFound},
		{"Zero fps", "0", "?fps=0", http.StatusBadRequest},
		{"Too many fps", "0", "?fps=1000", http.StatusBadRequest},
		{"Non numeric fps", "0", "?fps=fast", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, c, _ := setupEcho(http.MethodGet, "/api/metrics/"+tt.index+"/keyframes"+tt.query, nil)
			c.SetParamNames("index")
			c.SetParamValues(tt.index)

			err := MetricKeyframesHandler(c)
			var he *echo.HTTPError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, tt.status, he.Code)
		})
	}
}

func TestGetSitemapHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/sitemap.xml", nil)

	require.NoError(t, GetSitemapHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<?xml"))
	assert.Contains(t, body, "<loc>https://example.com/</loc>")
	assert.Equal(t, 1, strings.Count(body, "<url>"))
}

func TestRobotsHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/robots.txt", nil)
	require.NoError(t, RobotsHandler(c))
	assert.Contains(t, rec.Body.String(), "Disallow: /\n")

	_, c, rec = setupEcho(http.MethodGet, "/robots.txt", nil)
	c.Get("config").(*config.Config).Environment = "production"
	require.NoError(t, RobotsHandler(c))
	assert.Contains(t, rec.Body.String(), "Sitemap: https://example.com/sitemap.xml")
}

func TestHealthHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/healthz", nil)
	require.NoError(t, HealthHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.Contains(t, rec.Body.String(), `"metrics":4`)
}
