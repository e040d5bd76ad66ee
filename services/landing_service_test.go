package services

import (
	"testing"
	"time"

	"law_landing_go/config"
	"law_landing_go/content"
	"law_landing_go/models"
	"law_landing_go/services/motion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSite(t *testing.T) *models.Site {
	t.Helper()
	require.NoError(t, content.Load(""))
	return content.Current()
}

func TestBuildLandingPage(t *testing.T) {
	site := testSite(t)
	page := BuildLandingPage(site, DefaultLandingOptions())

	assert.Equal(t, "he", page.Lang)
	assert.Equal(t, "rtl", page.Dir)

	t.Run("Navbar", func(t *testing.T) {
		assert.Equal(t, site.Brand, page.Navbar.Brand)
		assert.Len(t, page.Navbar.Links, 5)
		assert.False(t, page.Navbar.Scrolled)
		assert.False(t, page.Navbar.MenuOpen)
		assert.Equal(t, 20.0, page.Navbar.ScrollThreshold)
	})

	t.Run("ServiceCardsStagger", func(t *testing.T) {
		require.Len(t, page.Services.Cards, 6)
		for i, card := range page.Services.Cards {
			assert.Equal(t, i, card.Index)
			assert.InDelta(t, float64(i)*0.1, card.Delay, 1e-9)
		}
		assert.Equal(t, -100.0, page.Services.Margin)
	})

	t.Run("MetricsStartIdle", func(t *testing.T) {
		require.Len(t, page.Trust.Metrics, 4)
		assert.Equal(t, "0+", page.Trust.Metrics[0].Text)
		assert.Equal(t, "0%", page.Trust.Metrics[3].Text)
		for _, m := range page.Trust.Metrics {
			idle := motion.NewCounter(motion.NewFrameLoop(nil), float64(m.Value))
			assert.Equal(t, idle.Text(m.Suffix), m.Text)
			require.NotEmpty(t, m.Frames)
			assert.Equal(t, m.Value, m.Frames[len(m.Frames)-1])
			assert.Equal(t, int64(2000), m.DurationMS)
			assert.Equal(t, 60, m.FPS)
		}
		assert.Equal(t, -50.0, page.Trust.Margin)
	})
}

func TestLandingOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.CounterDuration = 1500 * time.Millisecond
	cfg.CounterFPS = 30

	opts := LandingOptionsFromConfig(cfg)
	assert.Equal(t, 30, opts.FPS)
	assert.Equal(t, motion.NewSpring(1500*time.Millisecond, 0), opts.Spring)
	assert.Equal(t, cfg.ScrollThreshold, opts.ScrollThreshold)
}

func TestMetricKeyframes(t *testing.T) {
	site := testSite(t)

	track, err := MetricKeyframes(site, 1, 60, motion.DefaultSpring())
	require.NoError(t, err)
	assert.Equal(t, 500, track.Target)
	assert.Equal(t, "+", track.Suffix)
	assert.Equal(t, 500, track.Frames[len(track.Frames)-1])

	_, err = MetricKeyframes(site, 4, 60, motion.DefaultSpring())
	assert.ErrorIs(t, err, ErrMetricNotFound)
	_, err = MetricKeyframes(site, -1, 60, motion.DefaultSpring())
	assert.ErrorIs(t, err, ErrMetricNotFound)
}

func TestCounterKeyframesReturnsCopies(t *testing.T) {
	a := CounterKeyframes(98, 60, motion.DefaultSpring())
	require.NotEmpty(t, a)
	a[0] = -1

	b := CounterKeyframes(98, 60, motion.DefaultSpring())
	assert.NotEqual(t, -1, b[0])
	assert.Empty(t, CounterKeyframes(0, 60, motion.DefaultSpring()))
}
