package components

import (
	"context"
	"strings"
	"testing"

	"law_landing_go/content"
	"law_landing_go/models"
	"law_landing_go/services"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	return sb.String()
}

func testPage(t *testing.T) *services.LandingPage {
	t.Helper()
	site, err := content.Parse(content.Embedded())
	require.NoError(t, err)
	return services.BuildLandingPage(site, services.DefaultLandingOptions())
}

func TestSeconds(t *testing.T) {
	assert.Equal(t, "0s", seconds(0))
	assert.Equal(t, "0.3s", seconds(0.1*3))
	assert.Equal(t, "0.15s", seconds(0.05*3))
}

func TestNavbar(t *testing.T) {
	page := testPage(t)
	html := render(t, Navbar(page.Navbar))

	assert.Contains(t, html, `id="navbar"`)
	assert.Contains(t, html, `dir="rtl"`)
	assert.Contains(t, html, `data-scroll-threshold="20"`)
	assert.Contains(t, html, `data-scrolled="false"`)
	assert.Contains(t, html, `aria-expanded="false"`)
	assert.Contains(t, html, `aria-label="`+menuOpenLabel+`"`)
	assert.Contains(t, html, `id="mobile-menu" class="mobile-menu" dir="rtl" hidden>`)
	for _, link := range page.Navbar.Links {
		assert.Contains(t, html, `href="`+link.Href+`"`)
	}

	t.Run("ScrolledAndOpen", func(t *testing.T) {
		nav := page.Navbar
		nav.Scrolled = true
		nav.MenuOpen = true
		html := render(t, Navbar(nav))
		assert.Contains(t, html, `data-scrolled="true"`)
		assert.Contains(t, html, `aria-expanded="true"`)
		assert.Contains(t, html, `aria-label="`+menuCloseLabel+`"`)
		assert.Contains(t, html, `id="mobile-menu" class="mobile-menu" dir="rtl">`)
	})
}

func TestNavbarEscapesText(t *testing.T) {
	html := render(t, Navbar(services.NavbarView{
		Brand: `<script>alert("x")</script>`,
		Links: []models.NavLink{{Name: "a&b", Href: "#home"}},
	}))
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "a&amp;b")
}

func TestNavbarRejectsUnsafeHref(t *testing.T) {
	html := render(t, Navbar(services.NavbarView{
		Brand: "brand",
		Links: []models.NavLink{{Name: "x", Href: "javascript:alert(1)"}},
	}))
	assert.NotContains(t, html, "javascript:")
	assert.Contains(t, html, "about:invalid")
}

func TestServicesGrid(t *testing.T) {
	page := testPage(t)
	html := render(t, ServicesGrid(page.Services))

	assert.Contains(t, html, `id="services"`)
	assert.Equal(t, len(page.Services.Cards), strings.Count(html, `class="service-card"`))
	assert.Contains(t, html, `data-margin="-100"`)
	assert.Contains(t, html, `data-delay="0.5s"`)
	assert.Contains(t, html, `data-icon="balance-scale"`)
	assert.Contains(t, html, `<span class="service-arrow" aria-hidden="true">←</span>`)
}

func TestTrustIndicators(t *testing.T) {
	page := testPage(t)
	html := render(t, TrustIndicators(page.Trust))

	assert.Contains(t, html, `id="trust-indicators"`)
	assert.Contains(t, html, `data-margin="-50"`)
	assert.Equal(t, 4, strings.Count(html, `class="counter"`))
	assert.Contains(t, html, `data-target="500"`)
	assert.Contains(t, html, `data-target="1200"`)
	assert.Contains(t, html, `data-fps="60"`)
	assert.Contains(t, html, `data-duration="2000"`)

	// Idle text is zero, the suffix is rendered separately
	assert.Contains(t, html, `data-frames="[`)
	assert.Contains(t, html, `">0</span><span class="metric-suffix">+</span>`)
	assert.Contains(t, html, `">0</span><span class="metric-suffix">%</span>`)
}

func TestMetricCardEmptyTrack(t *testing.T) {
	html := render(t, MetricCard(services.MetricView{
		Metric: models.Metric{Icon: "award", Value: 0, Label: "none"},
		Text:   "0",
	}))
	assert.Contains(t, html, `data-frames="[]"`)
	assert.Contains(t, html, `data-target="0"`)
}

func TestTrimSuffix(t *testing.T) {
	assert.Equal(t, "0", trimSuffix("0+", "+"))
	assert.Equal(t, "12", trimSuffix("12", ""))
	assert.Equal(t, "98", trimSuffix("98%", "%"))
	assert.Equal(t, "5", trimSuffix("5", "+"))
}

func TestFramesJSON(t *testing.T) {
	assert.Equal(t, "[]", FramesJSON(nil))
	assert.Equal(t, "[]", FramesJSON([]int{}))
	assert.Equal(t, "[1,2,3]", FramesJSON([]int{1, 2, 3}))
}

func TestJSONFallback(t *testing.T) {
	assert.Equal(t, "{}", JSON(make(chan int), "{}"))
	assert.Equal(t, `{"a":1}`, JSON(map[string]int{"a": 1}, "{}"))
}
