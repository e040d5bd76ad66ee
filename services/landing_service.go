package services

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"law_landing_go/config"
	"law_landing_go/models"
	"law_landing_go/services/motion"
)

var ErrMetricNotFound = errors.New("metric not found")

// Stagger between service cards entering the viewport, in seconds
const serviceCardStagger = 0.1

// LandingOptions are the motion settings the landing page is built with
type LandingOptions struct {
	FPS             int
	Spring          motion.Spring
	ScrollThreshold float64
	CounterMargin   float64
	SectionMargin   float64
}

// DefaultLandingOptions mirrors the config defaults
func DefaultLandingOptions() LandingOptions {
	return LandingOptions{
		FPS:             60,
		Spring:          motion.DefaultSpring(),
		ScrollThreshold: motion.DefaultScrollThreshold,
		CounterMargin:   -100,
		SectionMargin:   -50,
	}
}

// LandingOptionsFromConfig maps configuration onto landing options
func LandingOptionsFromConfig(cfg *config.Config) LandingOptions {
	return LandingOptions{
		FPS:             cfg.CounterFPS,
		Spring:          motion.NewSpring(cfg.CounterDuration, 0),
		ScrollThreshold: cfg.ScrollThreshold,
		CounterMargin:   cfg.CounterMargin,
		SectionMargin:   cfg.SectionMargin,
	}
}

type NavbarView struct {
	Brand           string
	Tagline         string
	Links           []models.NavLink
	CTA             models.CTA
	Scrolled        bool
	MenuOpen        bool
	ScrollThreshold float64
}

type ServiceCardView struct {
	models.ServiceCard
	Index int
	Delay float64
}

type ServicesView struct {
	ID        string
	Title     string
	Subtitle  string
	MoreLabel string
	Cards     []ServiceCardView
	CTA       models.CTA
	Margin    float64
}

// MetricView is a trust counter as first rendered: Text is the idle value
// ("0" plus suffix) and Frames the values the browser steps through once the
// card scrolls into view.
type MetricView struct {
	models.Metric
	Index      int
	Text       string
	Frames     []int
	FPS        int
	DurationMS int64
	Margin     float64
}

type TrustView struct {
	ID       string
	Title    string
	Subtitle string
	Footer   string
	Metrics  []MetricView
	Margin   float64
}

// LandingPage is the view model of the whole page
type LandingPage struct {
	Lang     string
	Dir      string
	Navbar   NavbarView
	Services ServicesView
	Trust    TrustView
}

// BuildLandingPage assembles the view model for a site
func BuildLandingPage(site *models.Site, opts LandingOptions) *LandingPage {
	// Navbar state at page load: top of the page, menu closed
	scroll := motion.NewScrollToggle(opts.ScrollThreshold)
	scrolled, _ := scroll.Update(0)
	var menu motion.Menu

	page := &LandingPage{
		Lang: site.Lang,
		Dir:  site.Dir,
		Navbar: NavbarView{
			Brand:           site.Brand,
			Tagline:         site.Tagline,
			Links:           site.Nav,
			CTA:             site.CTA,
			Scrolled:        scrolled,
			MenuOpen:        menu.IsOpen(),
			ScrollThreshold: opts.ScrollThreshold,
		},
		Services: ServicesView{
			ID:        site.Services.ID,
			Title:     site.Services.Title,
			Subtitle:  site.Services.Subtitle,
			MoreLabel: site.Services.MoreLabel,
			CTA:       site.Services.CTA,
			Margin:    opts.CounterMargin,
		},
		Trust: TrustView{
			ID:       site.Trust.ID,
			Title:    site.Trust.Title,
			Subtitle: site.Trust.Subtitle,
			Footer:   site.Trust.Footer,
			Margin:   opts.SectionMargin,
		},
	}

	for i, card := range site.Services.Cards {
		page.Services.Cards = append(page.Services.Cards, ServiceCardView{
			ServiceCard: card,
			Index:       i,
			Delay:       float64(i) * serviceCardStagger,
		})
	}

	for i, metric := range site.Trust.Metrics {
		page.Trust.Metrics = append(page.Trust.Metrics, MetricView{
			Metric:     metric,
			Index:      i,
			Text:       idleText(metric.Suffix),
			Frames:     CounterKeyframes(metric.Value, opts.FPS, opts.Spring),
			FPS:        opts.FPS,
			DurationMS: opts.Spring.Duration.Milliseconds(),
			Margin:     opts.CounterMargin,
		})
	}

	return page
}

// idleText is what an untriggered counter displays: it stays at 0 until the
// card is first seen.
func idleText(suffix string) string {
	return strconv.Itoa(0) + suffix
}

// KeyframeTrack is the JSON form of one metric's counter run
type KeyframeTrack struct {
	Index      int    `json:"index"`
	Target     int    `json:"target"`
	Suffix     string `json:"suffix"`
	Label      string `json:"label"`
	FPS        int    `json:"fps"`
	DurationMS int64  `json:"duration_ms"`
	Frames     []int  `json:"frames"`
}

// MetricKeyframes returns the counter track of the metric at index
func MetricKeyframes(site *models.Site, index int, fps int, spring motion.Spring) (*KeyframeTrack, error) {
	if index < 0 || index >= len(site.Trust.Metrics) {
		return nil, fmt.Errorf("%w: index %d", ErrMetricNotFound, index)
	}
	m := site.Trust.Metrics[index]
	return &KeyframeTrack{
		Index:      index,
		Target:     m.Value,
		Suffix:     m.Suffix,
		Label:      m.Label,
		FPS:        fps,
		DurationMS: spring.Duration.Milliseconds(),
		Frames:     CounterKeyframes(m.Value, fps, spring),
	}, nil
}

type keyframeKey struct {
	target int
	fps    int
	spring motion.Spring
}

var keyframeCache = struct {
	sync.RWMutex
	tracks map[keyframeKey][]int
}{tracks: make(map[keyframeKey][]int)}

// CounterKeyframes memoises motion.Keyframes; the result is a fresh copy
func CounterKeyframes(target, fps int, spring motion.Spring) []int {
	key := keyframeKey{target: target, fps: fps, spring: spring}

	keyframeCache.RLock()
	frames, ok := keyframeCache.tracks[key]
	keyframeCache.RUnlock()

	if !ok {
		frames = motion.Keyframes(float64(target), fps, spring)
		keyframeCache.Lock()
		keyframeCache.tracks[key] = frames
		keyframeCache.Unlock()
	}

	out := make([]int, len(frames))
	copy(out, frames)
	return out
}
