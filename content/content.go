// Package content loads the landing page copy. The default copy is embedded
// in the binary; a YAML file with the same shape can replace it at startup.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"html"
	"log"
	"os"
	"strings"
	"sync"

	"law_landing_go/models"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var embedded []byte

// ErrInvalidContent wraps every validation failure of a site copy file.
var ErrInvalidContent = errors.New("invalid site content")

var (
	current *models.Site
	mutex   sync.RWMutex
	policy  = bluemonday.StrictPolicy()
)

// Icons the templates know how to draw
var knownIcons = map[string]bool{
	"laptop-code":   true,
	"balance-scale": true,
	"lightbulb":     true,
	"file-contract": true,
	"briefcase":     true,
	"rocket":        true,
	"award":         true,
	"users":         true,
	"chart-line":    true,
}

// Load parses the copy at path (or the embedded copy when path is empty) and
// makes it the current site.
func Load(path string) error {
	data := embedded
	source := "embedded"
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read site content %s: %w", path, err)
		}
		data = b
		source = path
	}

	site, err := Parse(data)
	if err != nil {
		return err
	}

	mutex.Lock()
	current = site
	mutex.Unlock()

	log.Printf("[INFO] Loaded site content from %s (%d services, %d metrics)", source, len(site.Services.Cards), len(site.Trust.Metrics))
	return nil
}

// Current returns the loaded site, falling back to the embedded copy.
func Current() *models.Site {
	mutex.RLock()
	site := current
	mutex.RUnlock()
	if site != nil {
		return site
	}

	if err := Load(""); err != nil {
		// The embedded copy is covered by tests; this only fires on a broken build.
		log.Printf("[WARNING] Failed to load embedded site content: %v", err)
		return &models.Site{}
	}
	mutex.RLock()
	defer mutex.RUnlock()
	return current
}

// Embedded returns a copy of the built-in site copy document
func Embedded() []byte {
	return append([]byte(nil), embedded...)
}

// Parse decodes, sanitises and validates a site copy document.
func Parse(data []byte) (*models.Site, error) {
	var site models.Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}

	sanitize(&site)
	if site.Dir == "" {
		site.Dir = "rtl"
	}

	if err := validate(&site); err != nil {
		return nil, err
	}
	return &site, nil
}

// clean strips any markup from display text. The result is plain text; the
// templates escape it again on output.
func clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(policy.Sanitize(s)))
}

func sanitize(site *models.Site) {
	site.Brand = clean(site.Brand)
	site.Tagline = clean(site.Tagline)
	site.CTA.Label = clean(site.CTA.Label)
	for i := range site.Nav {
		site.Nav[i].Name = clean(site.Nav[i].Name)
	}

	s := &site.Services
	s.Title = clean(s.Title)
	s.Subtitle = clean(s.Subtitle)
	s.MoreLabel = clean(s.MoreLabel)
	s.CTA.Label = clean(s.CTA.Label)
	for i := range s.Cards {
		s.Cards[i].Title = clean(s.Cards[i].Title)
		s.Cards[i].Description = clean(s.Cards[i].Description)
	}

	tr := &site.Trust
	tr.Title = clean(tr.Title)
	tr.Subtitle = clean(tr.Subtitle)
	tr.Footer = clean(tr.Footer)
	for i := range tr.Metrics {
		tr.Metrics[i].Suffix = clean(tr.Metrics[i].Suffix)
		tr.Metrics[i].Label = clean(tr.Metrics[i].Label)
	}

	site.SEO.Title = clean(site.SEO.Title)
	site.SEO.Description = clean(site.SEO.Description)
	site.SEO.Keywords = clean(site.SEO.Keywords)
}

func validate(site *models.Site) error {
	if site.Brand == "" {
		return fmt.Errorf("%w: brand is required", ErrInvalidContent)
	}
	if site.Dir != "rtl" && site.Dir != "ltr" {
		return fmt.Errorf("%w: dir must be rtl or ltr, got %q", ErrInvalidContent, site.Dir)
	}
	for _, link := range site.Nav {
		if !isAnchor(link.Href) {
			return fmt.Errorf("%w: nav link %q must be an in-page anchor", ErrInvalidContent, link.Name)
		}
	}
	for _, cta := range []models.CTA{site.CTA, site.Services.CTA} {
		if cta.Href != "" && !isAnchor(cta.Href) {
			return fmt.Errorf("%w: call to action %q must be an in-page anchor", ErrInvalidContent, cta.Label)
		}
	}
	if site.Services.ID == "" || site.Trust.ID == "" {
		return fmt.Errorf("%w: section ids are required", ErrInvalidContent)
	}
	for _, card := range site.Services.Cards {
		if !knownIcons[card.Icon] {
			return fmt.Errorf("%w: unknown icon %q on service %q", ErrInvalidContent, card.Icon, card.Title)
		}
	}
	for _, m := range site.Trust.Metrics {
		if !knownIcons[m.Icon] {
			return fmt.Errorf("%w: unknown icon %q on metric %q", ErrInvalidContent, m.Icon, m.Label)
		}
		if m.Value < 0 {
			return fmt.Errorf("%w: metric %q has negative value %d", ErrInvalidContent, m.Label, m.Value)
		}
		if m.Delay < 0 {
			return fmt.Errorf("%w: metric %q has negative delay", ErrInvalidContent, m.Label)
		}
	}
	return nil
}

func isAnchor(href string) bool {
	return len(href) > 1 && href[0] == '#'
}
