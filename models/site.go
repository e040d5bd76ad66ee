package models

// Site is the copy and layout data of the landing page.
// All text is display-only and rendered in a single language and direction.
type Site struct {
	Lang     string          `yaml:"lang"`
	Dir      string          `yaml:"dir"`
	Brand    string          `yaml:"brand"`
	Tagline  string          `yaml:"tagline"`
	Nav      []NavLink       `yaml:"nav"`
	CTA      CTA             `yaml:"cta"`
	Services ServicesSection `yaml:"services"`
	Trust    TrustSection    `yaml:"trust"`
	SEO      SiteSEO         `yaml:"seo"`
}

// NavLink is an in-page anchor in the navbar
type NavLink struct {
	Name string `yaml:"name"`
	Href string `yaml:"href"`
}

// CTA is a call-to-action button
type CTA struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// ServicesSection is the services grid
type ServicesSection struct {
	ID        string        `yaml:"id"`
	Title     string        `yaml:"title"`
	Subtitle  string        `yaml:"subtitle"`
	MoreLabel string        `yaml:"more_label"`
	Cards     []ServiceCard `yaml:"cards"`
	CTA       CTA           `yaml:"cta"`
}

// ServiceCard is one practice area
type ServiceCard struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// TrustSection is the statistics band
type TrustSection struct {
	ID       string   `yaml:"id"`
	Title    string   `yaml:"title"`
	Subtitle string   `yaml:"subtitle"`
	Footer   string   `yaml:"footer"`
	Metrics  []Metric `yaml:"metrics"`
}

// Metric is one animated counter: Value is the counter target, Suffix and
// Label are shown as-is. Delay staggers the card entrance, in seconds.
type Metric struct {
	Icon   string  `yaml:"icon"`
	Value  int     `yaml:"value"`
	Suffix string  `yaml:"suffix"`
	Label  string  `yaml:"label"`
	Delay  float64 `yaml:"delay"`
}

// SiteSEO is the SEO copy for the landing page
type SiteSEO struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Keywords    string `yaml:"keywords"`
	OGImage     string `yaml:"og_image"`
}
