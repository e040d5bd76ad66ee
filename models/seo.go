package models

// SEO contains metadata for search engine optimization and social sharing
type SEO struct {
	Title       string // Page title
	Description string // Meta description (150-160 chars recommended)
	Keywords    string // Meta keywords (comma-separated)
	Canonical   string // Canonical URL
	OGImage     string // Open Graph image URL
	OGType      string // Open Graph type (website, article, etc.)
	TwitterCard string // Twitter card type (summary, summary_large_image)
	NoIndex     bool   // If true, adds noindex directive
	Locale      string // Page language, e.g. "he"
	Dir         string // Text direction, "rtl" or "ltr"
}

// NewSEO builds page metadata from the site copy
func NewSEO(site *Site, canonical string) *SEO {
	seo := &SEO{
		Title:       site.SEO.Title,
		Description: site.SEO.Description,
		Keywords:    site.SEO.Keywords,
		Canonical:   canonical,
		OGImage:     site.SEO.OGImage,
		OGType:      "website",
		TwitterCard: "summary",
		Locale:      site.Lang,
		Dir:         site.Dir,
	}
	if seo.OGImage != "" {
		seo.TwitterCard = "summary_large_image"
	}
	if seo.Title == "" {
		seo.Title = site.Brand
	}
	return seo
}

// WithNoIndex sets the noindex directive
func (s *SEO) WithNoIndex() *SEO {
	s.NoIndex = true
	return s
}

// Robots returns the robots meta content
func (s *SEO) Robots() string {
	if s.NoIndex {
		return "noindex, nofollow"
	}
	return "index, follow"
}
