package handlers

import (
	"law_landing_go/config"
	"law_landing_go/models"
)

// LandingSEO returns the SEO configuration for the landing page.
// Non-production environments are kept out of search indexes.
func LandingSEO(site *models.Site, cfg *config.Config) *models.SEO {
	seo := models.NewSEO(site, baseURL(cfg)+"/")
	if !cfg.IsProduction() {
		seo.WithNoIndex()
	}
	return seo
}
