package pages

import (
	"law_landing_go/models"
	"law_landing_go/services"
)

// pageLang falls back to the SEO locale when the site copy names no language
func pageLang(seo *models.SEO, page *services.LandingPage) string {
	if page.Lang != "" {
		return page.Lang
	}
	return seo.Locale
}

func pageDir(page *services.LandingPage) string {
	if page.Dir != "" {
		return page.Dir
	}
	return "rtl"
}
