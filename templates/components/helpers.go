package components

import (
	"math"
	"strconv"

	"law_landing_go/services"
)

const (
	menuOpenLabel  = "פתח תפריט"
	menuCloseLabel = "סגור תפריט"
)

// seconds formats a CSS time rounded to the millisecond
func seconds(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64) + "s"
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func boolAttr(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

func homeLabel(nav services.NavbarView) string {
	if len(nav.Links) == 0 {
		return nav.Brand
	}
	return nav.Brand + " - " + nav.Links[0].Name
}

func toggleLabel(open bool) string {
	if open {
		return menuCloseLabel
	}
	return menuOpenLabel
}

// trimSuffix returns the number part of a counter text such as "0+"
func trimSuffix(text, suffix string) string {
	if suffix != "" && len(text) >= len(suffix) && text[len(text)-len(suffix):] == suffix {
		return text[:len(text)-len(suffix)]
	}
	return text
}
