package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedContent(t *testing.T) {
	site, err := Parse(embedded)
	require.NoError(t, err)

	assert.Equal(t, "he", site.Lang)
	assert.Equal(t, "rtl", site.Dir)
	assert.Equal(t, "משרד עורכי דין אלפא", site.Brand)
	assert.Len(t, site.Nav, 5)
	assert.Len(t, site.Services.Cards, 6)
	require.Len(t, site.Trust.Metrics, 4)

	values := []int{}
	for _, m := range site.Trust.Metrics {
		values = append(values, m.Value)
	}
	assert.Equal(t, []int{25, 500, 1200, 98}, values)
	assert.Equal(t, "%", site.Trust.Metrics[3].Suffix)
	assert.Equal(t, "#contact", site.CTA.Href)
}

func TestParseSanitizesMarkup(t *testing.T) {
	doc := `
brand: "<script>alert(1)</script>Alpha & Co"
services: {id: services}
trust:
  id: trust
  metrics:
    - {icon: award, value: 5, suffix: "<b>+</b>", label: "<i>Years</i>"}
`
	site, err := Parse([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "Alpha & Co", site.Brand)
	assert.Equal(t, "+", site.Trust.Metrics[0].Suffix)
	assert.Equal(t, "Years", site.Trust.Metrics[0].Label)
	assert.Equal(t, "rtl", site.Dir, "direction defaults to rtl")
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"Malformed", "brand: [unterminated"},
		{"MissingBrand", "services: {id: s}\ntrust: {id: t}"},
		{"BadDir", "brand: A\ndir: up\nservices: {id: s}\ntrust: {id: t}"},
		{"ExternalNavLink", "brand: A\nnav: [{name: x, href: 'https://evil.example'}]\nservices: {id: s}\ntrust: {id: t}"},
		{"MissingSectionID", "brand: A\ntrust: {id: t}"},
		{"UnknownIcon", "brand: A\nservices: {id: s, cards: [{icon: skull, title: x}]}\ntrust: {id: t}"},
		{"NegativeMetric", "brand: A\nservices: {id: s}\ntrust: {id: t, metrics: [{icon: award, value: -1}]}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidContent)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Cleanup(func() { _ = Load("") })

	path := filepath.Join(t.TempDir(), "site.yaml")
	doc := "brand: Beta Law\ndir: ltr\nservices: {id: services}\ntrust: {id: trust}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	require.NoError(t, Load(path))
	assert.Equal(t, "Beta Law", Current().Brand)
	assert.Equal(t, "ltr", Current().Dir)

	assert.Error(t, Load(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Equal(t, "Beta Law", Current().Brand, "failed load keeps the previous site")
}

func TestCurrentFallsBackToEmbedded(t *testing.T) {
	mutex.Lock()
	current = nil
	mutex.Unlock()

	site := Current()
	require.NotNil(t, site)
	assert.Equal(t, "משרד עורכי דין אלפא", site.Brand)
}
