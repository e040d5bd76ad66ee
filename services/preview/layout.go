package preview

import (
	"law_landing_go/models"
	"law_landing_go/services/motion"
)

const (
	// RowHeight is the number of virtual pixels one terminal row stands for.
	// Trigger margins and the scroll threshold are in pixels, as in the browser.
	RowHeight = 20
	// PageWidth is the virtual page width in pixels
	PageWidth = 1000
)

type blockKind int

const (
	blockHero blockKind = iota
	blockHeading
	blockCard
	blockMetric
	blockFooter
	blockSection
)

// block is one element of the virtual page, Rows rows tall starting at Top
type block struct {
	kind   blockKind
	anchor string
	title  string
	body   string
	index  int
	top    int
	rows   int
}

func (b block) rect() motion.Rect {
	return motion.RectXYWH(0, float64(b.top*RowHeight), PageWidth, float64(b.rows*RowHeight))
}

// layout stacks the landing page into rows: hero, services, trust band and a
// short placeholder for each remaining nav anchor.
type layout struct {
	blocks  []block
	anchors map[string]int
	rows    int
}

func newLayout(site *models.Site) *layout {
	l := &layout{anchors: make(map[string]int)}

	l.add(block{kind: blockHero, anchor: "home", title: site.Brand, body: site.Tagline, rows: 4})

	l.add(block{kind: blockHeading, anchor: site.Services.ID, title: site.Services.Title, body: site.Services.Subtitle, rows: 3})
	for i, card := range site.Services.Cards {
		l.add(block{kind: blockCard, title: card.Title, body: card.Description, index: i, rows: 3})
	}

	l.add(block{kind: blockHeading, anchor: site.Trust.ID, title: site.Trust.Title, body: site.Trust.Subtitle, rows: 3})
	for i, m := range site.Trust.Metrics {
		l.add(block{kind: blockMetric, title: m.Label, index: i, rows: 3})
	}
	if site.Trust.Footer != "" {
		l.add(block{kind: blockFooter, body: site.Trust.Footer, rows: 2})
	}

	for _, link := range site.Nav {
		id := motion.AnchorID(link.Href)
		if id == "" || l.has(id) {
			continue
		}
		l.add(block{kind: blockSection, anchor: id, title: link.Name, rows: 8})
	}
	return l
}

func (l *layout) add(b block) {
	b.top = l.rows
	if b.anchor != "" {
		if _, ok := l.anchors[b.anchor]; !ok {
			l.anchors[b.anchor] = len(l.blocks)
		}
	}
	l.blocks = append(l.blocks, b)
	l.rows += b.rows
}

func (l *layout) has(id string) bool {
	_, ok := l.anchors[id]
	return ok
}

// anchorRow returns the first row of the section with the given id
func (l *layout) anchorRow(id string) (int, bool) {
	i, ok := l.anchors[id]
	if !ok {
		return 0, false
	}
	return l.blocks[i].top, true
}
