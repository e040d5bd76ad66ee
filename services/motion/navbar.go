package motion

// DefaultScrollThreshold is how far the page scrolls before the navbar
// switches to its solid style.
const DefaultScrollThreshold = 20

// ScrollToggle tracks whether the page has scrolled past a threshold. Unlike a
// Trigger it is reversible: scrolling back to the top clears it.
type ScrollToggle struct {
	Threshold float64
	scrolled  bool
}

// NewScrollToggle returns a toggle for the given threshold.
func NewScrollToggle(threshold float64) *ScrollToggle {
	return &ScrollToggle{Threshold: threshold}
}

// Update feeds the current vertical scroll offset. changed is true when the
// scrolled flag flipped on this call.
func (s *ScrollToggle) Update(scrollY float64) (scrolled, changed bool) {
	next := scrollY > s.Threshold
	changed = next != s.scrolled
	s.scrolled = next
	return next, changed
}

// Scrolled returns the last computed flag.
func (s *ScrollToggle) Scrolled() bool {
	return s.scrolled
}

// Menu is the collapsible mobile navigation menu.
type Menu struct {
	open bool
}

func (m *Menu) Toggle()      { m.open = !m.open }
func (m *Menu) Open()        { m.open = true }
func (m *Menu) Close()       { m.open = false }
func (m *Menu) IsOpen() bool { return m.open }

// Navigate handles a click on an in-page anchor: the menu closes once the
// target section exists. It returns whether navigation happened.
func (m *Menu) Navigate(href string, exists func(id string) bool) bool {
	id := AnchorID(href)
	if id == "" || exists == nil || !exists(id) {
		return false
	}
	m.Close()
	return true
}

// AnchorID strips the leading '#' from an in-page link.
func AnchorID(href string) string {
	if len(href) > 0 && href[0] == '#' {
		return href[1:]
	}
	return ""
}
