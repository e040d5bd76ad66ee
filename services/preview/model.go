// Package preview renders the landing page in a terminal. It hosts the same
// motion primitives the page uses: scrolling feeds viewport triggers, trust
// counters run on a frame loop ticked by bubbletea, and quitting disposes
// every counter.
package preview

import (
	"fmt"
	"strings"
	"time"

	"law_landing_go/models"
	"law_landing_go/services"
	"law_landing_go/services/motion"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	brandStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	navStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	scrolledBar  = lipgloss.NewStyle().Background(lipgloss.Color("17"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	bodyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	counterStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	ctaStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("220")).Padding(0, 1)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// navbar and status line
	chromeRows = 2
)

type frameMsg time.Time

// Model is the bubbletea model of the preview
type Model struct {
	site   *models.Site
	opts   services.LandingOptions
	loop   *motion.FrameLoop
	layout *layout

	scroll *motion.ScrollToggle
	menu   motion.Menu
	row    int

	width  int
	height int

	// reveal trigger per layout block; nil blocks are always shown
	triggers []*motion.Trigger
	counters []*motion.Counter

	quitting bool
}

// New builds a preview of site. A nil clock uses the system clock.
func New(site *models.Site, opts services.LandingOptions, clock motion.Clock) *Model {
	m := &Model{
		site:   site,
		opts:   opts,
		loop:   motion.NewFrameLoop(clock),
		layout: newLayout(site),
		scroll: motion.NewScrollToggle(opts.ScrollThreshold),
		width:  defaultWidth,
		height: defaultHeight,
	}

	m.triggers = make([]*motion.Trigger, len(m.layout.blocks))
	for i, b := range m.layout.blocks {
		switch b.kind {
		case blockHeading:
			m.triggers[i] = motion.NewTrigger(motion.UniformMargin(opts.SectionMargin), true)
		case blockCard:
			m.triggers[i] = motion.NewTrigger(motion.UniformMargin(opts.CounterMargin), true)
		case blockMetric:
			t := motion.NewTrigger(motion.UniformMargin(opts.CounterMargin), true)
			c := motion.NewCounter(m.loop, float64(site.Trust.Metrics[b.index].Value), motion.WithSpring(opts.Spring))
			c.Bind(t)
			m.triggers[i] = t
			m.counters = append(m.counters, c)
		}
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	m.observe()
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	interval := motion.FrameInterval(m.opts.FPS)
	if interval <= 0 {
		interval = motion.FrameInterval(60)
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scrollTo(m.row)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case frameMsg:
		if m.quitting {
			return m, nil
		}
		m.loop.Tick()
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c", "esc":
		m.Dispose()
		return m, tea.Quit
	case "down", "j":
		m.scrollTo(m.row + 1)
	case "up", "k":
		m.scrollTo(m.row - 1)
	case "pgdown", " ":
		m.scrollTo(m.row + m.viewportRows())
	case "pgup":
		m.scrollTo(m.row - m.viewportRows())
	case "home", "g":
		m.scrollTo(0)
	case "end", "G":
		m.scrollTo(m.maxRow())
	case "m":
		m.menu.Toggle()
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			m.navigate(int(key[0] - '1'))
		}
	}
	return m, nil
}

// navigate jumps to the nav link at idx and closes the menu
func (m *Model) navigate(idx int) {
	if idx < 0 || idx >= len(m.site.Nav) {
		return
	}
	href := m.site.Nav[idx].Href
	if !m.menu.Navigate(href, m.layout.has) {
		return
	}
	if row, ok := m.layout.anchorRow(motion.AnchorID(href)); ok {
		m.scrollTo(row)
	}
}

func (m *Model) viewportRows() int {
	if rows := m.height - chromeRows; rows > 1 {
		return rows
	}
	return 1
}

func (m *Model) maxRow() int {
	if last := m.layout.rows - m.viewportRows(); last > 0 {
		return last
	}
	return 0
}

func (m *Model) scrollTo(row int) {
	if row < 0 {
		row = 0
	}
	if last := m.maxRow(); row > last {
		row = last
	}
	m.row = row
	m.observe()
}

// ScrollY is the scroll offset in virtual pixels
func (m *Model) ScrollY() float64 {
	return float64(m.row * RowHeight)
}

func (m *Model) viewport() motion.Rect {
	return motion.RectXYWH(0, m.ScrollY(), PageWidth, float64(m.viewportRows()*RowHeight))
}

// observe samples every trigger and the navbar toggle at the current scroll
func (m *Model) observe() {
	m.scroll.Update(m.ScrollY())
	vp := m.viewport()
	for i, t := range m.triggers {
		if t != nil {
			t.Observe(m.layout.blocks[i].rect(), vp)
		}
	}
}

// Counters returns the trust counters in metric order
func (m *Model) Counters() []*motion.Counter {
	return m.counters
}

// MenuOpen reports whether the navbar menu is expanded
func (m *Model) MenuOpen() bool {
	return m.menu.IsOpen()
}

// Scrolled reports the navbar scrolled state
func (m *Model) Scrolled() bool {
	return m.scroll.Scrolled()
}

// Dispose tears down every counter. Safe to call more than once.
func (m *Model) Dispose() {
	m.quitting = true
	for _, c := range m.counters {
		c.Dispose()
	}
}

// Loop exposes the frame loop driving the counters
func (m *Model) Loop() *motion.FrameLoop {
	return m.loop
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.navbarView())
	b.WriteString("\n")

	lines := m.pageLines()
	end := m.row + m.viewportRows()
	if end > len(lines) {
		end = len(lines)
	}
	visible := lines[m.row:end]

	if m.menu.IsOpen() {
		menu := m.menuLines()
		for i := 0; i < len(menu) && i < len(visible); i++ {
			visible[i] = menu[i]
		}
	}
	b.WriteString(strings.Join(visible, "\n"))
	for i := len(visible); i < m.viewportRows(); i++ {
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.statusView())
	return b.String()
}

func (m *Model) align() lipgloss.Position {
	if m.site.Dir == "rtl" {
		return lipgloss.Right
	}
	return lipgloss.Left
}

func (m *Model) line(style lipgloss.Style, s string) string {
	return style.Width(m.width).MaxWidth(m.width).MaxHeight(1).Align(m.align()).Render(s)
}

func (m *Model) navbarView() string {
	parts := []string{brandStyle.Render(m.site.Brand)}
	for i, link := range m.site.Nav {
		parts = append(parts, navStyle.Render(fmt.Sprintf("%d %s", i+1, link.Name)))
	}
	bar := lipgloss.NewStyle()
	if m.scroll.Scrolled() {
		bar = scrolledBar
	}
	return m.line(bar, strings.Join(parts, "  "))
}

func (m *Model) menuLines() []string {
	lines := make([]string, 0, len(m.site.Nav)+1)
	for i, link := range m.site.Nav {
		lines = append(lines, m.line(navStyle, fmt.Sprintf("%s  %d", link.Name, i+1)))
	}
	if m.site.CTA.Label != "" {
		lines = append(lines, m.line(lipgloss.NewStyle(), ctaStyle.Render(m.site.CTA.Label)))
	}
	return lines
}

func (m *Model) statusView() string {
	started, animating := 0, 0
	for _, c := range m.counters {
		if c.Triggered() {
			started++
		}
		if c.State() == motion.CounterAnimating {
			animating++
		}
	}
	return statusStyle.Render(fmt.Sprintf("j/k scroll  m menu  1-%d jump  q quit   y=%.0fpx  started %d  animating %d/%d",
		len(m.site.Nav), m.ScrollY(), started, animating, len(m.counters)))
}

// pageLines renders every block to exactly its row count
func (m *Model) pageLines() []string {
	lines := make([]string, 0, m.layout.rows)
	for i, b := range m.layout.blocks {
		shown := m.triggers[i] == nil || m.triggers[i].InView()
		rows := m.blockLines(b, shown)
		for len(rows) < b.rows {
			rows = append(rows, "")
		}
		lines = append(lines, rows[:b.rows]...)
	}
	return lines
}

func (m *Model) blockLines(b block, shown bool) []string {
	if !shown {
		return []string{m.line(dimStyle, "·")}
	}

	switch b.kind {
	case blockHero:
		lines := []string{m.line(brandStyle, b.title), m.line(bodyStyle, b.body)}
		if m.site.CTA.Label != "" {
			lines = append(lines, m.line(lipgloss.NewStyle(), ctaStyle.Render(m.site.CTA.Label)))
		}
		return lines
	case blockHeading:
		return []string{m.line(titleStyle, b.title), m.line(bodyStyle, b.body)}
	case blockCard:
		return []string{m.line(titleStyle, b.title), m.line(bodyStyle, b.body)}
	case blockMetric:
		metric := m.site.Trust.Metrics[b.index]
		text := m.counters[b.index].Text(metric.Suffix)
		return []string{m.line(counterStyle, text), m.line(bodyStyle, b.title)}
	case blockFooter:
		return []string{m.line(dimStyle, b.body)}
	case blockSection:
		return []string{m.line(titleStyle, b.title), m.line(dimStyle, "…")}
	}
	return nil
}
