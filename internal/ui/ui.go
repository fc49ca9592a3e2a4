// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-radiosky/internal/astro"
	"github.com/litescript/ls-radiosky/internal/refraction"
	"github.com/litescript/ls-radiosky/internal/version"
)

// Styles for the dashboard
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	upStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("46"))

	downStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("60")).
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("60"))
)

// TickMsg triggers a periodic recompute and redraw.
type TickMsg time.Time

// Model is the root Bubble Tea model.
type Model struct {
	obs      astro.Observer
	atm      refraction.AtmosphereProfile
	restFreq float64
	catalog  astro.SourceCatalog

	selected int
	width    int
	height   int
	ready    bool

	readout Readout
}

// New creates a new dashboard model. The selected source defaults to the
// first catalog entry.
func New(obs astro.Observer, atm refraction.AtmosphereProfile, restFreqHz float64, catalog astro.SourceCatalog, selected int) Model {
	if selected < 0 || selected >= len(catalog.Sources) {
		selected = 0
	}
	m := Model{
		obs:      obs,
		atm:      atm,
		restFreq: restFreqHz,
		catalog:  catalog,
		selected: selected,
	}
	m.readout = Compute(time.Now(), obs, atm, restFreqHz, m.source())
	return m
}

func (m Model) source() astro.Source {
	if len(m.catalog.Sources) == 0 {
		return astro.Source{Name: "(empty catalog)"}
	}
	return m.catalog.Sources[m.selected]
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			if n := len(m.catalog.Sources); n > 0 {
				m.selected = (m.selected + n - 1) % n
				m.readout = Compute(time.Now(), m.obs, m.atm, m.restFreq, m.source())
			}
		case "right", "l":
			if n := len(m.catalog.Sources); n > 0 {
				m.selected = (m.selected + 1) % n
				m.readout = Compute(time.Now(), m.obs, m.atm, m.restFreq, m.source())
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case TickMsg:
		m.readout = Compute(time.Time(msg), m.obs, m.atm, m.restFreq, m.source())
		return m, tickCmd()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	r := m.readout

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(m.renderClockPanel(r)),
		panelStyle.Render(m.renderSunPanel(r)),
		panelStyle.Render(m.renderMoonPanel(r)),
	)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(m.renderSourcePanel(r)),
		panelStyle.Render(m.renderVelocityPanel(r)),
	)

	return m.renderHeader() + "\n" + top + "\n" + bottom + "\n" + m.renderFooter(r)
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("  LS-RADIOSKY")
	sub := dimStyle.Render(fmt.Sprintf(" · Radio Sky Almanac · v%s · %s", version.Version, m.obs.Name))
	return "\n" + title + sub + "\n"
}

func (m Model) renderClockPanel(r Readout) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Time"))
	b.WriteString("\n")
	writeRow(&b, "UTC", r.Time.UTC().Format("2006-01-02 15:04:05"))
	writeRow(&b, "JD", fmt.Sprintf("%.5f", r.JD))
	writeRow(&b, "MJD", fmt.Sprintf("%.5f", r.MJD))
	writeRow(&b, "LST", fmt.Sprintf("%s (%.3f°)", formatHours(r.LSTDeg/15.0), r.LSTDeg))
	return b.String()
}

func (m Model) renderSunPanel(r Readout) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Sun"))
	b.WriteString("\n")
	writeRow(&b, "Az/Alt", formatAzAlt(r.SunAzAlt))
	writeRow(&b, "RA/Dec", formatRADec(r.SunRADec))
	writeRow(&b, "Rise", r.Sunrise.UTC().Format("15:04")+" UTC")
	writeRow(&b, "Set", r.Sunset.UTC().Format("15:04")+" UTC")
	return b.String()
}

func (m Model) renderMoonPanel(r Readout) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Moon"))
	b.WriteString("\n")
	writeRow(&b, "Az/Alt", formatAzAlt(r.MoonAzAlt))
	writeRow(&b, "RA/Dec", formatRADec(r.MoonRADec))
	return b.String()
}

func (m Model) renderSourcePanel(r Readout) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Source"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  ←/→ %d/%d", m.selected+1, len(m.catalog.Sources))))
	b.WriteString("\n")

	name := r.Source.Name
	if r.Source.FluxJy > 0 {
		name += fmt.Sprintf("  (%.0f Jy)", r.Source.FluxJy)
	}
	writeRow(&b, "Name", name)
	writeRow(&b, "RA/Dec", formatRADec(astro.RADec{RAHours: r.Source.RAHours, DecDeg: r.Source.DecDeg}))
	writeRow(&b, "Gal l/b", fmt.Sprintf("%.3f° / %+.3f°", r.GalL, r.GalB))

	azalt := formatAzAlt(r.SrcAzAlt)
	if r.SrcAzAlt.AltDeg > 0 {
		azalt += "  " + upStyle.Render("up")
	} else {
		azalt += "  " + downStyle.Render("down")
	}
	writeRow(&b, "Az/Alt", azalt)

	if r.SrcAzAlt.AltDeg > 0 {
		writeRow(&b, "Refraction",
			fmt.Sprintf("%+.4f' opt / %+.4f' radio", r.RefracSaemundsson*60.0, r.RefracPAL*60.0))
	}

	b.WriteString(m.renderWindow(r.Window))
	return b.String()
}

func (m Model) renderWindow(w astro.VisibilityWindow) string {
	var b strings.Builder
	switch {
	case !w.Valid:
		writeRow(&b, "Window", "unknown")
	case w.NeverVisible:
		writeRow(&b, "Window", downStyle.Render("never rises"))
	case w.AlwaysVisible:
		writeRow(&b, "Window", upStyle.Render("circumpolar")+
			fmt.Sprintf(", transit %s, max %.1f°", w.Transit.UTC().Format("15:04"), w.MaxAltitude))
	default:
		rise, set := "--:--", "--:--"
		if !w.Rise.IsZero() {
			rise = w.Rise.UTC().Format("15:04")
		}
		if !w.Set.IsZero() {
			set = w.Set.UTC().Format("15:04")
		}
		writeRow(&b, "Window", fmt.Sprintf("rise %s, transit %s, set %s UTC",
			rise, w.Transit.UTC().Format("15:04"), set))
		writeRow(&b, "Max alt", fmt.Sprintf("%.1f°", w.MaxAltitude))
	}
	return b.String()
}

func (m Model) renderVelocityPanel(r Readout) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("LSRK Velocity"))
	b.WriteString("\n")
	writeRow(&b, "Rotation", fmt.Sprintf("%+.4f km/s", r.VRot))

	orbit := fmt.Sprintf("%+.4f km/s", r.VOrb)
	if r.EphemerisDegraded {
		orbit += "  " + warnStyle.Render("degraded")
	}
	writeRow(&b, "Orbit", orbit)

	writeRow(&b, "Solar", fmt.Sprintf("%+.4f km/s", r.VSun))
	writeRow(&b, "Total", fmt.Sprintf("%+.4f km/s", r.VLSRK))
	writeRow(&b, "Rest freq", fmt.Sprintf("%.6f MHz", r.RestFreqHz/1e6))
	writeRow(&b, "Sky freq", fmt.Sprintf("%.6f MHz (%+.3f kHz)",
		r.SkyFreqHz/1e6, (r.SkyFreqHz-r.RestFreqHz)/1e3))
	return b.String()
}

func (m Model) renderFooter(r Readout) string {
	help := dimStyle.Render("  ←/→: source | q: quit")
	if r.EphemerisDegraded {
		help += "  " + warnStyle.Render("date outside ephemeris range, orbit velocity degraded")
	}
	return help
}

func writeRow(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-10s", label)))
	b.WriteString(valueStyle.Render(value))
	b.WriteString("\n")
}

func formatAzAlt(aa astro.AzAlt) string {
	return fmt.Sprintf("%.3f° / %+.3f°", aa.AzDeg, aa.AltDeg)
}

func formatRADec(rd astro.RADec) string {
	return formatHours(rd.RAHours) + fmt.Sprintf(" / %+.3f°", rd.DecDeg)
}

// formatHours renders decimal hours as hh:mm:ss.
func formatHours(h float64) string {
	h = astro.Modulo(h, 24.0)
	hh := int(h)
	mf := (h - float64(hh)) * 60.0
	mm := int(mf)
	ss := int((mf - float64(mm)) * 60.0)
	return fmt.Sprintf("%02d:%02d:%02d", hh, mm, ss)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
