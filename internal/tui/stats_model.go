package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/whlan02/TimerForWork/internal/aggregate"
	"github.com/whlan02/TimerForWork/internal/config"
	"github.com/whlan02/TimerForWork/internal/models"
	"github.com/whlan02/TimerForWork/internal/store"
)

type statsMode int

const (
	modeWeek statsMode = iota
	modeMonth
)

var periodNames = [...]string{"Morning", "Afternoon", "Evening"}

// StatsModel is the TUI model for the week and month heatmaps.
type StatsModel struct {
	width  int
	height int

	store        store.Store
	workweekOnly bool

	mode   statsMode
	anchor time.Time // any day inside the shown week or month

	buckets []aggregate.DayBucket
	records []models.TimeRecord
	skipped int
	loadErr error

	selected   int // day index in week mode
	showDetail bool
}

// NewStatsModel creates a stats TUI model opened on the given day.
func NewStatsModel(st store.Store, cfg config.Config, day time.Time, month bool) StatsModel {
	m := StatsModel{
		store:        st,
		workweekOnly: cfg.WorkweekOnly,
		anchor:       day,
	}
	if month {
		m.mode = modeMonth
	}
	m.reload()
	return m
}

// reload queries the store for the visible range and rebuilds buckets.
// Reads happen on navigation only; the store is never written here.
func (m *StatsModel) reload() {
	from, to := m.visibleRange()
	recs, storeSkipped, err := m.store.QueryRange(from, to)
	if err != nil {
		m.loadErr = err
		m.buckets = nil
		m.records = nil
		return
	}
	buckets, aggSkipped := aggregate.Aggregate(recs, from, to)
	m.loadErr = nil
	m.records = recs
	m.buckets = buckets
	m.skipped = storeSkipped + aggSkipped
	if m.selected >= len(m.buckets) {
		m.selected = 0
	}
}

func (m *StatsModel) visibleRange() (time.Time, time.Time) {
	if m.mode == modeMonth {
		first := aggregate.MonthOf(m.anchor)
		last := first.AddDate(0, 1, -1)
		return first, last
	}
	monday := aggregate.WeekOf(m.anchor)
	return monday, monday.AddDate(0, 0, 6)
}

// Init implements tea.Model; all data is loaded up front.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit

		case "w":
			m.mode = modeWeek
			m.reload()
		case "m":
			m.mode = modeMonth
			m.showDetail = false
			m.reload()
		case "tab":
			if m.mode == modeWeek {
				m.mode = modeMonth
				m.showDetail = false
			} else {
				m.mode = modeWeek
			}
			m.reload()

		case "left", "h":
			m.anchor = m.step(-1)
			m.reload()
		case "right", "l":
			m.anchor = m.step(1)
			m.reload()
		case "t":
			m.anchor = time.Now()
			m.reload()

		case "up", "k":
			if m.mode == modeWeek && m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.mode == modeWeek && m.selected < m.weekDays()-1 {
				m.selected++
			}

		case "enter":
			if m.mode == modeWeek {
				m.showDetail = !m.showDetail
			}
		}
		return m, nil
	}

	return m, nil
}

func (m StatsModel) step(direction int) time.Time {
	if m.mode == modeMonth {
		return aggregate.MonthOf(m.anchor).AddDate(0, direction, 0)
	}
	return aggregate.WeekOf(m.anchor).AddDate(0, 0, 7*direction)
}

func (m StatsModel) weekDays() int {
	if m.workweekOnly {
		return 5
	}
	return 7
}

// View renders the stats TUI
func (m StatsModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var sections []string
	if m.loadErr != nil {
		errStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Width(m.width).
			Align(lipgloss.Center)
		sections = append(sections, errStyle.Render(fmt.Sprintf("Error reading records: %v", m.loadErr)))
	} else if m.mode == modeWeek {
		sections = append(sections, m.renderWeek())
	} else {
		sections = append(sections, m.renderMonth())
	}

	if m.skipped > 0 {
		noteStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning)).
			Width(m.width).
			Align(lipgloss.Center)
		sections = append(sections, noteStyle.Render(
			fmt.Sprintf("skipped %d malformed row(s)", m.skipped)))
	}

	content := strings.Join(sections, "\n\n")
	panelStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height - 2).
		Align(lipgloss.Center, lipgloss.Center)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		panelStyle.Render(content),
		m.renderStatsHelp(),
	)
}

const cellWidth = 9

func (m StatsModel) renderWeek() string {
	monday := aggregate.WeekOf(m.anchor)
	days := m.weekDays()

	var b strings.Builder
	b.WriteString(m.renderWeekHeader(monday, days))
	b.WriteString("\n\n")

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Width(11)

	// Day name row
	b.WriteString(labelStyle.Render(""))
	for i := 0; i < days && i < len(m.buckets); i++ {
		d := m.buckets[i].Date
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Align(lipgloss.Center).
			Width(cellWidth)
		if i == m.selected {
			style = style.Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
		}
		b.WriteString(style.Render(d.Format("Mon 02")))
		b.WriteString(" ")
	}
	b.WriteString("\n")

	// Period rows
	for p := 0; p < len(periodNames); p++ {
		b.WriteString(labelStyle.Render(periodNames[p]))
		for i := 0; i < days && i < len(m.buckets); i++ {
			bucket := m.buckets[i]
			b.WriteString(m.renderCell(
				cellText(bucket.PeriodMinutes[p]),
				bucket.PeriodSeconds[p]))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	// Day totals row
	b.WriteString(labelStyle.Render("Total"))
	for i := 0; i < days && i < len(m.buckets); i++ {
		bucket := m.buckets[i]
		totalStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorPrimaryText)).
			Align(lipgloss.Center).
			Width(cellWidth)
		b.WriteString(totalStyle.Render(cellText(bucket.TotalMinutes)))
		b.WriteString(" ")
	}

	if m.showDetail && m.selected < len(m.buckets) {
		b.WriteString("\n\n")
		b.WriteString(m.renderDayDetail(m.buckets[m.selected].Date))
	}

	return b.String()
}

func (m StatsModel) renderWeekHeader(monday time.Time, days int) string {
	totalMin, totalSec := 0, 0
	for i := 0; i < days && i < len(m.buckets); i++ {
		totalMin += m.buckets[i].TotalMinutes
		totalSec += m.buckets[i].TotalSeconds
	}
	_, isoWeek := monday.ISOWeek()
	title := "Week"
	if m.workweekOnly {
		title = "Workweek"
	}
	header := fmt.Sprintf("%s W%d: %s ~ %s · Total: %d min (%s)",
		title, isoWeek,
		monday.Format("2006-01-02"),
		monday.AddDate(0, 0, days-1).Format("2006-01-02"),
		totalMin, formatHMS(totalSec))

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Render(header)
}

func (m StatsModel) renderMonth() string {
	first := aggregate.MonthOf(m.anchor)

	totalMin, totalSec := 0, 0
	for _, bucket := range m.buckets {
		totalMin += bucket.TotalMinutes
		totalSec += bucket.TotalSeconds
	}

	var b strings.Builder
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true)
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s · Total: %d min (%s)",
		first.Format("January 2006"), totalMin, formatHMS(totalSec))))
	b.WriteString("\n\n")

	dayNameStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Align(lipgloss.Center).
		Width(4)
	for _, name := range []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} {
		b.WriteString(dayNameStyle.Render(name))
		b.WriteString(" ")
	}
	b.WriteString("\n")

	// Leading blanks up to the first weekday, Monday first.
	offset := (int(first.Weekday()) + 6) % 7
	col := 0
	for i := 0; i < offset; i++ {
		b.WriteString(strings.Repeat(" ", 5))
		col++
	}
	for _, bucket := range m.buckets {
		cell := lipgloss.NewStyle().
			Background(lipgloss.Color(dayHeatColor(bucket.TotalSeconds))).
			Foreground(lipgloss.Color(cellForeground(bucket.TotalSeconds))).
			Align(lipgloss.Center).
			Width(4).
			Render(fmt.Sprintf("%d", bucket.Date.Day()))
		b.WriteString(cell)
		b.WriteString(" ")
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}

	return b.String()
}

func (m StatsModel) renderDayDetail(day time.Time) string {
	recs := aggregate.ForDay(m.records, day)

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render(day.Format("Mon, 2006-01-02")))
	b.WriteString("\n")

	if len(recs) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText)).
			Render("No entries"))
		return b.String()
	}

	rowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	noteStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	for _, rec := range recs {
		line := fmt.Sprintf("%s - %s  %d min (%s)",
			rec.Start.Format("15:04:05"),
			rec.End.Format("15:04:05"),
			rec.DurationMin(),
			formatHMS(rec.DurationSec))
		b.WriteString(rowStyle.Render(line))
		if rec.Note != "" {
			b.WriteString(noteStyle.Render("  " + rec.Note))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m StatsModel) renderCell(text string, seconds int) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(periodHeatColor(seconds))).
		Foreground(lipgloss.Color(cellForeground(seconds))).
		Align(lipgloss.Center).
		Width(cellWidth).
		Render(text)
}

func (m StatsModel) renderStatsHelp() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	helpText := "w/m/tab view · ←/→ prev/next · ↑/↓ day · enter details · t today · q quit"
	if m.mode == modeMonth {
		helpText = "w/m/tab view · ←/→ prev/next month · t today · q quit"
	}
	return helpStyle.Render(helpText)
}

// cellText shows minutes compactly, empty for zero.
func cellText(minutes int) string {
	if minutes == 0 {
		return ""
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh%02dm", minutes/60, minutes%60)
}

// The green ramp is light, so colored cells need dark text.
func cellForeground(seconds int) string {
	if seconds == 0 {
		return ColorSecondaryText
	}
	return "#111827"
}

// RunStatsTUI runs the heatmap TUI
func RunStatsTUI(st store.Store, cfg config.Config, day time.Time, month bool) error {
	model := NewStatsModel(st, cfg, day, month)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
