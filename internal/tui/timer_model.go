package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/whlan02/TimerForWork/internal/config"
	"github.com/whlan02/TimerForWork/internal/store"
	"github.com/whlan02/TimerForWork/internal/timer"
)

// TimerModel is the TUI model for the interactive timer.
type TimerModel struct {
	width  int
	height int

	session *timer.Session
	store   store.Store

	// elapsed is refreshed by the display tick; the session itself is
	// the source of truth.
	elapsed time.Duration

	enteringNote bool
	noteInput    textinput.Model

	status    string
	statusErr bool

	savedCount   int
	savedSeconds int
	quitting     bool
}

// displayTickMsg refreshes the clock. Display only, it never mutates
// session or stored state.
type displayTickMsg struct{}

// NewTimerModel creates a new timer TUI model
func NewTimerModel(st store.Store) TimerModel {
	input := textinput.New()
	input.Placeholder = "what did you work on?"
	input.CharLimit = 120
	input.Width = 40

	return TimerModel{
		session:   timer.NewSession(),
		store:     st,
		noteInput: input,
	}
}

func displayTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return displayTickMsg{}
	})
}

// Init starts the display refresh ticker.
func (m TimerModel) Init() tea.Cmd {
	return displayTick()
}

// Update handles messages
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case displayTickMsg:
		m.elapsed = m.session.Elapsed()
		if !m.quitting {
			return m, displayTick()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.enteringNote {
			return m.updateNoteInput(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m TimerModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s", "S":
		switch m.session.State() {
		case timer.Idle:
			m.transition(m.session.Start(), "Tracking started")
		case timer.Paused:
			m.transition(m.session.Resume(), "Resumed")
		default:
			m.setError(timer.ErrAlreadyRunning)
		}
		return m, nil

	case "p", "P":
		m.transition(m.session.Pause(), "Paused")
		return m, nil

	case "r", "R":
		m.transition(m.session.Resume(), "Resumed")
		return m, nil

	case "enter":
		// Reject before prompting for a note, so the user is not asked
		// to describe an interval that cannot be saved.
		if _, err := m.session.Snapshot(""); err != nil {
			m.setError(err)
			return m, nil
		}
		m.enteringNote = true
		m.noteInput.Focus()
		m.status = ""
		return m, textinput.Blink

	case "c", "C":
		if err := m.session.Cancel(); err != nil {
			m.setError(err)
		} else {
			m.status = "Session cancelled"
			m.statusErr = false
		}
		return m, nil

	case "ctrl+c", "esc", "q":
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m TimerModel) updateNoteInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.saveSession()
	case "esc":
		m.enteringNote = false
		m.noteInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.noteInput, cmd = m.noteInput.Update(msg)
	return m, cmd
}

// saveSession persists the current interval. The session is only reset
// after the write succeeds, so a locked or unwritable file leaves it
// intact for a retry.
func (m TimerModel) saveSession() (tea.Model, tea.Cmd) {
	rec, err := m.session.Snapshot(strings.TrimSpace(m.noteInput.Value()))
	if err != nil {
		m.setError(err)
		m.enteringNote = false
		m.noteInput.Blur()
		return m, nil
	}

	if err := m.store.Append(rec); err != nil {
		m.status = fmt.Sprintf("Save failed: %v — session kept, press enter to retry", err)
		m.statusErr = true
		return m, nil
	}

	m.session.Cancel()
	m.savedCount++
	m.savedSeconds += rec.DurationSec
	m.status = fmt.Sprintf("Saved %d min (%s)", rec.DurationMin(), formatHMS(rec.DurationSec))
	m.statusErr = false
	m.enteringNote = false
	m.noteInput.Blur()
	m.noteInput.Reset()
	return m, nil
}

func (m *TimerModel) transition(err error, ok string) {
	if err != nil {
		m.setError(err)
		return
	}
	m.status = ok
	m.statusErr = false
}

func (m *TimerModel) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}

// View renders the timer TUI
func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	helpBar := m.renderHelpBar()
	contentHeight := m.height - 2

	var components []string

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, headerStyle.Render("⏱  TIMER FOR WORK  ⏱"))

	components = append(components, m.renderStateLine())
	components = append(components, m.renderBigClock())

	if startedAt := m.session.StartedAt(); !startedAt.IsZero() {
		sessionStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true).
			Align(lipgloss.Center).
			Width(m.width)
		components = append(components, sessionStyle.Render(
			fmt.Sprintf("Started at %s", startedAt.Format("15:04:05"))))
	}

	if m.enteringNote {
		inputStyle := lipgloss.NewStyle().
			Align(lipgloss.Center).
			Width(m.width)
		components = append(components, inputStyle.Render("Note: "+m.noteInput.View()))
	}

	if m.status != "" {
		color := ColorSuccess
		if m.statusErr {
			color = ColorError
		}
		statusStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(color)).
			Align(lipgloss.Center).
			Width(m.width)
		components = append(components, statusStyle.Render(m.status))
	}

	content := strings.Join(components, "\n\n")
	panelStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight).
		Align(lipgloss.Center, lipgloss.Center)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		panelStyle.Render(content),
		helpBar,
	)
}

func (m TimerModel) renderStateLine() string {
	var text, color string
	switch m.session.State() {
	case timer.Running:
		text = "● RUNNING"
		color = ColorSuccess
	case timer.Paused:
		text = "‖ PAUSED"
		color = ColorWarning
	default:
		text = "○ IDLE"
		color = ColorDisabledText
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render(text)
}

// bigDigits is the 5-row ASCII art alphabet for the clock.
var bigDigits = map[rune][]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
	'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
	'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "████ ", "    █", "████ "},
	'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
	'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
	':': {"     ", "  █  ", "     ", "  █  ", "     "},
	'.': {"     ", "     ", "     ", "     ", "  █  "},
}

// renderBigClock renders the elapsed time as ASCII art with tenths.
// Tenths are display precision only; the saved duration truncates to
// whole seconds.
func (m TimerModel) renderBigClock() string {
	totalSeconds := int(m.elapsed / time.Second)
	tenths := int(m.elapsed/(100*time.Millisecond)) % 10
	timeStr := fmt.Sprintf("%s.%d", formatHMS(totalSeconds), tenths)

	var lines [5]strings.Builder
	for _, char := range timeStr {
		art, ok := bigDigits[char]
		if !ok {
			continue
		}
		for i := 0; i < 5; i++ {
			lines[i].WriteString(art[i])
			lines[i].WriteString(" ")
		}
	}

	color := ColorAccentBright
	switch m.session.State() {
	case timer.Paused:
		color = ColorWarning
	case timer.Idle:
		color = ColorDisabledText
	}
	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true)

	var rendered []string
	for i := 0; i < 5; i++ {
		rendered = append(rendered, lipgloss.NewStyle().
			Align(lipgloss.Center).
			Width(m.width).
			Render(clockStyle.Render(lines[i].String())))
	}
	return strings.Join(rendered, "\n")
}

// renderHelpBar renders the help bar at the bottom
func (m TimerModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	helpText := "s start/resume · p pause · enter save · c cancel · q quit"
	if m.enteringNote {
		helpText = "enter save · esc back"
	}

	return helpStyle.Render(helpText)
}

// RunTimerTUI runs the interactive timer
func RunTimerTUI(st store.Store, cfg config.Config) error {
	model := NewTimerModel(st)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(TimerModel); ok && m.savedCount > 0 {
		fmt.Printf("⏹️  Logged %d interval(s), total %s\n", m.savedCount, formatHMS(m.savedSeconds))
		fmt.Printf("📊 Records saved to %s\n", cfg.DataFile)
	}

	return nil
}

// formatHMS formats seconds as HH:MM:SS
func formatHMS(seconds int) string {
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}
