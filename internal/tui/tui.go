// Package tui provides a Bubble Tea terminal user interface for songchart.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwhitford/songchart/internal/chart"
	"github.com/mwhitford/songchart/internal/config"
	"github.com/mwhitford/songchart/internal/dataset"
	"github.com/mwhitford/songchart/internal/fetch"
	"github.com/mwhitford/songchart/internal/model"
	"github.com/mwhitford/songchart/internal/scan"
	"github.com/mwhitford/songchart/internal/songlist"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	rankStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))

	songStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateLoading
	StateChart
	StateError
)

// sortKeys is the cycle order for the "s" key.
var sortKeys = []chart.SortKey{
	chart.SortByPopularity,
	chart.SortByDuration,
	chart.SortByYear,
	chart.SortByPlays,
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	settings  *config.Settings
	err       error

	// Loaded songs and the chart built from them
	songs    []*model.Song
	skipped  int
	list     *songlist.Node
	keyIndex int
	topN     int

	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "/path/to/songs.csv, https://…/songs.csv, or a music directory"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	ctx, cancel := context.WithCancel(context.Background())

	settings := config.DefaultSettings()
	topN := settings.ChartSize
	if topN <= 0 {
		topN = 40
	}

	keyIndex := 0
	for i, key := range sortKeys {
		if key == settings.ToSortKey() {
			keyIndex = i
			break
		}
	}

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		settings:  settings,
		keyIndex:  keyIndex,
		topN:      topN,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// LoadDoneMsg is sent when loading songs completes.
type LoadDoneMsg struct {
	Songs   []*model.Song
	Skipped int
	Err     error
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateLoading {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateInput && m.textInput.Value() != "" {
				m.state = StateLoading
				return m, tea.Batch(m.loadSongs(), m.spinner.Tick)
			}

		case "s":
			if m.state == StateChart {
				m.keyIndex = (m.keyIndex + 1) % len(sortKeys)
				m.rebuild()
			}

		case "+", "=":
			if m.state == StateChart {
				m.topN += 10
			}

		case "-":
			if m.state == StateChart && m.topN > 10 {
				m.topN -= 10
			}

		case "q":
			if m.state == StateChart || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateChart || m.state == StateError {
				// Reset for a new source
				m.state = StateInput
				m.songs = nil
				m.skipped = 0
				m.list = nil
				m.err = nil
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.SetValue("")
				m.textInput.Focus()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case LoadDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.songs = msg.Songs
			m.skipped = msg.Skipped
			m.rebuild()
			m.state = StateChart
		}
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// rebuild re-ranks the loaded songs under the active sort key.
func (m *Model) rebuild() {
	m.list = chart.NewBuilder(sortKeys[m.keyIndex]).Build(m.songs)
}

// loadSongs reads songs from the entered source: an HTTP(S) URL, a CSV
// file, or a music directory to scan.
func (m *Model) loadSongs() tea.Cmd {
	source := m.textInput.Value()
	ctx := m.ctx
	scanCfg := m.settings.ToScanConfig()

	return func() tea.Msg {
		switch {
		case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
			body, err := fetch.NewClient().GetString(ctx, source)
			if err != nil {
				return LoadDoneMsg{Err: err}
			}
			result, err := dataset.NewParser().Parse(strings.NewReader(body))
			if err != nil {
				return LoadDoneMsg{Err: err}
			}
			return LoadDoneMsg{Songs: result.Songs, Skipped: result.Skipped}

		default:
			info, err := os.Stat(source)
			if err != nil {
				return LoadDoneMsg{Err: err}
			}
			if info.IsDir() {
				songs, err := scan.NewScanner(scanCfg, nil).Scan(ctx, source)
				return LoadDoneMsg{Songs: songs, Err: err}
			}
			result, err := dataset.NewParser().ParseFile(source)
			if err != nil {
				return LoadDoneMsg{Err: err}
			}
			return LoadDoneMsg{Songs: result.Songs, Skipped: result.Skipped}
		}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🎵 songchart"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Build ranked song charts"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateLoading:
		b.WriteString(m.viewLoading())
	case StateChart:
		b.WriteString(m.viewChart())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter a song source:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewLoading() string {
	return m.spinner.View() + " " + subtitleStyle.Render("Loading songs...")
}

func (m Model) viewChart() string {
	var b strings.Builder

	key := sortKeys[m.keyIndex]
	header := fmt.Sprintf("Top %d of %d songs by %s", m.topN, len(m.songs), key)
	if m.skipped > 0 {
		header += fmt.Sprintf(" (%d rows skipped)", m.skipped)
	}
	b.WriteString(subtitleStyle.Render(header))
	b.WriteString("\n\n")

	for i, s := range chart.Top(m.list, m.topN) {
		b.WriteString(rankStyle.Render(fmt.Sprintf("%3d.", i+1)))
		b.WriteString(" ")
		b.WriteString(songStyle.Render(s.String()))
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %s · %d", s.DurationString(), s.Comparator)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(boxStyle.Render(m.err.Error()))
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: load • esc: quit"
	case StateLoading:
		return "esc: cancel"
	case StateChart:
		return "s: sort key • +/-: chart size • r: new source • q: quit"
	case StateError:
		return "r: try again • q: quit"
	}
	return ""
}

// Run starts the TUI program.
func Run() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
