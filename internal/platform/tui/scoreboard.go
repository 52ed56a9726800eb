package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

const (
	summaryMinWidth = 80  // below this the per-mode summary panel is hidden
	summaryWidth    = 22  // panel width including padding
	maxScores       = 100 // rows loaded per mode
)

var (
	boardTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardTabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boardPanelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextMode, k.PrevMode},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
		NextMode: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev mode")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists the best rounds of one mode at a time, with a
// summary of every mode beside it when the terminal is wide enough.
type ScoreboardModel struct {
	store     *storage.Store
	modes     []registry.GameInfo
	mode      int
	scores    []storage.ScoreEntry
	stats     *storage.ModeStats
	summary   map[string]*storage.ModeStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard showing the first registered mode.
// A nil store shows empty tables.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		modes:  registry.List(),
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()

	if store != nil {
		if all, err := store.GetAllModeStats(); err == nil {
			m.summary = all
		}
	}
	m.selectMode(0)
	return m
}

// CurrentMode returns the ID of the mode being shown, or "" if none exist.
func (m ScoreboardModel) CurrentMode() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.mode].ID
}

func (m ScoreboardModel) showSummary() bool {
	return m.width >= summaryMinWidth && len(m.modes) > 1
}

func (m ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Length", Width: 6},
		{Title: "Player", Width: 10},
		{Title: "When", Width: 14},
	}

	avail := m.width - 6
	if m.showSummary() {
		avail -= summaryWidth + 2
	}
	// Give spare room to the player column
	if extra := avail - 51; extra > 0 {
		columns[3].Width += min(extra, 14)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-11, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// selectMode switches to the mode at index i (wrapping) and reloads its rows.
func (m *ScoreboardModel) selectMode(i int) {
	m.scores, m.stats = nil, nil
	if len(m.modes) == 0 {
		m.table.SetRows(nil)
		return
	}
	m.mode = (i%len(m.modes) + len(m.modes)) % len(m.modes)

	if m.store != nil {
		id := m.modes[m.mode].ID
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetModeStats(id); err == nil {
			m.stats = stats
		}
	}
	m.fillRows()
}

func (m *ScoreboardModel) fillRows() {
	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		player, when := s.Player, "-"
		if player == "" {
			player = "-"
		}
		if !s.CreatedAt.IsZero() {
			when = humanize.Time(s.CreatedAt)
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			humanize.Comma(int64(s.Score)),
			strconv.Itoa(s.Length),
			player,
			when,
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles keys and resizes.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.selectMode(m.mode + 1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.selectMode(m.mode - 1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.fillRows()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerStyled(boardTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerStyled(m.tabs(), m.width))
	b.WriteString("\n")
	if line := m.statsLine(); line != "" {
		b.WriteString(centerStyled(boardDimStyle.Render(line), m.width))
	}
	b.WriteString("\n\n")

	body := boardPanelStyle.Render(m.tableView())
	if m.showSummary() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.summaryPanel(), "  ", body)
	}
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(boardHelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) tabs() string {
	tabs := make([]string, len(m.modes))
	for i, mode := range m.modes {
		if i == m.mode {
			tabs[i] = boardActiveStyle.Render(mode.Title)
		} else {
			tabs[i] = boardTabStyle.Render(mode.Title)
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 && len(m.modes) > 0 {
		line = boardActiveStyle.Render("< " + m.modes[m.mode].Title + " >")
	}
	return line
}

// statsLine summarizes the selected mode, or returns "" when nothing was played.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("%s rounds  |  avg %.1f  |  longest snake %d  |  last played %s",
		humanize.Comma(int64(m.stats.GamesCount)),
		m.stats.AvgScore,
		m.stats.MaxLength,
		humanize.Time(m.stats.LastPlayed),
	)
}

// summaryPanel shows the best score and round count of every mode.
func (m ScoreboardModel) summaryPanel() string {
	var b strings.Builder
	b.WriteString(boardTitleStyle.Render("Best per mode"))
	b.WriteString("\n")

	for i, mode := range m.modes {
		best, rounds := "-", "no rounds"
		if s, ok := m.summary[mode.ID]; ok && s.GamesCount > 0 {
			best = humanize.Comma(int64(s.HighScore))
			rounds = humanize.Comma(int64(s.GamesCount)) + " rounds"
		}

		marker := "  "
		style := lipgloss.NewStyle()
		if i == m.mode {
			marker = "> "
			style = style.Bold(true)
		}
		b.WriteString("\n")
		b.WriteString(style.Render(fmt.Sprintf("%s%-8s %6s", marker, mode.ID, best)))
		b.WriteString("\n")
		b.WriteString(boardDimStyle.Render("  " + rounds))
	}

	return boardPanelStyle.Width(summaryWidth).Render(b.String())
}

func (m ScoreboardModel) tableView() string {
	if len(m.scores) == 0 {
		return boardEmptyStyle.Render("No rounds recorded yet.\nEat some food to set a score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
